package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/phyten/aliasfix/internal/alias"
	"github.com/phyten/aliasfix/internal/backup"
	"github.com/phyten/aliasfix/internal/model"
	"github.com/phyten/aliasfix/internal/report"
	"github.com/phyten/aliasfix/internal/util"
	"github.com/phyten/aliasfix/internal/walk"
)

var (
	errBinary   = errors.New("binary file")
	errTooLarge = errors.New("file exceeds size limit")
)

// Check は対象ファイルを走査し、コード中に現れたエイリアスを報告します。
//
// 読み込みに失敗したファイルは Result.Errors に記録して処理を続けます。
// sink への書き込みに失敗した場合はその時点でエラーを返します。
func Check(ctx context.Context, opts Options, sink report.Sink) (*Result, error) {
	start := time.Now()
	if sink == nil {
		sink = report.Discard
	}
	table := tableOf(opts)

	files, err := listFiles(opts, false)
	if err != nil {
		return nil, err
	}

	prog := util.NewProgress(len(files), opts.Progress)
	var items []Item
	var errs []ItemError
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			prog.Done()
			return nil, err
		}
		if err := sink.Emit(report.Event{Kind: report.KindFile, File: path}); err != nil {
			prog.Done()
			return nil, err
		}
		doc, err := loadDocument(path, opts.MaxFileBytes)
		switch {
		case errors.Is(err, errBinary):
			slog.Debug("skipping binary file", "path", path)
		case err != nil:
			ie := newItemError(path, 0, stageOf(err), err)
			errs = append(errs, ie)
			if err := sink.Emit(errorEvent(ie)); err != nil {
				prog.Done()
				return nil, err
			}
		default:
			for _, o := range Detect(table, doc) {
				line := doc.Lines[o.Row-1]
				items = append(items, Item{
					File:      path,
					Alias:     o.Alias,
					Canonical: o.Canonical,
					Row:       o.Row,
					Column:    o.Column,
					InEnum:    o.InEnum,
					Text:      trimEOL(line),
				})
				if err := sink.Emit(report.Event{Kind: report.KindOccurrence, File: path, Occurrence: o, Line: line}); err != nil {
					prog.Done()
					return nil, err
				}
			}
		}
		prog.Advance()
	}
	prog.Done()

	sortErrors(errs)
	res := &Result{
		Mode:       "check",
		Files:      len(files),
		Items:      items,
		Total:      len(items),
		ElapsedMS:  msSince(start),
		Errors:     errs,
		ErrorCount: len(errs),
	}
	if err := sink.Emit(summaryEvent(res)); err != nil {
		return nil, err
	}
	return res, nil
}

type staged struct {
	path    string
	text    string
	mode    fs.FileMode
	changes []model.Change
}

// Fix は対象ファイルのエイリアスを正式な型名へ書き換えます。
//
// 全ファイルをメモリ上で書き換えてから、変更のあるファイルをバックアップし、
// 最後に一時ファイルと rename でファイルごとに置き換えます。読み込み・バックアップ・
// 書き込みのいずれかに失敗した時点でエラーを返します。DryRun ではバックアップと
// 書き込みを行いません。
func Fix(ctx context.Context, opts Options, sink report.Sink) (*Result, error) {
	start := time.Now()
	if sink == nil {
		sink = report.Discard
	}
	if strings.TrimSpace(opts.BackupDir) == "" {
		opts.BackupDir = backup.DefaultDir
	}
	rw := NewRewriter(tableOf(opts))

	files, err := listFiles(opts, true)
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: "fix", Files: len(files), DryRun: opts.DryRun}
	prog := util.NewProgress(len(files), opts.Progress)
	var pending []staged
	var errs []ItemError
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			prog.Done()
			return nil, err
		}
		if err := sink.Emit(report.Event{Kind: report.KindFile, File: path}); err != nil {
			prog.Done()
			return nil, err
		}
		doc, err := loadDocument(path, opts.MaxFileBytes)
		switch {
		case errors.Is(err, errBinary):
			slog.Debug("skipping binary file", "path", path)
			prog.Advance()
			continue
		case errors.Is(err, errTooLarge):
			ie := newItemError(path, 0, "size", err)
			errs = append(errs, ie)
			if err := sink.Emit(errorEvent(ie)); err != nil {
				prog.Done()
				return nil, err
			}
			prog.Advance()
			continue
		case err != nil:
			prog.Done()
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		lines, changes := rw.RewriteDocument(doc)
		for _, c := range changes {
			res.Changes = append(res.Changes, ChangeItem{File: path, Row: c.Row, Old: c.Old, New: c.New})
			if err := sink.Emit(report.Event{Kind: report.KindChange, File: path, Change: c}); err != nil {
				prog.Done()
				return nil, err
			}
		}
		if len(changes) > 0 {
			info, err := os.Stat(path)
			if err != nil {
				prog.Done()
				return nil, fmt.Errorf("stat %s: %w", path, err)
			}
			pending = append(pending, staged{
				path:    path,
				text:    strings.Join(lines, ""),
				mode:    info.Mode().Perm(),
				changes: changes,
			})
		}
		prog.Advance()
	}
	prog.Done()
	res.Total = len(res.Changes)

	if !opts.DryRun && len(pending) > 0 {
		bk := backup.New(opts.BackupDir)
		if err := bk.Prepare(); err != nil {
			return nil, err
		}
		for _, st := range pending {
			if _, err := bk.Save(st.path); err != nil {
				return nil, err
			}
		}
		res.BackupDir = bk.Dir()
		slog.Debug("originals backed up", "dir", bk.Dir(), "files", len(pending))

		for _, st := range pending {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("interrupted after rewriting %d of %d files: %w", len(res.Changed), len(pending), err)
			}
			if err := writeAtomic(st.path, st.text, st.mode); err != nil {
				return nil, fmt.Errorf("write %s (%d of %d files already rewritten): %w", st.path, len(res.Changed), len(pending), err)
			}
			res.Changed = append(res.Changed, st.path)
		}
	} else if opts.DryRun {
		for _, st := range pending {
			res.Changed = append(res.Changed, st.path)
		}
	}

	sortErrors(errs)
	res.Errors = errs
	res.ErrorCount = len(errs)
	res.ElapsedMS = msSince(start)
	if err := sink.Emit(summaryEvent(res)); err != nil {
		return nil, err
	}
	return res, nil
}

func listFiles(opts Options, fix bool) ([]string, error) {
	rx := opts.PathRegexCompiled
	if rx == nil && len(opts.PathRegex) > 0 {
		compiled, err := walk.CompilePathRegex(opts.PathRegex)
		if err != nil {
			return nil, fmt.Errorf("invalid path regex: %w", err)
		}
		rx = compiled
	}
	wo := walk.Options{
		Root:           opts.Root,
		Langs:          opts.Langs,
		Excludes:       opts.Excludes,
		ExcludeTypical: opts.ExcludeTypical,
		PathRegex:      rx,
		Gitignore:      opts.Gitignore,
	}
	if fix {
		dir := opts.BackupDir
		if strings.TrimSpace(dir) == "" {
			dir = backup.DefaultDir
		}
		wo.SkipDirs = []string{dir}
	}
	return walk.Files(wo)
}

// loadDocument reads path, rejecting files with NUL bytes or above maxBytes
// (0 disables the limit).
func loadDocument(path string, maxBytes int64) (model.Document, error) {
	if maxBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return model.Document{}, err
		}
		if info.Size() > maxBytes {
			return model.Document{}, fmt.Errorf("%w (%d > %d bytes)", errTooLarge, info.Size(), maxBytes)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return model.Document{}, errBinary
	}
	return model.NewDocument(path, string(data)), nil
}

// writeAtomic replaces path through a temp file in the same directory.
func writeAtomic(path, text string, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".aliasfix-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpName)
	}
	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

func tableOf(opts Options) alias.Table {
	if opts.Table.Len() == 0 {
		return alias.Default()
	}
	return opts.Table
}

func stageOf(err error) string {
	if errors.Is(err, errTooLarge) {
		return "size"
	}
	return "read"
}

func errorEvent(ie ItemError) report.Event {
	return report.Event{Kind: report.KindError, File: ie.File, Stage: ie.Stage, Message: ie.Message}
}

func summaryEvent(res *Result) report.Event {
	occ := 0
	if res.Mode == "check" {
		occ = res.Total
	}
	return report.Event{Kind: report.KindSummary, Summary: report.Summary{
		Mode:        res.Mode,
		Files:       res.Files,
		Occurrences: occ,
		Changes:     len(res.Changes),
		Changed:     len(res.Changed),
		Errors:      res.ErrorCount,
		DryRun:      res.DryRun,
		BackupDir:   res.BackupDir,
	}}
}

func sortErrors(errs []ItemError) {
	sort.Slice(errs, func(i, j int) bool {
		if errs[i].File == errs[j].File {
			if errs[i].Line == errs[j].Line {
				return errs[i].Stage < errs[j].Stage
			}
			return errs[i].Line < errs[j].Line
		}
		return errs[i].File < errs[j].File
	})
}

func newItemError(file string, line int, stage string, err error) ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return ItemError{File: file, Line: line, Stage: stage, Message: msg}
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
