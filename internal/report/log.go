package report

import (
	"context"
	"log/slog"
)

// Log mirrors events onto a slog.Logger. Item errors go out at errLevel and
// everything else at debug, so -verbose traces a run without the text sink.
type Log struct {
	logger   *slog.Logger
	errLevel slog.Level
}

func NewLog(logger *slog.Logger, errLevel slog.Level) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger, errLevel: errLevel}
}

func (l *Log) Emit(ev Event) error {
	ctx := context.Background()
	switch ev.Kind {
	case KindError:
		l.logger.Log(ctx, l.errLevel, "file skipped", "file", ev.File, "stage", ev.Stage, "error", ev.Message)
	case KindFile:
		l.logger.Debug("file", "path", ev.File)
	case KindOccurrence:
		o := ev.Occurrence
		l.logger.Debug("alias", "file", ev.File, "row", o.Row, "column", o.Column, "alias", o.Alias, "canonical", o.Canonical)
	case KindChange:
		c := ev.Change
		l.logger.Debug("rewrite", "file", ev.File, "row", c.Row, "old", c.Old, "new", c.New)
	case KindSummary:
		s := ev.Summary
		l.logger.Debug("summary", "mode", s.Mode, "files", s.Files, "occurrences", s.Occurrences, "changes", s.Changes, "errors", s.Errors)
	}
	return nil
}

func (l *Log) Close() error { return nil }
