package engine

import (
	"regexp"

	"github.com/phyten/aliasfix/internal/alias"
)

// Item は check で見つかったエイリアス 1 件を表す
type Item struct {
	File      string `json:"file"`
	Alias     string `json:"alias"`
	Canonical string `json:"canonical"`
	Row       int    `json:"row"`
	Column    int    `json:"column"`
	InEnum    bool   `json:"in_enum,omitempty"`
	Text      string `json:"text,omitempty"`
}

// ChangeItem は fix で書き換えた 1 行を表す
type ChangeItem struct {
	File string `json:"file"`
	Row  int    `json:"row"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

// ItemError は 1 ファイルの処理に失敗した際の情報を表す
type ItemError struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Options は実行オプション
type Options struct {
	Root              string
	Langs             []string
	Excludes          []string
	ExcludeTypical    bool
	PathRegex         []string
	PathRegexCompiled []*regexp.Regexp
	Gitignore         bool
	MaxFileBytes      int64
	BackupDir         string
	DryRun            bool
	Progress          bool
	Table             alias.Table `json:"-"`
}

// Result は出力
type Result struct {
	Mode       string       `json:"mode"`
	Files      int          `json:"files"`
	Items      []Item       `json:"items,omitempty"`
	Changes    []ChangeItem `json:"changes,omitempty"`
	Changed    []string     `json:"changed_files,omitempty"`
	BackupDir  string       `json:"backup_dir,omitempty"`
	DryRun     bool         `json:"dry_run,omitempty"`
	Total      int          `json:"total"`
	ElapsedMS  int64        `json:"elapsed_ms"`
	Errors     []ItemError  `json:"errors,omitempty"`
	ErrorCount int          `json:"error_count"`
}
