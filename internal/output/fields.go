package output

import (
	"strconv"

	"github.com/phyten/aliasfix/internal/engine"
)

var (
	checkHeaders = []string{"file", "row", "column", "alias", "canonical", "in_enum"}
	fixHeaders   = []string{"file", "row", "old", "new"}
)

// Headers returns the column names used for the tabular formats of mode.
func Headers(mode string) []string {
	if mode == "fix" {
		return append([]string(nil), fixHeaders...)
	}
	return append([]string(nil), checkHeaders...)
}

// Rows returns one row per item (check) or per changed line (fix).
func Rows(res engine.Result) [][]string {
	if res.Mode == "fix" {
		rows := make([][]string, 0, len(res.Changes))
		for _, ch := range res.Changes {
			rows = append(rows, []string{ch.File, strconv.Itoa(ch.Row), ch.Old, ch.New})
		}
		return rows
	}
	rows := make([][]string, 0, len(res.Items))
	for _, it := range res.Items {
		rows = append(rows, []string{
			it.File,
			strconv.Itoa(it.Row),
			strconv.Itoa(it.Column),
			it.Alias,
			it.Canonical,
			strconv.FormatBool(it.InEnum),
		})
	}
	return rows
}
