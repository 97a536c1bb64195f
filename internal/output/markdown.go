package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/aliasfix/internal/engine"
	"github.com/phyten/aliasfix/internal/textutil"
)

// CellWidth caps the display width of a source line in a Markdown cell.
const CellWidth = 80

// WriteMarkdownTable renders the result as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, res engine.Result) error {
	headers := Headers(res.Mode)
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range Rows(res) {
		for i := range row {
			row[i] = escapeMarkdownCell(row[i])
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = textutil.ExpandTabs(strings.TrimSpace(s), textutil.TabWidth)
	s = textutil.TruncateByWidth(s, CellWidth, "…")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
