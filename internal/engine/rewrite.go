package engine

import (
	"strings"
	"unicode"

	"github.com/phyten/aliasfix/internal/alias"
	"github.com/phyten/aliasfix/internal/model"
)

// Rewriter はエイリアスを正式な型名へ置き換えます。
type Rewriter struct {
	table alias.Table
}

func NewRewriter(table alias.Table) *Rewriter {
	return &Rewriter{table: table}
}

// RewriteLine rewrites a single line without any surrounding context.
//
// Lines containing the word enum are returned unchanged, and so are lines that
// look like a comment or a block comment continuation ("//", "/*" or "*" after
// leading whitespace), since a lone line cannot tell whether it sits inside
// a block comment.
func (rw *Rewriter) RewriteLine(line string) (string, bool) {
	if hasEnumKeyword(line) || looksLikeComment(line) {
		return line, false
	}
	var occ []model.Occurrence
	NewScanner(rw.table).Line(1, line, func(o model.Occurrence) {
		occ = append(occ, o)
	})
	out := substitute(line, occ)
	return out, out != line
}

// RewriteDocument rewrites doc with one scanner carrying comment and string
// state across lines. It returns the new lines and one Change per modified line.
func (rw *Rewriter) RewriteDocument(doc model.Document) ([]string, []model.Change) {
	sc := NewScanner(rw.table)
	out := make([]string, len(doc.Lines))
	var changes []model.Change
	for idx, line := range doc.Lines {
		var occ []model.Occurrence
		sc.Line(idx+1, line, func(o model.Occurrence) {
			occ = append(occ, o)
		})
		next := line
		if len(occ) > 0 && !hasEnumKeyword(line) {
			next = substitute(line, occ)
		}
		out[idx] = next
		if next != line {
			changes = append(changes, model.Change{
				Row: idx + 1,
				Old: trimEOL(line),
				New: trimEOL(next),
			})
		}
	}
	return out, changes
}

// substitute replaces every occurrence, which must be ordered by Offset.
func substitute(line string, occ []model.Occurrence) string {
	if len(occ) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + len(occ)*4)
	pos := 0
	for _, o := range occ {
		b.WriteString(line[pos:o.Offset])
		b.WriteString(o.Canonical)
		pos = o.Offset + len(o.Alias)
	}
	b.WriteString(line[pos:])
	return b.String()
}

func looksLikeComment(line string) bool {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}
