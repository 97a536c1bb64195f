package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phyten/aliasfix/internal/alias"
	"github.com/phyten/aliasfix/internal/model"
	"github.com/phyten/aliasfix/internal/textutil"
)

// TabWidth is the tab stop used for reported columns.
const TabWidth = textutil.TabWidth

// Scanner は文字ごとに字句コンテキストを判定し、コード中のエイリアスを検出します。
//
// ブロックコメントと文字列の状態は Line の呼び出しをまたいで保持されます。
// 行コメントとマクロは次の行の先頭で自動的にコードへ戻ります。
type Scanner struct {
	table alias.Table
	ctx   model.ScanContext

	// string literal flavour while ctx == ContextString
	quote    byte
	verbatim bool

	trace func(row, offset int, ctx model.ScanContext)
}

// NewScanner returns a scanner positioned at the start of a document.
func NewScanner(table alias.Table) *Scanner {
	return &Scanner{table: table}
}

// Context reports the context active at the current position.
func (s *Scanner) Context() model.ScanContext { return s.ctx }

// Reset returns the scanner to code context for a new document.
func (s *Scanner) Reset() {
	s.ctx = model.ContextCode
	s.quote = 0
	s.verbatim = false
}

// Line consumes one physical line (terminator included or not) and calls emit
// for every alias that completes while in code context. Row is 1-based.
func (s *Scanner) Line(row int, line string, emit func(model.Occurrence)) {
	if s.ctx == model.ContextLineComment || s.ctx == model.ContextMacro {
		s.ctx = model.ContextCode
	}

	col := 0
	i := 0
	step := func(n int) {
		end := i + n
		for i < end {
			r, size := utf8.DecodeRuneInString(line[i:])
			if s.trace != nil {
				s.trace(row, i, s.ctx)
			}
			col = advanceColumn(col, r)
			i += size
		}
	}

	wordStart, wordCol := -1, 0
	flush := func() {
		if wordStart < 0 {
			return
		}
		start := wordStart
		wordStart = -1
		word := line[start:i]
		if canon, ok := s.table.Lookup(word); ok && emit != nil {
			emit(model.Occurrence{
				Alias:     word,
				Canonical: canon,
				Row:       row,
				Column:    wordCol + 1,
				Offset:    start,
			})
		}
	}

	for i < len(line) {
		rest := line[i:]
		r, size := utf8.DecodeRuneInString(rest)

		switch s.ctx {
		case model.ContextBlockComment:
			if strings.HasPrefix(rest, "*/") {
				step(2)
				s.ctx = model.ContextCode
				continue
			}
			step(size)

		case model.ContextString:
			switch {
			case s.verbatim && strings.HasPrefix(rest, `""`):
				step(2)
			case !s.verbatim && r == '\\':
				// escaped character, whatever it is
				step(1)
				if i < len(line) {
					_, next := utf8.DecodeRuneInString(line[i:])
					step(next)
				}
			case r == rune(s.quote):
				step(1)
				s.ctx = model.ContextCode
				s.quote = 0
				s.verbatim = false
			default:
				step(size)
			}

		case model.ContextLineComment, model.ContextMacro:
			step(len(rest))

		default:
			if isWordRune(r) {
				if wordStart < 0 {
					wordStart, wordCol = i, col
				}
				step(size)
				continue
			}
			// byte order mark occupies no column
			if r == '\uFEFF' {
				flush()
				if s.trace != nil {
					s.trace(row, i, s.ctx)
				}
				i += size
				continue
			}
			// verbatim identifier such as @int is a name, not a keyword
			if r == '@' && wordStart < 0 && len(rest) > 1 && startsWord(rest[1:]) {
				wordStart, wordCol = i, col
				step(1)
				continue
			}
			flush()
			switch {
			case strings.HasPrefix(rest, "//"):
				s.ctx = model.ContextLineComment
				step(len(rest))
			case r == '#':
				s.ctx = model.ContextMacro
				step(len(rest))
			case strings.HasPrefix(rest, "/*"):
				s.ctx = model.ContextBlockComment
				step(2)
			case strings.HasPrefix(rest, `@"`):
				s.ctx, s.quote, s.verbatim = model.ContextString, '"', true
				step(2)
			case strings.HasPrefix(rest, `@$"`):
				// interpolated verbatim; $@" reaches the @" case after the $
				s.ctx, s.quote, s.verbatim = model.ContextString, '"', true
				step(3)
			case r == '"' || r == '\'':
				s.ctx, s.quote, s.verbatim = model.ContextString, byte(r), false
				step(1)
			default:
				step(size)
			}
		}
	}
	// end of line is a word boundary
	if s.ctx == model.ContextCode {
		flush()
	}
}

func advanceColumn(col int, r rune) int {
	if r == '\t' {
		return (col/TabWidth + 1) * TabWidth
	}
	return col + 1
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func startsWord(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && isWordRune(r)
}
