package engine

import (
	"regexp"

	"github.com/phyten/aliasfix/internal/alias"
	"github.com/phyten/aliasfix/internal/model"
)

var reEnum = regexp.MustCompile(`\benum\b`)

func hasEnumKeyword(line string) bool {
	return reEnum.MatchString(line)
}

// Detect はドキュメント全体を 1 つの Scanner で走査し、出現箇所を文書順に返します。
//
// enum を含む行の出現も返しますが、InEnum を立てて fix では書き換えられないことを示します。
func Detect(table alias.Table, doc model.Document) []model.Occurrence {
	sc := NewScanner(table)
	var out []model.Occurrence
	for idx, line := range doc.Lines {
		inEnum := hasEnumKeyword(line)
		sc.Line(idx+1, line, func(o model.Occurrence) {
			o.InEnum = inEnum
			out = append(out, o)
		})
	}
	return out
}

// classify returns the context of every byte of every line.
func classify(table alias.Table, doc model.Document) [][]model.ScanContext {
	sc := NewScanner(table)
	out := make([][]model.ScanContext, len(doc.Lines))
	pad := func(row, upto int) {
		line := out[row-1]
		for len(line) > 0 && len(line) < upto {
			line = append(line, line[len(line)-1])
		}
		out[row-1] = line
	}
	sc.trace = func(row, offset int, ctx model.ScanContext) {
		pad(row, offset)
		out[row-1] = append(out[row-1], ctx)
	}
	for idx, line := range doc.Lines {
		out[idx] = make([]model.ScanContext, 0, len(line))
		sc.Line(idx+1, line, nil)
		pad(idx+1, len(line))
	}
	return out
}
