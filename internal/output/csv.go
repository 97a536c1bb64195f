package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/aliasfix/internal/engine"
)

// WriteCSV renders the result as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, res engine.Result) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(res.Mode)); err != nil {
		return err
	}
	for _, row := range Rows(res) {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
