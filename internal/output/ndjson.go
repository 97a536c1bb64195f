package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/aliasfix/internal/engine"
)

// WriteJSON writes the whole result as one indented JSON document.
func WriteJSON(w io.Writer, res engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteNDJSON streams items (check) or changes (fix) as newline-delimited
// JSON objects, followed by one object per error.
func WriteNDJSON(w io.Writer, res engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if res.Mode == "fix" {
		for _, ch := range res.Changes {
			if err := enc.Encode(ch); err != nil {
				return err
			}
		}
	} else {
		for _, it := range res.Items {
			if err := enc.Encode(it); err != nil {
				return err
			}
		}
	}
	for _, e := range res.Errors {
		if err := enc.Encode(errorRecord{Error: e}); err != nil {
			return err
		}
	}
	return nil
}

type errorRecord struct {
	Error engine.ItemError `json:"error"`
}
