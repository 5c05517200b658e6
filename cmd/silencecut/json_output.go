package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON renders v as indented JSON and writes it in one call, so a
// failed encode leaves w untouched. Filenames are not HTML-escaped.
func writeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
