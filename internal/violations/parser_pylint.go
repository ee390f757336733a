package violations

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PylintJSONParser parses `pylint --output-format=json` output: a JSON array
// of records with path, line, column, message, symbol and message-id fields.
// The code is synthesized from the id and symbol, e.g.
// "C0111 (missing-docstring)".
type PylintJSONParser struct{}

type pylintRecord struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Symbol    string `json:"symbol"`
	Message   string `json:"message"`
	MessageID string `json:"message-id"`
}

func (p *PylintJSONParser) Parse(output, workingRoot string) (*Map, error) {
	// Pylint sometimes prints "No config file found, using default
	// configuration" on the first line before the JSON document.
	if strings.HasPrefix(output, "No config") {
		if i := strings.IndexByte(output, '\n'); i >= 0 {
			output = output[i+1:]
		} else {
			output = ""
		}
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return NewMap(), nil
	}

	var records []pylintRecord
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		return nil, fmt.Errorf("%w: pylint JSON: %v", ErrMalformedOutput, err)
	}

	m := NewMap()
	for i, rec := range records {
		if rec.Path == "" {
			return nil, fmt.Errorf("%w: pylint record %d has no path", ErrMalformedOutput, i)
		}
		m.Add(NormalizePath(rec.Path, workingRoot), Violation{
			Line:    rec.Line,
			Column:  rec.Column,
			Code:    fmt.Sprintf("%s (%s)", rec.MessageID, rec.Symbol),
			Message: rec.Message,
		})
	}
	return m, nil
}
