package violations

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HadolintParser parses `hadolint -f json` output: a flat array of records
// with file, line, column, code and message fields.
type HadolintParser struct{}

type hadolintRecord struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (p *HadolintParser) Parse(output, workingRoot string) (*Map, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return NewMap(), nil
	}

	var records []hadolintRecord
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		return nil, fmt.Errorf("%w: hadolint JSON: %v", ErrMalformedOutput, err)
	}

	m := NewMap()
	for i, rec := range records {
		if rec.File == "" {
			return nil, fmt.Errorf("%w: hadolint record %d has no file", ErrMalformedOutput, i)
		}
		m.Add(NormalizePath(rec.File, workingRoot), Violation{
			Line:    rec.Line,
			Column:  rec.Column,
			Code:    rec.Code,
			Message: rec.Message,
		})
	}
	return m, nil
}
