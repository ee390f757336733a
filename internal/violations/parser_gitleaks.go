package violations

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GitLeaksParser parses gitleaks JSON output: an array of leak records. The
// offending string stands in as the code and the rule name as the message;
// gitleaks reports no columns.
type GitLeaksParser struct{}

type gitleaksRecord struct {
	File       string `json:"file"`
	LineNumber int    `json:"lineNumber"`
	Offender   string `json:"offender"`
	Rule       string `json:"rule"`
}

func (p *GitLeaksParser) Parse(output, workingRoot string) (*Map, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return NewMap(), nil
	}

	var records []gitleaksRecord
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		return nil, fmt.Errorf("%w: gitleaks JSON: %v", ErrMalformedOutput, err)
	}

	m := NewMap()
	for i, rec := range records {
		if rec.File == "" {
			return nil, fmt.Errorf("%w: gitleaks record %d has no file", ErrMalformedOutput, i)
		}
		m.Add(NormalizePath(rec.File, workingRoot), Violation{
			Line:    rec.LineNumber,
			Column:  0,
			Code:    rec.Offender,
			Message: rec.Rule,
		})
	}
	return m, nil
}
