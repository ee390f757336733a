package violations

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BanditJSONParser parses `bandit -f json` output. Findings live in the
// top-level "results" array; bandit does not report columns, so column is
// fixed at 0. The code combines the test id and name, e.g.
// "B701 (jinja2_autoescape_false)".
type BanditJSONParser struct{}

type banditResult struct {
	Filename   string `json:"filename"`
	LineNumber int    `json:"line_number"`
	TestID     string `json:"test_id"`
	TestName   string `json:"test_name"`
	IssueText  string `json:"issue_text"`
}

func (p *BanditJSONParser) Parse(output, workingRoot string) (*Map, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return NewMap(), nil
	}

	var report map[string]json.RawMessage
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		return nil, fmt.Errorf("%w: bandit JSON: %v", ErrMalformedOutput, err)
	}
	raw, ok := report["results"]
	if !ok {
		return nil, fmt.Errorf("%w: bandit report has no \"results\" key", ErrMalformedOutput)
	}
	var results []banditResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("%w: bandit results: %v", ErrMalformedOutput, err)
	}

	m := NewMap()
	for _, r := range results {
		m.Add(NormalizePath(r.Filename, workingRoot), Violation{
			Line:    r.LineNumber,
			Column:  0,
			Code:    fmt.Sprintf("%s (%s)", r.TestID, r.TestName),
			Message: r.IssueText,
		})
	}
	return m, nil
}
