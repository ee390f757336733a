package violations

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CfnNagParser parses cfn-nag JSON output. Each violation record names one
// rule and carries the list of affected line numbers; it is expanded into
// one violation per line, all sharing the rule id and message, column fixed
// at 0. A scanned file with no violations still appears in the result with
// an empty list.
type CfnNagParser struct{}

type cfnNagFile struct {
	Filename    string `json:"filename"`
	FileResults struct {
		Violations []cfnNagViolation `json:"violations"`
	} `json:"file_results"`
}

type cfnNagViolation struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	LineNumbers []int  `json:"line_numbers"`
}

func (p *CfnNagParser) Parse(output, workingRoot string) (*Map, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return NewMap(), nil
	}

	var files []cfnNagFile
	if err := json.Unmarshal([]byte(output), &files); err != nil {
		return nil, fmt.Errorf("%w: cfn-nag JSON: %v", ErrMalformedOutput, err)
	}

	m := NewMap()
	for i, f := range files {
		if f.Filename == "" {
			return nil, fmt.Errorf("%w: cfn-nag file entry %d has no filename", ErrMalformedOutput, i)
		}
		path := NormalizePath(f.Filename, workingRoot)
		m.Touch(path)
		for _, v := range f.FileResults.Violations {
			for _, line := range v.LineNumbers {
				m.Add(path, Violation{
					Line:    line,
					Column:  0,
					Code:    v.ID,
					Message: v.Message,
				})
			}
		}
	}
	return m, nil
}
