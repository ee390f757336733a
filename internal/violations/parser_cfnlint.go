package violations

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CfnLintParser parses cfn-lint's default two-line output:
//
//	W2001 Parameter UnusedParameter not used.
//	template.yaml:2:9
//
// A code/message line is held until the following location line attributes
// it to a file and position.
type CfnLintParser struct{}

var cfnLintCodePattern = regexp.MustCompile(`^[EW]\d{4}\s`)

func (p *CfnLintParser) Parse(output, workingRoot string) (*Map, error) {
	m := NewMap()

	pending := ""
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		switch {
		case cfnLintCodePattern.MatchString(line):
			pending = line

		case pending != "":
			parts := strings.Split(line, ":")
			if len(parts) != 3 {
				return nil, fmt.Errorf("%w: cfn-lint location line %q", ErrMalformedOutput, line)
			}
			lineNum, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("%w: cfn-lint line number in %q", ErrMalformedOutput, line)
			}
			col, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("%w: cfn-lint column in %q", ErrMalformedOutput, line)
			}

			code, message, _ := strings.Cut(pending, " ")
			m.Add(NormalizePath(parts[0], workingRoot), Violation{
				Line:    lineNum,
				Column:  col,
				Code:    code,
				Message: message,
			})
			pending = ""
		}
	}
	return m, nil
}
