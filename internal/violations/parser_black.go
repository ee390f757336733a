package violations

import "strings"

// BlackParser parses `black --check` output. Black prints one
// "would reformat <path>" line per file that needs formatting and nothing
// structured beyond that, so each hit becomes a single synthetic violation
// at line 1, column 1. All other lines are noise and contribute nothing.
type BlackParser struct{}

const blackPrefix = "would reformat "

func (p *BlackParser) Parse(output, workingRoot string) (*Map, error) {
	m := NewMap()
	for _, raw := range strings.Split(strings.TrimSpace(output), "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, blackPrefix) {
			continue
		}
		fields := strings.Fields(line)
		path := NormalizePath(fields[len(fields)-1], workingRoot)
		m.Set(path, []Violation{{
			Line:    1,
			Column:  1,
			Code:    "`black`",
			Message: "this file needs to be formatted",
		}})
	}
	return m, nil
}
