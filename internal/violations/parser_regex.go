package violations

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// LineRegexParser matches each line of output independently against one
// pattern with named capture groups: path, line, column, code, message.
// Lines that do not match are skipped, which drops tool banners, blank
// lines and summary footers for free. Several formats are pure grammar
// instantiations of this type.
type LineRegexParser struct {
	re                                *regexp.Regexp
	path, line, column, code, message int
}

// NewLineRegexParser builds a parser around re, which must define the five
// named groups path, line, column, code and message.
func NewLineRegexParser(re *regexp.Regexp) *LineRegexParser {
	return &LineRegexParser{
		re:      re,
		path:    re.SubexpIndex("path"),
		line:    re.SubexpIndex("line"),
		column:  re.SubexpIndex("column"),
		code:    re.SubexpIndex("code"),
		message: re.SubexpIndex("message"),
	}
}

func (p *LineRegexParser) Parse(output, workingRoot string) (*Map, error) {
	m := NewMap()
	for _, raw := range strings.Split(strings.TrimSpace(output), "\n") {
		line := strings.TrimSpace(raw)
		groups := p.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}

		lineNum, err := strconv.Atoi(groups[p.line])
		if err != nil {
			return nil, fmt.Errorf("%w: line number %q in %q", ErrMalformedOutput, groups[p.line], line)
		}
		col, err := strconv.Atoi(groups[p.column])
		if err != nil {
			return nil, fmt.Errorf("%w: column %q in %q", ErrMalformedOutput, groups[p.column], line)
		}

		m.Add(NormalizePath(groups[p.path], workingRoot), Violation{
			Line:    lineNum,
			Column:  col,
			Code:    groups[p.code],
			Message: groups[p.message],
		})
	}
	return m, nil
}
