package violations

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ESLint's default formatter groups violations under a file header:
//
//	/Users/grant/project/file1.js
//	    1:1  error  '$' is not defined  no-undef
//	✖ 1 problem
//
// Stylelint's default formatter is the same shape with a ✖ glyph inside each
// violation line and no closing summary:
//
//	static/sass/file1.scss
//	  13:1  ✖  Expected no more than 1 empty line   max-empty-lines
var (
	eslintViolationPattern = regexp.MustCompile(
		`^(?P<line>\d+):(?P<column>\d+)\s+(?:error|warning)\s+(?P<message>.*)\s+(?P<code>.+)$`)
	stylelintViolationPattern = regexp.MustCompile(
		`^(?P<line>\d+):(?P<column>\d+)\s+✖\s+(?P<message>.*)\s+(?P<code>.+)$`)
)

// indentedBlockParser handles header-plus-indented-lines formats. The two
// registered variants differ only in the violation grammar and in whether a
// terminator prefix exists; everything else is shared.
type indentedBlockParser struct {
	re         *regexp.Regexp
	terminator string // line prefix that ends parsing outright; "" means none

	line, column, code, message int
}

func newIndentedBlockParser(re *regexp.Regexp, terminator string) *indentedBlockParser {
	return &indentedBlockParser{
		re:         re,
		terminator: terminator,
		line:       re.SubexpIndex("line"),
		column:     re.SubexpIndex("column"),
		code:       re.SubexpIndex("code"),
		message:    re.SubexpIndex("message"),
	}
}

func (p *indentedBlockParser) Parse(output, workingRoot string) (*Map, error) {
	m := NewMap()

	// currentFile is scan-local state: the most recent header line, which
	// owns every indented violation line until the next header.
	currentFile := ""
	haveFile := false

	for _, raw := range strings.Split(strings.TrimSpace(output), "\n") {
		trimmed := strings.TrimSpace(raw)

		switch {
		case trimmed == "":
			continue

		case strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t"):
			groups := p.re.FindStringSubmatch(trimmed)
			if groups == nil {
				continue
			}
			if !haveFile {
				return nil, fmt.Errorf("%w: violation line before any file header: %q", ErrMalformedOutput, trimmed)
			}

			lineNum, err := strconv.Atoi(groups[p.line])
			if err != nil {
				return nil, fmt.Errorf("%w: line number %q in %q", ErrMalformedOutput, groups[p.line], trimmed)
			}
			col, err := strconv.Atoi(groups[p.column])
			if err != nil {
				return nil, fmt.Errorf("%w: column %q in %q", ErrMalformedOutput, groups[p.column], trimmed)
			}

			m.Add(currentFile, Violation{
				Line:    lineNum,
				Column:  col,
				Code:    strings.TrimSpace(groups[p.code]),
				Message: strings.TrimSpace(groups[p.message]),
			})

		case p.terminator != "" && strings.HasPrefix(raw, p.terminator):
			// Final summary line; everything after it is ignored.
			return m, nil

		default:
			currentFile = NormalizePath(trimmed, workingRoot)
			haveFile = true
			// A header with no violation lines still gets an entry.
			m.Touch(currentFile)
		}
	}
	return m, nil
}
