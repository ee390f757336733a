package violations

import (
	"fmt"
	"regexp"
	"sort"
)

// Parser turns one tool's raw output into a violation map. Implementations
// hold only their matching grammar and accumulate no state across calls, so
// a single instance may serve concurrent parses.
type Parser interface {
	Parse(output, workingRoot string) (*Map, error)
}

// defaultPattern matches the unix/flake8 style, e.g.
// docs/conf.py:230:1: E265 block comment should start with '# '
var defaultPattern = regexp.MustCompile(
	`^(?P<path>.*):(?P<line>\d+):(?P<column>\d+): (?P<code>\w\d+) (?P<message>.*)$`)

// eslintUnixPattern matches ESLint's unix formatter, e.g.
// static/js/scripts.js:69:1: 'lintly' is not defined. [Error/no-undef]
var eslintUnixPattern = regexp.MustCompile(
	`^(?P<path>.*):(?P<line>\d+):(?P<column>\d+): (?P<message>.+) \[(?:Warning|Error)/(?P<code>.+)\]$`)

var defaultParser = NewLineRegexParser(defaultPattern)

// parsers is the fixed format table. Keys are matched case-sensitively and
// the table is never mutated after init. "unix" and "flake8" alias the same
// instance; the other line-regex entry is a distinct instance with its own
// grammar.
var parsers = map[string]Parser{
	"unix":        defaultParser,
	"flake8":      defaultParser,
	"eslint":      newIndentedBlockParser(eslintViolationPattern, "✖"),
	"eslint-unix": NewLineRegexParser(eslintUnixPattern),
	"stylelint":   newIndentedBlockParser(stylelintViolationPattern, ""),
	"pylint-json": &PylintJSONParser{},
	"black":       &BlackParser{},
	"cfn-lint":    &CfnLintParser{},
	"bandit-json": &BanditJSONParser{},
	"cfn-nag":     &CfnNagParser{},
	"gitleaks":    &GitLeaksParser{},
	"hadolint":    &HadolintParser{},
}

// Lookup resolves a format key to its parser. Unknown keys are a
// configuration error, reported before any output parsing happens.
func Lookup(format string) (Parser, error) {
	p, ok := parsers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return p, nil
}

// Known reports whether format has a registered parser.
func Known(format string) bool {
	_, ok := parsers[format]
	return ok
}

// Formats returns all registered format keys, sorted.
func Formats() []string {
	keys := make([]string, 0, len(parsers))
	for k := range parsers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse resolves format and parses output against workingRoot in one step.
func Parse(format, output, workingRoot string) (*Map, error) {
	p, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return p.Parse(output, workingRoot)
}
