package config

import (
	"fmt"
	"time"

	"github.com/lucasnoah/lintgate/internal/violations"
)

// ValidationError represents a single validation issue with a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a Config for structural and semantic errors. It returns a
// slice of all validation errors found (empty if valid). Format keys are
// checked against the parser table up front so a bad key fails here, long
// before any tool output is parsed.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError
	l := cfg.Lint

	if l.Name == "" {
		errs = append(errs, ValidationError{Field: "lint.name", Message: "is required"})
	}
	if len(l.Tools) == 0 {
		errs = append(errs, ValidationError{Field: "lint.tools", Message: "at least one tool is required"})
	}

	if l.Defaults.Timeout != "" {
		if _, err := time.ParseDuration(l.Defaults.Timeout); err != nil {
			errs = append(errs, ValidationError{
				Field:   "lint.defaults.timeout",
				Message: fmt.Sprintf("invalid duration %q", l.Defaults.Timeout),
			})
		}
	}

	for name, tool := range l.Tools {
		prefix := fmt.Sprintf("lint.tools.%s", name)

		if tool.Command == "" {
			errs = append(errs, ValidationError{Field: prefix + ".command", Message: "is required"})
		}
		if tool.Format == "" {
			errs = append(errs, ValidationError{Field: prefix + ".format", Message: "is required"})
		} else if !violations.Known(tool.Format) {
			errs = append(errs, ValidationError{
				Field:   prefix + ".format",
				Message: fmt.Sprintf("unrecognized format %q (known: %v)", tool.Format, violations.Formats()),
			})
		}
		if tool.Timeout != "" {
			if _, err := time.ParseDuration(tool.Timeout); err != nil {
				errs = append(errs, ValidationError{
					Field:   prefix + ".timeout",
					Message: fmt.Sprintf("invalid duration %q", tool.Timeout),
				})
			}
		}
	}

	return errs
}
