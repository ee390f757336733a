package violations

import "errors"

// ErrUnknownFormat is returned when a format key does not match any entry in
// the parser table. This is a configuration problem and surfaces before any
// output is inspected.
var ErrUnknownFormat = errors.New("unrecognized lint output format")

// ErrMalformedOutput wraps structural failures: invalid JSON, a missing
// required field, or text that breaks the documented shape of a format.
// Parsers return it instead of a partial result, since partially parsed
// output cannot be trusted.
var ErrMalformedOutput = errors.New("malformed lint output")
