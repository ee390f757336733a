// Package violations normalizes the output of third-party lint tools into a
// uniform mapping from repository-relative file path to the issues found in
// that file. Each supported output format has a stateless parser; callers
// pick one through a fixed format-key table and hand it the raw tool output.
package violations

// Violation is a single issue reported by a lint tool. All fields are always
// populated: formats that do not report a column use 0, and formats that do
// not report a line use 1.
type Violation struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
