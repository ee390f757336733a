package violations

import "path/filepath"

// NormalizePath converts a path as printed by a lint tool (absolute or
// relative in any style) into a slash-separated path relative to
// workingRoot. Redundant "." and ".." segments are collapsed.
// This is pure path algebra: the path does not need to exist.
func NormalizePath(raw, workingRoot string) string {
	p := filepath.Clean(raw)
	if !filepath.IsAbs(p) {
		p = filepath.Join(workingRoot, p)
	}
	rel, err := filepath.Rel(workingRoot, p)
	if err != nil {
		// Mixed absolute/relative inputs that cannot be related; keep the
		// cleaned path rather than failing, since keys only need to be
		// consistent within one parse.
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
