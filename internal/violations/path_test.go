package violations

import "testing"

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		root string
		want string
	}{
		{"already relative", "docs/conf.py", "/repo", "docs/conf.py"},
		{"dot prefix", "./docs/conf.py", "/repo", "docs/conf.py"},
		{"absolute under root", "/repo/src/app.js", "/repo", "src/app.js"},
		{"redundant segments", "/repo/src/../app.js", "/repo", "app.js"},
		{"inner dot segments", "src/./a/../app.js", "/repo", "src/app.js"},
		{"outside root", "/other/app.js", "/repo", "../other/app.js"},
		{"relative root", "src/app.js", ".", "src/app.js"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePath(tc.raw, tc.root)
			if got != tc.want {
				t.Errorf("NormalizePath(%q, %q) = %q, want %q", tc.raw, tc.root, got, tc.want)
			}
		})
	}
}

func TestNormalizePath_Idempotent(t *testing.T) {
	paths := []string{"docs/conf.py", "src/app.js", "../outside/x.py"}
	for _, p := range paths {
		once := NormalizePath(p, "/repo")
		twice := NormalizePath(once, "/repo")
		if once != twice {
			t.Errorf("normalizing %q twice changed it: %q -> %q", p, once, twice)
		}
	}
}
