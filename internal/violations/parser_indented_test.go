package violations

import (
	"errors"
	"testing"
)

func TestESLintParser_Block(t *testing.T) {
	out := `src/file1.js
  1:1  error  '$' is not defined  no-undef
  3:10  warning  Unexpected console statement  no-console

src/file2.js
  2:5  error  Missing semicolon  semi

✖ 3 problems (2 errors, 1 warning)
`
	m, err := Parse("eslint", out, ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	paths := m.Paths()
	if len(paths) != 2 || paths[0] != "src/file1.js" || paths[1] != "src/file2.js" {
		t.Fatalf("unexpected paths: %v", paths)
	}

	vs := m.Get("src/file1.js")
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations for file1, got %d", len(vs))
	}
	if vs[0].Line != 1 || vs[0].Column != 1 {
		t.Errorf("unexpected position: %d:%d", vs[0].Line, vs[0].Column)
	}
	if vs[0].Code != "no-undef" {
		t.Errorf("expected code=no-undef, got %q", vs[0].Code)
	}
	if vs[0].Message != "'$' is not defined" {
		t.Errorf("unexpected message: %q", vs[0].Message)
	}
	if vs[1].Code != "no-console" {
		t.Errorf("expected code=no-console, got %q", vs[1].Code)
	}
}

func TestESLintParser_TerminatorStopsParsing(t *testing.T) {
	base := "file.js\n  1:1 error msg rule\n✖ 1 problem\n"
	withGarbage := base + "extra garbage\n"

	want, err := Parse("eslint", base, ".")
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}
	got, err := Parse("eslint", withGarbage, ".")
	if err != nil {
		t.Fatalf("parse with garbage: %v", err)
	}

	if got.Len() != want.Len() || got.Len() != 1 {
		t.Fatalf("expected identical single-path results, got %v vs %v", got.Paths(), want.Paths())
	}
	if len(got.Get("file.js")) != 1 {
		t.Errorf("expected 1 violation, got %d", len(got.Get("file.js")))
	}
}

func TestESLintParser_HeaderWithoutViolations(t *testing.T) {
	m, err := Parse("eslint", "clean.js\n", ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !m.Has("clean.js") {
		t.Fatal("expected entry for header with no violations")
	}
	if len(m.Get("clean.js")) != 0 {
		t.Errorf("expected empty list, got %v", m.Get("clean.js"))
	}
}

func TestESLintParser_ViolationBeforeHeader(t *testing.T) {
	_, err := Parse("eslint", "  1:1  error  dangling  no-undef\n", ".")
	if err == nil {
		t.Fatal("expected error for violation line before any header")
	}
	if !errors.Is(err, ErrMalformedOutput) {
		t.Errorf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestESLintParser_BlankLinesBetweenBlocks(t *testing.T) {
	out := "a.js\n  1:1  error  x  r1\n\n\nb.js\n  2:2  error  y  r2\n"
	m, err := Parse("eslint", out, ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("blank lines must not create entries, got %v", m.Paths())
	}
}

func TestStylelintParser_Block(t *testing.T) {
	out := `lintly/static/sass/file1.scss
  13:1  ✖  Expected no more than 1 empty line   max-empty-lines
  17:3  ✖  Expected indentation of 2 spaces   indentation
`
	m, err := Parse("stylelint", out, ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	vs := m.Get("lintly/static/sass/file1.scss")
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(vs))
	}
	if vs[0].Line != 13 || vs[0].Column != 1 {
		t.Errorf("unexpected position: %d:%d", vs[0].Line, vs[0].Column)
	}
	if vs[0].Code != "max-empty-lines" {
		t.Errorf("expected code=max-empty-lines, got %q", vs[0].Code)
	}
	if vs[0].Message != "Expected no more than 1 empty line" {
		t.Errorf("unexpected message: %q", vs[0].Message)
	}
}

func TestStylelintParser_NoTerminator(t *testing.T) {
	// Stylelint has no summary glyph; a ✖ inside a violation line must not
	// end the scan.
	out := "a.scss\n  1:1  ✖  first issue   rule-a\nb.scss\n  2:2  ✖  second issue   rule-b\n"
	m, err := Parse("stylelint", out, ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 paths, got %v", m.Paths())
	}
	if len(m.Get("b.scss")) != 1 {
		t.Errorf("expected violation for b.scss, got %v", m.Get("b.scss"))
	}
}

func TestIndentedBlockParsers_EmptyInput(t *testing.T) {
	for _, format := range []string{"eslint", "stylelint"} {
		m, err := Parse(format, "", ".")
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if m.Len() != 0 {
			t.Errorf("%s: expected empty map, got %v", format, m.Paths())
		}
	}
}
