package violations

import (
	"errors"
	"testing"
)

func TestCfnLintParser(t *testing.T) {
	out := `W2001 Parameter UnusedParameter not used.
template.yaml:2:9
E3012 Property Resources/Bucket/Properties/Tags should be of type List
template.yaml:14:3
`
	m, err := Parse("cfn-lint", out, ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	vs := m.Get("template.yaml")
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(vs))
	}
	if vs[0].Line != 2 || vs[0].Column != 9 {
		t.Errorf("unexpected position: %d:%d", vs[0].Line, vs[0].Column)
	}
	if vs[0].Code != "W2001" {
		t.Errorf("unexpected code: %q", vs[0].Code)
	}
	if vs[0].Message != "Parameter UnusedParameter not used." {
		t.Errorf("unexpected message: %q", vs[0].Message)
	}
	if vs[1].Code != "E3012" {
		t.Errorf("unexpected code: %q", vs[1].Code)
	}
}

func TestCfnLintParser_IgnoresLeadingNoise(t *testing.T) {
	out := "cfn-lint 0.44.0\nW2001 Parameter X not used.\ntemplate.yaml:2:9\n"
	m, err := Parse("cfn-lint", out, ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Total() != 1 {
		t.Errorf("expected 1 violation, got %d", m.Total())
	}
}

func TestCfnLintParser_BadLocationLine(t *testing.T) {
	out := "W2001 Parameter X not used.\nnot a location line\n"
	_, err := Parse("cfn-lint", out, ".")
	if !errors.Is(err, ErrMalformedOutput) {
		t.Errorf("expected ErrMalformedOutput, got %v", err)
	}
}

func TestCfnLintParser_EmptyInput(t *testing.T) {
	m, err := Parse("cfn-lint", "", ".")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty map, got %v", m.Paths())
	}
}
