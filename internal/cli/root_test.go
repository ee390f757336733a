package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersion("test-version")
	out, err := executeCommand("version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "test-version") {
		t.Errorf("expected version output to contain 'test-version', got: %s", out)
	}
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedSubcommands := []string{
		"parse", "formats", "run", "history", "show", "config", "db", "version",
	}
	for _, sub := range expectedSubcommands {
		if !strings.Contains(out, sub) {
			t.Errorf("help output missing subcommand %q", sub)
		}
	}
}

func TestFormatsCommand(t *testing.T) {
	out, err := executeCommand("formats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, format := range []string{"flake8", "eslint", "pylint-json", "black", "hadolint"} {
		if !strings.Contains(out, format) {
			t.Errorf("formats output missing %q", format)
		}
	}
}

func TestParseCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flake8.txt")
	content := "app.py:3:1: E302 expected 2 blank lines, got 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := executeCommand("parse", "flake8", path, "--root", filepath.Dir(path), "--output", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"code": "E302"`) {
		t.Errorf("expected normalized violation in output, got: %s", out)
	}
	if !strings.Contains(out, `"app.py"`) {
		t.Errorf("expected path key in output, got: %s", out)
	}
}

func TestParseCommand_TextOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eslint.txt")
	content := "src/file1.js\n  1:1  error  '$' is not defined  no-undef\n✖ 1 problem\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := executeCommand("parse", "eslint", path, "--root", filepath.Dir(path), "--output", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1 violations in 1 files") {
		t.Errorf("expected summary line, got: %s", out)
	}
	if !strings.Contains(out, "no-undef") {
		t.Errorf("expected rule code in output, got: %s", out)
	}
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	_, err := executeCommand("parse", "not-a-format", "-")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unrecognized lint output format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	_, err := executeCommand("nonexistent")
	if err == nil {
		t.Error("expected error for unknown command, got nil")
	}
}
