// Package store archives raw tool output and parsed results on disk so a
// run can be inspected after the fact without re-running the tool.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lucasnoah/lintgate/internal/runner"
)

// Store manages run artifacts on disk.
type Store struct {
	baseDir string // defaults to ~/.lintgate/runs
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// DefaultStore returns a Store at ~/.lintgate/runs, creating the directory
// if needed.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(home, ".lintgate", "runs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Store{baseDir: dir}, nil
}

// BaseDir returns the store's root directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// runDir returns the directory for one recorded run.
func (s *Store) runDir(runID int64, tool string) string {
	return filepath.Join(s.baseDir, strconv.FormatInt(runID, 10), tool)
}

// SaveRun writes the raw stdout and the parsed result for a run.
func (s *Store) SaveRun(runID int64, res *runner.Result) error {
	dir := s.runDir(runID, res.Tool)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir run dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "stdout.txt"), []byte(res.Stdout), 0o644); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return WriteJSON(filepath.Join(dir, "result.json"), res)
}

// ReadResult reads the parsed result for a run back from disk.
func (s *Store) ReadResult(runID int64, tool string) (*runner.Result, error) {
	var res runner.Result
	path := filepath.Join(s.runDir(runID, tool), "result.json")
	if err := ReadJSON(path, &res); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run %d has no stored result for %q", runID, tool)
		}
		return nil, err
	}
	return &res, nil
}
