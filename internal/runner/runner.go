package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lucasnoah/lintgate/internal/violations"
)

// Result holds the outcome of one tool run: process info plus the parsed,
// normalized violations.
type Result struct {
	Tool       string          `json:"tool"`
	Format     string          `json:"format"`
	ExitCode   int             `json:"exit_code"`
	DurationMs int             `json:"duration_ms"`
	Violations *violations.Map `json:"violations"`

	// Stdout keeps the raw output so it can be archived next to the
	// parsed result.
	Stdout string `json:"-"`
}

// ToolConfig mirrors config.Tool with the fields the runner needs.
type ToolConfig struct {
	Name    string
	Command string
	Format  string
	Timeout time.Duration
}

// CommandRunner abstracts command execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, dir string, command string) (stdout string, stderr string, exitCode int, err error)
}

// ExecRunner implements CommandRunner by shelling out.
type ExecRunner struct{}

func (e *ExecRunner) Run(ctx context.Context, dir string, command string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return stdoutBuf.String(), stderrBuf.String(), -1, fmt.Errorf("exec: %w", err)
		}
	}
	return stdoutBuf.String(), stderrBuf.String(), exitCode, nil
}

// Runner executes lint tools and normalizes their output.
type Runner struct {
	cmd CommandRunner
}

// NewRunner creates a Runner with the given command runner.
func NewRunner(cmd CommandRunner) *Runner {
	return &Runner{cmd: cmd}
}

// Run executes one tool in dir and parses its stdout. The format key is
// resolved before the command runs, so a misconfigured format fails without
// spawning anything. Lint tools exit non-zero when they find issues; that is
// not an execution error, the violations themselves carry the verdict.
func (r *Runner) Run(ctx context.Context, dir string, cfg ToolConfig) (*Result, error) {
	parser, err := violations.Lookup(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("tool %q: %w", cfg.Name, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	stdout, _, exitCode, err := r.cmd.Run(ctx, dir, cfg.Command)
	durationMs := int(time.Since(start).Milliseconds())
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("tool %q: timeout after %s", cfg.Name, timeout)
		}
		return nil, fmt.Errorf("run tool %q: %w", cfg.Name, err)
	}

	vmap, err := parser.Parse(stdout, dir)
	if err != nil {
		return nil, fmt.Errorf("parse %q output: %w", cfg.Name, err)
	}

	return &Result{
		Tool:       cfg.Name,
		Format:     cfg.Format,
		ExitCode:   exitCode,
		DurationMs: durationMs,
		Violations: vmap,
		Stdout:     stdout,
	}, nil
}

// RunAll executes tools concurrently and returns results in input order.
// Parsers share no state, so the only coordination needed is the result
// slice; the first failure cancels the remaining runs.
func (r *Runner) RunAll(ctx context.Context, dir string, tools []ToolConfig) ([]*Result, error) {
	results := make([]*Result, len(tools))
	g, ctx := errgroup.WithContext(ctx)
	for i, cfg := range tools {
		i, cfg := i, cfg
		g.Go(func() error {
			res, err := r.Run(ctx, dir, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
