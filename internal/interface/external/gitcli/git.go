// Package gitcli shells out to the git binary. The Runner interface is the
// only seam the release workflow uses to touch repository state, so tests
// drive the workflow against a fake without a real repository.
package gitcli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Runner executes git commands rooted at a repository directory. An empty
// dir runs in the process working directory (used only to resolve the root).
type Runner interface {
	// Run echoes the full command line, then executes it unless dryRun is
	// set. A non-zero exit is returned as *CommandError.
	Run(ctx context.Context, dir string, dryRun bool, args ...string) error

	// Capture executes silently and returns the exit code and trimmed
	// stdout. A non-zero exit is not an error here; callers branch on the
	// code.
	Capture(ctx context.Context, dir string, args ...string) (int, string, error)
}

// CommandError reports a git invocation that exited non-zero. The exact
// command line is kept so an operator can replay or undo it by hand.
type CommandError struct {
	Args     []string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed (%d): %s", e.ExitCode, FormatCommand(e.Args))
}

// FormatCommand renders a command line for logs, quoting arguments that
// contain spaces.
func FormatCommand(args []string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if strings.Contains(a, " ") {
			parts = append(parts, `"`+a+`"`)
		} else {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}

// CLI is the production Runner backed by os/exec.
type CLI struct {
	Bin     string
	Timeout time.Duration
	Stdout  io.Writer
	Stderr  io.Writer
}

func New() *CLI {
	return &CLI{
		Bin:     "git",
		Timeout: 120 * time.Second,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// command builds the argv including the binary and the -C dir prefix.
func (c *CLI) command(dir string, args []string) []string {
	argv := []string{c.Bin}
	if dir != "" {
		argv = append(argv, "-C", dir)
	}
	return append(argv, args...)
}

func (c *CLI) Run(ctx context.Context, dir string, dryRun bool, args ...string) error {
	argv := c.command(dir, args)
	fmt.Fprintf(c.Stdout, "› %s\n", FormatCommand(argv))
	if dryRun {
		return nil
	}

	cctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, argv[0], argv[1:]...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Args: argv, ExitCode: exitErr.ExitCode()}
	}
	return fmt.Errorf("failed to start %s: %w", FormatCommand(argv), err)
}

func (c *CLI) Capture(ctx context.Context, dir string, args ...string) (int, string, error) {
	argv := c.command(dir, args)

	cctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, argv[0], argv[1:]...)
	out, err := cmd.Output()
	if err == nil {
		return 0, strings.TrimSpace(string(out)), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), strings.TrimSpace(string(out)), nil
	}
	return -1, "", fmt.Errorf("failed to start %s: %w", FormatCommand(argv), err)
}
