package publish

import (
	"context"
	"strings"

	"github.com/relpub/relpub/internal/interface/external/gitcli"
)

// capResult is a scripted Capture response.
type capResult struct {
	code int
	out  string
}

// gitCall records one Run invocation.
type gitCall struct {
	dir  string
	args string
	dry  bool
}

// fakeGit scripts git behavior for tests. Unscripted Capture calls exit 1
// with empty output, which reads as "ref does not exist" for tag probes.
type fakeGit struct {
	captures map[string]capResult
	failRun  map[string]int
	runCalls []gitCall
}

func newFakeGit() *fakeGit {
	return &fakeGit{
		captures: map[string]capResult{},
		failRun:  map[string]int{},
	}
}

// happyGit scripts a clean repository on main, synced with its remote and
// with no tags.
func happyGit() *fakeGit {
	f := newFakeGit()
	f.captures["rev-parse --show-toplevel"] = capResult{0, "/repo"}
	f.captures["rev-parse --abbrev-ref HEAD"] = capResult{0, "main"}
	f.captures["status --porcelain=v1"] = capResult{0, ""}
	f.captures["rev-parse main"] = capResult{0, "abc123"}
	f.captures["rev-parse origin/main"] = capResult{0, "abc123"}
	return f
}

func (f *fakeGit) Run(_ context.Context, dir string, dryRun bool, args ...string) error {
	line := strings.Join(args, " ")
	f.runCalls = append(f.runCalls, gitCall{dir: dir, args: line, dry: dryRun})
	if dryRun {
		return nil
	}
	if code, ok := f.failRun[line]; ok {
		return &gitcli.CommandError{Args: append([]string{"git"}, args...), ExitCode: code}
	}
	return nil
}

func (f *fakeGit) Capture(_ context.Context, _ string, args ...string) (int, string, error) {
	if r, ok := f.captures[strings.Join(args, " ")]; ok {
		return r.code, r.out, nil
	}
	return 1, "", nil
}

// executed returns the command lines of non-dry Run calls, in order.
func (f *fakeGit) executed() []string {
	var lines []string
	for _, c := range f.runCalls {
		if !c.dry {
			lines = append(lines, c.args)
		}
	}
	return lines
}

var _ gitcli.Runner = (*fakeGit)(nil)
