package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relpub/relpub/internal/domain/version"
	"github.com/relpub/relpub/internal/interface/external/gitcli"
)

// Guard runs the read-only precondition checks against repository state.
// Every check queries git freshly so later checks observe the effects of
// earlier steps; nothing is cached between calls.
type Guard struct {
	Git gitcli.Runner
}

// RepoRoot resolves the top-level working directory. The returned root is
// threaded through every subsequent git call instead of changing the process
// working directory.
func (g *Guard) RepoRoot(ctx context.Context) (string, error) {
	code, out, err := g.Git.Capture(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	if code != 0 || out == "" {
		return "", ErrNotARepository
	}
	return out, nil
}

// OnBranch fails unless the checked-out branch matches want.
func (g *Guard) OnBranch(ctx context.Context, root, want string) error {
	code, out, err := g.Git.Capture(ctx, root, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.New("failed to get current branch")
	}
	if out != want {
		return &WrongBranchError{Want: want, Got: out}
	}
	return nil
}

// WorkingTreeClean fails when any uncommitted changes exist; the error
// carries the changed paths.
func (g *Guard) WorkingTreeClean(ctx context.Context, root string) error {
	code, out, err := g.Git.Capture(ctx, root, "status", "--porcelain=v1")
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.New("failed to read git status")
	}
	if out != "" {
		return &DirtyTreeError{Paths: strings.Split(out, "\n")}
	}
	return nil
}

// RemoteSynced fetches and then fails unless local and remote commits for
// branch are identical. The fetch is skipped (but echoed) in dry-run mode.
func (g *Guard) RemoteSynced(ctx context.Context, root, branch string, dryRun bool) error {
	if err := g.Git.Run(ctx, root, dryRun, "fetch", "origin", "--quiet"); err != nil {
		return err
	}
	code, local, err := g.Git.Capture(ctx, root, "rev-parse", branch)
	if err != nil {
		return err
	}
	if code != 0 || local == "" {
		return fmt.Errorf("failed to resolve local %s", branch)
	}
	code, remote, err := g.Git.Capture(ctx, root, "rev-parse", "origin/"+branch)
	if err != nil {
		return err
	}
	if code != 0 || remote == "" {
		return &RemoteBranchMissingError{Branch: branch}
	}
	if local != remote {
		return &RemoteMismatchError{Branch: branch, Local: local, Remote: remote}
	}
	return nil
}

// TagAvailable resolves the tag the publish will create and fails if it, the
// bare numeric core, or the v-prefixed core already exists. The cross-check
// keeps near-duplicate tags (1.2.3 vs v1.2.3 vs a prefixed form) from
// coexisting.
func (g *Guard) TagAvailable(ctx context.Context, root, ver, tagPrefix string, dryRun bool) (string, error) {
	if err := g.Git.Run(ctx, root, dryRun, "fetch", "--tags", "--quiet"); err != nil {
		return "", err
	}

	core := version.Core(ver)
	var tag string
	switch {
	case tagPrefix != "":
		tag = tagPrefix + core
	case strings.HasPrefix(ver, "v") || strings.HasPrefix(ver, "V"):
		// No prefix configured: keep an explicit v1.2.3 input literally.
		tag = ver
	default:
		tag = core
	}

	seen := map[string]bool{}
	for _, candidate := range []string{tag, core, "v" + core} {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		exists, err := g.tagExists(ctx, root, candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return "", &TagExistsError{Tag: candidate}
		}
	}
	return tag, nil
}

func (g *Guard) tagExists(ctx context.Context, root, tag string) (bool, error) {
	code, _, err := g.Git.Capture(ctx, root, "rev-parse", "-q", "--verify", "refs/tags/"+tag)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}
