package publish

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotARepository is returned when no enclosing git repository is found.
var ErrNotARepository = errors.New("not a git repository")

// InvalidVersionError reports a version string that does not match the
// accepted grammar. Stored marks the case where the already-recorded current
// version is the malformed one.
type InvalidVersionError struct {
	Version string
	Stored  bool
}

func (e *InvalidVersionError) Error() string {
	if e.Stored {
		return fmt.Sprintf("stored current version '%s' is invalid", e.Version)
	}
	return fmt.Sprintf("invalid version format: '%s'", e.Version)
}

// NotNewerError reports a candidate that does not supersede the recorded
// current version under the configured comparison policy.
type NotNewerError struct {
	Candidate string
	Current   string
}

func (e *NotNewerError) Error() string {
	return fmt.Sprintf(
		"input version %s must be newer than current version %s (numeric-first; final > prerelease if enabled)",
		e.Candidate, e.Current)
}

// WrongBranchError reports a publish attempted from the wrong branch.
type WrongBranchError struct {
	Want string
	Got  string
}

func (e *WrongBranchError) Error() string {
	return fmt.Sprintf("not on branch '%s' (current: '%s')", e.Want, e.Got)
}

// DirtyTreeError carries the uncommitted paths that block a publish.
type DirtyTreeError struct {
	Paths []string
}

func (e *DirtyTreeError) Error() string {
	return fmt.Sprintf("working tree not clean, commit or stash changes first:\n%s",
		strings.Join(e.Paths, "\n"))
}

// RemoteBranchMissingError reports a branch with no remote counterpart.
type RemoteBranchMissingError struct {
	Branch string
}

func (e *RemoteBranchMissingError) Error() string {
	return fmt.Sprintf("remote branch origin/%s not found, push or set upstream first", e.Branch)
}

// RemoteMismatchError reports diverged local and remote commits.
type RemoteMismatchError struct {
	Branch string
	Local  string
	Remote string
}

func (e *RemoteMismatchError) Error() string {
	return fmt.Sprintf("local %s (%s) differs from origin/%s (%s), pull/rebase first",
		e.Branch, e.Local, e.Branch, e.Remote)
}

// TagExistsError reports a tag collision, including near-duplicates found by
// the cross-check of prefixed and bare forms.
type TagExistsError struct {
	Tag string
}

func (e *TagExistsError) Error() string {
	return fmt.Sprintf("tag '%s' already exists", e.Tag)
}
