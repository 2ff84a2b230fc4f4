package release

import "fmt"

// DuplicateVersionError indicates the version already exists in the release
// history. Publishing must never rewrite or shadow a past release.
type DuplicateVersionError struct {
	Version string
	Path    string
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("version '%s' already exists in %s", e.Version, e.Path)
}
