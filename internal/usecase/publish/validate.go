package publish

import (
	"github.com/relpub/relpub/internal/domain/version"
)

// ValidateCandidate is the entry precondition checked before the publish
// machine starts. It verifies the candidate matches the version grammar and,
// when a current version is recorded, that the candidate supersedes it under
// the configured comparison policy. An empty current means first release.
func ValidateCandidate(candidate, current string, allowEqualFinal bool) error {
	if !version.IsValid(candidate) {
		return &InvalidVersionError{Version: candidate}
	}
	if current == "" {
		return nil
	}
	if _, ok := version.Parse(current); !ok {
		return &InvalidVersionError{Version: current, Stored: true}
	}
	if !version.IsNewer(candidate, current, allowEqualFinal) {
		return &NotNewerError{Candidate: candidate, Current: current}
	}
	return nil
}
