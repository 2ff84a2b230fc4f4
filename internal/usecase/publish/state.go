package publish

// State identifies one step of the publish sequence. The machine is linear:
// each state transitions to the next only on success, and a failure is
// terminal for the run with no rollback of earlier states.
type State string

const (
	StateStart          State = "start"
	StateResolveRoot    State = "resolve-root"
	StateVerifyBranch   State = "verify-branch"
	StateVerifyClean    State = "verify-clean"
	StateVerifySynced   State = "verify-synced"
	StateResolveTag     State = "resolve-tag"
	StateMutateMetadata State = "mutate-metadata"
	StateStageFiles     State = "stage-files"
	StateCommit         State = "commit"
	StatePush           State = "push"
	StateCreateTag      State = "create-tag"
	StatePushTag        State = "push-tag"
	StateDone           State = "done"
)

// sequence is the publish order; Next walks it.
var sequence = []State{
	StateStart,
	StateResolveRoot,
	StateVerifyBranch,
	StateVerifyClean,
	StateVerifySynced,
	StateResolveTag,
	StateMutateMetadata,
	StateStageFiles,
	StateCommit,
	StatePush,
	StateCreateTag,
	StatePushTag,
	StateDone,
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// Next returns the state that follows s, or StateDone once the sequence is
// exhausted.
func (s State) Next() State {
	for i, st := range sequence {
		if st == s && i+1 < len(sequence) {
			return sequence[i+1]
		}
	}
	return StateDone
}

// IsTerminal reports whether the machine stops at s.
func (s State) IsTerminal() bool {
	return s == StateDone
}

// Mutating reports whether the state changes repository or metadata state.
// Dry-run mode replaces the action of every mutating state with a log line.
func (s State) Mutating() bool {
	switch s {
	case StateMutateMetadata, StateStageFiles, StateCommit, StatePush, StateCreateTag, StatePushTag:
		return true
	default:
		return false
	}
}
