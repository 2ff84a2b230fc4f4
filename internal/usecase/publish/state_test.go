package publish

import (
	"testing"
)

// TestStateNext verifies the linear publish order
func TestStateNext(t *testing.T) {
	order := []State{
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
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i], got, order[i+1])
		}
	}
	if got := StateDone.Next(); got != StateDone {
		t.Errorf("StateDone.Next() = %s, want StateDone", got)
	}
}

// TestStateIsTerminal verifies only done terminates the machine
func TestStateIsTerminal(t *testing.T) {
	if !StateDone.IsTerminal() {
		t.Error("StateDone.IsTerminal() = false")
	}
	for _, s := range []State{StateStart, StateVerifyClean, StatePushTag} {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true, want false", s)
		}
	}
}

// TestStateMutating verifies the dry-run suppression set
func TestStateMutating(t *testing.T) {
	tests := []struct {
		state    State
		expected bool
	}{
		{StateStart, false},
		{StateResolveRoot, false},
		{StateVerifyBranch, false},
		{StateVerifyClean, false},
		{StateVerifySynced, false},
		{StateResolveTag, false},
		{StateMutateMetadata, true},
		{StateStageFiles, true},
		{StateCommit, true},
		{StatePush, true},
		{StateCreateTag, true},
		{StatePushTag, true},
		{StateDone, false},
	}
	for _, tt := range tests {
		if got := tt.state.Mutating(); got != tt.expected {
			t.Errorf("%s.Mutating() = %v, want %v", tt.state, got, tt.expected)
		}
	}
}
