package patches

import "fmt"

// RunState is how far a patch run got. Nothing on disk changes before
// StateBackedUp.
type RunState uint8

const (
	StateUnchecked RunState = iota
	StateAlreadyPatched
	StateResolving
	StateResolutionFailed
	StateLocating
	StateLocationFailed
	StateVerifying
	StateVerifyFailed
	StateBackedUp
	StateApplied
	StateWriteFailed
)

func (s RunState) String() string {
	switch s {
	case StateUnchecked:
		return "unchecked"
	case StateAlreadyPatched:
		return "already patched"
	case StateResolving:
		return "resolving"
	case StateResolutionFailed:
		return "resolution failed"
	case StateLocating:
		return "locating"
	case StateLocationFailed:
		return "location failed"
	case StateVerifying:
		return "verifying"
	case StateVerifyFailed:
		return "verify failed"
	case StateBackedUp:
		return "backed up"
	case StateApplied:
		return "applied"
	case StateWriteFailed:
		return "write failed"
	}
	return fmt.Sprintf("RunState(%d)", uint8(s))
}

// Succeeded reports whether the run ended with the file in patched form.
func (s RunState) Succeeded() bool {
	return s == StateApplied || s == StateAlreadyPatched
}
