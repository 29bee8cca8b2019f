package model

// State is the upload session's lifecycle. Exactly one state holds at a time,
// which rules out combinations like "committing with no file chosen" that a
// pile of independent booleans would allow.
type State int

const (
	// StateIdle - no file chosen, nothing in flight
	StateIdle State = iota
	// StateAnalyzing - inspect request in flight
	StateAnalyzing
	// StateReady - inspected, waiting for the user to commit
	StateReady
	// StateCommitting - commit request in flight
	StateCommitting
	// StateDone - commit settled with a result (possibly with row errors)
	StateDone
	// StateFailed - inspect or commit failed, message available
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateReady:
		return "ready"
	case StateCommitting:
		return "committing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
