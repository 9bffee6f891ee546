package models

import "time"

// Outcome is the operator's resolution for one duplicate pair.
type Outcome string

const (
	OutcomeDeleteBoth Outcome = "delete-both"
	OutcomeKeepBoth   Outcome = "keep-both"
	OutcomeKeepBetter Outcome = "keep-better"
	OutcomeAutoDecide Outcome = "auto-decide"
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeDeleteBoth, OutcomeKeepBoth, OutcomeKeepBetter, OutcomeAutoDecide:
		return true
	}
	return false
}

// Decision records the resolution of one duplicate pair. Decisions are
// append-only; they are never mutated or deleted once recorded.
type Decision struct {
	FilePathA string    `json:"file_path_a"`
	FilePathB string    `json:"file_path_b"`
	Outcome   Outcome   `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
	// Keep names the path chosen to survive, when the outcome implies one.
	Keep string `json:"keep,omitempty"`
	// Reason is an optional human-readable explanation (heuristic or advisor).
	Reason string `json:"reason,omitempty"`
}
