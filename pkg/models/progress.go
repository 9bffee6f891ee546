package models

// Phase is the lifecycle state of a scan session.
type Phase string

const (
	PhaseIdle       Phase = "idle"       // no work started
	PhaseScanning   Phase = "scanning"   // enumerator walking the tree
	PhaseProcessing Phase = "processing" // batches being hashed
	PhasePaused     Phase = "paused"     // suspended between batches
	PhaseComplete   Phase = "complete"   // all batches processed, groups final
	PhaseError      Phase = "error"      // fatal failure, restart required
)

// ScanProgress is a snapshot of scan state. Counters are monotonically
// increasing within one scan and only reset on an explicit restart.
type ScanProgress struct {
	Phase          Phase  `json:"phase"`
	FoundCount     int    `json:"found_count"`     // candidates accepted by the filter
	SkippedCount   int    `json:"skipped_count"`   // entries excluded, oversized or unreadable
	ProcessedCount int    `json:"processed_count"` // candidates hashed so far
	CurrentPath    string `json:"current_path,omitempty"`
	Error          string `json:"error,omitempty"` // set when Phase is PhaseError
}
