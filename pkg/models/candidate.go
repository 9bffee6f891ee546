package models

import (
	"time"
)

// FileCandidate is a file discovered during enumeration that passed all
// filters and the size limit. Candidates are immutable once created.
type FileCandidate struct {
	Path    string    `json:"path"`     // Full file path
	Size    int64     `json:"size"`     // File size in bytes at stat time
	ModTime time.Time `json:"mod_time"` // Modification time
}

// Digest is a hex-encoded content hash. It is not unique across candidates;
// two candidates sharing a digest are duplicates of each other.
type Digest string
