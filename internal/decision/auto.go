package decision

import (
	"strings"

	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// Path fragments that mark a copy as a likely leftover.
var stalePathMarkers = []string{"backup", "old", "copy", "tmp", "archive"}

// PickBest chooses which of two duplicate candidates should survive when
// the operator asks for an automatic decision. Copies outside backup-ish
// directories win, then the more recently modified copy, then the larger
// one, then the shorter path.
func PickBest(a, b models.FileCandidate) (keep models.FileCandidate, reason string) {
	scoreA, scoreB := scoreCandidate(a), scoreCandidate(b)

	switch {
	case scoreA > scoreB:
		return a, "cleaner path"
	case scoreB > scoreA:
		return b, "cleaner path"
	}

	if !a.ModTime.Equal(b.ModTime) {
		if a.ModTime.After(b.ModTime) {
			return a, "more recently modified"
		}
		return b, "more recently modified"
	}

	if a.Size != b.Size {
		if a.Size > b.Size {
			return a, "larger copy"
		}
		return b, "larger copy"
	}

	if len(a.Path) <= len(b.Path) {
		return a, "shorter path"
	}
	return b, "shorter path"
}

// scoreCandidate scores a path by how likely it is to be the canonical copy.
func scoreCandidate(c models.FileCandidate) int {
	score := 0
	lower := strings.ToLower(c.Path)

	stale := false
	for _, marker := range stalePathMarkers {
		if strings.Contains(lower, marker) {
			stale = true
			break
		}
	}
	if !stale {
		score += 1000
	}

	return score
}
