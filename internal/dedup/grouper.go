// Package dedup aggregates hashed candidates into duplicate groups.
package dedup

import (
	"sort"

	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// Grouper maintains a digest-to-candidates map fed incrementally as files
// are hashed. It is not safe for concurrent use; the scan session is the
// single writer.
type Grouper struct {
	byDigest map[models.Digest][]models.FileCandidate
}

// NewGrouper creates an empty grouper
func NewGrouper() *Grouper {
	return &Grouper{
		byDigest: make(map[models.Digest][]models.FileCandidate),
	}
}

// Add records one hashed candidate.
func (g *Grouper) Add(candidate models.FileCandidate, digest models.Digest) {
	g.byDigest[digest] = append(g.byDigest[digest], candidate)
}

// Reset discards all accumulated state.
func (g *Grouper) Reset() {
	g.byDigest = make(map[models.Digest][]models.FileCandidate)
}

// Finalize produces the duplicate groups: only digests with two or more
// members survive, members are sorted by path ascending, and groups are
// ordered by wasted space descending. Ordering is a contract, not an
// accident of map iteration.
func (g *Grouper) Finalize() []models.DuplicateGroup {
	groups := make([]models.DuplicateGroup, 0)

	for digest, members := range g.byDigest {
		if len(members) < 2 {
			continue
		}

		sorted := append([]models.FileCandidate(nil), members...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Path < sorted[j].Path
		})

		var wasted int64
		for _, m := range sorted[1:] {
			wasted += m.Size
		}

		groups = append(groups, models.DuplicateGroup{
			Digest:      digest,
			Members:     sorted,
			WastedSpace: wasted,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].WastedSpace != groups[j].WastedSpace {
			return groups[i].WastedSpace > groups[j].WastedSpace
		}
		// Deterministic tie-break
		return groups[i].Digest < groups[j].Digest
	})

	return groups
}
