package models

// DuplicateGroup is a set of two or more candidates sharing one digest.
// Members are sorted by path ascending, which gives deterministic
// "keep first" semantics. WastedSpace is the total size of every member
// except the first; deleting all but one copy recovers that many bytes.
type DuplicateGroup struct {
	Digest      Digest          `json:"digest"`
	Members     []FileCandidate `json:"members"`
	WastedSpace int64           `json:"wasted_space"`
}

// Count returns the number of members in the group.
func (g *DuplicateGroup) Count() int {
	return len(g.Members)
}
