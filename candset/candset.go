package candset

type CandidateSet struct {
	cands [][]int
}

// New wraps an already-built per-query-vertex candidate table. The
// caller must not mutate cands afterward.
func New(cands [][]int) *CandidateSet {
	return &CandidateSet{cands: cands}
}

func (cs *CandidateSet) NumQueryVertices() int {
	return len(cs.cands)
}

func (cs *CandidateSet) Size(u int) int {
	return len(cs.cands[u])
}

func (cs *CandidateSet) At(u, i int) int {
	return cs.cands[u][i]
}

func (cs *CandidateSet) All(u int) []int {
	return cs.cands[u]
}
