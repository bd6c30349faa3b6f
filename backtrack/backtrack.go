package backtrack

import (
	"github.com/timtadh/subiso/candset"
	"github.com/timtadh/subiso/dag"
	"github.com/timtadh/subiso/graph"
)

type Sink interface {
	WriteEmbedding(ids []int) error
}

// used is a plain map[int]bool, not data-structures/set.SortedSet:
// nothing in the retrieved corpus calls SortedSet.Remove, and this
// search removes from used on every backtrack step.
func Enumerate(data *graph.Graph, d *dag.DAG, cs *candset.CandidateSet, out Sink) error {
	n := d.NumVertices()
	if n == 0 {
		return nil
	}

	uAt := make([]int, n+1)
	candAt := make([][]int, n+1)
	idxAt := make([]int, n+1)
	vAt := make([]int, n+1)
	addedAt := make([][]int, n+1) // child query-vertex ids added to the frontier while processing this level
	poppedAt := make([]frontierEntry, n+1)
	justDescended := make([]bool, n+1)

	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}
	used := make(map[int]bool)
	fr := newFrontier()

	uAt[1] = d.Root()
	candAt[1] = filterCandidates(data, cs, d.Root(), nil, match, used)
	idxAt[1] = 0

	level := 1
	for level >= 1 {
		L := level
		u := uAt[L]

		if justDescended[L] {
			fr.Insert(poppedAt[L])
			delete(used, vAt[L])
			justDescended[L] = false
		}

		for _, c := range addedAt[L] {
			fr.EraseByU(c)
		}
		addedAt[L] = nil

		if idxAt[L] >= len(candAt[L]) {
			match[u] = -1
			level--
			if level == 0 {
				break
			}
			idxAt[level]++
			justDescended[level] = true
			continue
		}

		v := candAt[L][idxAt[L]]
		if used[v] {
			idxAt[L]++
			continue
		}

		match[u] = v
		used[v] = true
		addedAt[L] = nil

		if L == n {
			if err := out.WriteEmbedding(append([]int(nil), match...)); err != nil {
				return err
			}
		}

		deadEnd := false
		for _, c := range d.Children(u) {
			ready := true
			for _, p := range d.Parents(c) {
				if match[p] == -1 {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}
			cc := filterCandidates(data, cs, c, d.Parents(c), match, used)
			if len(cc) == 0 {
				deadEnd = true
				break
			}
			fr.Insert(frontierEntry{count: len(cc), u: c, cand: cc})
			addedAt[L] = append(addedAt[L], c)
		}

		if deadEnd {
			idxAt[L]++
			delete(used, v)
			continue
		}

		if fr.Empty() {
			idxAt[L]++
			delete(used, v)
			continue
		}

		p := fr.PopMin()
		poppedAt[L] = p
		vAt[L] = v
		uAt[L+1] = p.u
		candAt[L+1] = p.cand
		idxAt[L+1] = 0
		addedAt[L+1] = nil
		level++
	}

	return nil
}

// cand(c) = { w in CS(c) : w not in used, w a G-neighbor of match[p]
// for every DAG parent p of c }. parents is nil for the root.
func filterCandidates(data *graph.Graph, cs *candset.CandidateSet, c int, parents []int, match []int, used map[int]bool) []int {
	all := cs.All(c)
	out := make([]int, 0, len(all))
	for _, w := range all {
		if used[w] {
			continue
		}
		ok := true
		for _, p := range parents {
			if !data.IsNeighbor(match[p], w) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out
}
