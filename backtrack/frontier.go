package backtrack

import "sort"

type frontierEntry struct {
	count int
	u     int
	cand  []int
}

// At most one entry exists per u, so EraseByU is unambiguous. Neither
// the retrieved corpus's bptree nor its SortedSet ever exhibit a
// remove/erase call, so this is a small sorted slice rather than a
// guess at an unobserved API.
type frontier struct {
	entries []frontierEntry
}

func newFrontier() *frontier {
	return &frontier{}
}

func less(a, b frontierEntry) bool {
	if a.count != b.count {
		return a.count < b.count
	}
	return a.u < b.u
}

func (f *frontier) Insert(e frontierEntry) {
	i := sort.Search(len(f.entries), func(i int) bool { return !less(f.entries[i], e) })
	f.entries = append(f.entries, frontierEntry{})
	copy(f.entries[i+1:], f.entries[i:])
	f.entries[i] = e
}

func (f *frontier) EraseByU(u int) {
	for i, e := range f.entries {
		if e.u == u {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}

func (f *frontier) PopMin() frontierEntry {
	e := f.entries[0]
	f.entries = f.entries[1:]
	return e
}

func (f *frontier) Empty() bool {
	return len(f.entries) == 0
}
