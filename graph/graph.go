package graph

import "sort"

// UnseenLabel is the sentinel for a label that never occurs on any
// data-graph vertex.
const UnseenLabel = -1

type bucket struct {
	begin, end int
}

// neighbors is sorted, per vertex, by (label asc, degree desc, id asc);
// this order is contractual (see IsNeighbor, and the DAG builder's
// child ordering). byID mirrors the same per-vertex bucket boundaries
// but with each bucket internally sorted by id, giving IsNeighbor a
// true binary-searchable array without disturbing the contractual
// iteration order in neighbors.
type Graph struct {
	n         int
	m         int
	label     []int
	offsets   []int // len n+1, indexes into neighbors/byID
	neighbors []int // len 2m, ordered (label asc, degree desc, id asc) per vertex
	byID      []int // len 2m, same bucket boundaries, id-ascending within each bucket
	buckets   []map[int]bucket
}

func (g *Graph) N() int { return g.n }

func (g *Graph) M() int { return g.m }

func (g *Graph) Degree(v int) int {
	return g.offsets[v+1] - g.offsets[v]
}

func (g *Graph) Label(v int) int {
	return g.label[v]
}

// Neighbors returns the full neighbor slice of v, ordered
// (label asc, degree desc, id asc). Callers must not mutate it.
func (g *Graph) Neighbors(v int) []int {
	return g.neighbors[g.offsets[v]:g.offsets[v+1]]
}

// NeighborsByLabel returns the sub-slice of Neighbors(v) whose label is
// l. Returns an empty (non-nil) slice if v has no neighbor labeled l.
func (g *Graph) NeighborsByLabel(v, l int) []int {
	b, ok := g.buckets[v][l]
	if !ok {
		return g.neighbors[g.offsets[v]:g.offsets[v]]
	}
	return g.neighbors[b.begin:b.end]
}

// IsNeighbor binary searches inside u's label(v) bucket of the
// id-sorted mirror array, rather than scanning neighbors directly.
func (g *Graph) IsNeighbor(u, v int) bool {
	b, ok := g.buckets[u][g.label[v]]
	if !ok {
		return false
	}
	sub := g.byID[b.begin:b.end]
	i := sort.SearchInts(sub, v)
	return i < len(sub) && sub[i] == v
}

func build(n int, label []int, adj [][]int) *Graph {
	g := &Graph{
		n:       n,
		label:   append([]int(nil), label...),
		offsets: make([]int, n+1),
		buckets: make([]map[int]bucket, n),
	}
	total := 0
	for v := 0; v < n; v++ {
		g.offsets[v] = total
		total += len(adj[v])
	}
	g.offsets[n] = total
	g.m = total / 2
	g.neighbors = make([]int, total)
	g.byID = make([]int, total)

	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = len(adj[v])
	}

	for v := 0; v < n; v++ {
		nbrs := append([]int(nil), adj[v]...)
		sort.Slice(nbrs, func(i, j int) bool {
			a, b := nbrs[i], nbrs[j]
			if g.label[a] != g.label[b] {
				return g.label[a] < g.label[b]
			}
			if degree[a] != degree[b] {
				return degree[a] > degree[b]
			}
			return a < b
		})
		off := g.offsets[v]
		copy(g.neighbors[off:g.offsets[v+1]], nbrs)

		g.buckets[v] = make(map[int]bucket)
		start := off
		for i := 0; i < len(nbrs); i++ {
			if i > 0 && g.label[nbrs[i]] != g.label[nbrs[i-1]] {
				g.buckets[v][g.label[nbrs[i-1]]] = bucket{start, off + i}
				start = off + i
			}
		}
		if len(nbrs) > 0 {
			g.buckets[v][g.label[nbrs[len(nbrs)-1]]] = bucket{start, off + len(nbrs)}
		}

		for _, b := range g.buckets[v] {
			sub := append([]int(nil), g.neighbors[b.begin:b.end]...)
			sort.Ints(sub)
			copy(g.byID[b.begin:b.end], sub)
		}
	}
	return g
}
