package dag

import "math"

import "github.com/timtadh/data-structures/errors"

import (
	"github.com/timtadh/subiso/candset"
	"github.com/timtadh/subiso/graph"
)

// eps keeps |CS|/(deg+eps) finite when a vertex has no remaining
// unvisited neighbors.
const eps = 1e-6

type bucket struct {
	begin, end int
}

type DAG struct {
	root int
	n    int

	childOffsets []int
	children     []int
	childBuckets []map[int]bucket

	parentOffsets []int
	parents       []int
}

func (d *DAG) Root() int { return d.root }

func (d *DAG) NumVertices() int { return d.n }

// Children returns the DAG children of u, sorted by
// (label asc, query-degree desc, id asc).
func (d *DAG) Children(u int) []int {
	return d.children[d.childOffsets[u]:d.childOffsets[u+1]]
}

func (d *DAG) ChildrenByLabel(u, l int) []int {
	b, ok := d.childBuckets[u][l]
	if !ok {
		return d.children[d.childOffsets[u]:d.childOffsets[u]]
	}
	return d.children[b.begin:b.end]
}

func (d *DAG) Parents(u int) []int {
	return d.parents[d.parentOffsets[u]:d.parentOffsets[u+1]]
}

func Build(query *graph.Graph, cs *candset.CandidateSet) (*DAG, error) {
	n := query.N()
	if n == 0 {
		return &DAG{root: 0, n: 0, childOffsets: []int{0}, parentOffsets: []int{0}}, nil
	}

	root := selectRoot(query, cs)

	visited := make([]bool, n)
	degRemaining := make([]int, n)
	for v := 0; v < n; v++ {
		degRemaining[v] = query.Degree(v)
	}

	childrenOf := make([][]int, n)
	parentsOf := make([][]int, n)

	order := make([]int, 0, n)
	visit := func(v int) {
		visited[v] = true
		order = append(order, v)
		for _, u := range query.Neighbors(v) {
			if visited[u] && u != v {
				parentsOf[v] = append(parentsOf[v], u)
				childrenOf[u] = append(childrenOf[u], v)
			}
		}
		for _, u := range query.Neighbors(v) {
			if !visited[u] {
				degRemaining[u]--
			}
		}
	}
	visit(root)

	for len(order) < n {
		best := -1
		bestScore := math.Inf(1)
		for v := 0; v < n; v++ {
			if visited[v] || degRemaining[v] == query.Degree(v) {
				continue
			}
			score := float64(cs.Size(v)) / (float64(degRemaining[v]) + eps)
			if best == -1 || score <= bestScore {
				best = v
				bestScore = score
			}
		}
		if best == -1 {
			// Disconnected query: resume from the lowest unvisited id
			// as a fresh component rather than leaving the DAG's CSR
			// arrays short a vertex.
			for v := 0; v < n; v++ {
				if !visited[v] {
					best = v
					break
				}
			}
			errors.Logf("WARN", "dag: query is disconnected, resuming orientation at %v with no parent", best)
		}
		visit(best)
	}

	return assemble(root, n, query, childrenOf, parentsOf), nil
}

func selectRoot(query *graph.Graph, cs *candset.CandidateSet) int {
	root := 0
	bestScore := math.Inf(1)
	for v := 0; v < query.N(); v++ {
		deg := query.Degree(v)
		var score float64
		if deg > 0 {
			score = float64(cs.Size(v)) / float64(deg)
		} else {
			score = float64(cs.Size(v))
		}
		if score < bestScore {
			bestScore = score
			root = v
		}
	}
	return root
}

func assemble(root, n int, query *graph.Graph, childrenOf, parentsOf [][]int) *DAG {
	d := &DAG{
		root:          root,
		n:             n,
		childOffsets:  make([]int, n+1),
		parentOffsets: make([]int, n+1),
		childBuckets:  make([]map[int]bucket, n),
	}

	total := 0
	for u := 0; u < n; u++ {
		d.childOffsets[u] = total
		total += len(childrenOf[u])
	}
	d.childOffsets[n] = total
	d.children = make([]int, total)

	ptotal := 0
	for u := 0; u < n; u++ {
		d.parentOffsets[u] = ptotal
		ptotal += len(parentsOf[u])
	}
	d.parentOffsets[n] = ptotal
	d.parents = make([]int, ptotal)

	for u := 0; u < n; u++ {
		copy(d.parents[d.parentOffsets[u]:d.parentOffsets[u+1]], parentsOf[u])

		kids := append([]int(nil), childrenOf[u]...)
		sortChildren(kids, query)
		off := d.childOffsets[u]
		copy(d.children[off:d.childOffsets[u+1]], kids)

		d.childBuckets[u] = make(map[int]bucket)
		start := off
		for i := range kids {
			if i > 0 && query.Label(kids[i]) != query.Label(kids[i-1]) {
				d.childBuckets[u][query.Label(kids[i-1])] = bucket{start, off + i}
				start = off + i
			}
		}
		if len(kids) > 0 {
			d.childBuckets[u][query.Label(kids[len(kids)-1])] = bucket{start, off + len(kids)}
		}
	}
	return d
}

func sortChildren(kids []int, query *graph.Graph) {
	less := func(i, j int) bool {
		a, b := kids[i], kids[j]
		if query.Label(a) != query.Label(b) {
			return query.Label(a) < query.Label(b)
		}
		if query.Degree(a) != query.Degree(b) {
			return query.Degree(a) > query.Degree(b)
		}
		return a < b
	}
	insertionSort(kids, less)
}

func insertionSort(xs []int, less func(i, j int) bool) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
