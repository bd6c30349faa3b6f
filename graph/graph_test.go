package graph

import (
	"testing"
)

import "github.com/stretchr/testify/assert"

// star builds a center (label 0) connected to three leaves (label 1).
func star(t *testing.T) *Graph {
	b := NewBuilder()
	c := b.AddVertex(0)
	l1 := b.AddVertex(1)
	l2 := b.AddVertex(1)
	l3 := b.AddVertex(1)
	b.AddEdge(c, l1)
	b.AddEdge(c, l2)
	b.AddEdge(c, l3)
	g := b.Build()
	if c != 0 || l1 != 1 || l2 != 2 || l3 != 3 {
		t.Fatalf("unexpected vertex ids")
	}
	return g
}

func TestDegreeAndLabel(t *testing.T) {
	x := assert.New(t)
	g := star(t)
	x.Equal(3, g.Degree(0))
	x.Equal(1, g.Degree(1))
	x.Equal(0, g.Label(0))
	x.Equal(1, g.Label(1))
	x.Equal(4, g.N())
	x.Equal(3, g.M())
}

func TestNeighborsSortOrder(t *testing.T) {
	x := assert.New(t)
	g := star(t)
	nbrs := g.Neighbors(0)
	x.Equal([]int{1, 2, 3}, nbrs, "same label, same degree: ties break by ascending id")
}

func TestNeighborsByLabel(t *testing.T) {
	x := assert.New(t)
	g := star(t)
	x.Equal([]int{1, 2, 3}, g.NeighborsByLabel(0, 1))
	x.Empty(g.NeighborsByLabel(0, 0), "center has no label-0 neighbor")
	x.Empty(g.NeighborsByLabel(1, 5), "unknown label yields an empty, non-nil slice")
}

func TestIsNeighbor(t *testing.T) {
	x := assert.New(t)
	g := star(t)
	x.True(g.IsNeighbor(0, 1))
	x.True(g.IsNeighbor(1, 0))
	x.False(g.IsNeighbor(1, 2), "leaves are not adjacent to each other")
	x.False(g.IsNeighbor(0, 0))
}

// TestLabelBucketPartition checks that the label buckets partition the
// neighbor slice of every vertex.
func TestLabelBucketPartition(t *testing.T) {
	x := assert.New(t)
	b := NewBuilder()
	v := make([]int, 6)
	for i := range v {
		v[i] = b.AddVertex(i % 3)
	}
	for i := 1; i < len(v); i++ {
		b.AddEdge(v[0], v[i])
	}
	g := b.Build()
	nbrs := g.Neighbors(0)
	seen := make(map[int]bool, len(nbrs))
	for l := 0; l < 3; l++ {
		sub := g.NeighborsByLabel(0, l)
		for _, w := range sub {
			seen[w] = true
			x.Equal(l, g.Label(w))
		}
	}
	for _, w := range nbrs {
		x.True(seen[w], "neighbor %d not covered by any label bucket", w)
	}
	x.Equal(len(nbrs), len(seen), "label buckets must not overlap")
}

func TestUnseenLabelHasNoBucket(t *testing.T) {
	x := assert.New(t)
	b := NewBuilder()
	q0 := b.AddVertex(UnseenLabel)
	q1 := b.AddVertex(0)
	b.AddEdge(q0, q1)
	g := b.Build()
	x.Equal(UnseenLabel, g.Label(q0))
	x.Empty(g.NeighborsByLabel(q0, UnseenLabel), "no bucket exists for a label no neighbor carries")
	x.True(g.IsNeighbor(q0, q1))
}
