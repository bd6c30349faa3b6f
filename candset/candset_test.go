package candset

import "testing"

import "github.com/stretchr/testify/assert"

func TestBasicAccess(t *testing.T) {
	x := assert.New(t)
	cs := New([][]int{
		{0, 1, 2, 3},
		{2, 3},
		{},
	})
	x.Equal(3, cs.NumQueryVertices())
	x.Equal(4, cs.Size(0))
	x.Equal(2, cs.Size(1))
	x.Equal(0, cs.Size(2))
	x.Equal(2, cs.At(0, 2))
	x.Equal([]int{2, 3}, cs.All(1))
}
