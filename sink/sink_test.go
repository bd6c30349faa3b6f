package sink

import (
	"bytes"
	"testing"
)

import "github.com/stretchr/testify/assert"

func TestWriteHeaderAndEmbeddings(t *testing.T) {
	x := assert.New(t)
	var buf bytes.Buffer
	s := New(&buf)
	x.NoError(s.WriteHeader(3))
	x.NoError(s.WriteEmbedding([]int{0, 1, 2}))
	x.NoError(s.WriteEmbedding([]int{2, 1, 0}))
	x.NoError(s.Flush())
	x.Equal("t 3\na 0 1 2\na 2 1 0\n", buf.String())
}

func TestWriteHeaderZeroVertices(t *testing.T) {
	x := assert.New(t)
	var buf bytes.Buffer
	s := New(&buf)
	x.NoError(s.WriteHeader(0))
	x.NoError(s.Flush())
	x.Equal("t 0\n", buf.String())
}

func TestBufferedUntilFlush(t *testing.T) {
	x := assert.New(t)
	var buf bytes.Buffer
	s := New(&buf)
	x.NoError(s.WriteHeader(1))
	x.Empty(buf.String(), "a short header stays in bufio's buffer until Flush")
	x.NoError(s.Flush())
	x.Equal("t 1\n", buf.String())
}
