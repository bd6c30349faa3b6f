package graphio

import (
	"os"
	"strconv"
)

import "github.com/timtadh/data-structures/errors"

import "github.com/timtadh/subiso/candset"

// LoadCandidateSet reads one line per query vertex:
// "<query_vertex_id> <data_id_0> <data_id_1> ...".
func LoadCandidateSet(path string, numQueryVertices int) (*candset.CandidateSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, notFound(path, err)
	}
	defer f.Close()

	cands := make([][]int, numQueryVertices)
	seen := make([]bool, numQueryVertices)
	err = processLines(f, func(fields []string) error {
		if len(fields) == 0 {
			return nil
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		if u < 0 || u >= numQueryVertices {
			return errors.Errorf("query vertex id %v out of range [0,%v)", u, numQueryVertices)
		}
		if seen[u] {
			return errors.Errorf("duplicate candidate line for query vertex %v", u)
		}
		seen[u] = true
		row := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			id, err := strconv.Atoi(f)
			if err != nil {
				return err
			}
			row = append(row, id)
		}
		cands[u] = row
		return nil
	})
	if err != nil {
		return nil, malformed(path, err)
	}
	for u, ok := range seen {
		if !ok {
			return nil, malformed(path, errors.Errorf("missing candidate line for query vertex %v", u))
		}
	}
	return candset.New(cands), nil
}
