package graphio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

import "github.com/timtadh/data-structures/errors"

import "github.com/timtadh/subiso/graph"

func LoadDataGraph(path string) (*graph.Graph, *LabelRemap, error) {
	remap := NewLabelRemap()
	g, err := loadGraph(path, remap, remap.Densify)
	if err != nil {
		return nil, nil, err
	}
	return g, remap, nil
}

// LoadQueryGraph resolves vertex labels against a LabelRemap already
// built from a data graph; a label unseen there becomes UnseenLabel.
func LoadQueryGraph(path string, remap *LabelRemap) (*graph.Graph, error) {
	return loadGraph(path, remap, remap.Lookup)
}

func loadGraph(path string, remap *LabelRemap, resolve func(int) int) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, notFound(path, err)
	}
	defer f.Close()

	b := graph.NewBuilder()
	err = processLines(f, func(fields []string) error {
		if len(fields) == 0 {
			return nil
		}
		switch fields[0] {
		case "t":
			return nil // graph id / vertex count header: informational only
		case "v":
			if len(fields) != 3 {
				return errors.Errorf("malformed vertex line: %v", fields)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return err
			}
			rawLabel, err := strconv.Atoi(fields[2])
			if err != nil {
				return err
			}
			if id != b.NumVertices() {
				return errors.Errorf("vertex ids must appear in order 0..n-1, got %v at position %v", id, b.NumVertices())
			}
			b.AddVertex(resolve(rawLabel))
			return nil
		case "e":
			if len(fields) != 4 {
				return errors.Errorf("malformed edge line: %v", fields)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return err
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return err
			}
			// fields[3] is the edge label; the matching contract has no
			// labeled-edge semantics, so it is parsed but unused.
			b.AddEdge(u, v)
			return nil
		default:
			return errors.Errorf("unknown line type %q", fields[0])
		}
	})
	if err != nil {
		return nil, malformed(path, err)
	}
	return b.Build(), nil
}

func processLines(in io.Reader, process func(fields []string) error) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := process(strings.Fields(text)); err != nil {
			return errors.Errorf("line %v: %v", line, err)
		}
	}
	return scanner.Err()
}
