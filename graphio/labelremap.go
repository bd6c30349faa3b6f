package graphio

type LabelRemap struct {
	toDense map[int]int
	next    int
}

func NewLabelRemap() *LabelRemap {
	return &LabelRemap{toDense: make(map[int]int)}
}

// Densify mints a dense id for raw if it hasn't been seen. Called
// while loading the data graph.
func (r *LabelRemap) Densify(raw int) int {
	if d, ok := r.toDense[raw]; ok {
		return d
	}
	d := r.next
	r.toDense[raw] = d
	r.next++
	return d
}

// Lookup returns -1 for a raw label never seen in the data graph,
// rather than minting one; called while loading the query graph.
func (r *LabelRemap) Lookup(raw int) int {
	if d, ok := r.toDense[raw]; ok {
		return d
	}
	return -1
}
