package container

// IDStat aggregates the chunks sharing one tag.
type IDStat struct {
	Count int   `json:"count"`
	Bytes int64 `json:"bytes"`
}

// Stats summarizes a scanned tree.
type Stats struct {
	// Chunks counts every node, groups included.
	Chunks int `json:"chunks"`

	// Groups counts the nodes parsed as nested sequences.
	Groups int `json:"groups"`

	// MaxDepth is the deepest nesting level observed (top level is 0).
	MaxDepth int `json:"maxDepth"`

	// PayloadBytes sums the declared sizes of leaf chunks; group payloads
	// are counted through their members, not double-counted.
	PayloadBytes int64 `json:"payloadBytes"`

	// ByID aggregates per tag, keyed by the tag's text rendering.
	ByID map[string]IDStat `json:"byId"`
}

// Stats walks the tree once and aggregates it.
func (t *Tree) Stats() Stats {
	st := Stats{ByID: make(map[string]IDStat)}
	_ = t.Walk(func(n *Node) error {
		st.Chunks++
		if n.Group {
			st.Groups++
		} else {
			st.PayloadBytes += n.Size
		}
		if n.Depth > st.MaxDepth {
			st.MaxDepth = n.Depth
		}
		id := st.ByID[n.ID.String()]
		id.Count++
		id.Bytes += n.Size
		st.ByID[n.ID.String()] = id
		return nil
	})
	return st
}
