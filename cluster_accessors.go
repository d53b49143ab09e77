// cluster_accessors.go — the public Cluster accessor surface (spec §6),
// gated by the localAccess mechanism (spec §5/§9): a listener callback
// may read/write the clusters it was handed even though they are not
// (yet, or any longer) the top cluster of their component; any other
// caller may only touch a Cluster that currently is the top of its
// component.

package toptree

// Info returns the user information attached to c. Returns
// (nil, IllegalAccess) if c is stale or is not currently accessible.
func (c *Cluster) Info() (interface{}, error) {
	if err := c.gate(); err != nil {
		return nil, err
	}
	return c.tree.nodes[c.idx].info, nil
}

// SetInfo replaces the user information attached to c. Returns
// IllegalAccess under the same conditions as Info.
func (c *Cluster) SetInfo(info interface{}) error {
	if err := c.gate(); err != nil {
		return err
	}
	c.tree.nodes[c.idx].info = info
	return nil
}

// Bu returns c's logical left boundary vertex (post-reversal). Returns
// (nil, IllegalAccess) under the same conditions as Info.
func (c *Cluster) Bu() (*Vertex, error) {
	if err := c.gate(); err != nil {
		return nil, err
	}
	bu, _ := c.tree.boundaries(c.idx)
	if bu == noIndex {
		return nil, nil
	}
	return c.tree.vertices[bu], nil
}

// Bv returns c's logical right boundary vertex (post-reversal), or nil
// for a Point-kind cluster.
func (c *Cluster) Bv() (*Vertex, error) {
	if err := c.gate(); err != nil {
		return nil, err
	}
	_, bv := c.tree.boundaries(c.idx)
	if bv == noIndex {
		return nil, nil
	}
	return c.tree.vertices[bv], nil
}

// SetBu overrides c's logical left boundary. Structural boundary
// mutation outside a Split/Join callback is almost never correct; this
// exists for listeners that store auxiliary boundary-keyed state and
// need to relabel it, matching spec §6's accessor surface.
func (c *Cluster) SetBu(v *Vertex) error {
	if err := c.gate(); err != nil {
		return err
	}
	n := &c.tree.nodes[c.idx]
	if n.reversed {
		n.bv = v.id
	} else {
		n.bu = v.id
	}
	return nil
}

// SetBv overrides c's logical right boundary; see SetBu.
func (c *Cluster) SetBv(v *Vertex) error {
	if err := c.gate(); err != nil {
		return err
	}
	n := &c.tree.nodes[c.idx]
	if n.reversed {
		n.bu = v.id
	} else {
		n.bv = v.id
	}
	return nil
}
