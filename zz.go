package nelson

import "sort"

type sides struct {
	posward Node
	negward Node
}

// cell is the zz neighbor table shared by places and transitions. It is the only code
// that writes neighbor links; every write touches both partners before returning.
type cell struct {
	self  Node
	table map[*Dimension]*sides
}

func (c *cell) zz() *cell { return c }

func (c *cell) owner() Node {
	if c.self == nil {
		panic("nelson: node was not created with NewPlace or NewTransition")
	}
	return c.self
}

func (c *cell) get(d *Dimension) *sides {
	if c.table == nil {
		return nil
	}
	return c.table[d]
}

func (c *cell) side(d *Dimension) *sides {
	if c.table == nil {
		c.table = make(map[*Dimension]*sides)
	}
	s, ok := c.table[d]
	if !ok {
		s = &sides{}
		c.table[d] = s
	}
	return s
}

func (c *cell) prune(d *Dimension) {
	if s := c.get(d); s != nil && s.posward == nil && s.negward == nil {
		delete(c.table, d)
	}
}

func (c *cell) Posward(d *Dimension) Node {
	if s := c.get(d); s != nil {
		return s.posward
	}
	return nil
}

func (c *cell) Negward(d *Dimension) Node {
	if s := c.get(d); s != nil {
		return s.negward
	}
	return nil
}

// interned reports whether d came from a Registry. Links are only kept along interned
// dimensions.
func interned(d *Dimension) bool {
	return d != nil && d.key != ""
}

func (c *cell) SetPosward(d *Dimension, other Node) {
	if !interned(d) {
		return
	}
	if other == nil {
		c.UnlinkPosward(d)
		return
	}
	self := c.owner()
	if c.Posward(d) == other {
		return
	}
	o := other.zz()
	c.UnlinkPosward(d)
	o.UnlinkNegward(d)
	c.side(d).posward = other
	o.side(d).negward = self
}

func (c *cell) SetNegward(d *Dimension, other Node) {
	if !interned(d) {
		return
	}
	if other == nil {
		c.UnlinkNegward(d)
		return
	}
	self := c.owner()
	if c.Negward(d) == other {
		return
	}
	o := other.zz()
	c.UnlinkNegward(d)
	o.UnlinkPosward(d)
	c.side(d).negward = other
	o.side(d).posward = self
}

func (c *cell) UnlinkPosward(d *Dimension) {
	s := c.get(d)
	if s == nil || s.posward == nil {
		return
	}
	p := s.posward.zz()
	s.posward = nil
	if ps := p.get(d); ps != nil {
		ps.negward = nil
	}
	c.prune(d)
	p.prune(d)
}

func (c *cell) UnlinkNegward(d *Dimension) {
	s := c.get(d)
	if s == nil || s.negward == nil {
		return
	}
	n := s.negward.zz()
	s.negward = nil
	if ns := n.get(d); ns != nil {
		ns.posward = nil
	}
	c.prune(d)
	n.prune(d)
}

func (c *cell) Unlink(d *Dimension) {
	c.UnlinkPosward(d)
	c.UnlinkNegward(d)
}

func (c *cell) IsLinked(d *Dimension) bool {
	s := c.get(d)
	return s != nil && (s.posward != nil || s.negward != nil)
}

func (c *cell) Dimensions() []*Dimension {
	dims := make([]*Dimension, 0, len(c.table))
	for d, s := range c.table {
		if s.posward != nil || s.negward != nil {
			dims = append(dims, d)
		}
	}
	sort.Slice(dims, func(i, j int) bool {
		return dims[i].seq < dims[j].seq
	})
	return dims
}

func (c *cell) Neighbors() []Node {
	seen := make(map[Node]bool)
	ret := make([]Node, 0)
	for _, d := range c.Dimensions() {
		s := c.table[d]
		for _, n := range []Node{s.posward, s.negward} {
			if n == nil || seen[n] {
				continue
			}
			seen[n] = true
			ret = append(ret, n)
		}
	}
	return ret
}

func (c *cell) Isolate() {
	for _, d := range c.Dimensions() {
		c.Unlink(d)
	}
}

// RankOf returns the chain of nodes containing n along d, starting from its negward
// end. On a ring the rank starts at n itself.
func RankOf(n Node, d *Dimension) []Node {
	if n == nil {
		return nil
	}
	p := &Point{current: n}
	if p.ToNegwardEnd(d) == Loop {
		p.Set(n)
	}
	rank := make([]Node, 0)
	rw := p.RewindPosward(d)
	for rw.Next() {
		rank = append(rank, rw.Node())
	}
	return rank
}
