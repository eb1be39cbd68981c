package nelson

// Point is a cursor on a node of the zz structure. It does not own the node it points
// at. Operations take a dimension; a nil dimension means the current dimension of the
// point's DimensionPoint.
type Point struct {
	current Node
	dims    *DimensionPoint
	world   *World
}

func NewPoint(n Node, dims *DimensionPoint) *Point {
	return &Point{
		current: n,
		dims:    dims,
	}
}

// Node returns the current node, or nil.
func (p *Point) Node() Node {
	return p.current
}

func (p *Point) Set(n Node) {
	p.current = n
}

func (p *Point) DimensionPoint() *DimensionPoint {
	return p.dims
}

func (p *Point) along(d *Dimension) *Dimension {
	if d != nil || p.dims == nil {
		return d
	}
	return p.dims.Dimension()
}

func (p *Point) PoswardNeighbor(d *Dimension) Node {
	if p.current == nil {
		return nil
	}
	return p.current.Posward(p.along(d))
}

func (p *Point) NegwardNeighbor(d *Dimension) Node {
	if p.current == nil {
		return nil
	}
	return p.current.Negward(p.along(d))
}

// RedefinePoswardNeighbor links n posward of the current node.
func (p *Point) RedefinePoswardNeighbor(n Node, d *Dimension) error {
	if p.current == nil {
		return ErrNoPoint
	}
	dim := p.along(d)
	if !interned(dim) {
		return ErrNoDimension
	}
	p.current.SetPosward(dim, n)
	return nil
}

// RedefineNegwardNeighbor links n negward of the current node.
func (p *Point) RedefineNegwardNeighbor(n Node, d *Dimension) error {
	if p.current == nil {
		return ErrNoPoint
	}
	dim := p.along(d)
	if !interned(dim) {
		return ErrNoDimension
	}
	p.current.SetNegward(dim, n)
	return nil
}

// StepPosward moves to the posward neighbor. It returns false and stays put at the end
// of the chain.
func (p *Point) StepPosward(d *Dimension) bool {
	n := p.PoswardNeighbor(d)
	if n == nil {
		return false
	}
	p.current = n
	return true
}

// StepNegward moves to the negward neighbor. It returns false and stays put at the end
// of the chain.
func (p *Point) StepNegward(d *Dimension) bool {
	n := p.NegwardNeighbor(d)
	if n == nil {
		return false
	}
	p.current = n
	return true
}

// RewindPosward returns a lazy walk from the current node in the posward direction.
func (p *Point) RewindPosward(d *Dimension) *Rewind {
	return newRewind(p, p.along(d), true)
}

// RewindNegward returns a lazy walk from the current node in the negward direction.
func (p *Point) RewindNegward(d *Dimension) *Rewind {
	return newRewind(p, p.along(d), false)
}

// ToPoswardEnd walks posward until the chain ends or closes, leaving the point on the
// last visited node.
func (p *Point) ToPoswardEnd(d *Dimension) Result {
	return p.RewindPosward(d).Drain()
}

// ToNegwardEnd walks negward until the chain ends or closes, leaving the point on the
// last visited node.
func (p *Point) ToNegwardEnd(d *Dimension) Result {
	return p.RewindNegward(d).Drain()
}

// Rank returns the chain containing the current node along d.
func (p *Point) Rank(d *Dimension) []Node {
	return RankOf(p.current, p.along(d))
}

func (p *Point) String() string {
	if p.current == nil {
		return "<nowhere>"
	}
	return p.current.String()
}
