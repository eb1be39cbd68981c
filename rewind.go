package nelson

import "iter"

// Result tells how a rewind finished.
type Result int

const (
	Unfinished Result = iota
	// End means the chain has no further neighbor.
	End
	// Loop means the chain led back to the node the rewind started from.
	Loop
)

func (r Result) String() string {
	switch r {
	case End:
		return "end"
	case Loop:
		return "loop"
	}
	return "unfinished"
}

// Rewind walks a point along one dimension in one direction. It is used like a
// bufio.Scanner:
//
//	rw := p.RewindPosward(d)
//	for rw.Next() {
//		visit(rw.Node())
//	}
//	if rw.Result() == nelson.Loop { ... }
//
// The first node produced is the origin. Before every step the neighbor is compared
// with the origin, so a ring of k nodes produces exactly k nodes.
type Rewind struct {
	point   *Point
	dim     *Dimension
	posward bool
	origin  Node
	cur     Node
	started bool
	result  Result
}

func newRewind(p *Point, d *Dimension, posward bool) *Rewind {
	return &Rewind{
		point:   p,
		dim:     d,
		posward: posward,
		origin:  p.current,
	}
}

func (r *Rewind) neighbor(n Node) Node {
	if r.posward {
		return n.Posward(r.dim)
	}
	return n.Negward(r.dim)
}

// Next advances the walk, moving the point. It returns false once the walk is over.
func (r *Rewind) Next() bool {
	if r.result != Unfinished {
		return false
	}
	if r.origin == nil {
		r.result = End
		return false
	}
	if !r.started {
		r.started = true
		r.cur = r.origin
		r.point.current = r.origin
		return true
	}
	next := r.neighbor(r.cur)
	switch {
	case next == nil:
		r.result = End
		return false
	case next == r.origin:
		r.result = Loop
		return false
	}
	r.cur = next
	r.point.current = next
	return true
}

// Node returns the node produced by the last call to Next.
func (r *Rewind) Node() Node {
	return r.cur
}

func (r *Rewind) Origin() Node {
	return r.origin
}

func (r *Rewind) Result() Result {
	return r.result
}

// Reset puts the point back on the origin so the walk can be repeated.
func (r *Rewind) Reset() {
	r.point.current = r.origin
	r.cur = nil
	r.started = false
	r.result = Unfinished
}

// Drain walks to completion and returns the result.
func (r *Rewind) Drain() Result {
	for r.Next() {
	}
	return r.result
}

// All returns the walk as a sequence. Every range over it restarts from the origin.
func (r *Rewind) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		r.Reset()
		for r.Next() {
			if !yield(r.cur) {
				return
			}
		}
	}
}
