package nelson

import (
	"fmt"

	"go.uber.org/zap"
)

// Formula creates a spreadsheet style formula cell: a new place and an assignment
// transition whose only codomain arc points at it. The place takes its default marking
// from the transition, which is named after the place with a leading "=".
func (w *World) Formula(name, expression string, domain ...*Place) (*Place, *Transition, error) {
	p, err := w.NewPlace(name)
	if err != nil {
		return nil, nil, err
	}
	t, err := w.NewTransition("="+p.Name, domain, []*Place{p}, WithExpression(expression))
	if err != nil {
		_ = w.RemovePlace(p)
		return nil, nil, err
	}
	p.Default = Computed{Transition: t}
	return p, t, nil
}

// BudPosward creates a new place posward of n along d. A nil d means the primary
// dimension.
func (w *World) BudPosward(n Node, d *Dimension, marking any) (*Place, error) {
	return w.bud(n, d, marking, true)
}

// BudNegward creates a new place negward of n along d. A nil d means the primary
// dimension.
func (w *World) BudNegward(n Node, d *Dimension, marking any) (*Place, error) {
	return w.bud(n, d, marking, false)
}

func (w *World) bud(n Node, d *Dimension, marking any, posward bool) (*Place, error) {
	if !w.owns(n) {
		return nil, fmt.Errorf("%w: %v", ErrForeignNode, n)
	}
	if d == nil {
		d = w.primaryDim.Dimension()
	}
	occupied := n.Negward(d)
	if posward {
		occupied = n.Posward(d)
	}
	if occupied != nil {
		return nil, fmt.Errorf("%w: %s along %s", ErrSideOccupied, n, d)
	}
	p, err := w.NewPlace("", WithMarking(marking))
	if err != nil {
		return nil, err
	}
	if posward {
		n.SetPosward(d, p)
	} else {
		n.SetNegward(d, p)
	}
	w.logger.Debug("budded place",
		zap.String("from", n.String()),
		zap.Stringer("dimension", d),
		zap.Bool("posward", posward),
	)
	return p, nil
}

// BudPosward creates a new place posward of the current node. The point stays where
// it is. Only points made by a World can bud; others return ErrForeignNode.
func (p *Point) BudPosward(d *Dimension, marking any) (*Place, error) {
	if p.current == nil {
		return nil, ErrNoPoint
	}
	if p.world == nil {
		return nil, fmt.Errorf("%w: point was not made by a world", ErrForeignNode)
	}
	return p.world.bud(p.current, p.along(d), marking, true)
}

func (p *Point) BudNegward(d *Dimension, marking any) (*Place, error) {
	if p.current == nil {
		return nil, ErrNoPoint
	}
	if p.world == nil {
		return nil, fmt.Errorf("%w: point was not made by a world", ErrForeignNode)
	}
	return p.world.bud(p.current, p.along(d), marking, false)
}

// NewRank creates one place per marking, each linked posward of the previous one
// along d.
func (w *World) NewRank(d *Dimension, markings ...any) ([]*Place, error) {
	if d == nil {
		d = w.primaryDim.Dimension()
	}
	rank := make([]*Place, 0, len(markings))
	for _, m := range markings {
		p, err := w.NewPlace("", WithMarking(m))
		if err != nil {
			return nil, err
		}
		if len(rank) > 0 {
			rank[len(rank)-1].SetPosward(d, p)
		}
		rank = append(rank, p)
	}
	return rank, nil
}

// Zip links a[i] posward to b[i] along d. Nodes of a without a partner in b lose their
// posward neighbor.
func (w *World) Zip(a, b []Node, d *Dimension) error {
	if d == nil {
		d = w.primaryDim.Dimension()
	}
	for _, nodes := range [][]Node{a, b} {
		for _, n := range nodes {
			if !w.owns(n) {
				return fmt.Errorf("%w: %v", ErrForeignNode, n)
			}
		}
	}
	for i, n := range a {
		if i < len(b) {
			n.SetPosward(d, b[i])
			continue
		}
		n.UnlinkPosward(d)
	}
	return nil
}
