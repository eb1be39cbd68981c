package nelson

import (
	"errors"
	"fmt"
)

var ErrNoEvaluator = errors.New("no evaluator for computed default marking")

// Arcs supplies the ordered arc lists of a transition.
type Arcs interface {
	Domain(t *Transition) []*Place
	Codomain(t *Transition) []*Place
}

// Firer is the Petri-net execution layer.
type Firer interface {
	Arcs
	Fire(t *Transition) error
}

// Evaluator computes the codomain values of a transition from the given domain values,
// one per domain place in arc order, without writing any marking.
type Evaluator interface {
	Evaluate(t *Transition, args []any) ([]any, error)
}

// TransitionArcs reads the arc lists stored on the transition itself.
var TransitionArcs Arcs = transitionArcs{}

type transitionArcs struct{}

func (transitionArcs) Domain(t *Transition) []*Place { return t.Domain() }

func (transitionArcs) Codomain(t *Transition) []*Place { return t.Codomain() }

// DefaultMarking is either Constant or Computed.
type DefaultMarking interface {
	isDefaultMarking()
}

// Constant is a fixed default marking.
type Constant struct {
	Value any
}

// Computed takes the default marking from an assignment transition that has the place
// in its codomain.
type Computed struct {
	Transition *Transition
}

func (Constant) isDefaultMarking() {}
func (Computed) isDefaultMarking() {}

// ResolveDefault returns the default marking of p without changing any marking. A
// computed default evaluates its transition over the default markings of the domain
// places, resolved the same way.
func ResolveDefault(p *Place, ev Evaluator) (any, error) {
	return resolveDefault(p, ev, make(map[*Place]bool))
}

func resolveDefault(p *Place, ev Evaluator, visiting map[*Place]bool) (any, error) {
	switch dm := p.Default.(type) {
	case nil:
		return p.Marking, nil
	case Constant:
		return dm.Value, nil
	case Computed:
		t := dm.Transition
		if t == nil || !t.Assignment() {
			return nil, ErrNotAssignment
		}
		if ev == nil {
			return nil, ErrNoEvaluator
		}
		idx := -1
		for i, c := range t.codomain {
			if c == p {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s is not in the codomain of %s", ErrNotFound, p, t)
		}
		if visiting[p] {
			return nil, fmt.Errorf("%w: %s", ErrDefaultCycle, p)
		}
		visiting[p] = true
		defer delete(visiting, p)
		args := make([]any, len(t.domain))
		for i, d := range t.domain {
			v, err := resolveDefault(d, ev, visiting)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		values, err := ev.Evaluate(t, args)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", t, err)
		}
		if idx >= len(values) {
			return nil, fmt.Errorf("evaluate %s: got %d values for %d codomain places", t, len(values), len(t.codomain))
		}
		return values[idx], nil
	default:
		return nil, fmt.Errorf("unknown default marking %T", dm)
	}
}
