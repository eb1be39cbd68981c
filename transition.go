package nelson

var _ Node = (*Transition)(nil)

// Transition is a function from the markings of its domain places to new markings of
// its codomain places. The order of both lists is significant: the i-th domain place is
// linked to the transition along (domain, i).
type Transition struct {
	ID   string
	Name string
	// Expression is the assignment action. A transition with an expression is an
	// assignment transition.
	Expression string
	domain     []*Place
	codomain   []*Place
	cell
}

type TransitionOption func(*Transition)

func WithExpression(expression string) TransitionOption {
	return func(t *Transition) {
		t.Expression = expression
	}
}

// NewTransition creates a transition with the given arcs. The zz links are created by a
// Binder, which World.NewTransition calls.
func NewTransition(name string, domain, codomain []*Place, opts ...TransitionOption) *Transition {
	t := &Transition{
		ID:       ID(),
		Name:     name,
		domain:   clonePlaces(domain),
		codomain: clonePlaces(codomain),
	}
	t.cell.self = t
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transition) Kind() Kind { return TransitionNode }

func (t *Transition) Identifier() string { return t.ID }

func (t *Transition) String() string { return t.Name }

func (t *Transition) Domain() []*Place { return clonePlaces(t.domain) }

func (t *Transition) Codomain() []*Place { return clonePlaces(t.codomain) }

func (t *Transition) Assignment() bool { return t.Expression != "" }

func (t *Transition) uses(p *Place) bool {
	for _, pp := range t.domain {
		if pp == p {
			return true
		}
	}
	for _, pp := range t.codomain {
		if pp == p {
			return true
		}
	}
	return false
}

func clonePlaces(pp []*Place) []*Place {
	ret := make([]*Place, len(pp))
	copy(ret, pp)
	return ret
}
