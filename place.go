package nelson

var _ Node = (*Place)(nil)

// Place is a cell of the Nelson net holding a marking.
type Place struct {
	ID   string
	Name string
	// Marking is the current value of the place.
	Marking any
	// Default is what Reset restores the marking to. A nil Default keeps the marking.
	Default DefaultMarking
	cell
}

type PlaceOption func(*Place)

func WithMarking(v any) PlaceOption {
	return func(p *Place) {
		p.Marking = v
	}
}

func WithDefault(dm DefaultMarking) PlaceOption {
	return func(p *Place) {
		p.Default = dm
	}
}

// NewPlace creates a place that is not linked to anything yet.
func NewPlace(name string, opts ...PlaceOption) *Place {
	p := &Place{
		ID:   ID(),
		Name: name,
	}
	p.cell.self = p
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Place) Kind() Kind { return PlaceNode }

func (p *Place) Identifier() string { return p.ID }

func (p *Place) String() string { return p.Name }

// Reset sets the marking to the resolved default marking.
func (p *Place) Reset(ev Evaluator) error {
	v, err := ResolveDefault(p, ev)
	if err != nil {
		return err
	}
	p.Marking = v
	return nil
}
