package nelson

import (
	"fmt"

	"go.uber.org/zap"
)

// World owns every node and dimension of one Nelson net. It is an explicit context
// object; nothing in the package keeps global state.
type World struct {
	logger      *zap.Logger
	registry    *Registry
	binder      *Binder
	places      []*Place
	transitions []*Transition
	byName      map[string]Node
	primaryDim  *DimensionPoint
	secondDim   *DimensionPoint
	primary     *Point
	secondary   *Point
}

type config struct {
	logger    *zap.Logger
	arcs      Arcs
	registry  *Registry
	primary   []any
	secondary []any
}

type Option func(*config)

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithArcs makes the binder read arc lists from an external Petri-net layer.
func WithArcs(arcs Arcs) Option {
	return func(c *config) {
		c.arcs = arcs
	}
}

// WithRegistry shares a dimension registry between worlds.
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

func WithPrimaryDimension(components ...any) Option {
	return func(c *config) {
		c.primary = components
	}
}

func WithSecondaryDimension(components ...any) Option {
	return func(c *config) {
		c.secondary = components
	}
}

// NewWorld creates an empty world. The spreadsheet axes row, column and sheet are
// interned up front; the primary dimension defaults to row and the secondary to column.
func NewWorld(opts ...Option) (*World, error) {
	cfg := &config{
		logger:    zap.NewNop(),
		arcs:      TransitionArcs,
		primary:   []any{Row},
		secondary: []any{Column},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.registry == nil {
		cfg.registry = NewRegistry()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	for _, s := range []Symbol{Row, Column, Sheet} {
		cfg.registry.MustIntern(s)
	}
	primary, err := cfg.registry.Intern(cfg.primary...)
	if err != nil {
		return nil, fmt.Errorf("primary dimension: %w", err)
	}
	secondary, err := cfg.registry.Intern(cfg.secondary...)
	if err != nil {
		return nil, fmt.Errorf("secondary dimension: %w", err)
	}
	w := &World{
		logger:      cfg.logger,
		registry:    cfg.registry,
		binder:      NewBinder(cfg.registry, cfg.arcs, cfg.logger),
		places:      make([]*Place, 0),
		transitions: make([]*Transition, 0),
		byName:      make(map[string]Node),
		primaryDim:  NewDimensionPoint(cfg.registry, primary),
		secondDim:   NewDimensionPoint(cfg.registry, secondary),
	}
	w.primary = w.point(nil, w.primaryDim)
	w.secondary = w.point(nil, w.secondDim)
	return w, nil
}

func (w *World) Logger() *zap.Logger { return w.logger }

func (w *World) Registry() *Registry { return w.registry }

func (w *World) Binder() *Binder { return w.binder }

func (w *World) Primary() *Point { return w.primary }

func (w *World) Secondary() *Point { return w.secondary }

func (w *World) PrimaryDimension() *DimensionPoint { return w.primaryDim }

func (w *World) SecondaryDimension() *DimensionPoint { return w.secondDim }

// NewPoint creates an ad hoc point at n that defaults to the primary dimension.
func (w *World) NewPoint(n Node) *Point {
	return w.point(n, w.primaryDim)
}

func (w *World) point(n Node, dims *DimensionPoint) *Point {
	p := NewPoint(n, dims)
	p.world = w
	return p
}

// Dimension interns a dimension in the world registry.
func (w *World) Dimension(components ...any) (*Dimension, error) {
	return w.registry.Intern(components...)
}

func (w *World) MustDimension(components ...any) *Dimension {
	return w.registry.MustIntern(components...)
}

func (w *World) Dimensions() []*Dimension {
	return w.registry.All()
}

func (w *World) register(n Node) error {
	if _, ok := w.byName[n.String()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, n)
	}
	w.byName[n.String()] = n
	return nil
}

func (w *World) owns(n Node) bool {
	if n == nil {
		return false
	}
	return w.byName[n.String()] == n
}

// NewPlace creates a place. An empty name is replaced by a generated one.
func (w *World) NewPlace(name string, opts ...PlaceOption) (*Place, error) {
	p := NewPlace(name, opts...)
	if p.Name == "" {
		p.Name = "place-" + p.ID
	}
	if err := w.register(p); err != nil {
		return nil, err
	}
	w.places = append(w.places, p)
	w.logger.Debug("created place", zap.String("place", p.Name), zap.Any("marking", p.Marking))
	return p, nil
}

// NewTransition creates a transition and links it to its arcs.
func (w *World) NewTransition(name string, domain, codomain []*Place, opts ...TransitionOption) (*Transition, error) {
	if err := w.checkPlaces(domain, codomain); err != nil {
		return nil, err
	}
	t := NewTransition(name, domain, codomain, opts...)
	if t.Name == "" {
		t.Name = "transition-" + t.ID
	}
	if err := w.register(t); err != nil {
		return nil, err
	}
	w.transitions = append(w.transitions, t)
	if err := w.binder.Bind(t); err != nil {
		w.binder.Unbind(t)
		t.Isolate()
		delete(w.byName, t.Name)
		w.transitions = w.transitions[:len(w.transitions)-1]
		return nil, err
	}
	w.logger.Debug("created transition", zap.String("transition", t.Name))
	return t, nil
}

// SetArcs replaces the arcs of t and rebinds it.
func (w *World) SetArcs(t *Transition, domain, codomain []*Place) error {
	if !w.owns(t) {
		return fmt.Errorf("%w: %s", ErrForeignNode, t)
	}
	if err := w.checkPlaces(domain, codomain); err != nil {
		return err
	}
	t.domain = clonePlaces(domain)
	t.codomain = clonePlaces(codomain)
	return w.binder.Bind(t)
}

func (w *World) checkPlaces(lists ...[]*Place) error {
	for _, pp := range lists {
		for _, p := range pp {
			if p == nil {
				return fmt.Errorf("%w: nil place", ErrNotFound)
			}
			if !w.owns(p) {
				return fmt.Errorf("%w: %s", ErrForeignNode, p)
			}
		}
	}
	return nil
}

// RemovePlace isolates p and forgets it. Places still named in the arcs of a
// transition cannot be removed.
func (w *World) RemovePlace(p *Place) error {
	if !w.owns(p) {
		return fmt.Errorf("%w: %s", ErrForeignNode, p)
	}
	for _, t := range w.transitions {
		if t.uses(p) {
			return fmt.Errorf("%w: %s is used by %s", ErrInUse, p, t)
		}
	}
	p.Isolate()
	delete(w.byName, p.Name)
	for i, pp := range w.places {
		if pp == p {
			w.places = append(w.places[:i], w.places[i+1:]...)
			break
		}
	}
	w.forgetPoints(p)
	w.logger.Debug("removed place", zap.String("place", p.Name))
	return nil
}

// RemoveTransition unbinds and isolates t and forgets it.
func (w *World) RemoveTransition(t *Transition) error {
	if !w.owns(t) {
		return fmt.Errorf("%w: %s", ErrForeignNode, t)
	}
	w.binder.Unbind(t)
	t.Isolate()
	delete(w.byName, t.Name)
	for i, tt := range w.transitions {
		if tt == t {
			w.transitions = append(w.transitions[:i], w.transitions[i+1:]...)
			break
		}
	}
	w.forgetPoints(t)
	w.logger.Debug("removed transition", zap.String("transition", t.Name))
	return nil
}

func (w *World) forgetPoints(n Node) {
	for _, p := range []*Point{w.primary, w.secondary} {
		if p.current == n {
			p.current = nil
		}
	}
}

// Place returns the place with the given name, or nil.
func (w *World) Place(name string) *Place {
	p, _ := w.byName[name].(*Place)
	return p
}

// Transition returns the transition with the given name, or nil.
func (w *World) Transition(name string) *Transition {
	t, _ := w.byName[name].(*Transition)
	return t
}

// Node returns the place or transition with the given name, or nil.
func (w *World) Node(name string) Node {
	return w.byName[name]
}

func (w *World) Places() []*Place {
	return clonePlaces(w.places)
}

func (w *World) Transitions() []*Transition {
	ret := make([]*Transition, len(w.transitions))
	copy(ret, w.transitions)
	return ret
}

// Nodes returns the places followed by the transitions, each in creation order.
func (w *World) Nodes() []Node {
	ret := make([]Node, 0, len(w.places)+len(w.transitions))
	for _, p := range w.places {
		ret = append(ret, p)
	}
	for _, t := range w.transitions {
		ret = append(ret, t)
	}
	return ret
}
