package nelson

import (
	"fmt"

	"go.uber.org/zap"
)

// Binder keeps the zz links of a transition in step with its arcs. The transition is
// the negward end and the place the posward end of every arc link: the i-th domain place
// is t.Posward((domain, i)) and the i-th codomain place is t.Posward((codomain, i)).
type Binder struct {
	registry *Registry
	arcs     Arcs
	logger   *zap.Logger
}

func NewBinder(r *Registry, arcs Arcs, logger *zap.Logger) *Binder {
	if arcs == nil {
		arcs = TransitionArcs
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Binder{
		registry: r,
		arcs:     arcs,
		logger:   logger,
	}
}

// Bind resynchronises every arc link of t. Links whose index no longer exists are
// removed before the current arcs are linked, so calling Bind after any change to the
// arcs never leaves stale links behind.
func (b *Binder) Bind(t *Transition) error {
	domain := b.arcs.Domain(t)
	codomain := b.arcs.Codomain(t)
	for role, places := range map[Symbol][]*Place{Domain: domain, Codomain: codomain} {
		for i, p := range places {
			if p == nil {
				return fmt.Errorf("%w: %s has no place at (%s, %d)", ErrNotFound, t, role, i)
			}
		}
	}
	if err := b.resync(t, Domain, domain); err != nil {
		return err
	}
	if err := b.resync(t, Codomain, codomain); err != nil {
		return err
	}
	b.logger.Debug("bound transition",
		zap.String("transition", t.Name),
		zap.Int("domain", len(domain)),
		zap.Int("codomain", len(codomain)),
	)
	return nil
}

func (b *Binder) resync(t *Transition, role Symbol, places []*Place) error {
	for _, d := range t.Dimensions() {
		i, ok := arcIndex(d, role)
		if !ok || i < len(places) {
			continue
		}
		t.UnlinkPosward(d)
	}
	for i, p := range places {
		d, err := b.registry.Intern(role, i)
		if err != nil {
			return err
		}
		if t.Posward(d) == Node(p) {
			continue
		}
		if prev := p.Negward(d); prev != nil {
			b.logger.Warn("arc link displaced",
				zap.String("place", p.Name),
				zap.Stringer("dimension", d),
				zap.String("previous", prev.String()),
				zap.String("transition", t.Name),
			)
		}
		t.SetPosward(d, p)
	}
	return nil
}

// Unbind removes every arc link of t.
func (b *Binder) Unbind(t *Transition) {
	for _, d := range t.Dimensions() {
		if _, ok := arcIndex(d, Domain); ok {
			t.UnlinkPosward(d)
			continue
		}
		if _, ok := arcIndex(d, Codomain); ok {
			t.UnlinkPosward(d)
		}
	}
}

// Slot returns the place bordering t along its i-th domain or codomain slot.
func (b *Binder) Slot(t *Transition, role Symbol, i int) *Place {
	d, ok := b.registry.Lookup(role, i)
	if !ok {
		return nil
	}
	p, _ := t.Posward(d).(*Place)
	return p
}

func arcIndex(d *Dimension, role Symbol) (int, bool) {
	head, ok := d.Head().(Symbol)
	if !ok || head != role {
		return 0, false
	}
	return d.Index()
}
