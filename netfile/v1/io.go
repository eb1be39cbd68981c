package netfile

import (
	"errors"
	"fmt"

	"github.com/jt05610/nelson"
	"github.com/jt05610/nelson/netfile"
)

var ErrUnknownNode = errors.New("unknown node")

// Default is the default marking of a place: either a constant value or the name of the
// assignment transition that computes it.
type Default struct {
	Value      any    `yaml:"value,omitempty"`
	Transition string `yaml:"transition,omitempty"`
}

type Place struct {
	Name    string   `yaml:"name"`
	Marking any      `yaml:"marking,omitempty"`
	Default *Default `yaml:"default,omitempty"`
}

type Transition struct {
	Name       string   `yaml:"name"`
	Domain     []string `yaml:"domain,omitempty"`
	Codomain   []string `yaml:"codomain,omitempty"`
	Expression string   `yaml:"expression,omitempty"`
}

// Link is a zz link that is not derived from an arc. String components of Along are read
// as symbols.
type Link struct {
	Along []any  `yaml:"along,flow"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
}

type Netfile struct {
	Nelson      netfile.Version `yaml:"nelson"`
	Name        string          `yaml:"name,omitempty"`
	Places      []Place         `yaml:"places,omitempty"`
	Transitions []Transition    `yaml:"transitions,omitempty"`
	Links       []Link          `yaml:"links,omitempty"`
}

func lookup(w *nelson.World, names []string) ([]*nelson.Place, error) {
	ret := make([]*nelson.Place, len(names))
	for i, name := range names {
		p := w.Place(name)
		if p == nil {
			return nil, fmt.Errorf("%w: place %s", ErrUnknownNode, name)
		}
		ret[i] = p
	}
	return ret, nil
}

func components(along []any) []any {
	ret := make([]any, len(along))
	for i, c := range along {
		if s, ok := c.(string); ok {
			ret[i] = nelson.Symbol(s)
			continue
		}
		ret[i] = c
	}
	return ret
}

// Build adds the places, transitions and links of the file to w.
func (f *Netfile) Build(w *nelson.World) error {
	for _, pl := range f.Places {
		if _, err := w.NewPlace(pl.Name, nelson.WithMarking(pl.Marking)); err != nil {
			return err
		}
	}
	for _, tr := range f.Transitions {
		domain, err := lookup(w, tr.Domain)
		if err != nil {
			return fmt.Errorf("transition %s: %w", tr.Name, err)
		}
		codomain, err := lookup(w, tr.Codomain)
		if err != nil {
			return fmt.Errorf("transition %s: %w", tr.Name, err)
		}
		if _, err := w.NewTransition(tr.Name, domain, codomain, nelson.WithExpression(tr.Expression)); err != nil {
			return err
		}
	}
	for _, pl := range f.Places {
		if pl.Default == nil {
			continue
		}
		p := w.Place(pl.Name)
		if pl.Default.Transition == "" {
			p.Default = nelson.Constant{Value: pl.Default.Value}
			continue
		}
		t := w.Transition(pl.Default.Transition)
		if t == nil {
			return fmt.Errorf("%w: transition %s", ErrUnknownNode, pl.Default.Transition)
		}
		p.Default = nelson.Computed{Transition: t}
	}
	for _, l := range f.Links {
		d, err := w.Dimension(components(l.Along)...)
		if err != nil {
			return fmt.Errorf("link %s -> %s: %w", l.From, l.To, err)
		}
		from, to := w.Node(l.From), w.Node(l.To)
		if from == nil || to == nil {
			return fmt.Errorf("%w: link %s -> %s", ErrUnknownNode, l.From, l.To)
		}
		from.SetPosward(d, to)
	}
	return nil
}

func names(pp []*nelson.Place) []string {
	if len(pp) == 0 {
		return nil
	}
	ret := make([]string, len(pp))
	for i, p := range pp {
		ret[i] = p.Name
	}
	return ret
}

// arcLink reports whether the link from n to its posward neighbor along d is one the
// binder derives from an arc.
func arcLink(w *nelson.World, n nelson.Node, d *nelson.Dimension) bool {
	t, ok := n.(*nelson.Transition)
	if !ok {
		return false
	}
	role, ok := d.Head().(nelson.Symbol)
	if !ok {
		return false
	}
	i, ok := d.Index()
	if !ok {
		return false
	}
	var arcs []*nelson.Place
	switch role {
	case nelson.Domain:
		arcs = t.Domain()
	case nelson.Codomain:
		arcs = t.Codomain()
	default:
		return false
	}
	return i < len(arcs) && w.Binder().Slot(t, role, i) == arcs[i]
}

// FromWorld describes w as a net file.
func FromWorld(name string, w *nelson.World) *Netfile {
	f := &Netfile{
		Nelson: netfile.V1,
		Name:   name,
	}
	for _, p := range w.Places() {
		pl := Place{Name: p.Name, Marking: p.Marking}
		switch dm := p.Default.(type) {
		case nelson.Constant:
			pl.Default = &Default{Value: dm.Value}
		case nelson.Computed:
			pl.Default = &Default{Transition: dm.Transition.Name}
		}
		f.Places = append(f.Places, pl)
	}
	for _, t := range w.Transitions() {
		f.Transitions = append(f.Transitions, Transition{
			Name:       t.Name,
			Domain:     names(t.Domain()),
			Codomain:   names(t.Codomain()),
			Expression: t.Expression,
		})
	}
	for _, n := range w.Nodes() {
		for _, d := range n.Dimensions() {
			next := n.Posward(d)
			if next == nil || arcLink(w, n, d) {
				continue
			}
			along := d.Components()
			for i, c := range along {
				if s, ok := c.(nelson.Symbol); ok {
					along[i] = string(s)
				}
			}
			f.Links = append(f.Links, Link{Along: along, From: n.String(), To: next.String()})
		}
	}
	return f
}
