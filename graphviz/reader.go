package graphviz

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/goccy/go-graphviz/cgraph"
	"github.com/jt05610/nelson"
)

// Reader loads a graph written in ArcMode back into a world. Circles become places and
// boxes transitions; edge labels give the arc ordinals.
type Reader struct {
	mappingOpp map[string]nelson.Node
	g          *cgraph.Graph
}

type arc struct {
	place   *nelson.Place
	ordinal int
}

func ordinal(e *cgraph.Edge, fallback int) int {
	i, err := strconv.Atoi(e.Get("label"))
	if err != nil {
		return fallback
	}
	return i
}

func sorted(arcs []arc) []*nelson.Place {
	sort.SliceStable(arcs, func(i, j int) bool {
		return arcs[i].ordinal < arcs[j].ordinal
	})
	ret := make([]*nelson.Place, len(arcs))
	for i, a := range arcs {
		ret[i] = a.place
	}
	return ret
}

func (r *Reader) Load(reader io.Reader, w *nelson.World) error {
	bytes, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	r.g, err = cgraph.ParseBytes(bytes)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.g.Close()
	}()
	transitions := make([]*cgraph.Node, 0)
	for node := r.g.FirstNode(); node != nil; node = r.g.NextNode(node) {
		switch node.Get("shape") {
		case "circle":
			p, err := w.NewPlace(node.Get("label"))
			if err != nil {
				return err
			}
			r.mappingOpp[node.Name()] = p
		case "box":
			transitions = append(transitions, node)
		}
	}
	for _, node := range transitions {
		domain := make([]arc, 0)
		codomain := make([]arc, 0)
		for e := r.g.FirstIn(node); e != nil; e = r.g.NextIn(e) {
			p, ok := r.mappingOpp[e.Node().Name()].(*nelson.Place)
			if !ok {
				return fmt.Errorf("%w: arc into %s does not start at a place", nelson.ErrNotFound, node.Get("label"))
			}
			domain = append(domain, arc{place: p, ordinal: ordinal(e, len(domain))})
		}
		for e := r.g.FirstOut(node); e != nil; e = r.g.NextOut(e) {
			p, ok := r.mappingOpp[e.Node().Name()].(*nelson.Place)
			if !ok {
				return fmt.Errorf("%w: arc out of %s does not end at a place", nelson.ErrNotFound, node.Get("label"))
			}
			codomain = append(codomain, arc{place: p, ordinal: ordinal(e, len(codomain))})
		}
		t, err := w.NewTransition(node.Get("label"), sorted(domain), sorted(codomain))
		if err != nil {
			return err
		}
		r.mappingOpp[node.Name()] = t
	}
	return nil
}

func Loader() *Reader {
	return &Reader{
		mappingOpp: make(map[string]nelson.Node),
	}
}
