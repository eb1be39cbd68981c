package nelson_test

import (
	"testing"

	"github.com/jt05610/nelson"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type link struct {
	node    nelson.Node
	dim     *nelson.Dimension
	posward nelson.Node
	negward nelson.Node
}

func snapshot(w *nelson.World) map[link]bool {
	ret := make(map[link]bool)
	for _, n := range w.Nodes() {
		for _, d := range n.Dimensions() {
			ret[link{node: n, dim: d, posward: n.Posward(d), negward: n.Negward(d)}] = true
		}
	}
	return ret
}

func newWorld(t *testing.T, opts ...nelson.Option) *nelson.World {
	t.Helper()
	w, err := nelson.NewWorld(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func places(t *testing.T, w *nelson.World, names ...string) []*nelson.Place {
	t.Helper()
	ret := make([]*nelson.Place, len(names))
	for i, name := range names {
		p, err := w.NewPlace(name)
		if err != nil {
			t.Fatal(err)
		}
		ret[i] = p
	}
	return ret
}

func TestBinder_Bind(t *testing.T) {
	w := newWorld(t)
	pp := places(t, w, "A", "B", "C")
	tr, err := w.NewTransition("T", pp[:2], pp[2:])
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range pp[:2] {
		d := w.MustDimension(nelson.Domain, i)
		if tr.Posward(d) != nelson.Node(p) || p.Negward(d) != nelson.Node(tr) {
			t.Errorf("%s should border T along %s", p, d)
		}
		if w.Binder().Slot(tr, nelson.Domain, i) != p {
			t.Errorf("slot %d should be %s", i, p)
		}
	}
	d := w.MustDimension(nelson.Codomain, 0)
	if tr.Posward(d) != nelson.Node(pp[2]) || pp[2].Negward(d) != nelson.Node(tr) {
		t.Error("C should border T along its first codomain slot")
	}
	if w.Binder().Slot(tr, nelson.Codomain, 1) != nil {
		t.Error("T has a single codomain slot")
	}
	if w.Binder().Slot(tr, nelson.Codomain, 7) != nil {
		t.Error("unknown slots are empty")
	}
}

func TestBinder_Idempotent(t *testing.T) {
	w := newWorld(t)
	pp := places(t, w, "A", "B", "C")
	tr, err := w.NewTransition("T", pp[:2], pp[1:])
	if err != nil {
		t.Fatal(err)
	}
	once := snapshot(w)
	if err := w.Binder().Bind(tr); err != nil {
		t.Fatal(err)
	}
	twice := snapshot(w)
	if len(once) != len(twice) {
		t.Fatalf("expected %d links, got %d", len(once), len(twice))
	}
	for l := range once {
		if !twice[l] {
			t.Errorf("link %v missing after rebinding", l)
		}
	}
}

func TestBinder_Resync(t *testing.T) {
	w := newWorld(t)
	pp := places(t, w, "A", "B")
	tr, err := w.NewTransition("T", pp, nil)
	if err != nil {
		t.Fatal(err)
	}
	row := w.MustDimension(nelson.Row)
	tr.SetNegward(w.MustDimension(nelson.Domain, 1), pp[0])
	tr.SetPosward(row, pp[1])
	if err := w.SetArcs(tr, pp[:1], nil); err != nil {
		t.Fatal(err)
	}
	d1 := w.MustDimension(nelson.Domain, 1)
	if tr.Posward(d1) != nil || pp[1].Negward(d1) != nil {
		t.Error("(domain, 1) should be unlinked on T and B")
	}
	if tr.Negward(d1) != nelson.Node(pp[0]) {
		t.Error("links the binder does not own should survive")
	}
	if tr.Posward(row) != nelson.Node(pp[1]) {
		t.Error("row link should survive")
	}
	d0 := w.MustDimension(nelson.Domain, 0)
	if tr.Posward(d0) != nelson.Node(pp[0]) {
		t.Error("(domain, 0) should stay linked")
	}
}

func TestBinder_Duplicates(t *testing.T) {
	w := newWorld(t)
	pp := places(t, w, "A")
	tr, err := w.NewTransition("T", []*nelson.Place{pp[0], pp[0]}, pp)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []*nelson.Dimension{
		w.MustDimension(nelson.Domain, 0),
		w.MustDimension(nelson.Domain, 1),
		w.MustDimension(nelson.Codomain, 0),
	} {
		if tr.Posward(d) != nelson.Node(pp[0]) {
			t.Errorf("A should border T along %s", d)
		}
	}
}

func TestBinder_Displaced(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	w := newWorld(t, nelson.WithLogger(zap.New(core)))
	pp := places(t, w, "A")
	t1, err := w.NewTransition("T1", pp, nil)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := w.NewTransition("T2", pp, nil)
	if err != nil {
		t.Fatal(err)
	}
	d := w.MustDimension(nelson.Domain, 0)
	if t1.Posward(d) != nil || t2.Posward(d) != nelson.Node(pp[0]) {
		t.Error("the later binding should win")
	}
	if logs.FilterMessage("arc link displaced").Len() != 1 {
		t.Errorf("expected one displacement warning, got %d", logs.Len())
	}
	w.Binder().Unbind(t2)
	if pp[0].IsLinked(d) {
		t.Error("unbind should clear the arc links")
	}
}

type fixedArcs struct {
	domain []*nelson.Place
}

func (f *fixedArcs) Domain(*nelson.Transition) []*nelson.Place   { return f.domain }
func (f *fixedArcs) Codomain(*nelson.Transition) []*nelson.Place { return nil }

func TestBinder_ExternalArcs(t *testing.T) {
	arcs := &fixedArcs{}
	w := newWorld(t, nelson.WithArcs(arcs))
	pp := places(t, w, "A", "B")
	arcs.domain = pp
	tr, err := w.NewTransition("T", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if w.Binder().Slot(tr, nelson.Domain, 1) != pp[1] {
		t.Error("the binder should read arcs from the external layer")
	}
	arcs.domain = []*nelson.Place{nil}
	if err := w.Binder().Bind(tr); err == nil {
		t.Error("binding a missing place should fail")
	}
	if w.Binder().Slot(tr, nelson.Domain, 0) != pp[0] {
		t.Error("a failed bind should not touch the links")
	}
}

func TestEndToEnd(t *testing.T) {
	w := newWorld(t)
	a, err := w.NewPlace("A", nelson.WithMarking(3.2))
	if err != nil {
		t.Fatal(err)
	}
	b, err := w.NewPlace("B", nelson.WithMarking(5))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := w.NewTransition("T", []*nelson.Place{a}, []*nelson.Place{b})
	if err != nil {
		t.Fatal(err)
	}
	cod0 := w.MustDimension(nelson.Codomain, 0)
	dom0 := w.MustDimension(nelson.Domain, 0)
	if b.Negward(cod0) != nelson.Node(tr) || tr.Posward(cod0) != nelson.Node(b) {
		t.Error("B should be posward of T along (codomain, 0)")
	}
	if a.Negward(dom0) != nelson.Node(tr) || tr.Posward(dom0) != nelson.Node(a) {
		t.Error("A should be posward of T along (domain, 0)")
	}
	p := w.NewPoint(tr)
	rw := p.RewindPosward(cod0)
	visited := make([]nelson.Node, 0)
	for rw.Next() {
		visited = append(visited, rw.Node())
	}
	if rw.Result() != nelson.End || len(visited) != 2 || p.Node() != nelson.Node(b) {
		t.Errorf("expected to end on B after one step, got %v %s", visited, rw.Result())
	}
}
