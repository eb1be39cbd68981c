package nelson_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jt05610/nelson"
)

func TestRegistry_Intern(t *testing.T) {
	r := nelson.NewRegistry()
	a := r.MustIntern(nelson.Domain, 0)
	b := r.MustIntern(nelson.Domain, 0)
	if a != b {
		t.Fatal("equal components should give the same dimension")
	}
	if c := r.MustIntern(nelson.Domain, int64(0)); c != a {
		t.Error("int and int64 components should be normalised")
	}
	if c := r.MustIntern(nelson.Domain, uint8(0)); c == a {
		t.Error("unsigned components should not equal signed ones")
	}
	if c := r.MustIntern(nelson.Codomain, 0); c == a {
		t.Error("different components should give different dimensions")
	}
	if c := r.MustIntern("domain", 0); c == a {
		t.Error("a string should not equal a symbol with the same text")
	}
	if r.Len() != 4 {
		t.Errorf("expected 4 dimensions, got %d", r.Len())
	}
	if a.String() != "[domain, 0]" {
		t.Errorf("unexpected string %q", a.String())
	}
	if i, ok := a.Index(); !ok || i != 0 {
		t.Errorf("expected index 0, got %d %v", i, ok)
	}
	if _, ok := r.MustIntern(nelson.Row).Index(); ok {
		t.Error("a bare name has no index")
	}
}

func TestRegistry_InternInvalid(t *testing.T) {
	r := nelson.NewRegistry()
	cases := map[string][]any{
		"empty":   {},
		"nil":     {nil},
		"slice":   {nelson.Row, []int{1}},
		"map":     {map[string]int{}},
		"pointer": {&struct{}{}},
		"NaN":     {math.NaN()},
	}
	for name, components := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := r.Intern(components...)
			if !errors.Is(err, nelson.ErrInvalidComponent) {
				t.Errorf("expected ErrInvalidComponent, got %v", err)
			}
		})
	}
	if r.Len() != 0 {
		t.Errorf("failed interning should not create dimensions, got %d", r.Len())
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := nelson.NewRegistry()
	if _, ok := r.Lookup(nelson.Row); ok {
		t.Fatal("lookup should not create dimensions")
	}
	row := r.MustIntern(nelson.Row)
	if d, ok := r.Lookup(nelson.Row); !ok || d != row {
		t.Error("lookup should find interned dimensions")
	}
	comps := row.Components()
	comps[0] = nelson.Column
	if row.Head() != nelson.Row {
		t.Error("components should be copied")
	}
}

func TestDimensionPoint(t *testing.T) {
	r := nelson.NewRegistry()
	row := r.MustIntern(nelson.Row)
	col := r.MustIntern(nelson.Column)
	dp := nelson.NewDimensionPoint(r, row)
	if dp.Prev() {
		t.Error("row is the first dimension")
	}
	if !dp.Next() || dp.Dimension() != col {
		t.Error("next should move to column")
	}
	if dp.Next() {
		t.Error("column is the last dimension")
	}
	other := nelson.NewRegistry().MustIntern(nelson.Row)
	if err := dp.Set(other); !errors.Is(err, nelson.ErrForeignDimension) {
		t.Errorf("expected ErrForeignDimension, got %v", err)
	}
	if err := dp.Set(row); err != nil || dp.Dimension() != row {
		t.Error("set should move to row")
	}
	empty := nelson.NewDimensionPoint(r, nil)
	if !empty.Prev() || empty.Dimension() != col {
		t.Error("prev from nowhere should select the newest dimension")
	}
}
