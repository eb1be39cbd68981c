package analysis_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jt05610/nelson"
	"github.com/jt05610/nelson/analysis"
)

func net() *analysis.Net {
	w, err := nelson.NewWorld()
	if err != nil {
		panic(err)
	}
	pp := make([]*nelson.Place, 4)
	for i := range pp {
		pp[i], _ = w.NewPlace(fmt.Sprintf("p%d", i+1))
	}
	arcs := [][2][]*nelson.Place{
		{{pp[0], pp[2]}, {pp[1]}},
		{{pp[1]}, {pp[2], pp[3]}},
		{{pp[3]}, {pp[0]}},
	}
	for i, a := range arcs {
		if _, err := w.NewTransition(fmt.Sprintf("t%d", i+1), a[0], a[1]); err != nil {
			panic(err)
		}
	}
	return analysis.New(w)
}

func ExampleNet_Incidence() {
	aNet := net()
	inc := aNet.Incidence()
	places := aNet.Places()
	fmt.Printf("┌%s┐\n", strings.Repeat(" ", 3*len(places)-1))
	for i := range aNet.Transitions() {
		fmt.Print("│")
		s := " "
		for j := range places {
			if j == len(places)-1 {
				s = ""
			}
			fmt.Printf("%2d%s", int(inc.At(i, j)), s)
		}
		fmt.Print("│\n")
	}
	fmt.Printf("└%s┘", strings.Repeat(" ", 3*len(places)-1))
	// Output:
	// ┌           ┐
	// │-1  1 -1  0│
	// │ 0 -1  1  1│
	// │ 1  0  0 -1│
	// └           ┘
}

func TestNet_NextState(t *testing.T) {
	aNet := net()
	t1 := aNet.Transition("t1")
	next, err := aNet.NextState(analysis.State{1, 0, 1, 0}, t1)
	if err != nil {
		t.Fatal(err)
	}
	want := analysis.State{0, 1, 0, 0}
	for i := range want {
		if next[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, next)
		}
	}
	if _, err := aNet.NextState(analysis.State{1}, t1); err == nil {
		t.Error("expected a size mismatch error")
	}
}

func TestNet_IncidenceFollowsLinks(t *testing.T) {
	aNet := net()
	t3 := aNet.Transition("t3")
	t3.UnlinkPosward(aNet.MustDimension(nelson.Domain, 0))
	if got := aNet.Incidence().At(2, 3); got != 0 {
		t.Errorf("unlinked arc should not count, got %v", got)
	}
	if err := analysis.Consistent(aNet.World); !errors.Is(err, analysis.ErrInconsistent) {
		t.Errorf("expected ErrInconsistent, got %v", err)
	}
	if err := aNet.Binder().Bind(t3); err != nil {
		t.Fatal(err)
	}
	if err := analysis.Consistent(aNet.World); err != nil {
		t.Errorf("rebinding should restore consistency: %v", err)
	}
}

func TestNet_NextStateWithoutPlaces(t *testing.T) {
	w, err := nelson.NewWorld()
	if err != nil {
		t.Fatal(err)
	}
	tr, err := w.NewTransition("T", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	next, err := analysis.New(w).NextState(analysis.State{}, tr)
	if err != nil {
		t.Fatal(err)
	}
	if len(next) != 0 {
		t.Errorf("expected an empty state, got %v", next)
	}
}
