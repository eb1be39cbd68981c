package analysis

import (
	"errors"
	"fmt"

	"github.com/jt05610/nelson"
	"gonum.org/v1/gonum/mat"
)

var ErrInconsistent = errors.New("inconsistent zz structure")

// Net reads the structure of a world from its zz links only.
type Net struct {
	*nelson.World
}

func New(w *nelson.World) *Net {
	return &Net{World: w}
}

type State []float64

func (net *Net) placeIndex() map[*nelson.Place]int {
	index := make(map[*nelson.Place]int)
	for i, p := range net.Places() {
		index[p] = i
	}
	return index
}

func (net *Net) FiringVector(t int) *mat.Dense {
	n := len(net.Transitions())
	v := make([]float64, n)
	v[t] = 1
	return mat.NewDense(1, n, v)
}

func arcRole(d *nelson.Dimension) (nelson.Symbol, bool) {
	head, ok := d.Head().(nelson.Symbol)
	if !ok || (head != nelson.Domain && head != nelson.Codomain) {
		return "", false
	}
	if _, ok := d.Index(); !ok {
		return "", false
	}
	return head, true
}

// Incidence returns the transitions × places matrix with -1 for every domain link and
// +1 for every codomain link of a transition.
func (net *Net) Incidence() *mat.Dense {
	index := net.placeIndex()
	transitions := net.Transitions()
	m := len(index)
	n := len(transitions)
	d := make([]float64, m*n)
	for i, t := range transitions {
		for _, dim := range t.Dimensions() {
			role, ok := arcRole(dim)
			if !ok {
				continue
			}
			p, ok := t.Posward(dim).(*nelson.Place)
			if !ok {
				continue
			}
			j, ok := index[p]
			if !ok {
				continue
			}
			if role == nelson.Domain {
				d[i*m+j]--
			} else {
				d[i*m+j]++
			}
		}
	}
	if n == 0 || m == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(n, m, d)
}

// NextState applies one firing of t to a place count vector.
func (net *Net) NextState(state State, t *nelson.Transition) (State, error) {
	tIndex := -1
	for i, tt := range net.Transitions() {
		if tt == t {
			tIndex = i
			break
		}
	}
	if tIndex < 0 {
		return nil, fmt.Errorf("%w: %s", nelson.ErrForeignNode, t)
	}
	inc := net.Incidence()
	if _, c := inc.Dims(); c != len(state) {
		return nil, fmt.Errorf("state has %d places, net has %d", len(state), c)
	}
	if len(state) == 0 {
		return State{}, nil
	}
	s := mat.NewDense(1, len(state), state)
	f := net.FiringVector(tIndex)

	var result mat.Dense
	result.Mul(f, inc)

	var out mat.Dense
	out.Add(s, &result)
	ret := make(State, len(state))
	for i := range ret {
		ret[i] = out.At(0, i)
	}
	return ret, nil
}

// Consistent checks that every link in w is mutual and that the arc links of every
// transition match its arc lists.
func Consistent(w *nelson.World) error {
	errs := make([]error, 0)
	for _, n := range w.Nodes() {
		for _, d := range n.Dimensions() {
			if p := n.Posward(d); p != nil && p.Negward(d) != n {
				errs = append(errs, fmt.Errorf("%w: %s has posward %s along %s without a back link", ErrInconsistent, n, p, d))
			}
			if p := n.Negward(d); p != nil && p.Posward(d) != n {
				errs = append(errs, fmt.Errorf("%w: %s has negward %s along %s without a back link", ErrInconsistent, n, p, d))
			}
		}
	}
	binder := w.Binder()
	for _, t := range w.Transitions() {
		for role, places := range map[nelson.Symbol][]*nelson.Place{
			nelson.Domain:   t.Domain(),
			nelson.Codomain: t.Codomain(),
		} {
			for i, p := range places {
				if got := binder.Slot(t, role, i); got != p {
					errs = append(errs, fmt.Errorf("%w: %s slot (%s, %d) holds %v, want %s", ErrInconsistent, t, role, i, got, p))
				}
			}
		}
	}
	return errors.Join(errs...)
}
