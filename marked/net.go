package marked

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/jt05610/nelson"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var (
	_ nelson.Firer     = (*Net)(nil)
	_ nelson.Evaluator = (*Net)(nil)
)

var ErrNotEnabled = errors.New("transition is not enabled")

// Marking maps place names to markings.
type Marking map[string]any

// Net fires the assignment transitions of a world. The expression of a transition
// sees the marking of every domain place under the place name, and all of them in arc
// order as args.
type Net struct {
	*nelson.World
	programs *gocache.Cache
}

func New(w *nelson.World) *Net {
	return &Net{
		World:    w,
		programs: gocache.New(gocache.NoExpiration, 0),
	}
}

func (net *Net) Domain(t *nelson.Transition) []*nelson.Place {
	return t.Domain()
}

func (net *Net) Codomain(t *nelson.Transition) []*nelson.Place {
	return t.Codomain()
}

// Marking returns a snapshot of every place marking.
func (net *Net) Marking() Marking {
	ret := make(Marking)
	for _, p := range net.Places() {
		ret[p.Name] = p.Marking
	}
	return ret
}

// Enabled returns true if t is an assignment transition and every domain place is marked.
func (net *Net) Enabled(t *nelson.Transition) bool {
	if !t.Assignment() {
		return false
	}
	for _, p := range net.Domain(t) {
		if p.Marking == nil {
			return false
		}
	}
	return true
}

func (net *Net) Available() []*nelson.Transition {
	transitions := make([]*nelson.Transition, 0)
	for _, t := range net.Transitions() {
		if net.Enabled(t) {
			transitions = append(transitions, t)
		}
	}
	return transitions
}

// program compiles the expression of t once per distinct expression.
func (net *Net) program(t *nelson.Transition) (*vm.Program, error) {
	key := t.ID + "\x00" + t.Expression
	if p, ok := net.programs.Get(key); ok {
		return p.(*vm.Program), nil
	}
	p, err := expr.Compile(t.Expression)
	if err != nil {
		return nil, err
	}
	net.programs.SetDefault(key, p)
	return p, nil
}

func (net *Net) env(t *nelson.Transition, args []any) (map[string]any, error) {
	domain := net.Domain(t)
	if len(args) != len(domain) {
		return nil, fmt.Errorf("%s takes %d values, got %d", t, len(domain), len(args))
	}
	env := make(map[string]any, len(domain)+1)
	for i, p := range domain {
		env[p.Name] = args[i]
	}
	env["args"] = args
	return env, nil
}

// Evaluate computes the markings t would assign to its codomain from args, the values
// of its domain places in arc order. Nothing is written.
func (net *Net) Evaluate(t *nelson.Transition, args []any) ([]any, error) {
	if !t.Assignment() {
		return nil, fmt.Errorf("%w: %s", nelson.ErrNotAssignment, t)
	}
	env, err := net.env(t, args)
	if err != nil {
		return nil, err
	}
	program, err := net.program(t)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", t, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", t, err)
	}
	codomain := net.Codomain(t)
	if spread, ok := out.([]any); ok && len(spread) == len(codomain) {
		return spread, nil
	}
	ret := make([]any, len(codomain))
	for i := range ret {
		ret[i] = out
	}
	return ret, nil
}

func (net *Net) Fire(t *nelson.Transition) error {
	if !net.Enabled(t) {
		return fmt.Errorf("%w: %s", ErrNotEnabled, t)
	}
	domain := net.Domain(t)
	args := make([]any, len(domain))
	for i, p := range domain {
		args[i] = p.Marking
	}
	values, err := net.Evaluate(t, args)
	if err != nil {
		return err
	}
	for i, p := range net.Codomain(t) {
		p.Marking = values[i]
	}
	net.Logger().Debug("fired transition",
		zap.String("transition", t.Name),
		zap.Any("values", values),
	)
	return nil
}

// Reset restores every place that has a default marking. All defaults are resolved
// before any marking is written.
func (net *Net) Reset() error {
	places := make([]*nelson.Place, 0)
	values := make([]any, 0)
	for _, p := range net.Places() {
		if p.Default == nil {
			continue
		}
		v, err := nelson.ResolveDefault(p, net)
		if err != nil {
			return fmt.Errorf("reset %s: %w", p, err)
		}
		places = append(places, p)
		values = append(values, v)
	}
	for i, p := range places {
		p.Marking = values[i]
	}
	return nil
}
