package nelson

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Symbol is a named, symbolic dimension component such as row or domain. A Symbol
// never equals a plain string with the same text.
type Symbol string

const (
	Row      Symbol = "row"
	Column   Symbol = "column"
	Sheet    Symbol = "sheet"
	Domain   Symbol = "domain"
	Codomain Symbol = "codomain"
)

var ErrInvalidComponent = errors.New("invalid dimension component")

// Dimension is an axis of zz connectivity. Dimensions are interned by a Registry, so
// two dimensions with equal components are the same pointer and can be compared with ==.
type Dimension struct {
	components []any
	key        string
	seq        int
}

// Components returns a copy of the normalised components of the dimension.
func (d *Dimension) Components() []any {
	ret := make([]any, len(d.components))
	copy(ret, d.components)
	return ret
}

// Head returns the first component.
func (d *Dimension) Head() any {
	return d.components[0]
}

// Index returns the ordinal of an arc dimension such as (domain, 2).
func (d *Dimension) Index() (int, bool) {
	if len(d.components) != 2 {
		return 0, false
	}
	i, ok := d.components[1].(int64)
	if !ok || i < 0 {
		return 0, false
	}
	return int(i), true
}

func (d *Dimension) String() string {
	parts := make([]string, len(d.components))
	for i, c := range d.components {
		parts[i] = fmt.Sprint(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Registry interns dimensions.
type Registry struct {
	mu    sync.Mutex
	byKey map[string]*Dimension
	all   []*Dimension
}

func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[string]*Dimension),
		all:   make([]*Dimension, 0),
	}
}

// Intern returns the unique dimension with exactly the given components, creating it on
// first request. Integer components are normalised to int64, unsigned ones to uint64 and
// floats to float64.
func (r *Registry) Intern(components ...any) (*Dimension, error) {
	norm, key, err := dimensionKey(components)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.byKey[key]; ok {
		return d, nil
	}
	d := &Dimension{
		components: norm,
		key:        key,
		seq:        len(r.all),
	}
	r.byKey[key] = d
	r.all = append(r.all, d)
	return d, nil
}

// MustIntern is like Intern but panics on invalid components.
func (r *Registry) MustIntern(components ...any) *Dimension {
	d, err := r.Intern(components...)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns an already interned dimension without creating one.
func (r *Registry) Lookup(components ...any) (*Dimension, bool) {
	_, key, err := dimensionKey(components)
	if err != nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byKey[key]
	return d, ok
}

// All returns the interned dimensions in creation order.
func (r *Registry) All() []*Dimension {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret := make([]*Dimension, len(r.all))
	copy(ret, r.all)
	return ret
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.all)
}

func (r *Registry) at(i int) *Dimension {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.all) {
		return nil
	}
	return r.all[i]
}

func (r *Registry) owns(d *Dimension) bool {
	if d == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byKey[d.key] == d
}

func dimensionKey(components []any) ([]any, string, error) {
	if len(components) == 0 {
		return nil, "", fmt.Errorf("%w: no components", ErrInvalidComponent)
	}
	norm := make([]any, len(components))
	parts := make([]string, len(components))
	for i, c := range components {
		n, part, err := componentKey(c)
		if err != nil {
			return nil, "", err
		}
		norm[i] = n
		parts[i] = part
	}
	return norm, strings.Join(parts, "\x1f"), nil
}

func componentKey(c any) (any, string, error) {
	switch v := c.(type) {
	case Symbol:
		return v, "y" + strconv.Quote(string(v)), nil
	case string:
		return v, "s" + strconv.Quote(v), nil
	case bool:
		return v, "b" + strconv.FormatBool(v), nil
	case int:
		return intKey(int64(v))
	case int8:
		return intKey(int64(v))
	case int16:
		return intKey(int64(v))
	case int32:
		return intKey(int64(v))
	case int64:
		return intKey(v)
	case uint:
		return uintKey(uint64(v))
	case uint8:
		return uintKey(uint64(v))
	case uint16:
		return uintKey(uint64(v))
	case uint32:
		return uintKey(uint64(v))
	case uint64:
		return uintKey(v)
	case float32:
		return floatKey(float64(v))
	case float64:
		return floatKey(v)
	default:
		return nil, "", fmt.Errorf("%w: %T", ErrInvalidComponent, c)
	}
}

func intKey(v int64) (any, string, error) {
	return v, "i" + strconv.FormatInt(v, 10), nil
}

func uintKey(v uint64) (any, string, error) {
	return v, "u" + strconv.FormatUint(v, 10), nil
}

func floatKey(v float64) (any, string, error) {
	if math.IsNaN(v) {
		return nil, "", fmt.Errorf("%w: NaN", ErrInvalidComponent)
	}
	return v, "f" + strconv.FormatFloat(v, 'g', -1, 64), nil
}
