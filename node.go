package nelson

import "github.com/google/uuid"

type Kind int

const (
	PlaceNode Kind = iota
	TransitionNode
)

func (k Kind) String() string {
	switch k {
	case PlaceNode:
		return "place"
	case TransitionNode:
		return "transition"
	}
	return "unknown"
}

// Node is a place or a transition of a Nelson net. Every node carries a zz neighbor
// table: for each dimension it has at most one posward and one negward neighbor, and
// the links are always mutual.
type Node interface {
	Kind() Kind
	Identifier() string
	String() string

	// Posward returns the posward neighbor along d, or nil.
	Posward(d *Dimension) Node
	// Negward returns the negward neighbor along d, or nil.
	Negward(d *Dimension) Node
	// SetPosward makes other the posward neighbor along d and the receiver other's
	// negward neighbor. Stale claims of the previous partners are cleared.
	SetPosward(d *Dimension, other Node)
	// SetNegward is the mirror of SetPosward.
	SetNegward(d *Dimension, other Node)
	// Unlink clears both sides along d, together with the partners' back references.
	Unlink(d *Dimension)
	UnlinkPosward(d *Dimension)
	UnlinkNegward(d *Dimension)
	IsLinked(d *Dimension) bool
	// Dimensions lists the dimensions along which the node has a neighbor.
	Dimensions() []*Dimension
	// Neighbors lists the distinct neighbors of the node across all dimensions.
	Neighbors() []Node
	// Isolate unlinks the node along every dimension.
	Isolate()

	zz() *cell
}

// ID returns a new random node identifier.
func ID() string {
	return uuid.New().String()
}
