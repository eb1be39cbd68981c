package nelson

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateName    = errors.New("name already in use")
	ErrInUse            = errors.New("place is still connected to a transition")
	ErrSideOccupied     = errors.New("side already has a neighbor")
	ErrForeignNode      = errors.New("node belongs to another world")
	ErrForeignDimension = errors.New("dimension belongs to another registry")
	ErrNotAssignment    = errors.New("transition is not an assignment transition")
	ErrNoPoint          = errors.New("point is not on a node")
	ErrNoDimension      = errors.New("no dimension")
	ErrDefaultCycle     = errors.New("default markings depend on each other")
)
