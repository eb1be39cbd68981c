package nelson

// DimensionPoint selects the current dimension of a registry. Points use it when an
// operation is called without a dimension.
type DimensionPoint struct {
	registry *Registry
	dim      *Dimension
}

func NewDimensionPoint(r *Registry, d *Dimension) *DimensionPoint {
	return &DimensionPoint{
		registry: r,
		dim:      d,
	}
}

func (dp *DimensionPoint) Dimension() *Dimension {
	return dp.dim
}

// Set moves the point to d, which must have been interned by the same registry.
func (dp *DimensionPoint) Set(d *Dimension) error {
	if dp.registry != nil && !dp.registry.owns(d) {
		return ErrForeignDimension
	}
	dp.dim = d
	return nil
}

// Next moves to the dimension interned after the current one. It returns false when
// the current dimension is the newest one.
func (dp *DimensionPoint) Next() bool {
	return dp.move(1)
}

// Prev moves to the dimension interned before the current one.
func (dp *DimensionPoint) Prev() bool {
	return dp.move(-1)
}

func (dp *DimensionPoint) move(delta int) bool {
	if dp.registry == nil {
		return false
	}
	i := 0
	if dp.dim != nil {
		i = dp.dim.seq + delta
	} else if delta < 0 {
		i = dp.registry.Len() - 1
	}
	d := dp.registry.at(i)
	if d == nil {
		return false
	}
	dp.dim = d
	return true
}

func (dp *DimensionPoint) String() string {
	if dp.dim == nil {
		return "<none>"
	}
	return dp.dim.String()
}
