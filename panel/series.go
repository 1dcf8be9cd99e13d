package panel

import (
	"gonum.org/v1/gonum/stat"
)

// Series is a flat ordered sequence of values, one entry per instance when
// used as a target collection.
type Series []float64

// Instances returns the number of entries in the series.
func (s Series) Instances() int {
	return len(s)
}

func (s Series) Copy() Series {
	next := make(Series, len(s))
	copy(next, s)
	return next
}

// Dense converts the series to a rank 1 dense array backed by its own copy
// of the data.
func (s Series) Dense() *Dense {
	return From1D(s)
}

func (s Series) Mean() float64 {
	return stat.Mean(s, nil)
}

func (s Series) Variance() float64 {
	return stat.Variance(s, nil)
}

func (s Series) StdDev() float64 {
	return stat.StdDev(s, nil)
}
