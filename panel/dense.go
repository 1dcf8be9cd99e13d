package panel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dense is an N-dimensional array of float64 values stored in row-major
// order. When used as a feature or target collection the leading axis
// indexes instances.
type Dense struct {
	shape []int
	data  []float64
}

// NewDense returns a Dense of the given shape backed by a copy of data. The
// data length must equal the product of the shape dimensions. A nil data
// slice allocates a zero-filled array.
func NewDense(shape []int, data []float64) (*Dense, error) {
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("dimension of %d, %w", dim, ErrNegativeDim)
		}
		size *= dim
	}
	if data != nil && len(data) != size {
		return nil, fmt.Errorf("got %d values for a shape holding %d, %w", len(data), size, ErrDataLenMismatch)
	}

	arr := make([]float64, size)
	copy(arr, data)
	shp := make([]int, len(shape))
	copy(shp, shape)
	return &Dense{
		shape: shp,
		data:  arr,
	}, nil
}

// Zeros returns a zero-filled Dense of the given shape.
func Zeros(shape ...int) (*Dense, error) {
	return NewDense(shape, nil)
}

// From1D returns a rank 1 Dense backed by a copy of x.
func From1D(x []float64) *Dense {
	arr := make([]float64, len(x))
	copy(arr, x)
	return &Dense{
		shape: []int{len(x)},
		data:  arr,
	}
}

// From3D returns a rank 3 Dense from instance major slice data. All
// instances must hold the same number of variables and all variables the
// same number of timepoints.
func From3D(x [][][]float64) (*Dense, error) {
	m := len(x)

	n, p := -1, -1
	for i, instance := range x {
		if n >= 0 && len(instance) != n {
			return nil, fmt.Errorf("at instance %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(instance)
		}
		for j, variable := range instance {
			if p >= 0 && len(variable) != p {
				return nil, fmt.Errorf("at instance %d, variable %d, %w", i, j, ErrRaggedData)
			}
			if p < 0 {
				p = len(variable)
			}
		}
	}
	if n < 0 {
		n = 0
	}
	if p < 0 {
		p = 0
	}

	data := make([]float64, 0, m*n*p)
	for _, instance := range x {
		for _, variable := range instance {
			data = append(data, variable...)
		}
	}
	return &Dense{
		shape: []int{m, n, p},
		data:  data,
	}, nil
}

// Shape returns a copy of the dimension lengths.
func (d *Dense) Shape() []int {
	shp := make([]int, len(d.shape))
	copy(shp, d.shape)
	return shp
}

// NDim returns the rank of the array.
func (d *Dense) NDim() int {
	return len(d.shape)
}

// Instances returns the length of the leading instance axis.
func (d *Dense) Instances() int {
	if len(d.shape) == 0 {
		return 0
	}
	return d.shape[0]
}

func (d *Dense) Size() int {
	return len(d.data)
}

// At retrieves a single value. The number of indices must match the rank.
func (d *Dense) At(idx ...int) (float64, error) {
	if len(idx) != len(d.shape) {
		return 0.0, fmt.Errorf("got %d indices for a rank %d array, %w", len(idx), len(d.shape), ErrIndexOutOfBounds)
	}
	pos := 0
	for axis, i := range idx {
		if i < 0 || i >= d.shape[axis] {
			return 0.0, fmt.Errorf("index %d on axis %d of length %d, %w", i, axis, d.shape[axis], ErrIndexOutOfBounds)
		}
		pos = pos*d.shape[axis] + i
	}
	return d.data[pos], nil
}

// Flatten returns a copy of the backing data in row-major order.
func (d *Dense) Flatten() []float64 {
	arr := make([]float64, len(d.data))
	copy(arr, d.data)
	return arr
}

func (d *Dense) Copy() *Dense {
	next, _ := NewDense(d.shape, d.data)
	return next
}

// Equal reports whether both arrays have the same shape and values.
func (d *Dense) Equal(o *Dense) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.shape) != len(o.shape) {
		return false
	}
	for i := range d.shape {
		if d.shape[i] != o.shape[i] {
			return false
		}
	}
	if len(d.data) == 0 {
		return true
	}
	return floats.Equal(d.data, o.data)
}

// InstanceMatrix returns the (variable, timepoint) matrix of a single
// instance from a rank 3 array.
func (d *Dense) InstanceMatrix(i int) (*mat.Dense, error) {
	if len(d.shape) != 3 {
		return nil, fmt.Errorf("found shape %v, %w", d.shape, ErrNotRank3)
	}
	if i < 0 || i >= d.shape[0] {
		return nil, fmt.Errorf("instance %d of %d, %w", i, d.shape[0], ErrIndexOutOfBounds)
	}
	n, p := d.shape[1], d.shape[2]
	if n == 0 || p == 0 {
		return nil, fmt.Errorf("instance %d with %d variables and %d timepoints, %w", i, n, p, ErrEmptyInstance)
	}

	data := make([]float64, n*p)
	copy(data, d.data[i*n*p:(i+1)*n*p])
	return mat.NewDense(n, p, data), nil
}
