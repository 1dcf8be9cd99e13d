package panel

import (
	"errors"
)

var (
	ErrNegativeDim      = errors.New("negative dimensions not allowed")
	ErrDataLenMismatch  = errors.New("data length does not match shape")
	ErrRaggedData       = errors.New("ragged series lengths not allowed")
	ErrColMismatch      = errors.New("column size mismatch")
	ErrRowMismatch      = errors.New("row size mismatch")
	ErrRowOutOfBounds   = errors.New("row is out of bounds")
	ErrColOutOfBounds   = errors.New("column is out of bounds")
	ErrIndexOutOfBounds = errors.New("index is out of bounds")
	ErrColumnName       = errors.New("invalid column name")
	ErrNotRank3         = errors.New("array is not rank 3")
	ErrScalarCell       = errors.New("cell holds a scalar value")
	ErrEmptyInstance    = errors.New("instance has no values")
)
