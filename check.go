// Package panelcheck validates and normalizes panel data inputs for time
// series learning tasks. A feature collection is accepted either as a rank 3
// dense array with axes (instance, variable, timepoint) or as a nested table
// whose cells each hold one variable's series for one instance. A target
// collection is accepted either as a flat series or a rank 1 dense array
// aligned positionally with the feature instance axis.
package panelcheck

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-panelcheck/panel"
)

var (
	ErrInvalidType        = errors.New("invalid input type")
	ErrInvalidShape       = errors.New("invalid input shape")
	ErrInvalidStructure   = errors.New("invalid nested table structure")
	ErrInconsistentLength = errors.New("inconsistent input lengths")
)

// instanced is any collection exposing the length of its leading instance
// axis.
type instanced interface {
	Instances() int
}

// CheckX validates a feature collection and optionally normalizes a nested
// table to its dense form. The input is never mutated. If no options are
// provided a default is used.
func CheckX(x panel.Feature, opt *FeatureOptions) (panel.Feature, error) {
	if opt == nil {
		opt = NewDefaultFeatureOptions()
	}

	// the rank must be confirmed before reading any dimension beyond the first
	var nColumns int
	switch v := x.(type) {
	case *panel.Dense:
		if v.NDim() != 3 {
			return nil, fmt.Errorf("dense x must be rank 3, but found shape %v, %w", v.Shape(), ErrInvalidShape)
		}
		nColumns = v.Shape()[1]
	case *panel.Table:
		nColumns = v.NumColumns()
	default:
		return nil, fmt.Errorf("x must be a *panel.Dense or a *panel.Table, but found %T, %w", x, ErrInvalidType)
	}

	if nColumns < opt.EnforceMinColumns {
		return nil, fmt.Errorf("x must contain at least %d column(s), but found only %d, %w", opt.EnforceMinColumns, nColumns, ErrInvalidShape)
	}

	if opt.EnforceUnivariate && nColumns > 1 {
		return nil, fmt.Errorf("x must be univariate with a single column, but found %d, %w", nColumns, ErrInvalidShape)
	}

	if opt.EnforceMinInstances > 0 {
		if err := enforceMinInstances(x, opt.EnforceMinInstances); err != nil {
			return nil, err
		}
	}

	if tbl, ok := x.(*panel.Table); ok {
		if !panel.IsNested(tbl) {
			return nil, fmt.Errorf("tabular x must be nested with a series inside every cell, %w", ErrInvalidStructure)
		}
		if opt.ReturnDense {
			dense, err := panel.NestedToDense(tbl)
			if err != nil {
				return nil, fmt.Errorf("unable to convert nested x to dense form, %w", err)
			}
			return dense, nil
		}
	}

	return x, nil
}

// CheckY validates a target collection and optionally converts a flat
// series to a rank 1 dense array. If no options are provided a default is
// used.
func CheckY(y panel.Target, opt *TargetOptions) (panel.Target, error) {
	if opt == nil {
		opt = NewDefaultTargetOptions()
	}

	switch y.(type) {
	case panel.Series, *panel.Dense:
	default:
		return nil, fmt.Errorf("y must be a panel.Series or a *panel.Dense, but found %T, %w", y, ErrInvalidType)
	}

	if opt.EnforceMinInstances > 0 {
		if err := enforceMinInstances(y, opt.EnforceMinInstances); err != nil {
			return nil, err
		}
	}

	if s, ok := y.(panel.Series); ok && opt.ReturnDense {
		return s.Dense(), nil
	}
	return y, nil
}

// CheckXY validates a feature and target collection for joint use. Options
// apply to the feature collection only since the length consistency check
// makes a second instance count check on y redundant.
func CheckXY(x panel.Feature, y panel.Target, opt *PairOptions) (panel.Feature, panel.Target, error) {
	if opt == nil {
		opt = NewDefaultPairOptions()
	}

	xNext, err := CheckX(x, &FeatureOptions{
		EnforceUnivariate:   opt.EnforceUnivariate,
		EnforceMinInstances: opt.EnforceMinInstances,
		EnforceMinColumns:   opt.EnforceMinColumns,
	})
	if err != nil {
		return nil, nil, err
	}

	yNext, err := CheckY(y, nil)
	if err != nil {
		return nil, nil, err
	}

	if err := CheckConsistentLength(xNext, yNext); err != nil {
		return nil, nil, err
	}
	return xNext, yNext, nil
}

// CheckConsistentLength fails when two collections have different leading
// axis lengths.
func CheckConsistentLength(a, b interface{ Instances() int }) error {
	if na, nb := a.Instances(), b.Instances(); na != nb {
		return fmt.Errorf("found collections with inconsistent instance counts of %d and %d, %w", na, nb, ErrInconsistentLength)
	}
	return nil
}

// enforceMinInstances checks the leading axis length of a collection. A
// minimum of zero or less disables the check.
func enforceMinInstances(x instanced, minInstances int) error {
	if minInstances > 0 {
		if n := x.Instances(); n < minInstances {
			return fmt.Errorf("found collection with %d instance(s), but a minimum of %d is required, %w", n, minInstances, ErrInvalidShape)
		}
	}
	return nil
}
