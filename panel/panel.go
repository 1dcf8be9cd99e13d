// Package panel provides containers for collections of time series
// instances, either as a dense (instance, variable, timepoint) array or as
// a nested table whose cells each hold one variable's series for one
// instance, along with conversions between the two forms.
package panel

// Feature is a collection of instances admissible as feature input. It is
// satisfied only by *Dense and *Table.
type Feature interface {
	// Instances returns the length of the leading instance axis.
	Instances() int
	feature()
}

// Target is a collection of per instance target values. It is satisfied
// only by *Dense and Series.
type Target interface {
	Instances() int
	target()
}

func (d *Dense) feature() {}
func (d *Dense) target()  {}
func (t *Table) feature() {}
func (s Series) target()  {}
