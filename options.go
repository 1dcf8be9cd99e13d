package panelcheck

// FeatureOptions configures feature collection validation.
type FeatureOptions struct {
	// ReturnDense converts a nested table input to its rank 3 dense form.
	ReturnDense bool

	// EnforceUnivariate rejects inputs with more than one variable.
	EnforceUnivariate bool

	// EnforceMinInstances is the minimum instance count. A value of zero
	// disables the check.
	EnforceMinInstances int

	// EnforceMinColumns is the minimum variable count.
	EnforceMinColumns int
}

func NewDefaultFeatureOptions() *FeatureOptions {
	return &FeatureOptions{
		EnforceMinInstances: 1,
		EnforceMinColumns:   1,
	}
}

// TargetOptions configures target collection validation.
type TargetOptions struct {
	// EnforceMinInstances is the minimum instance count. A value of zero
	// disables the check.
	EnforceMinInstances int

	// ReturnDense converts a flat series input to a rank 1 dense array.
	ReturnDense bool
}

func NewDefaultTargetOptions() *TargetOptions {
	return &TargetOptions{
		EnforceMinInstances: 1,
	}
}

// PairOptions configures joint feature and target validation. All options
// are forwarded to the feature check only.
type PairOptions struct {
	EnforceUnivariate   bool
	EnforceMinInstances int
	EnforceMinColumns   int
}

func NewDefaultPairOptions() *PairOptions {
	return &PairOptions{
		EnforceMinInstances: 1,
		EnforceMinColumns:   1,
	}
}
