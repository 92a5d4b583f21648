package errors

// Validation helpers for scenario parameters. These are intentionally
// conservative: the engine itself guards its own invariants, but rejecting
// bad parameters here gives the caller one coded error instead of a failure
// halfway through a run.

// ValidateRatio validates a [0, 1] ratio parameter such as the left/right
// split, the settle share, or the riser proportion.
func ValidateRatio(name string, v float64) error {
	if v < 0 || v > 1 {
		return New(ErrCodeInvalidScenario, "%s must be within [0, 1]: got %g", name, v)
	}
	return nil
}

// ValidateDensity validates a mass-per-thickness density parameter.
// Densities must be strictly positive: a zero settled density would divide
// by zero when converting settled mass back to thickness.
func ValidateDensity(name string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidScenario, "%s must be positive: got %g", name, v)
	}
	return nil
}

// ValidateDepth validates a non-negative cut depth parameter.
func ValidateDepth(name string, v float64) error {
	if v < 0 {
		return New(ErrCodeInvalidScenario, "%s must be non-negative: got %g", name, v)
	}
	return nil
}

// ValidateCellCount validates the section size. The upper bound matches the
// reference dashboard's slider limit and keeps report tables at a size the
// presentation layer can chart.
func ValidateCellCount(n int) error {
	const maxCells = 10000
	if n < 1 {
		return New(ErrCodeInvalidScenario, "cell count must be at least 1: got %d", n)
	}
	if n > maxCells {
		return New(ErrCodeInvalidScenario, "cell count must be at most %d: got %d", maxCells, n)
	}
	return nil
}

// ValidateMassLimit validates the convergence threshold. Zero is allowed
// (the engine substitutes its default); negative values are not.
func ValidateMassLimit(v float64) error {
	if v < 0 {
		return New(ErrCodeInvalidScenario, "mass lower limit must be non-negative: got %g", v)
	}
	return nil
}
