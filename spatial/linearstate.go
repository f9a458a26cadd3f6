package spatial

import "math"

// LinearState is a retract's insertion level, t = 0 fully retracted,
// t = 1 fully inserted. Values outside [0, 1] are rejected at construction.
type LinearState struct {
	T float64
}

// NewLinearState builds a LinearState, rejecting NaN and out-of-range t.
func NewLinearState(t float64) (LinearState, error) {
	if math.IsNaN(t) {
		return LinearState{}, errNaN("NewLinearState")
	}
	if t < 0 || t > 1 {
		return LinearState{}, &domainError{where: "NewLinearState", msg: "t must be in [0, 1]"}
	}
	return LinearState{T: t}, nil
}

// AlmostEqual reports whether two states are equal within Epsilon.
func (s LinearState) AlmostEqual(o LinearState) bool {
	return math.Abs(s.T-o.T) <= Epsilon
}
