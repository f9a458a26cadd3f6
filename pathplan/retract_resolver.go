package pathplan

import (
	"math"

	"github.com/Jinderamarak/safe-stage/spatial"
)

// LinearStateStepper implements Stepper[spatial.LinearState] with a fixed
// step size, used by the retract's linear resolver.
type LinearStateStepper struct {
	StepSize float64
}

// Next returns current stepped by StepSize toward target, clamped so it
// never overshoots.
func (s LinearStateStepper) Next(current, target spatial.LinearState) spatial.LinearState {
	delta := target.T - current.T
	if math.Abs(delta) <= s.StepSize {
		return target
	}
	if delta > 0 {
		return spatial.LinearState{T: current.T + s.StepSize}
	}
	return spatial.LinearState{T: current.T - s.StepSize}
}

// AtTarget reports whether current equals target within tolerance.
func (s LinearStateStepper) AtTarget(current, target spatial.LinearState) bool {
	return current.AlmostEqual(target)
}

// ResolveRetract runs the uniform-step linear resolver for a retract's
// insertion level: generates t0, t1, ..., tn with t_i = current +
// i*sign(target-current)*stepSize, stopping at target (clamped).
func ResolveRetract(stepSize float64, collides Collider[spatial.LinearState], current, target spatial.LinearState) Path[spatial.LinearState] {
	return LinearResolve[spatial.LinearState](LinearStateStepper{StepSize: stepSize}, collides, current, target)
}
