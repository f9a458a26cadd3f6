package pathplan

import "github.com/Jinderamarak/safe-stage/spatial"

// SixAxisStepper implements Stepper[spatial.SixAxis] with a fixed
// per-axis step size, used by the stage's linear resolver preset.
type SixAxisStepper struct {
	StepSize spatial.SixAxis
}

// Next returns current stepped toward target by at most StepSize on each
// axis independently.
func (s SixAxisStepper) Next(current, target spatial.SixAxis) spatial.SixAxis {
	return current.Add(current.Step(target, s.StepSize))
}

// AtTarget reports whether current equals target within tolerance.
func (s SixAxisStepper) AtTarget(current, target spatial.SixAxis) bool {
	return current.AlmostEqual(target)
}

// ResolveStageLinear runs the uniform per-axis-step resolver for a stage
// pose, the simpler alternative to the down-rotate-find resolver.
func ResolveStageLinear(stepSize spatial.SixAxis, collides Collider[spatial.SixAxis], current, target spatial.SixAxis) Path[spatial.SixAxis] {
	return LinearResolve[spatial.SixAxis](SixAxisStepper{StepSize: stepSize}, collides, current, target)
}
