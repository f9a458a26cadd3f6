package pathplan

// Stepper is the polymorphic capability set shared by every uniform-step
// resolver: given the current and target state, produce the next
// candidate state one step closer to target (clamped at target), and
// report whether current already equals target within tolerance. This is
// parameterised by state type rather than expressed via runtime
// inheritance, per the resolver design notes.
type Stepper[S any] interface {
	// Next returns the next state stepping from current toward target.
	Next(current, target S) S
	// AtTarget reports whether current is indistinguishable from target.
	AtTarget(current, target S) bool
}

// Collider is injected by the caller to test a candidate state for
// collision against the assembly under resolution.
type Collider[S any] func(S) bool

// LinearResolve implements the "step, check, append, terminate" skeleton:
// starting from current, repeatedly steps toward target, appending every
// collision-free state, and stopping at the first collision (or at
// target). Shared by the retract's 1-D linear resolver and any other
// uniform-step resolver built atop the same Stepper.
func LinearResolve[S any](stepper Stepper[S], collides Collider[S], current, target S) Path[S] {
	if collides(current) {
		return Path[S]{Status: InvalidStart}
	}

	nodes := []S{current}
	state := current
	for !stepper.AtTarget(state, target) {
		next := stepper.Next(state, target)
		if collides(next) {
			return Path[S]{Nodes: nodes, Status: UnreachableEnd}
		}
		nodes = append(nodes, next)
		state = next
	}
	return Path[S]{Nodes: nodes, Status: Reached}
}
