package pathplan

import (
	"math"

	"github.com/Jinderamarak/safe-stage/spatial"
)

// StageResolverConfig carries the down-rotate-find resolver's parameters.
// MoveSpeed and LosStep are per-axis vectors, matching the original
// resolver's signature; LosStep falls back to SampleStep when its
// components are all zero, per the resolved open question on the
// ambiguous original signature.
type StageResolverConfig struct {
	DownPoint     spatial.Vector3
	DownStep      spatial.SixAxis
	MoveSpeed     spatial.Vector3
	SampleMin     spatial.Vector3
	SampleMax     spatial.Vector3
	SampleStep    spatial.Vector3
	SampleEpsilon spatial.Vector3
	LosStep       spatial.Vector3
	SmoothingStep spatial.SixAxis
}

func (c StageResolverConfig) effectiveLosStep() float64 {
	if maxComponent(c.LosStep) > 0 {
		return maxComponent(c.LosStep)
	}
	return maxComponent(c.SampleStep)
}

func (c StageResolverConfig) smoothingStep() float64 {
	return maxComponent(spatial.Vector3{X: c.SmoothingStep.X, Y: c.SmoothingStep.Y, Z: c.SmoothingStep.Z})
}

func maxComponent(v spatial.Vector3) float64 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}

// LineOfSightFunc checks whether the straight segment between two full
// SixAxis poses is collision-free at every losStep-sampled intermediate
// pose, used by phase 1's BFS edges and phase 3's acceptance test.
type LineOfSightFunc func(a, b spatial.SixAxis, step float64) bool

// SixAxisLineOfSight builds a LineOfSightFunc backed by an assembly's
// CollidesStage predicate, sampling the straight segment at the given step.
func SixAxisLineOfSight(collides Collider[spatial.SixAxis]) LineOfSightFunc {
	return func(a, b spatial.SixAxis, step float64) bool {
		delta := b.Sub(a)
		length := math.Sqrt(
			delta.X*delta.X + delta.Y*delta.Y + delta.Z*delta.Z +
				delta.RX*delta.RX + delta.RY*delta.RY + delta.RZ*delta.RZ,
		)
		if length < spatial.Epsilon {
			return !collides(a)
		}
		steps := int(math.Ceil(length / step))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			sample := spatial.SixAxis{
				X: a.X + delta.X*t, Y: a.Y + delta.Y*t, Z: a.Z + delta.Z*t,
				RX: a.RX + delta.RX*t, RY: a.RY + delta.RY*t, RZ: a.RZ + delta.RZ*t,
			}
			if collides(sample) {
				return false
			}
		}
		return true
	}
}

// dilatedCollider wraps collides so that a pose is treated as colliding
// whenever it or any of the six axis-aligned probes at ±epsilon is;
// this is how SampleEpsilon's wall clearance guarantee is enforced,
// without requiring the caller to dilate any geometry itself. An epsilon
// of zero degenerates to collides unchanged.
func dilatedCollider(collides Collider[spatial.SixAxis], epsilon spatial.Vector3) Collider[spatial.SixAxis] {
	if epsilon.X == 0 && epsilon.Y == 0 && epsilon.Z == 0 {
		return collides
	}
	probes := []spatial.Vector3{
		{X: epsilon.X}, {X: -epsilon.X},
		{Y: epsilon.Y}, {Y: -epsilon.Y},
		{Z: epsilon.Z}, {Z: -epsilon.Z},
	}
	return func(pose spatial.SixAxis) bool {
		if collides(pose) {
			return true
		}
		for _, p := range probes {
			probe := pose
			probe.X += p.X
			probe.Y += p.Y
			probe.Z += p.Z
			if collides(probe) {
				return true
			}
		}
		return false
	}
}

type gridPoint struct{ i, j, k int }

// ResolveStage runs the three-phase down-rotate-find resolver: a
// sample-space BFS search over the translation grid at the current
// rotation, a descent toward DownPoint, and a rotation sweep that
// line-of-sight-verifies a straight segment to target before accepting.
func ResolveStage(cfg StageResolverConfig, collides Collider[spatial.SixAxis], current, target spatial.SixAxis) Path[spatial.SixAxis] {
	collides = dilatedCollider(collides, cfg.SampleEpsilon)

	if collides(current) {
		return Path[spatial.SixAxis]{Status: InvalidStart}
	}
	if current.AlmostEqual(target) {
		return Path[spatial.SixAxis]{Nodes: []spatial.SixAxis{current}, Status: Reached}
	}

	los := SixAxisLineOfSight(collides)
	losStep := cfg.effectiveLosStep()

	phase1, ok := sampleSpaceSearch(cfg, collides, los, losStep, current)
	if !ok {
		return Path[spatial.SixAxis]{Nodes: []spatial.SixAxis{current}, Status: UnreachableEnd}
	}

	phase2, ok := descend(cfg, collides, phase1[len(phase1)-1])
	nodes := append(append([]spatial.SixAxis{}, phase1...), phase2...)
	if !ok {
		return Path[spatial.SixAxis]{Nodes: nodes, Status: UnreachableEnd}
	}

	phase3, status := rotateFind(cfg, collides, los, losStep, nodes[len(nodes)-1], target)
	nodes = append(nodes, phase3...)

	nodes = smooth(collides, nodes, cfg.smoothingStep())
	return Path[spatial.SixAxis]{Nodes: nodes, Status: status}
}

// sampleSpaceSearch discretises (x, y, z) within [SampleMin, SampleMax] at
// SampleStep and performs a BFS over 6-neighbour grid edges that exist iff
// both endpoints and the line-of-sight segment between them are
// collision-free at the current rotation. collides already carries
// SampleEpsilon's clearance margin, dilated by ResolveStage before this
// runs.
func sampleSpaceSearch(cfg StageResolverConfig, collides Collider[spatial.SixAxis], los LineOfSightFunc, losStep float64, current spatial.SixAxis) ([]spatial.SixAxis, bool) {
	toPose := func(p gridPoint) spatial.SixAxis {
		return spatial.SixAxis{
			X:  cfg.SampleMin.X + float64(p.i)*cfg.SampleStep.X,
			Y:  cfg.SampleMin.Y + float64(p.j)*cfg.SampleStep.Y,
			Z:  cfg.SampleMin.Z + float64(p.k)*cfg.SampleStep.Z,
			RX: current.RX, RY: current.RY, RZ: current.RZ,
		}
	}
	dims := gridPoint{
		i: int(math.Round((cfg.SampleMax.X - cfg.SampleMin.X) / cfg.SampleStep.X)),
		j: int(math.Round((cfg.SampleMax.Y - cfg.SampleMin.Y) / cfg.SampleStep.Y)),
		k: int(math.Round((cfg.SampleMax.Z - cfg.SampleMin.Z) / cfg.SampleStep.Z)),
	}
	inBounds := func(p gridPoint) bool {
		return p.i >= 0 && p.i <= dims.i && p.j >= 0 && p.j <= dims.j && p.k >= 0 && p.k <= dims.k
	}

	start := gridPoint{
		i: int(math.Round((current.X - cfg.SampleMin.X) / cfg.SampleStep.X)),
		j: int(math.Round((current.Y - cfg.SampleMin.Y) / cfg.SampleStep.Y)),
		k: int(math.Round((current.Z - cfg.SampleMin.Z) / cfg.SampleStep.Z)),
	}
	if !inBounds(start) {
		return nil, false
	}

	neighbours := []gridPoint{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}

	visited := map[gridPoint]bool{start: true}
	parent := map[gridPoint]gridPoint{}
	queue := []gridPoint{start}

	// BFS explores until it finds any point closest to DownPoint that's
	// reachable; since phase 1's only job is to reach a collision-free
	// sample near the rotation-held translation grid, we target the grid
	// point nearest DownPoint and stop once visited.
	bestTarget := gridPoint{
		i: int(math.Round((cfg.DownPoint.X - cfg.SampleMin.X) / cfg.SampleStep.X)),
		j: int(math.Round((cfg.DownPoint.Y - cfg.SampleMin.Y) / cfg.SampleStep.Y)),
		k: int(math.Round((cfg.DownPoint.Z - cfg.SampleMin.Z) / cfg.SampleStep.Z)),
	}
	if !inBounds(bestTarget) {
		bestTarget = start
	}

	found := visited[bestTarget]
	for len(queue) > 0 && !found {
		p := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			np := gridPoint{p.i + d.i, p.j + d.j, p.k + d.k}
			if !inBounds(np) || visited[np] {
				continue
			}
			if collides(toPose(np)) || !los(toPose(p), toPose(np), losStep) {
				continue
			}
			visited[np] = true
			parent[np] = p
			queue = append(queue, np)
			if np == bestTarget {
				found = true
				break
			}
		}
	}
	if !found {
		return nil, false
	}

	var reversed []gridPoint
	for p := bestTarget; ; {
		reversed = append(reversed, p)
		if p == start {
			break
		}
		p = parent[p]
	}
	nodes := make([]spatial.SixAxis, len(reversed))
	for i, p := range reversed {
		nodes[len(reversed)-1-i] = toPose(p)
	}
	return nodes, true
}

// descend lowers the translation toward DownPoint in steps of DownStep's
// translation components, shrinking (x, y, z) toward the point while
// maintaining collision-freeness; MoveSpeed weights the per-axis
// contraction rate.
func descend(cfg StageResolverConfig, collides Collider[spatial.SixAxis], current spatial.SixAxis) ([]spatial.SixAxis, bool) {
	var nodes []spatial.SixAxis
	state := current
	for {
		delta := cfg.DownPoint.Sub(state.Translation())
		if delta.Norm() < spatial.Epsilon {
			return nodes, true
		}
		step := spatial.Vector3{
			X: clamp(delta.X*cfg.MoveSpeed.X, cfg.DownStep.X),
			Y: clamp(delta.Y*cfg.MoveSpeed.Y, cfg.DownStep.Y),
			Z: clamp(delta.Z*cfg.MoveSpeed.Z, cfg.DownStep.Z),
		}
		if step.Norm() < spatial.Epsilon {
			return nodes, true
		}
		next := state.WithTranslation(state.Translation().Add(step))
		if collides(next) {
			return nodes, false
		}
		nodes = append(nodes, next)
		state = next
	}
}

func clamp(delta, maxStep float64) float64 {
	if maxStep <= 0 {
		return 0
	}
	if math.Abs(delta) <= maxStep {
		return delta
	}
	if delta > 0 {
		return maxStep
	}
	return -maxStep
}

// rotateFind sweeps each rotation axis in steps of DownStep's rotational
// components, accepting the first rotation triple that is collision-free
// and has a collision-free losStep-sampled straight segment to target.
func rotateFind(cfg StageResolverConfig, collides Collider[spatial.SixAxis], los LineOfSightFunc, losStep float64, current, target spatial.SixAxis) ([]spatial.SixAxis, Status) {
	if los(current, target, losStep) {
		return []spatial.SixAxis{target}, Reached
	}

	maxSteps := func(from, to, step float64) int {
		if step <= 0 {
			return 0
		}
		return int(math.Ceil(math.Abs(to-from) / step))
	}
	nx := maxSteps(current.RX, target.RX, cfg.DownStep.RX)
	ny := maxSteps(current.RY, target.RY, cfg.DownStep.RY)
	nz := maxSteps(current.RZ, target.RZ, cfg.DownStep.RZ)
	n := nx
	if ny > n {
		n = ny
	}
	if nz > n {
		n = nz
	}

	signedStep := func(from, to, step float64, i int) float64 {
		if step <= 0 || i == 0 {
			return from
		}
		d := to - from
		if d == 0 {
			return from
		}
		stepped := from + float64(i)*step*sign(d)
		if (d > 0 && stepped > to) || (d < 0 && stepped < to) {
			return to
		}
		return stepped
	}

	var nodes []spatial.SixAxis
	for i := 1; i <= n; i++ {
		candidate := spatial.SixAxis{
			X: current.X, Y: current.Y, Z: current.Z,
			RX: signedStep(current.RX, target.RX, cfg.DownStep.RX, i),
			RY: signedStep(current.RY, target.RY, cfg.DownStep.RY, i),
			RZ: signedStep(current.RZ, target.RZ, cfg.DownStep.RZ, i),
		}
		if collides(candidate) {
			return nodes, UnreachableEnd
		}
		if los(candidate, target, losStep) {
			nodes = append(nodes, candidate, target)
			return nodes, Reached
		}
		nodes = append(nodes, candidate)
	}
	return nodes, UnreachableEnd
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// smooth removes redundant intermediate poses while preserving
// collision-freeness of every resulting segment: a node is dropped if the
// straight segment from its predecessor to its successor (sampled every
// smoothingStep) stays collision-free.
func smooth(collides Collider[spatial.SixAxis], nodes []spatial.SixAxis, step float64) []spatial.SixAxis {
	if len(nodes) < 3 || step <= 0 {
		return nodes
	}
	los := SixAxisLineOfSight(collides)
	out := []spatial.SixAxis{nodes[0]}
	i := 0
	for i < len(nodes)-1 {
		j := len(nodes) - 1
		for j > i+1 {
			if los(nodes[i], nodes[j], step) {
				break
			}
			j--
		}
		out = append(out, nodes[j])
		i = j
	}
	return out
}
