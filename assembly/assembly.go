package assembly

import (
	"sync"

	"github.com/Jinderamarak/safe-stage/collision"
	"github.com/Jinderamarak/safe-stage/logging"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// sampleMountClearance is the fixed clearance above a holder's mounting
// surface at which a rasterised sample is placed, so it rests on top of
// the holder instead of burying itself inside it.
const sampleMountClearance = 0.006

// MutationError is the domain outcome of a rejected mutation, per the
// boundary's error-kind split (path status vs. operation error).
type MutationError int

const (
	// Ok means the mutation was applied.
	Ok MutationError = iota
	// InvalidState means the candidate configuration would collide.
	InvalidState
	// InvalidId means the operation referenced a retract Id not present
	// in this assembly.
	InvalidId
)

// Assembly is the mutable container holding the chamber, the stage with
// its current pose, an optional holder (carried on Stage), equipment, and
// a map of retracts with their current insertion levels. At all times the
// current configuration is collision-free; any mutation that would break
// this is rejected and the previous state is preserved.
type Assembly struct {
	mu sync.RWMutex

	logger logging.Logger

	chamber   Chamber
	stage     Stage
	equipment []Part

	retracts     map[Id]Retract
	retractState map[Id]spatial.LinearState

	stagePose spatial.SixAxis
}

// New builds an assembly from its static parts. The stage starts at the
// identity pose, which must be collision-free for the given chamber and
// equipment; callers are expected to have validated their presets before
// reaching this point (per the builder's MissingChamber/MissingStage
// checks, not re-validated here).
func New(logger logging.Logger, chamber Chamber, stage Stage, equipment []Part) *Assembly {
	if logger == nil {
		logger = logging.Global()
	}
	return &Assembly{
		logger:       logger.Named("assembly"),
		chamber:      chamber,
		stage:        stage,
		equipment:    equipment,
		retracts:     map[Id]Retract{},
		retractState: map[Id]spatial.LinearState{},
	}
}

// AddRetract registers a retract under id at its fully-retracted state.
// Per the data model, every retract Id present in the map must have a
// configured resolver; resolver wiring happens at the config layer, not
// here.
func (a *Assembly) AddRetract(id Id, retract Retract) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.retracts[id] = retract
	a.retractState[id] = spatial.LinearState{T: 0}
}

// StagePose returns the assembly's current stage pose.
func (a *Assembly) StagePose() spatial.SixAxis {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stagePose
}

// RetractState returns the current insertion level for id and whether id
// is configured in this assembly.
func (a *Assembly) RetractState(id Id) (spatial.LinearState, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.retractState[id]
	return s, ok
}

// always are the chamber parts plus equipment: relevant to every
// collision check regardless of which part is being mutated.
func (a *Assembly) always() []Part {
	always := append([]Part(nil), a.chamber.Full()...)
	always = append(always, a.equipment...)
	return always
}

func placedFromParts(parts []Part, world func(Part) spatial.Transform) []collision.Placed {
	out := make([]collision.Placed, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.PlacedAt(world(p)))
	}
	return out
}

func identityWorld(p Part) spatial.Transform { return p.Local }

// UpdateStage attempts to move the stage to pose. The affected-part set
// (per the original's immovable_without_stage rule) is the chamber, the
// equipment, and every currently configured retract at its current state;
// the stage itself supplies the candidate side of the check.
func (a *Assembly) UpdateStage(pose spatial.SixAxis) MutationError {
	a.mu.Lock()
	defer a.mu.Unlock()

	candidate := a.stage.MoveTo(pose)

	static := placedFromParts(a.always(), identityWorld)
	for id, r := range a.retracts {
		static = append(static, r.MoveTo(a.retractState[id])...)
	}

	staticGroup := collision.NewGroup(static...)
	for _, c := range candidate {
		if staticGroup.CollidesWith(c) {
			a.logger.Warnf("update_stage rejected: candidate collides with static parts")
			return InvalidState
		}
	}
	if selfColliding(candidate) {
		a.logger.Warnf("update_stage rejected: stage parts self-collide")
		return InvalidState
	}

	a.stagePose = pose
	a.logger.Infof("update_stage committed: %+v", pose)
	return Ok
}

func selfColliding(parts []collision.Placed) bool {
	return collision.NewGroup(parts...).AnyColliding()
}

// UpdateRetract attempts to move the retract identified by id to state.
// The affected-part set (per the original's immovable_stage rule) is the
// stage at its current pose, the chamber, the equipment, and every *other*
// retract at its current state.
func (a *Assembly) UpdateRetract(id Id, state spatial.LinearState) MutationError {
	a.mu.Lock()
	defer a.mu.Unlock()

	retract, ok := a.retracts[id]
	if !ok {
		a.logger.Warnf("update_retract rejected: unknown id %d", id)
		return InvalidId
	}

	candidate := retract.MoveTo(state)

	static := placedFromParts(a.always(), identityWorld)
	static = append(static, a.stage.MoveTo(a.stagePose)...)
	for otherID, other := range a.retracts {
		if otherID == id {
			continue
		}
		static = append(static, other.MoveTo(a.retractState[otherID])...)
	}

	staticGroup := collision.NewGroup(static...)
	for _, c := range candidate {
		if staticGroup.CollidesWith(c) {
			a.logger.Warnf("update_retract rejected: id %d candidate collides", id)
			return InvalidState
		}
	}

	a.retractState[id] = state
	a.logger.Infof("update_retract committed: id=%d state=%+v", id, state)
	return Ok
}

// CollidesStage reports whether pose would collide given the assembly's
// current retract states, without mutating anything. Used by path
// resolvers exploring the stage's configuration space.
func (a *Assembly) CollidesStage(pose spatial.SixAxis) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	candidate := a.stage.MoveTo(pose)
	static := placedFromParts(a.always(), identityWorld)
	for id, r := range a.retracts {
		static = append(static, r.MoveTo(a.retractState[id])...)
	}
	staticGroup := collision.NewGroup(static...)
	for _, c := range candidate {
		if staticGroup.CollidesWith(c) {
			return true
		}
	}
	return selfColliding(candidate)
}

// CollidesRetract reports whether id moving to state would collide given
// the assembly's current stage pose and the other retracts' current
// states, without mutating anything.
func (a *Assembly) CollidesRetract(id Id, state spatial.LinearState) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	retract, ok := a.retracts[id]
	if !ok {
		return true
	}
	candidate := retract.MoveTo(state)

	static := placedFromParts(a.always(), identityWorld)
	static = append(static, a.stage.MoveTo(a.stagePose)...)
	for otherID, other := range a.retracts {
		if otherID == id {
			continue
		}
		static = append(static, other.MoveTo(a.retractState[otherID])...)
	}
	staticGroup := collision.NewGroup(static...)
	for _, c := range candidate {
		if staticGroup.CollidesWith(c) {
			return true
		}
	}
	return false
}

// UpdateHolder replaces or removes the stage's holder. Since a holder
// change alters the set of parts riding the stage, the full candidate
// stage placement at the current pose is re-checked.
func (a *Assembly) UpdateHolder(holder *Holder) MutationError {
	a.mu.Lock()
	defer a.mu.Unlock()

	previous := a.stage.Holder
	a.stage.Holder = holder

	if a.collidesStageLocked(a.stagePose) {
		a.stage.Holder = previous
		a.logger.Warnf("update_holder rejected: new holder collides at current pose")
		return InvalidState
	}
	a.logger.Infof("update_holder committed")
	return Ok
}

// UpdateSampleHeightMap rasterises hm and attaches it to the current
// holder. A no-op (per the Open Question decision in SPEC_FULL.md) if no
// holder is mounted.
func (a *Assembly) UpdateSampleHeightMap(hm *HeightMap) MutationError {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stage.Holder == nil {
		a.logger.Warnf("update_sample_height_map ignored: no holder mounted")
		return Ok
	}

	previous := a.stage.Holder.Sample
	mesh := hm.ToMesh()
	// The rasterised height map rests on its own z=0 plane; offset it above
	// the holder's mounting surface so it doesn't bury itself inside the
	// holder body it sits on.
	local := spatial.NewTransform(spatial.Vector3{Z: sampleMountClearance}, spatial.IdentityQuaternion())
	sample := NewPart("sample", mesh, local, NonObstructive)
	a.stage.Holder.Sample = &sample

	if a.collidesStageLocked(a.stagePose) {
		a.stage.Holder.Sample = previous
		a.logger.Warnf("update_sample_height_map rejected: sample collides at current pose")
		return InvalidState
	}
	a.logger.Infof("update_sample_height_map committed")
	return Ok
}

// ClearSample discards the current sample, returning to "empty".
func (a *Assembly) ClearSample() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stage.Holder != nil {
		a.stage.Holder.Sample = nil
	}
}

func (a *Assembly) collidesStageLocked(pose spatial.SixAxis) bool {
	candidate := a.stage.MoveTo(pose)
	static := placedFromParts(a.always(), identityWorld)
	for id, r := range a.retracts {
		static = append(static, r.MoveTo(a.retractState[id])...)
	}
	staticGroup := collision.NewGroup(static...)
	for _, c := range candidate {
		if staticGroup.CollidesWith(c) {
			return true
		}
	}
	return selfColliding(candidate)
}

// PresentLevel is the obstruction level requested by a presentation call.
type PresentLevel = ObstructionClass

// PresentStatic returns the chamber's triangles visible at level.
func (a *Assembly) PresentStatic(level PresentLevel) []spatial.Triangle {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var parts []Part
	switch level {
	case NonObstructive:
		parts = a.chamber.NonObstructive()
	case LessObstructive:
		parts = a.chamber.LessObstructive()
	default:
		parts = a.chamber.Full()
	}
	return trianglesOf(parts, identityWorld)
}

// PresentStage returns the stage's (and mounted holder/sample's) triangles
// at the current pose.
func (a *Assembly) PresentStage() []spatial.Triangle {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.presentStageAtLocked(a.stagePose)
}

// PresentStageAt returns the stage's triangles at an arbitrary pose,
// without mutating the assembly.
func (a *Assembly) PresentStageAt(pose spatial.SixAxis) []spatial.Triangle {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.presentStageAtLocked(pose)
}

func (a *Assembly) presentStageAtLocked(pose spatial.SixAxis) []spatial.Triangle {
	return placedTriangles(a.stage.MoveTo(pose))
}

// PresentRetract returns retract id's triangles at its current state.
func (a *Assembly) PresentRetract(id Id) ([]spatial.Triangle, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	r, ok := a.retracts[id]
	if !ok {
		return nil, false
	}
	return placedTriangles(r.MoveTo(a.retractState[id])), true
}

// PresentRetractAt returns retract id's triangles at an arbitrary state,
// without mutating the assembly.
func (a *Assembly) PresentRetractAt(id Id, state spatial.LinearState) ([]spatial.Triangle, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	r, ok := a.retracts[id]
	if !ok {
		return nil, false
	}
	return placedTriangles(r.MoveTo(state)), true
}

func placedTriangles(placed []collision.Placed) []spatial.Triangle {
	out := make([]spatial.Triangle, 0)
	for _, p := range placed {
		for _, t := range p.Mesh.Triangles() {
			out = append(out, t.Transformed(p.Transform))
		}
	}
	return out
}

func trianglesOf(parts []Part, world func(Part) spatial.Transform) []spatial.Triangle {
	out := make([]spatial.Triangle, 0)
	for _, p := range parts {
		out = append(out, p.WorldTriangles(world(p))...)
	}
	return out
}
