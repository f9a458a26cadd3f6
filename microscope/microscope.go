// Package microscope implements the boundary API consumed by the GUI or
// any foreign wrapper: a thin facade over config.Configuration and
// assembly.Assembly that also owns the configured path resolvers.
package microscope

import (
	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/config"
	"github.com/Jinderamarak/safe-stage/logging"
	"github.com/Jinderamarak/safe-stage/pathplan"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// Vector3 is a world-frame vertex, matching the boundary's TriangleBuffer
// element type.
type Vector3 = spatial.Vector3

// TriangleBuffer is a flat, serialisation-ready triangle list: consecutive
// triples of vertices, front face counter-clockwise viewed from the
// outward normal.
type TriangleBuffer []Vector3

func toBuffer(triangles []spatial.Triangle) TriangleBuffer {
	buf := make(TriangleBuffer, 0, len(triangles)*3)
	for _, t := range triangles {
		p := t.Points()
		buf = append(buf, p[0], p[1], p[2])
	}
	return buf
}

// PathResult is the boundary's serialisable form of a pathplan.Path.
type PathResult[S any] struct {
	Status pathplan.Status
	Nodes  []S
}

func toPathResult[S any](p pathplan.Path[S]) PathResult[S] {
	return PathResult[S]{Status: p.Status, Nodes: p.Nodes}
}

// Microscope is the running assembly plus the resolvers configured for
// it, the single handle the boundary API operates on after
// MicroscopeFromConfig.
type Microscope struct {
	assembly *assembly.Assembly

	stageResolver    config.StageResolver
	retractResolvers map[assembly.Id]config.RetractResolver
}

// MicroscopeFromConfig builds a running Microscope from a resolved
// Configuration, registering every configured retract under its Id.
func MicroscopeFromConfig(logger logging.Logger, cfg *config.Configuration) *Microscope {
	a := assembly.New(logger, cfg.Chamber, cfg.Stage, cfg.Equipment)

	resolvers := make(map[assembly.Id]config.RetractResolver, len(cfg.Retracts))
	for _, r := range cfg.Retracts {
		a.AddRetract(r.Id, r.Retract)
		resolvers[r.Id] = r.Resolver
	}

	return &Microscope{
		assembly:         a,
		stageResolver:    cfg.StageResolver,
		retractResolvers: resolvers,
	}
}

// UpdateHolder replaces the specimen holder, or removes it if holder is
// nil.
func (m *Microscope) UpdateHolder(holder *assembly.Holder) assembly.MutationError {
	return m.assembly.UpdateHolder(holder)
}

// RemoveHolder removes the specimen holder, discarding any mounted
// sample with it.
func (m *Microscope) RemoveHolder() assembly.MutationError {
	return m.assembly.UpdateHolder(nil)
}

// UpdateSampleHeightMap rasterises and attaches a new sample on the
// current holder.
func (m *Microscope) UpdateSampleHeightMap(data []float64, nx, ny int, realX, realY float64) (assembly.MutationError, error) {
	hm, err := assembly.NewHeightMap(data, nx, ny, realX, realY)
	if err != nil {
		return assembly.InvalidState, err
	}
	return m.assembly.UpdateSampleHeightMap(hm), nil
}

// ClearSample discards the current sample.
func (m *Microscope) ClearSample() { m.assembly.ClearSample() }

// UpdateStageState attempts to move the stage directly to pose.
func (m *Microscope) UpdateStageState(pose spatial.SixAxis) assembly.MutationError {
	return m.assembly.UpdateStage(pose)
}

// UpdateRetractState attempts to move retract id directly to state.
func (m *Microscope) UpdateRetractState(id assembly.Id, state spatial.LinearState) assembly.MutationError {
	return m.assembly.UpdateRetract(id, state)
}

// UpdateResolvers re-validates the microscope's current configuration
// (stage pose and every retract's state) against the assembly's current
// collision geometry, without changing any state. Returns InvalidState if
// the current configuration is no longer collision-free (e.g. after
// equipment geometry was swapped out from under a live Microscope);
// otherwise Ok.
func (m *Microscope) UpdateResolvers() assembly.MutationError {
	if m.assembly.CollidesStage(m.assembly.StagePose()) {
		return assembly.InvalidState
	}
	for id := range m.retractResolvers {
		state, ok := m.assembly.RetractState(id)
		if ok && m.assembly.CollidesRetract(id, state) {
			return assembly.InvalidState
		}
	}
	return assembly.Ok
}

// FindStagePath resolves a path for the stage from its current pose to
// target, using the configured stage resolver.
func (m *Microscope) FindStagePath(target spatial.SixAxis) PathResult[spatial.SixAxis] {
	current := m.assembly.StagePose()
	path := m.stageResolver.Resolve(m.assembly.CollidesStage, current, target)
	return toPathResult(path)
}

// FindRetractPath resolves a path for retract id from its current state
// to target, using its configured resolver. Returns an InvalidStart
// result if id is not configured.
func (m *Microscope) FindRetractPath(id assembly.Id, target spatial.LinearState) PathResult[spatial.LinearState] {
	current, ok := m.assembly.RetractState(id)
	resolver, hasResolver := m.retractResolvers[id]
	if !ok || !hasResolver {
		return PathResult[spatial.LinearState]{Status: pathplan.InvalidStart}
	}
	collides := func(s spatial.LinearState) bool { return m.assembly.CollidesRetract(id, s) }
	return toPathResult(resolver.Resolve(collides, current, target))
}

// PresentStaticFull returns every chamber triangle.
func (m *Microscope) PresentStaticFull() TriangleBuffer {
	return toBuffer(m.assembly.PresentStatic(assembly.FullyObstructive))
}

// PresentStaticLessObstructive returns the chamber triangles visible at
// the less-obstructive level.
func (m *Microscope) PresentStaticLessObstructive() TriangleBuffer {
	return toBuffer(m.assembly.PresentStatic(assembly.LessObstructive))
}

// PresentStaticNonObstructive returns the chamber triangles visible at
// the non-obstructive level.
func (m *Microscope) PresentStaticNonObstructive() TriangleBuffer {
	return toBuffer(m.assembly.PresentStatic(assembly.NonObstructive))
}

// PresentStage returns the stage's triangles at its current pose.
func (m *Microscope) PresentStage() TriangleBuffer {
	return toBuffer(m.assembly.PresentStage())
}

// PresentStageAt returns the stage's triangles at an arbitrary pose.
func (m *Microscope) PresentStageAt(pose spatial.SixAxis) TriangleBuffer {
	return toBuffer(m.assembly.PresentStageAt(pose))
}

// PresentRetract returns retract id's triangles at its current state.
func (m *Microscope) PresentRetract(id assembly.Id) (TriangleBuffer, bool) {
	tris, ok := m.assembly.PresentRetract(id)
	return toBuffer(tris), ok
}

// PresentRetractAt returns retract id's triangles at an arbitrary state.
func (m *Microscope) PresentRetractAt(id assembly.Id, state spatial.LinearState) (TriangleBuffer, bool) {
	tris, ok := m.assembly.PresentRetractAt(id, state)
	return toBuffer(tris), ok
}
