package config

import (
	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
	"github.com/Jinderamarak/safe-stage/pathplan"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// thesisRotationPivot and thesisStageOffset are the reference stage's
// kinematic constants: the point the tilter and holder rotate around,
// and the fixed offset of the stage's moving parts from its pose origin.
var (
	thesisRotationPivot = spatial.Vector3{X: 0, Y: 0, Z: 0.05}
	thesisStageOffset   = spatial.Vector3{X: 0, Y: 0, Z: 0}
)

// StageConfig selects a stage preset.
type StageConfig struct {
	kind           stageKind
	calibrationX   float64
	tiltCorrection float64
}

type stageKind int

const (
	stageThesis stageKind = iota
	stageExampleWithConfig
)

// ThesisStage selects the reference stage preset.
func ThesisStage() StageConfig { return StageConfig{kind: stageThesis} }

// ExampleStageWithConfig selects the parametric example stage, currently
// unimplemented (mirrors the upstream placeholder variant).
func ExampleStageWithConfig(calibrationX, tiltCorrection float64) StageConfig {
	return StageConfig{kind: stageExampleWithConfig, calibrationX: calibrationX, tiltCorrection: tiltCorrection}
}

func (c StageConfig) build(provider geomprovider.Provider) (assembly.Stage, error) {
	switch c.kind {
	case stageThesis:
		base, err := provider.Mesh("thesis/stage/base")
		if err != nil {
			return assembly.Stage{}, err
		}
		tilter, err := provider.Mesh("thesis/stage/tilter")
		if err != nil {
			return assembly.Stage{}, err
		}
		baseLocal := spatial.NewTransform(spatial.Vector3{Z: -0.04}, spatial.IdentityQuaternion())
		return assembly.Stage{
			Base:          assembly.NewPart("stage/base", base, baseLocal, assembly.FullyObstructive),
			Tilter:        assembly.NewPart("stage/tilter", tilter, spatial.Identity(), assembly.FullyObstructive),
			RotationPivot: thesisRotationPivot,
			StageOffset:   thesisStageOffset,
		}, nil
	default:
		return assembly.Stage{}, &unimplementedError{preset: "ExampleStageWithConfig"}
	}
}

// StageResolver resolves a path for the stage's 6-DOF pose between two
// configurations, given a collision predicate over candidate poses.
type StageResolver interface {
	Resolve(collides pathplan.Collider[spatial.SixAxis], current, target spatial.SixAxis) pathplan.Path[spatial.SixAxis]
}

type stageResolverFunc func(pathplan.Collider[spatial.SixAxis], spatial.SixAxis, spatial.SixAxis) pathplan.Path[spatial.SixAxis]

func (f stageResolverFunc) Resolve(collides pathplan.Collider[spatial.SixAxis], current, target spatial.SixAxis) pathplan.Path[spatial.SixAxis] {
	return f(collides, current, target)
}

// ResolverStageConfig selects a stage path resolver preset.
type ResolverStageConfig struct {
	kind       resolverStageKind
	stepSize   spatial.SixAxis
	downRotate pathplan.StageResolverConfig
}

type resolverStageKind int

const (
	resolverStageLinear resolverStageKind = iota
	resolverStageDownRotateFind
	resolverStageUnit
	resolverStageEmpty
)

// StageLinearResolver moves every axis independently by stepSize per
// step, the simplest stage resolver preset.
func StageLinearResolver(stepSize spatial.SixAxis) ResolverStageConfig {
	return ResolverStageConfig{kind: resolverStageLinear, stepSize: stepSize}
}

// DownRotateFindResolver selects the three-phase sample/descend/rotate
// resolver, the reference system's stage resolver.
func DownRotateFindResolver(cfg pathplan.StageResolverConfig) ResolverStageConfig {
	return ResolverStageConfig{kind: resolverStageDownRotateFind, downRotate: cfg}
}

// UnitStageResolver moves directly to the target in a single step,
// skipping collision checks along the way; useful for tests and presets
// where no obstruction is expected between current and target.
func UnitStageResolver() ResolverStageConfig { return ResolverStageConfig{kind: resolverStageUnit} }

// EmptyStageResolver never reaches any target other than the current
// pose; a placeholder for configurations without a usable resolver.
func EmptyStageResolver() ResolverStageConfig { return ResolverStageConfig{kind: resolverStageEmpty} }

func (c ResolverStageConfig) build() StageResolver {
	switch c.kind {
	case resolverStageLinear:
		stepSize := c.stepSize
		return stageResolverFunc(func(collides pathplan.Collider[spatial.SixAxis], current, target spatial.SixAxis) pathplan.Path[spatial.SixAxis] {
			return pathplan.ResolveStageLinear(stepSize, collides, current, target)
		})
	case resolverStageDownRotateFind:
		cfg := c.downRotate
		return stageResolverFunc(func(collides pathplan.Collider[spatial.SixAxis], current, target spatial.SixAxis) pathplan.Path[spatial.SixAxis] {
			return pathplan.ResolveStage(cfg, collides, current, target)
		})
	case resolverStageUnit:
		return stageResolverFunc(func(collides pathplan.Collider[spatial.SixAxis], current, target spatial.SixAxis) pathplan.Path[spatial.SixAxis] {
			if collides(target) {
				return pathplan.Path[spatial.SixAxis]{Status: pathplan.UnreachableEnd}
			}
			return pathplan.Path[spatial.SixAxis]{Nodes: []spatial.SixAxis{target}, Status: pathplan.Reached}
		})
	default:
		return stageResolverFunc(func(_ pathplan.Collider[spatial.SixAxis], current, target spatial.SixAxis) pathplan.Path[spatial.SixAxis] {
			if current.AlmostEqual(target) {
				return pathplan.Path[spatial.SixAxis]{Nodes: []spatial.SixAxis{current}, Status: pathplan.Reached}
			}
			return pathplan.Path[spatial.SixAxis]{Status: pathplan.UnreachableEnd}
		})
	}
}
