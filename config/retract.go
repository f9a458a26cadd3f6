package config

import (
	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
	"github.com/Jinderamarak/safe-stage/pathplan"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// RetractConfig selects a retract device preset.
type RetractConfig struct {
	kind      retractKind
	armLength float64
	speed     float64
	asset     string
	origin    spatial.Transform
}

type retractKind int

const (
	retractThesis retractKind = iota
	retractExampleWithConfig
)

// ThesisRetract selects one of the reference system's named retractable
// devices, placed at origin within the chamber.
func ThesisRetract(asset string, origin spatial.Transform) RetractConfig {
	return RetractConfig{kind: retractThesis, asset: asset, origin: origin}
}

// ExampleRetractionWithConfig selects the parametric example retract,
// currently unimplemented (mirrors the upstream placeholder variant).
func ExampleRetractionWithConfig(armLength, speed float64) RetractConfig {
	return RetractConfig{kind: retractExampleWithConfig, armLength: armLength, speed: speed}
}

func (c RetractConfig) build(provider geomprovider.Provider) (assembly.Retract, error) {
	switch c.kind {
	case retractThesis:
		entry, err := provider.Mesh(c.asset + "/entry")
		if err != nil {
			return assembly.Retract{}, err
		}
		arm, err := provider.Mesh(c.asset + "/arm")
		if err != nil {
			return assembly.Retract{}, err
		}
		entryLocal := spatial.NewTransform(spatial.Vector3{X: 0.05}, spatial.IdentityQuaternion())
		return assembly.Retract{
			Entry:                assembly.NewPart(c.asset+"/entry", entry, entryLocal, assembly.FullyObstructive),
			Arm:                  assembly.NewPart(c.asset+"/arm", arm, spatial.Identity(), assembly.FullyObstructive),
			RetractedPosition:    spatial.Vector3{},
			RetractedOrientation: spatial.IdentityQuaternion(),
			InsertedPosition:     spatial.Vector3{X: 0, Y: 0, Z: -0.1},
			InsertedOrientation:  spatial.IdentityQuaternion(),
			Origin:               c.origin,
		}, nil
	default:
		return assembly.Retract{}, &unimplementedError{preset: "ExampleRetractionWithConfig"}
	}
}

// RetractResolver resolves a path for a single retract's insertion level.
type RetractResolver interface {
	Resolve(collides pathplan.Collider[spatial.LinearState], current, target spatial.LinearState) pathplan.Path[spatial.LinearState]
}

type retractResolverFunc func(pathplan.Collider[spatial.LinearState], spatial.LinearState, spatial.LinearState) pathplan.Path[spatial.LinearState]

func (f retractResolverFunc) Resolve(collides pathplan.Collider[spatial.LinearState], current, target spatial.LinearState) pathplan.Path[spatial.LinearState] {
	return f(collides, current, target)
}

// ResolverRetractConfig selects a retract path resolver preset.
type ResolverRetractConfig struct {
	stepSize float64
}

// RetractLinearResolver is the reference system's only retract resolver:
// a uniform step of stepSize in the [0, 1] insertion range.
func RetractLinearResolver(stepSize float64) ResolverRetractConfig {
	return ResolverRetractConfig{stepSize: stepSize}
}

func (c ResolverRetractConfig) build() RetractResolver {
	stepSize := c.stepSize
	return retractResolverFunc(func(collides pathplan.Collider[spatial.LinearState], current, target spatial.LinearState) pathplan.Path[spatial.LinearState] {
		return pathplan.ResolveRetract(stepSize, collides, current, target)
	})
}
