package microscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/config"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
	"github.com/Jinderamarak/safe-stage/logging"
	"github.com/Jinderamarak/safe-stage/pathplan"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// translated returns mesh with every triangle offset by v, used to place
// preset geometry at a fixed point since Provider meshes are given in
// the asset's own local frame.
func translated(mesh *spatial.TriangleMesh, v spatial.Vector3) *spatial.TriangleMesh {
	tr := spatial.NewTransform(v, spatial.IdentityQuaternion())
	tris := mesh.Triangles()
	out := make([]spatial.Triangle, len(tris))
	for i, t := range tris {
		out[i] = t.Transformed(tr)
	}
	return spatial.NewTriangleMesh(out)
}

// farProvider places the chamber walls and door far away from the origin
// so an identity-posed stage starts collision-free, matching the "empty
// chamber" scenarios.
func farProvider() geomprovider.Static {
	tiny := spatial.BoxMesh(0.01, 0.01, 0.01)
	return geomprovider.Static{
		"thesis/chamber/walls":            translated(spatial.BoxMesh(2, 2, 2), spatial.Vector3{X: 100}),
		"thesis/chamber/pole_piece":       translated(spatial.BoxMesh(0.02, 0.02, 0.02), spatial.Vector3{Z: -50}),
		"thesis/chamber/door":             translated(spatial.BoxMesh(0.3, 0.3, 0.01), spatial.Vector3{X: 100}),
		"thesis/stage/base":               tiny,
		"thesis/stage/tilter":             tiny,
		"thesis/holder/circle":            tiny,
		"thesis/equipment/detector_alpha": translated(spatial.BoxMesh(0.5, 0.5, 0.5), spatial.Vector3{X: 100}),
		"eucentric/entry":                 tiny,
		"eucentric/arm":                   tiny,
	}
}

// rotationSweepProvider is farProvider but with an elongated holder (so
// a Z-rotation actually sweeps its footprint) and a detector placed just
// outside the holder's reach at the identity pose but inside it once
// rotated, for TestScenario4.
func rotationSweepProvider() geomprovider.Static {
	p := farProvider()
	p["thesis/holder/circle"] = spatial.BoxMesh(0.2, 0.02, 0.01)
	p["thesis/equipment/detector_alpha"] = translated(spatial.BoxMesh(0.06, 0.06, 0.06), spatial.Vector3{Y: 0.08, Z: 0.04})
	return p
}

func buildMicroscope(t *testing.T, b *config.ConfigurationBuilder) *Microscope {
	t.Helper()
	cfg, err := b.Build(farProvider())
	require.NoError(t, err)
	return MicroscopeFromConfig(logging.NewTestLogger(t), cfg)
}

func TestScenario1EmptyChamberIdentityPoseReached(t *testing.T) {
	m := buildMicroscope(t, config.NewConfigurationBuilder().
		WithChamber(config.ThesisChamber()).
		WithStage(config.ThesisStage(), config.StageLinearResolver(spatial.SixAxis{X: 0.1, Y: 0.1, Z: 0.1, RX: 0.1, RY: 0.1, RZ: 0.1})))

	result := m.FindStagePath(spatial.SixAxis{})
	assert.Equal(t, pathplan.Reached, result.Status)
	require.Len(t, result.Nodes, 1)
	assert.True(t, result.Nodes[0].AlmostEqual(spatial.SixAxis{}))
}

func TestScenario2LinearRetractOutElevenNodes(t *testing.T) {
	origin := spatial.NewTransform(spatial.Vector3{X: 0.2}, spatial.IdentityQuaternion())
	m := buildMicroscope(t, config.NewConfigurationBuilder().
		WithChamber(config.ThesisChamber()).
		WithStage(config.ThesisStage(), config.StageLinearResolver(spatial.SixAxis{X: 0.1})).
		WithRetract(assembly.Id(1), config.ThesisRetract("eucentric", origin), config.RetractLinearResolver(0.1)))

	require.Equal(t, assembly.Ok, m.UpdateRetractState(assembly.Id(1), spatial.LinearState{T: 1.0}))

	result := m.FindRetractPath(assembly.Id(1), spatial.LinearState{T: 0.0})
	assert.Equal(t, pathplan.Reached, result.Status)
	require.Len(t, result.Nodes, 11)
	assert.InDelta(t, 1.0, result.Nodes[0].T, 1e-9)
	assert.InDelta(t, 0.0, result.Nodes[len(result.Nodes)-1].T, 1e-9)
}

func TestScenario3BlockedRetract(t *testing.T) {
	origin := spatial.NewTransform(spatial.Vector3{X: 0.2}, spatial.IdentityQuaternion())
	m := buildMicroscope(t, config.NewConfigurationBuilder().
		WithChamber(config.ThesisChamber()).
		WithStage(config.ThesisStage(), config.StageLinearResolver(spatial.SixAxis{X: 0.1})).
		WithRetract(assembly.Id(1), config.ThesisRetract("eucentric", origin), config.RetractLinearResolver(0.1)))

	require.Equal(t, assembly.Ok, m.UpdateRetractState(assembly.Id(1), spatial.LinearState{T: 1.0}))

	blocked := func(s spatial.LinearState) bool { return s.T < 0.3 }
	path := pathplan.ResolveRetract(0.1, blocked, spatial.LinearState{T: 1.0}, spatial.LinearState{T: 0.0})
	assert.Equal(t, pathplan.UnreachableEnd, path.Status)
	require.Len(t, path.Nodes, 8)
	assert.InDelta(t, 0.3, path.Nodes[len(path.Nodes)-1].T, 1e-9)
}

func TestScenario4StageRotationBlockedByEquipment(t *testing.T) {
	cfg, err := config.NewConfigurationBuilder().
		WithChamber(config.ThesisChamber()).
		WithStage(config.ThesisStage(), config.StageLinearResolver(spatial.SixAxis{RZ: 0.1})).
		WithHolder(config.ThesisHolderCircle()).
		WithEquipment(config.ThesisDetectorAlpha()).
		Build(rotationSweepProvider())
	require.NoError(t, err)
	m := MicroscopeFromConfig(logging.NewTestLogger(t), cfg)

	// At rest the elongated holder points along X, clear of the detector
	// sitting off to the side in Y; rotating a quarter turn sweeps the
	// holder's long axis straight into it.
	target := spatial.SixAxis{RZ: 3.14159}
	result := m.FindStagePath(target)

	require.NotEmpty(t, result.Nodes)
	for _, n := range result.Nodes {
		assert.False(t, m.assembly.CollidesStage(n), "every returned node must be collision-free")
	}
	assert.Equal(t, pathplan.UnreachableEnd, result.Status)
}

func TestScenario5SampleHeightMapIncreasesTriangleCount(t *testing.T) {
	m := buildMicroscope(t, config.NewConfigurationBuilder().
		WithChamber(config.ThesisChamber()).
		WithStage(config.ThesisStage(), config.StageLinearResolver(spatial.SixAxis{X: 0.1})).
		WithHolder(config.ThesisHolderCircle()))

	before := len(m.PresentStage())
	data := make([]float64, 16)
	for i := range data {
		data[i] = 0.01
	}
	result, err := m.UpdateSampleHeightMap(data, 4, 4, 0.02, 0.02)
	require.NoError(t, err)
	require.Equal(t, assembly.Ok, result)

	after := len(m.PresentStage())
	assert.Greater(t, after, before)

	current := m.assembly.StagePose()
	assert.Equal(t, assembly.Ok, m.UpdateStageState(current))
}

func TestScenario6InvalidIdRetractUpdate(t *testing.T) {
	m := buildMicroscope(t, config.NewConfigurationBuilder().
		WithChamber(config.ThesisChamber()).
		WithStage(config.ThesisStage(), config.StageLinearResolver(spatial.SixAxis{X: 0.1})))

	result := m.UpdateRetractState(assembly.Id(42), spatial.LinearState{T: 0.5})
	assert.Equal(t, assembly.InvalidId, result)
}

func TestPresentStaticLevelsNest(t *testing.T) {
	m := buildMicroscope(t, config.NewConfigurationBuilder().
		WithChamber(config.ThesisChamber()).
		WithStage(config.ThesisStage(), config.StageLinearResolver(spatial.SixAxis{X: 0.1})))

	full := m.PresentStaticFull()
	less := m.PresentStaticLessObstructive()
	non := m.PresentStaticNonObstructive()
	assert.GreaterOrEqual(t, len(full), len(less))
	assert.GreaterOrEqual(t, len(less), len(non))
}
