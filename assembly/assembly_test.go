package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinderamarak/safe-stage/logging"
	"github.com/Jinderamarak/safe-stage/spatial"
)

func flatWalls(t *testing.T) Chamber {
	t.Helper()
	// A large hollow-ish box standing in for the chamber: walls far from
	// the origin so the identity stage pose starts collision-free.
	walls := spatial.BoxMesh(2, 2, 2)
	pole := spatial.BoxMesh(0.05, 0.05, 0.05)
	door := spatial.BoxMesh(0.3, 0.01, 0.3)
	return Chamber{
		Walls:     NewPart("walls", walls, spatial.NewTransform(spatial.Vector3{X: 100}, spatial.IdentityQuaternion()), FullyObstructive),
		PolePiece: NewPart("pole-piece", pole, spatial.Identity(), NonObstructive),
		Door:      NewPart("door", door, spatial.NewTransform(spatial.Vector3{X: 100}, spatial.IdentityQuaternion()), LessObstructive),
	}
}

func tinyStage(t *testing.T) Stage {
	t.Helper()
	base := spatial.BoxMesh(0.01, 0.01, 0.01)
	tilter := spatial.BoxMesh(0.01, 0.01, 0.01)
	return Stage{
		Base:          NewPart("base", base, spatial.NewTransform(spatial.Vector3{Z: -0.02}, spatial.IdentityQuaternion()), FullyObstructive),
		Tilter:        NewPart("tilter", tilter, spatial.Identity(), FullyObstructive),
		RotationPivot: spatial.Vector3{Z: 0.0125},
		StageOffset:   spatial.Vector3{Z: -0.0625},
	}
}

func newTestAssembly(t *testing.T) *Assembly {
	t.Helper()
	logger := logging.NewTestLogger(t)
	return New(logger, flatWalls(t), tinyStage(t), nil)
}

func TestUpdateStageIdentityIsCollisionFree(t *testing.T) {
	a := newTestAssembly(t)
	result := a.UpdateStage(spatial.SixAxis{})
	assert.Equal(t, Ok, result)
	assert.True(t, a.StagePose().AlmostEqual(spatial.SixAxis{}))
}

func TestUpdateStageRejectionLeavesPreviousState(t *testing.T) {
	a := newTestAssembly(t)
	require.Equal(t, Ok, a.UpdateStage(spatial.SixAxis{X: 0.001}))
	previous := a.StagePose()

	// Moving the stage onto the chamber wall's position must be rejected.
	result := a.UpdateStage(spatial.SixAxis{X: 100})
	assert.Equal(t, InvalidState, result)
	assert.True(t, a.StagePose().AlmostEqual(previous), "rejected mutation must not move the stage")
}

func TestUpdateRetractUnknownIdReturnsInvalidId(t *testing.T) {
	a := newTestAssembly(t)
	result := a.UpdateRetract(Id(42), spatial.LinearState{T: 0.5})
	assert.Equal(t, InvalidId, result)
}

func TestAddRetractStartsFullyRetracted(t *testing.T) {
	a := newTestAssembly(t)
	entry := NewPart("entry", spatial.BoxMesh(0.01, 0.01, 0.01), spatial.Identity(), FullyObstructive)
	arm := spatial.BoxMesh(0.01, 0.01, 0.01)
	a.AddRetract(Id(1), Retract{
		Entry:                entry,
		Arm:                  NewPart("arm", arm, spatial.Identity(), FullyObstructive),
		RetractedPosition:    spatial.Vector3{X: 0.08},
		RetractedOrientation: spatial.IdentityQuaternion(),
		InsertedPosition:     spatial.Vector3{},
		InsertedOrientation:  spatial.IdentityQuaternion(),
		Origin:               spatial.NewTransform(spatial.Vector3{X: 50}, spatial.IdentityQuaternion()),
	})
	state, ok := a.RetractState(Id(1))
	require.True(t, ok)
	assert.Equal(t, 0.0, state.T)
}

func TestUpdateSampleHeightMapNoopWithoutHolder(t *testing.T) {
	a := newTestAssembly(t)
	before := len(a.PresentStage())
	hm, err := NewHeightMap([]float64{0.01, 0.01, 0.01, 0.01}, 2, 2, 0.02, 0.02)
	require.NoError(t, err)
	result := a.UpdateSampleHeightMap(hm)
	assert.Equal(t, Ok, result)
	assert.Equal(t, before, len(a.PresentStage()), "without a holder, the sample must not attach")
}

func TestUpdateSampleHeightMapIncreasesStageTriangleCount(t *testing.T) {
	a := newTestAssembly(t)
	before := len(a.PresentStage())

	// Mounted above the tilter so the holder itself starts collision-free.
	holderLocal := spatial.NewTransform(spatial.Vector3{Z: 0.02}, spatial.IdentityQuaternion())
	a.stage.Holder = &Holder{Part: NewPart("holder", spatial.BoxMesh(0.01, 0.01, 0.01), holderLocal, FullyObstructive)}

	hm, err := NewHeightMap([]float64{0.01, 0.01, 0.01, 0.01}, 2, 2, 0.02, 0.02)
	require.NoError(t, err)
	require.Equal(t, Ok, a.UpdateSampleHeightMap(hm))

	after := len(a.PresentStage())
	assert.Greater(t, after, before)

	// Updating the stage at its former current pose must still succeed.
	assert.Equal(t, Ok, a.UpdateStage(a.StagePose()))
}

func TestObstructionVisibility(t *testing.T) {
	assert.True(t, Visible(NonObstructive, NonObstructive))
	assert.False(t, Visible(LessObstructive, NonObstructive))
	assert.True(t, Visible(LessObstructive, LessObstructive))
	assert.True(t, Visible(FullyObstructive, FullyObstructive))
	assert.False(t, Visible(FullyObstructive, LessObstructive))
}
