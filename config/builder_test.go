package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
	"github.com/Jinderamarak/safe-stage/spatial"
)

func testProvider() geomprovider.Static {
	box := spatial.BoxMesh(0.1, 0.1, 0.1)
	return geomprovider.Static{
		"thesis/chamber/walls":            box,
		"thesis/chamber/pole_piece":       box,
		"thesis/chamber/door":             box,
		"thesis/stage/base":               box,
		"thesis/stage/tilter":             box,
		"thesis/holder/circle":            box,
		"thesis/equipment/detector_alpha": box,
		"thesis/equipment/detector_beta":  box,
		"eucentric/entry":                 box,
		"eucentric/arm":                   box,
	}
}

func TestBuildSuccess(t *testing.T) {
	cfg, err := NewConfigurationBuilder().
		WithChamber(ThesisChamber()).
		WithStage(ThesisStage(), StageLinearResolver(spatial.SixAxis{X: 0.1, Y: 0.1, Z: 0.1, RX: 0.1, RY: 0.1, RZ: 0.1})).
		Build(testProvider())

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.Chamber.Full())
}

func TestBuildMissingChamber(t *testing.T) {
	_, err := NewConfigurationBuilder().
		WithStage(ThesisStage(), StageLinearResolver(spatial.SixAxis{})).
		Build(testProvider())

	assert.Equal(t, MissingChamber, err)
}

func TestBuildMissingStage(t *testing.T) {
	_, err := NewConfigurationBuilder().
		WithChamber(ThesisChamber()).
		Build(testProvider())

	assert.Equal(t, MissingStage, err)
}

func TestBuildWithEquipmentAndRetract(t *testing.T) {
	origin := spatial.Identity()
	cfg, err := NewConfigurationBuilder().
		WithChamber(ThesisChamber()).
		WithStage(ThesisStage(), StageLinearResolver(spatial.SixAxis{X: 0.1, Y: 0.1, Z: 0.1, RX: 0.1, RY: 0.1, RZ: 0.1})).
		WithHolder(ThesisHolderCircle()).
		WithEquipment(ThesisDetectorAlpha()).
		WithRetract(assembly.Id(1), ThesisRetract("eucentric", origin), RetractLinearResolver(0.1)).
		Build(testProvider())

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.NotNil(t, cfg.Stage.Holder)
	assert.Len(t, cfg.Equipment, 1)
	require.Len(t, cfg.Retracts, 1)
	assert.Equal(t, assembly.Id(1), cfg.Retracts[0].Id)
}

func TestUnimplementedPresetsReturnError(t *testing.T) {
	provider := testProvider()

	_, err := ExampleChamberWithConfig(1, 2).build(provider)
	assert.Error(t, err)

	_, err = ExampleStageWithConfig(1, 2).build(provider)
	assert.Error(t, err)

	_, err = ExampleRetractionWithConfig(1, 2).build(provider)
	assert.Error(t, err)

	_, err = ExampleEquipmentWithConfig(1, 2).build(provider)
	assert.Error(t, err)

	_, err = ExampleHolderWithConfig(1, 2).build(provider)
	assert.Error(t, err)
}
