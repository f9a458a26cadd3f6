package config

import (
	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// EquipmentConfig selects a piece of fixed in-chamber equipment, such as
// a detector, that the stage and retracts must avoid.
type EquipmentConfig struct {
	kind     equipmentKind
	asset    string
	position float64
	size     uint32
}

type equipmentKind int

const (
	equipmentThesisAlpha equipmentKind = iota
	equipmentThesisBeta
	equipmentExampleWithConfig
)

// ThesisDetectorAlpha selects the reference system's first fixed
// detector preset.
func ThesisDetectorAlpha() EquipmentConfig {
	return EquipmentConfig{kind: equipmentThesisAlpha, asset: "thesis/equipment/detector_alpha"}
}

// ThesisDetectorBeta selects the reference system's second fixed
// detector preset.
func ThesisDetectorBeta() EquipmentConfig {
	return EquipmentConfig{kind: equipmentThesisBeta, asset: "thesis/equipment/detector_beta"}
}

// ExampleEquipmentWithConfig selects the parametric example equipment,
// currently unimplemented (mirrors the upstream placeholder variant).
func ExampleEquipmentWithConfig(position float64, size uint32) EquipmentConfig {
	return EquipmentConfig{kind: equipmentExampleWithConfig, position: position, size: size}
}

func (c EquipmentConfig) build(provider geomprovider.Provider) (assembly.Part, error) {
	switch c.kind {
	case equipmentThesisAlpha, equipmentThesisBeta:
		mesh, err := provider.Mesh(c.asset)
		if err != nil {
			return assembly.Part{}, err
		}
		return assembly.NewPart(c.asset, mesh, spatial.Identity(), assembly.FullyObstructive), nil
	default:
		return assembly.Part{}, &unimplementedError{preset: "ExampleEquipmentWithConfig"}
	}
}
