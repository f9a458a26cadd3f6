package config

import (
	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// ChamberConfig selects a chamber preset. ThesisChamber names the
// geometry assets of the reference chamber; ExampleChamberWithConfig is a
// placeholder for a parametric chamber, not yet implemented.
type ChamberConfig struct {
	kind    chamberKind
	offsetX float64
	size    uint32
}

type chamberKind int

const (
	chamberThesis chamberKind = iota
	chamberExampleWithConfig
)

// ThesisChamber selects the reference chamber preset.
func ThesisChamber() ChamberConfig {
	return ChamberConfig{kind: chamberThesis}
}

// ExampleChamberWithConfig selects the parametric example chamber,
// currently unimplemented (mirrors the upstream placeholder variant).
func ExampleChamberWithConfig(offsetX float64, size uint32) ChamberConfig {
	return ChamberConfig{kind: chamberExampleWithConfig, offsetX: offsetX, size: size}
}

func (c ChamberConfig) build(provider geomprovider.Provider) (assembly.Chamber, error) {
	switch c.kind {
	case chamberThesis:
		walls, err := provider.Mesh("thesis/chamber/walls")
		if err != nil {
			return assembly.Chamber{}, err
		}
		pole, err := provider.Mesh("thesis/chamber/pole_piece")
		if err != nil {
			return assembly.Chamber{}, err
		}
		door, err := provider.Mesh("thesis/chamber/door")
		if err != nil {
			return assembly.Chamber{}, err
		}
		return assembly.Chamber{
			Walls:     assembly.NewPart("chamber/walls", walls, spatial.Identity(), assembly.LessObstructive),
			PolePiece: assembly.NewPart("chamber/pole_piece", pole, spatial.Identity(), assembly.NonObstructive),
			Door:      assembly.NewPart("chamber/door", door, spatial.Identity(), assembly.FullyObstructive),
		}, nil
	default:
		return assembly.Chamber{}, &unimplementedError{preset: "ExampleChamberWithConfig"}
	}
}
