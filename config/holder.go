package config

import (
	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// HolderConfig selects a specimen holder preset.
type HolderConfig struct {
	kind   holderKind
	height float64
	width  float64
}

type holderKind int

const (
	holderThesisCircle holderKind = iota
	holderThesisSquare
	holderExampleWithConfig
)

// ThesisHolderCircle selects the reference system's circular holder.
func ThesisHolderCircle() HolderConfig { return HolderConfig{kind: holderThesisCircle} }

// ThesisHolderSquare selects the reference system's square holder.
func ThesisHolderSquare() HolderConfig { return HolderConfig{kind: holderThesisSquare} }

// ExampleHolderWithConfig selects the parametric example holder,
// currently unimplemented (mirrors the upstream placeholder variant).
func ExampleHolderWithConfig(height, width float64) HolderConfig {
	return HolderConfig{kind: holderExampleWithConfig, height: height, width: width}
}

func (c HolderConfig) build(provider geomprovider.Provider) (*assembly.Holder, error) {
	var asset string
	switch c.kind {
	case holderThesisCircle:
		asset = "thesis/holder/circle"
	case holderThesisSquare:
		asset = "thesis/holder/square"
	default:
		return nil, &unimplementedError{preset: "ExampleHolderWithConfig"}
	}

	mesh, err := provider.Mesh(asset)
	if err != nil {
		return nil, err
	}
	local := spatial.NewTransform(spatial.Vector3{Z: 0.04}, spatial.IdentityQuaternion())
	part := assembly.NewPart(asset, mesh, local, assembly.FullyObstructive)
	return &assembly.Holder{Part: part}, nil
}
