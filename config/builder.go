package config

import (
	"github.com/Jinderamarak/safe-stage/assembly"
	"github.com/Jinderamarak/safe-stage/internal/geomprovider"
)

// BuilderError is the outcome of an incomplete ConfigurationBuilder.Build
// call: a required preset was never set. Unlike MutationError and
// pathplan.Status, this one implements error since Build can also fail
// with a genuine Provider error and the two need a common return type.
type BuilderError int

const (
	// MissingChamber means Build was called without WithChamber.
	MissingChamber BuilderError = iota
	// MissingStage means Build was called without WithStage.
	MissingStage
)

func (e BuilderError) Error() string {
	switch e {
	case MissingChamber:
		return "config: chamber preset was never set"
	case MissingStage:
		return "config: stage preset and resolver were never set"
	default:
		return "config: unknown builder error"
	}
}

type retractEntry struct {
	id       assembly.Id
	retract  RetractConfig
	resolver ResolverRetractConfig
}

// ConfigurationBuilder accumulates presets before resolving their
// geometry through a Provider and producing a Configuration.
type ConfigurationBuilder struct {
	chamber       *ChamberConfig
	stage         *StageConfig
	stageResolver *ResolverStageConfig
	holder        *HolderConfig
	equipment     []EquipmentConfig
	retracts      []retractEntry
}

// NewConfigurationBuilder returns an empty builder.
func NewConfigurationBuilder() *ConfigurationBuilder {
	return &ConfigurationBuilder{}
}

// WithChamber sets the chamber preset. Required before Build.
func (b *ConfigurationBuilder) WithChamber(chamber ChamberConfig) *ConfigurationBuilder {
	b.chamber = &chamber
	return b
}

// WithStage sets the stage preset and its path resolver. Required before
// Build.
func (b *ConfigurationBuilder) WithStage(stage StageConfig, resolver ResolverStageConfig) *ConfigurationBuilder {
	b.stage = &stage
	b.stageResolver = &resolver
	return b
}

// WithHolder sets the specimen holder mounted at start-up. Optional; an
// assembly with no holder can still be built and have one attached later
// via the holder's mutation entry point.
func (b *ConfigurationBuilder) WithHolder(holder HolderConfig) *ConfigurationBuilder {
	b.holder = &holder
	return b
}

// WithEquipment adds a piece of fixed equipment.
func (b *ConfigurationBuilder) WithEquipment(equipment EquipmentConfig) *ConfigurationBuilder {
	b.equipment = append(b.equipment, equipment)
	return b
}

// WithRetract adds a retract device under id, along with its path
// resolver.
func (b *ConfigurationBuilder) WithRetract(id assembly.Id, retract RetractConfig, resolver ResolverRetractConfig) *ConfigurationBuilder {
	b.retracts = append(b.retracts, retractEntry{id: id, retract: retract, resolver: resolver})
	return b
}

// Build resolves every preset's geometry through provider and returns a
// Configuration, or a BuilderError if a required preset is missing.
func (b *ConfigurationBuilder) Build(provider geomprovider.Provider) (*Configuration, error) {
	if b.chamber == nil {
		return nil, MissingChamber
	}
	if b.stage == nil || b.stageResolver == nil {
		return nil, MissingStage
	}

	chamber, err := b.chamber.build(provider)
	if err != nil {
		return nil, err
	}
	stage, err := b.stage.build(provider)
	if err != nil {
		return nil, err
	}
	if b.holder != nil {
		holder, err := b.holder.build(provider)
		if err != nil {
			return nil, err
		}
		stage.Holder = holder
	}

	equipment := make([]assembly.Part, 0, len(b.equipment))
	for _, e := range b.equipment {
		part, err := e.build(provider)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, part)
	}

	retracts := make([]BuiltRetract, 0, len(b.retracts))
	for _, r := range b.retracts {
		retract, err := r.retract.build(provider)
		if err != nil {
			return nil, err
		}
		retracts = append(retracts, BuiltRetract{
			Id:       r.id,
			Retract:  retract,
			Resolver: r.resolver.build(),
		})
	}

	return &Configuration{
		Chamber:       chamber,
		Stage:         stage,
		StageResolver: b.stageResolver.build(),
		Equipment:     equipment,
		Retracts:      retracts,
	}, nil
}

// BuiltRetract pairs a resolved retract with its path resolver, keyed by
// the id it will be registered under.
type BuiltRetract struct {
	Id       assembly.Id
	Retract  assembly.Retract
	Resolver RetractResolver
}

// Configuration is the fully-resolved result of a ConfigurationBuilder,
// ready to be assembled into a running microscope.
type Configuration struct {
	Chamber       assembly.Chamber
	Stage         assembly.Stage
	StageResolver StageResolver
	Equipment     []assembly.Part
	Retracts      []BuiltRetract
}
