package model

import "fmt"

// Representation selects how lattice nodes are stored.
// Keep these values stable; they appear in config files, CSV and API payloads.
type Representation string

const (
	// RepresentationFlat enumerates every path: level i holds 2^i nodes.
	RepresentationFlat Representation = "flat"
	// RepresentationRecombining merges equal nodes: level i holds i+1 nodes.
	RepresentationRecombining Representation = "recombining"
)

// Hard ceilings on step counts, independent of configuration.
const (
	MaxFlatSteps        = 25
	MaxRecombiningSteps = 100000

	DefaultFlatSteps        = 20
	DefaultRecombiningSteps = 10000

	// MaxTreeSteps caps lattices returned whole to API clients.
	MaxTreeSteps = 10
	// DefaultRequestNodes bounds the lattice nodes one batch or
	// convergence request may compute when configuration leaves it unset.
	DefaultRequestNodes int64 = 1 << 28
)

func ParseRepresentation(s string) (Representation, error) {
	switch Representation(s) {
	case "", RepresentationFlat:
		return RepresentationFlat, nil
	case RepresentationRecombining:
		return RepresentationRecombining, nil
	default:
		return "", fmt.Errorf("unsupported representation: %q", s)
	}
}

// StepCeiling is the largest step count the representation can ever accept.
func (r Representation) StepCeiling() int {
	if r == RepresentationRecombining {
		return MaxRecombiningSteps
	}
	return MaxFlatSteps
}

// DefaultMaxSteps is the cap applied when configuration leaves it unset.
func (r Representation) DefaultMaxSteps() int {
	if r == RepresentationRecombining {
		return DefaultRecombiningSteps
	}
	return DefaultFlatSteps
}
