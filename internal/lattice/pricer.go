// Package lattice prices European calls on a binomial lattice.
//
// Two representations are supported. The flat lattice enumerates every
// path and doubles in width each level; it is the reference behaviour.
// The recombining lattice merges equal nodes and scales to large step
// counts. Both apply the same discounted two-term expectation per node.
package lattice

import (
	"fmt"
	"math"

	"binomial-pricer/internal/model"
)

// Pricer is anything that turns contract parameters into a price.
type Pricer interface {
	Name() string
	Price(c model.ContractParams) (float64, error)
}

// LatticePricer is stateless across calls and safe for concurrent use.
// The zero value prices on a flat lattice capped at model.DefaultFlatSteps.
type LatticePricer struct {
	Representation model.Representation
	MaxSteps       int
}

// New returns a pricer for rep. maxSteps of 0 selects the
// representation's default cap.
func New(rep model.Representation, maxSteps int) (*LatticePricer, error) {
	if rep == "" {
		rep = model.RepresentationFlat
	}
	if _, err := model.ParseRepresentation(string(rep)); err != nil {
		return nil, err
	}
	if maxSteps < 0 {
		return nil, fmt.Errorf("max_steps must be >= 0, got %d", maxSteps)
	}
	if maxSteps > rep.StepCeiling() {
		return nil, fmt.Errorf("max_steps=%d exceeds the %s ceiling of %d", maxSteps, rep, rep.StepCeiling())
	}
	return &LatticePricer{Representation: rep, MaxSteps: maxSteps}, nil
}

func (lp *LatticePricer) Name() string {
	return string(lp.representation())
}

// Limit is the effective step cap.
func (lp *LatticePricer) Limit() int {
	if lp.MaxSteps > 0 {
		return lp.MaxSteps
	}
	return lp.representation().DefaultMaxSteps()
}

// Check validates c, the step cap and the float64 range of the lattice
// without pricing.
func (lp *LatticePricer) Check(c model.ContractParams) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Steps > lp.Limit() {
		return &model.ResourceExhaustionError{
			Representation: lp.representation(),
			Steps:          c.Steps,
			MaxSteps:       lp.Limit(),
		}
	}
	return checkRange(c)
}

var maxLogFloat = math.Log(math.MaxFloat64)

// checkRange rejects contracts whose top node spot*u^n, grown by the
// discount when rates are negative, cannot be represented. Every node
// price and option value is bounded by it.
func checkRange(c model.ContractParams) error {
	f := c.Factors()
	bound := math.Log(c.SpotPrice) + float64(c.Steps)*math.Log(f.Up)
	if c.RiskFreeRate < 0 {
		bound -= c.RiskFreeRate * c.ExpiryYears
	}
	if bound >= maxLogFloat {
		return overflow(c)
	}
	return nil
}

func overflow(c model.ContractParams) error {
	return &model.NumericOverflowError{Spot: c.SpotPrice, Up: c.Factors().Up, Steps: c.Steps}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Price returns the fair value of the call. Nothing is allocated until
// c has passed validation and the step cap.
func (lp *LatticePricer) Price(c model.ContractParams) (float64, error) {
	if err := lp.Check(c); err != nil {
		return 0, err
	}
	var v float64
	if lp.representation() == model.RepresentationRecombining {
		v = priceRecombining(c)
	} else {
		v = BuildFlat(c).Root()
	}
	if !finite(v) {
		return 0, overflow(c)
	}
	return v, nil
}

// Build returns the full flat tree for inspection. It applies the same
// checks as Price against the flat cap.
func (lp *LatticePricer) Build(c model.ContractParams) (*Tree, error) {
	flat := LatticePricer{Representation: model.RepresentationFlat, MaxSteps: lp.MaxSteps}
	if lp.representation() != model.RepresentationFlat {
		flat.MaxSteps = 0
	}
	if err := flat.Check(c); err != nil {
		return nil, err
	}
	t := BuildFlat(c)
	if !finite(t.Root()) {
		return nil, overflow(c)
	}
	return t, nil
}

func (lp *LatticePricer) representation() model.Representation {
	if lp.Representation == "" {
		return model.RepresentationFlat
	}
	return lp.Representation
}

// Price prices a call on the default flat lattice.
func Price(spot, volatility, expiryYears, riskFreeRate, strike float64, steps int) (float64, error) {
	var lp LatticePricer
	return lp.Price(model.ContractParams{
		SpotPrice:    spot,
		Volatility:   volatility,
		ExpiryYears:  expiryYears,
		RiskFreeRate: riskFreeRate,
		Strike:       strike,
		Steps:        steps,
	})
}
