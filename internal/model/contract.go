package model

import (
	"math"
)

// ContractParams are the inputs for pricing one European call.
// Units:
// - SpotPrice, Strike: currency units of the underlying
// - Volatility: annualized, as a decimal (0.2 = 20%)
// - ExpiryYears: years to expiry
// - RiskFreeRate: annualized, continuously compounded
// - Steps: number of price moves until expiry
type ContractParams struct {
	SpotPrice    float64 `json:"spot_price" yaml:"spot_price"`
	Volatility   float64 `json:"volatility" yaml:"volatility"`
	ExpiryYears  float64 `json:"expiry_years" yaml:"expiry_years"`
	RiskFreeRate float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
	Strike       float64 `json:"strike" yaml:"strike"`
	Steps        int     `json:"steps" yaml:"steps"`
}

// Factors are the per-step scalars shared by every node of a lattice.
type Factors struct {
	Dt       float64 `json:"dt"`
	Up       float64 `json:"up"`
	Down     float64 `json:"down"`
	ProbUp   float64 `json:"prob_up"`
	Discount float64 `json:"discount"`
}

// Validate rejects parameters that cannot produce a lattice.
// The first offending parameter is reported.
func (c ContractParams) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"spot_price", c.SpotPrice},
		{"volatility", c.Volatility},
		{"expiry_years", c.ExpiryYears},
		{"risk_free_rate", c.RiskFreeRate},
		{"strike", c.Strike},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid(f.name, f.v, "must be a finite number")
		}
	}
	if c.Steps < 1 {
		return invalid("steps", float64(c.Steps), "must be >= 1")
	}
	if c.SpotPrice <= 0 {
		return invalid("spot_price", c.SpotPrice, "must be > 0")
	}
	if c.Volatility == 0 {
		return invalid("volatility", c.Volatility, "must be non-zero")
	}
	if c.Volatility < 0 {
		return invalid("volatility", c.Volatility, "must be > 0")
	}
	if c.ExpiryYears <= 0 {
		return invalid("expiry_years", c.ExpiryYears, "must be > 0")
	}
	if c.Strike <= 0 {
		return invalid("strike", c.Strike, "must be > 0")
	}
	// A probability outside [0,1] puts a negative weight on one branch.
	if p := c.Factors().ProbUp; p < 0 || p > 1 {
		return &InvalidParameterError{
			Param:  "volatility",
			Value:  c.Volatility,
			Reason: "risk-neutral up probability " + formatFloat(p) + " is outside [0, 1]; raise volatility or lower risk_free_rate",
		}
	}
	return nil
}

// Factors derives Δt, u, d, p and the per-step discount.
// Callers are expected to have validated c.
func (c ContractParams) Factors() Factors {
	dt := c.ExpiryYears / float64(c.Steps)
	sq := math.Sqrt(dt)
	return Factors{
		Dt:       dt,
		Up:       1 + c.Volatility*sq,
		Down:     1 - c.Volatility*sq,
		ProbUp:   0.5 + (c.RiskFreeRate*sq)/(2*c.Volatility),
		Discount: math.Exp(-1 * c.RiskFreeRate * dt),
	}
}

// Intrinsic is the payoff of a call exercised at spot.
func Intrinsic(spot, strike float64) float64 {
	if spot > strike {
		return spot - strike
	}
	return 0.0
}

// IsZero reports whether no field has been set.
func (c ContractParams) IsZero() bool {
	return c == ContractParams{}
}
