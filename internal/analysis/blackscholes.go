package analysis

import (
	"math"

	"binomial-pricer/internal/model"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholesCall is the closed-form price the lattice converges to as
// steps grow. c must be valid; at T<=0 or σ<=0 it falls back to the
// deterministic forward value.
func BlackScholesCall(c model.ContractParams) float64 {
	if c.ExpiryYears <= 0 || c.Volatility <= 0 {
		return DeterministicForward(c)
	}
	sqrtT := math.Sqrt(c.ExpiryYears)
	d1 := (math.Log(c.SpotPrice/c.Strike) + (c.RiskFreeRate+0.5*c.Volatility*c.Volatility)*c.ExpiryYears) / (c.Volatility * sqrtT)
	d2 := d1 - c.Volatility*sqrtT
	return c.SpotPrice*distuv.UnitNormal.CDF(d1) - c.Strike*math.Exp(-c.RiskFreeRate*c.ExpiryYears)*distuv.UnitNormal.CDF(d2)
}

// DeterministicForward is the σ→0 limit: the payoff on the risk-free
// forward, discounted back.
func DeterministicForward(c model.ContractParams) float64 {
	growth := math.Exp(c.RiskFreeRate * c.ExpiryYears)
	return model.Intrinsic(c.SpotPrice*growth, c.Strike) / growth
}
