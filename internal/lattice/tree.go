package lattice

import (
	"math"

	"binomial-pricer/internal/model"
)

// Tree holds both lattices of one flat pricing call.
// Prices[i] and Values[i] each hold 2^i nodes; the children of node j
// at level i sit at 2j (up) and 2j+1 (down) of level i+1.
type Tree struct {
	Factors model.Factors
	Prices  [][]float64
	Values  [][]float64
}

// Root is the option value at level 0.
func (t *Tree) Root() float64 {
	return t.Values[0][0]
}

// BuildPrices forward-fills the underlying lattice from spot.
// Each parent appends its up child, then its down child.
func BuildPrices(spot, up, down float64, steps int) [][]float64 {
	levels := make([][]float64, steps+1)
	levels[0] = []float64{spot}
	for i := 0; i < steps; i++ {
		next := make([]float64, 0, 2*len(levels[i]))
		for _, v := range levels[i] {
			next = append(next, v*up, v*down)
		}
		levels[i+1] = next
	}
	return levels
}

// BuildFlat builds the price lattice, fills terminal payoffs and
// backward-inducts the option lattice. c must already be validated.
func BuildFlat(c model.ContractParams) *Tree {
	f := c.Factors()
	prices := BuildPrices(c.SpotPrice, f.Up, f.Down, c.Steps)

	n := c.Steps
	values := make([][]float64, n+1)
	terminal := make([]float64, len(prices[n]))
	for j, v := range prices[n] {
		terminal[j] = model.Intrinsic(v, c.Strike)
	}
	values[n] = terminal

	for i := n; i > 0; i-- {
		level := values[i]
		prev := make([]float64, len(level)/2)
		for j := 0; j < len(level); j += 2 {
			prev[j/2] = f.Discount * (f.ProbUp*level[j] + (1-f.ProbUp)*level[j+1])
		}
		values[i-1] = prev
	}

	return &Tree{Factors: f, Prices: prices, Values: values}
}

// priceRecombining indexes nodes by up-move count: node k at level i is
// spot*u^k*d^(i-k). Only one level of option values is kept.
func priceRecombining(c model.ContractParams) float64 {
	f := c.Factors()
	n := c.Steps

	logSpot := math.Log(c.SpotPrice)
	logUp := math.Log(f.Up)
	logDown := math.Log(math.Abs(f.Down))

	values := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		values[k] = model.Intrinsic(nodePrice(logSpot, logUp, logDown, f.Down, k, n-k), c.Strike)
	}

	// Ascending k reads values[k+1] before it is overwritten.
	for i := n; i > 0; i-- {
		for k := 0; k < i; k++ {
			values[k] = f.Discount * (f.ProbUp*values[k+1] + (1-f.ProbUp)*values[k])
		}
	}
	return values[0]
}

// nodePrice is spot*u^ups*d^downs summed in log space, so a large u^ups
// cannot overflow before a small spot or d^downs scales it back.
func nodePrice(logSpot, logUp, logDown, down float64, ups, downs int) float64 {
	e := logSpot + float64(ups)*logUp
	if downs > 0 {
		if down == 0 {
			return 0
		}
		e += float64(downs) * logDown
	}
	x := math.Exp(e)
	if down < 0 && downs%2 == 1 {
		return -x
	}
	return x
}
