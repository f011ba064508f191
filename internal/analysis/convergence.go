package analysis

import (
	"fmt"
	"math"

	"binomial-pricer/internal/lattice"
	"binomial-pricer/internal/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConvergencePoint is one row of a convergence table.
type ConvergencePoint struct {
	Steps        int     `json:"steps"`
	Lattice      float64 `json:"lattice"`
	BlackScholes float64 `json:"black_scholes"`
	AbsError     float64 `json:"abs_error"`
}

// ConvergenceReport summarizes how a lattice approaches the closed form.
type ConvergenceReport struct {
	Pricer       string             `json:"pricer"`
	BlackScholes float64            `json:"black_scholes"`
	Points       []ConvergencePoint `json:"points"`
	MaxAbsError  float64            `json:"max_abs_error"`
	MeanAbsError float64            `json:"mean_abs_error"`
}

// Convergence prices c once per entry in steps, overriding c.Steps.
// The first failing step count aborts the run.
func Convergence(c model.ContractParams, steps []int, pricer lattice.Pricer) (*ConvergenceReport, error) {
	if pricer == nil {
		return nil, fmt.Errorf("pricer is nil")
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no step counts")
	}

	bs := BlackScholesCall(c)
	points := make([]ConvergencePoint, 0, len(steps))
	errs := make([]float64, 0, len(steps))
	for _, n := range steps {
		c.Steps = n
		price, err := pricer.Price(c)
		if err != nil {
			return nil, fmt.Errorf("steps=%d: %w", n, err)
		}
		e := math.Abs(price - bs)
		points = append(points, ConvergencePoint{
			Steps:        n,
			Lattice:      price,
			BlackScholes: bs,
			AbsError:     e,
		})
		errs = append(errs, e)
	}

	return &ConvergenceReport{
		Pricer:       pricer.Name(),
		BlackScholes: bs,
		Points:       points,
		MaxAbsError:  floats.Max(errs),
		MeanAbsError: stat.Mean(errs, nil),
	}, nil
}

// DoublingSteps returns 1, 2, 4, ... up to and including upTo.
func DoublingSteps(upTo int) []int {
	var out []int
	for n := 1; n <= upTo; n *= 2 {
		out = append(out, n)
	}
	return out
}
