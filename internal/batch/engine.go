package batch

import (
	"fmt"
	"math"

	"binomial-pricer/internal/analysis"
	"binomial-pricer/internal/lattice"
	"binomial-pricer/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run prices every scenario in order with one pricer.
func (e *Engine) Run(scenarios []model.Scenario, pricer lattice.Pricer) (*Result, error) {
	if pricer == nil {
		return nil, fmt.Errorf("pricer is nil")
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios")
	}

	ledger := make([]QuoteRow, 0, len(scenarios))
	maxDiff := 0.0

	for idx, sc := range scenarios {
		price, err := pricer.Price(sc.Contract)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", idx, sc.Name, err)
		}
		bs := analysis.BlackScholesCall(sc.Contract)
		diff := price - bs
		if math.Abs(diff) > maxDiff {
			maxDiff = math.Abs(diff)
		}

		ledger = append(ledger, QuoteRow{
			Index: idx,
			Name:  sc.Name,

			Contract:       sc.Contract,
			Representation: model.Representation(pricer.Name()),
			Factors:        sc.Contract.Factors(),

			Price:        price,
			BlackScholes: bs,
			Diff:         diff,
		})
	}

	return &Result{
		Ledger:     ledger,
		MaxAbsDiff: maxDiff,
	}, nil
}
