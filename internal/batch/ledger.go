package batch

import (
	"binomial-pricer/internal/model"
)

// QuoteRow is one row of per-scenario output.
type QuoteRow struct {
	Index int
	Name  string

	Contract       model.ContractParams
	Representation model.Representation
	Factors        model.Factors

	Price        float64
	BlackScholes float64
	Diff         float64
}

type Result struct {
	Ledger []QuoteRow
	// MaxAbsDiff is the largest |Price - BlackScholes| across the ledger.
	MaxAbsDiff float64
}
