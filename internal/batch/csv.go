package batch

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteQuotesCSV(path string, ledger []QuoteRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"name",
		"representation",
		"spot_price",
		"volatility",
		"expiry_years",
		"risk_free_rate",
		"strike",
		"steps",
		"dt",
		"up",
		"down",
		"prob_up",
		"discount",
		"price",
		"black_scholes",
		"diff",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			r.Name,
			string(r.Representation),
			fmtFloat(r.Contract.SpotPrice),
			fmtFloat(r.Contract.Volatility),
			fmtFloat(r.Contract.ExpiryYears),
			fmtFloat(r.Contract.RiskFreeRate),
			fmtFloat(r.Contract.Strike),
			strconv.Itoa(r.Contract.Steps),
			fmtFloat(r.Factors.Dt),
			fmtFloat(r.Factors.Up),
			fmtFloat(r.Factors.Down),
			fmtFloat(r.Factors.ProbUp),
			fmtFloat(r.Factors.Discount),
			fmtFloat(r.Price),
			fmtFloat(r.BlackScholes),
			fmtFloat(r.Diff),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
