package models

import (
	"binomial-pricer/internal/analysis"
	"binomial-pricer/internal/model"
)

// QuoteResponse represents the response from pricing one contract
type QuoteResponse struct {
	model.Quote
	Cached bool  `json:"cached"`
	Tree   *Tree `json:"tree,omitempty"`
}

// Tree exposes both flat lattices level by level
type Tree struct {
	Prices [][]float64 `json:"prices"`
	Values [][]float64 `json:"values"`
}

// BatchResponse represents the response from a batch run
type BatchResponse struct {
	Representation model.Representation `json:"representation"`
	Quotes         []BatchQuote         `json:"quotes"`
	MaxAbsDiff     float64              `json:"max_abs_diff"`
}

// BatchQuote is one priced scenario
type BatchQuote struct {
	Index        int                  `json:"index"`
	Name         string               `json:"name"`
	Contract     model.ContractParams `json:"contract"`
	Factors      model.Factors        `json:"factors"`
	Price        float64              `json:"price"`
	BlackScholes float64              `json:"black_scholes"`
	Diff         float64              `json:"diff"`
}

// ConvergenceResponse wraps the analysis report
type ConvergenceResponse struct {
	*analysis.ConvergenceReport
}

// RepresentationInfo describes a supported lattice representation
type RepresentationInfo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	NodesPerLevel   string `json:"nodes_per_level"`
	DefaultMaxSteps int    `json:"default_max_steps"`
	StepCeiling     int    `json:"step_ceiling"`
	Configured      bool   `json:"configured"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
