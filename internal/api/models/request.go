package models

import "binomial-pricer/internal/model"

// ContractRequest carries the six pricing inputs.
// Numeric fields are not bound as required: zero values must reach
// validation so they come back as INVALID_PARAMETER.
type ContractRequest struct {
	SpotPrice    float64 `json:"spot_price"`
	Volatility   float64 `json:"volatility"`
	ExpiryYears  float64 `json:"expiry_years"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	Strike       float64 `json:"strike"`
	Steps        int     `json:"steps"`
}

func (r ContractRequest) ToModel() model.ContractParams {
	return model.ContractParams{
		SpotPrice:    r.SpotPrice,
		Volatility:   r.Volatility,
		ExpiryYears:  r.ExpiryYears,
		RiskFreeRate: r.RiskFreeRate,
		Strike:       r.Strike,
		Steps:        r.Steps,
	}
}

// PriceRequest represents the request body for pricing one contract
type PriceRequest struct {
	Contract       ContractRequest `json:"contract"`
	Representation string          `json:"representation,omitempty"` // "flat" (default) or "recombining"
	IncludeTree    bool            `json:"include_tree,omitempty"`   // flat lattices up to model.MaxTreeSteps
}

// BatchRequest prices several named contracts with one representation.
// At most 100 scenarios; total work is also bounded by the node budget.
type BatchRequest struct {
	Representation string            `json:"representation,omitempty"`
	Scenarios      []ScenarioRequest `json:"scenarios" binding:"required,min=1,max=100,dive"`
}

// ScenarioRequest is one named contract in a batch
type ScenarioRequest struct {
	Name     string          `json:"name"`
	Contract ContractRequest `json:"contract"`
}

// ConvergenceRequest prices one contract at several step counts.
// Steps lists explicit step counts (at most 64); when empty, MaxSteps
// selects 1, 2, 4, ... up to max_steps.
type ConvergenceRequest struct {
	Contract       ContractRequest `json:"contract"`
	Representation string          `json:"representation,omitempty"`
	Steps          []int           `json:"steps,omitempty" binding:"max=64"`
	MaxSteps       int             `json:"max_steps,omitempty"`
}
