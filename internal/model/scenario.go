package model

// Scenario is one named contract in a batch.
type Scenario struct {
	Name     string         `json:"name" yaml:"name"`
	Contract ContractParams `json:"contract" yaml:"contract"`
}

// ScenarioFile matches the on-disk shape of a scenarios file.
//
// Example (YAML):
//
//	scenarios:
//	  - name: atm-1y
//	    contract: {spot_price: 100, strike: 100, volatility: 0.2, expiry_years: 1, risk_free_rate: 0.05, steps: 10}
type ScenarioFile struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}
