package model

import "time"

// Quote is a priced contract as served by the API and held in the cache.
type Quote struct {
	ID             string         `json:"id"`
	Representation Representation `json:"representation"`
	Contract       ContractParams `json:"contract"`
	Factors        Factors        `json:"factors"`
	Price          float64        `json:"price"`
	BlackScholes   float64        `json:"black_scholes"`
	CreatedAt      time.Time      `json:"created_at"`
}
