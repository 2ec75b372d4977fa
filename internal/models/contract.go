package models

import (
	"time"

	"github.com/sgreben/piecewiselinear"
)

type ContractStatus string

const (
	ContractActive           ContractStatus = "active"
	ContractExpired          ContractStatus = "expired"
	ContractPendingSignature ContractStatus = "pending_signature"
)

type Contract struct {
	ID             string         `json:"id"`
	UserID         string         `json:"-"`
	ContractNumber string         `json:"contractNumber"`
	SupplierName   string         `json:"supplier"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	TotalValue     float64        `json:"totalValue"`
	Status         ContractStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ExpectedUtilization returns the pro-rated spend expected at a given
// instant, interpolating linearly from 0 at the contract start to the total
// value at its end. Instants outside the term clamp to the endpoints.
func (contract Contract) ExpectedUtilization(at time.Time) float64 {
	if !at.After(contract.StartDate) {
		return 0
	}
	if !at.Before(contract.EndDate) {
		return contract.TotalValue
	}

	f := piecewiselinear.Function{
		X: []float64{
			float64(contract.StartDate.Unix()),
			float64(contract.EndDate.Unix()),
		},
		Y: []float64{0, contract.TotalValue},
	}

	return f.At(float64(at.Unix()))
}
