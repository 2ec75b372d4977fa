package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

type SupplierSelection string

const (
	PreferredSuppliers SupplierSelection = "preferred"
	DiscoverySuppliers SupplierSelection = "discovery"
)

// QuoteRequestDto is the Place Order wizard payload. The frontend captures
// quantity and the negotiation range as form fields; they arrive typed here
// so the services never re-parse them.
type QuoteRequestDto struct {
	Description        string            `json:"description"`
	OrderType          string            `json:"orderType"`
	ProductDescription string            `json:"productDescription"`
	Quantity           int64             `json:"quantity"`
	LowerLimit         float64           `json:"lowerLimit"`
	UpperLimit         float64           `json:"upperLimit"`
	DeliveryDate       string            `json:"deliveryDate"`
	Location           string            `json:"location"`
	SupplierSelection  SupplierSelection `json:"supplierSelection"`
	DiscoveryMode      bool              `json:"discoveryMode"`
}

func (dto *QuoteRequestDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "description", dto.Description, validate.IsNotEmpty)
	validate.Check(
		v,
		"productDescription",
		dto.ProductDescription,
		validate.IsNotEmpty,
	)

	errs := v.Errors()

	if dto.Quantity <= 0 {
		errs["quantity"] = "must be greater than zero"
	}

	if dto.LowerLimit < 0 {
		errs["lowerLimit"] = "must not be negative"
	}
	if dto.UpperLimit < dto.LowerLimit {
		errs["upperLimit"] = "must not be below the lower limit"
	}

	switch dto.SupplierSelection {
	case PreferredSuppliers, DiscoverySuppliers:
	default:
		errs["supplierSelection"] = "must be 'preferred' or 'discovery'"
	}

	if dto.DeliveryDate != "" {
		if _, err := time.Parse("2006-01-02", dto.DeliveryDate); err != nil {
			errs["deliveryDate"] = "must be formatted as YYYY-MM-DD"
		}
	}

	return v.Valid() && len(errs) == 0, errs
}
