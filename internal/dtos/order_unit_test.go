package dtos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"procuroid.app/internal/dtos"
)

func validQuoteRequest() dtos.QuoteRequestDto {
	//nolint:exhaustruct //optional fields stay empty
	return dtos.QuoteRequestDto{
		Description:        "Steel Materials - Construction Grade",
		OrderType:          "materials",
		ProductDescription: "Construction grade steel beams",
		Quantity:           100,
		LowerLimit:         10,
		UpperLimit:         20,
		DeliveryDate:       "2024-03-10",
		Location:           "Warehouse Dock",
		SupplierSelection:  dtos.PreferredSuppliers,
	}
}

func TestQuoteRequestValid(t *testing.T) {
	dto := validQuoteRequest()

	ok, errs := dto.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestQuoteRequestNegotiationRange(t *testing.T) {
	dto := validQuoteRequest()
	dto.LowerLimit = 30
	dto.UpperLimit = 20

	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "upperLimit")
}

func TestQuoteRequestNegativeLowerLimit(t *testing.T) {
	dto := validQuoteRequest()
	dto.LowerLimit = -5
	dto.UpperLimit = -1

	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "lowerLimit")
}

func TestQuoteRequestQuantity(t *testing.T) {
	dto := validQuoteRequest()
	dto.Quantity = 0

	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "quantity")
}

func TestQuoteRequestSupplierSelection(t *testing.T) {
	dto := validQuoteRequest()
	dto.SupplierSelection = "everyone"

	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "supplierSelection")
}

func TestQuoteRequestMalformedDeliveryDate(t *testing.T) {
	dto := validQuoteRequest()
	dto.DeliveryDate = "10/03/2024"

	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "deliveryDate")
}
