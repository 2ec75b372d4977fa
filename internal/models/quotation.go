package models

import "time"

type QuotationStatus string

const (
	QuotationPending  QuotationStatus = "pending"
	QuotationApproved QuotationStatus = "approved"
	QuotationRejected QuotationStatus = "rejected"
)

type Quotation struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"orderId"`
	SupplierName string          `json:"supplier"`
	PricePerUnit float64         `json:"pricePerUnit"`
	TotalPrice   float64         `json:"totalPrice"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	PaymentTerms string          `json:"paymentTerms"`
	Rating       float64         `json:"rating"`
	Status       QuotationStatus `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
