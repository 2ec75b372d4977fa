package models

import "time"

type OrderStatus string

const (
	DiscoveryActive    OrderStatus = "discovery_active"
	PendingQuotations  OrderStatus = "pending_quotations"
	QuotationsReceived OrderStatus = "quotations_received"
	PendingApproval    OrderStatus = "pending_approval"
	OrderPlaced        OrderStatus = "order_placed"
	Shipped            OrderStatus = "shipped"
	Delivered          OrderStatus = "delivered"
)

type Order struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"-"`
	Description        string      `json:"description"`
	OrderType          string      `json:"orderType"`
	ProductDescription string      `json:"productDescription"`
	Quantity           int64       `json:"quantity"`
	LowerLimit         float64     `json:"lowerLimit"`
	UpperLimit         float64     `json:"upperLimit"`
	DeliveryDate       *time.Time  `json:"deliveryDate"`
	DeliveryLocation   *string     `json:"location"`
	DiscoveryMode      bool        `json:"discoveryMode"`
	Status             OrderStatus `json:"status"`
	TotalCost          float64     `json:"totalCost"`
	SupplierName       *string     `json:"supplier"`
	CreatedAt          time.Time   `json:"dateCreated"`
}
