package models

import "time"

type SupplierType string

const (
	Manufacturer    SupplierType = "manufacturer"
	Distributor     SupplierType = "distributor"
	ServiceProvider SupplierType = "service_provider"
)

type Flexibility string

const (
	FlexibilityLow    Flexibility = "low"
	FlexibilityMedium Flexibility = "medium"
	FlexibilityHigh   Flexibility = "high"
)

type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
	ContactBoth  ContactMethod = "both"
)

type Supplier struct {
	ID                      string         `json:"id"`
	UserID                  string         `json:"-"`
	CompanyName             string         `json:"company_name"`
	ContactPerson           *string        `json:"contact_person"`
	Email                   *string        `json:"email"`
	PhoneNumber             *string        `json:"phone_number"`
	Address                 *string        `json:"address"`
	Country                 *string        `json:"country"`
	Website                 *string        `json:"website"`
	SupplierType            *SupplierType  `json:"supplier_type"`
	Category                *string        `json:"category"`
	ProductKeywords         []string       `json:"product_keywords"`
	ProductCertifications   []string       `json:"product_certifications"`
	MinOrderQuantity        *int64         `json:"min_order_quantity"`
	DeliveryRegions         []string       `json:"delivery_regions"`
	AverageLeadTime         *string        `json:"average_lead_time"`
	Currency                *string        `json:"currency"`
	TypicalUnitPrice        *float64       `json:"typical_unit_price"`
	NegotiationFlexibility  *Flexibility   `json:"negotiation_flexibility"`
	PreferredContactMethod  *ContactMethod `json:"preferred_contact_method"`
	DiscoveredFromDirectory bool           `json:"discovered_from_directory"`
	CreatedAt               time.Time      `json:"created_at"`
}
