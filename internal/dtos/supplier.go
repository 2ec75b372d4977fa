package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"
	"procuroid.app/internal/models"
)

type CreateSupplierDto struct {
	CompanyName            string                `json:"company_name"`
	ContactPerson          *string               `json:"contact_person"`
	Email                  *string               `json:"email"`
	PhoneNumber            *string               `json:"phone_number"`
	Address                *string               `json:"address"`
	Country                *string               `json:"country"`
	Website                *string               `json:"website"`
	SupplierType           *models.SupplierType  `json:"supplier_type"`
	Category               *string               `json:"category"`
	ProductKeywords        []string              `json:"product_keywords"`
	ProductCertifications  []string              `json:"product_certifications"`
	MinOrderQuantity       *int64                `json:"min_order_quantity"`
	DeliveryRegions        []string              `json:"delivery_regions"`
	AverageLeadTime        *string               `json:"average_lead_time"`
	Currency               *string               `json:"currency"`
	TypicalUnitPrice       *float64              `json:"typical_unit_price"`
	NegotiationFlexibility *models.Flexibility   `json:"negotiation_flexibility"`
	PreferredContactMethod *models.ContactMethod `json:"preferred_contact_method"`
}

func (dto *CreateSupplierDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "company_name", dto.CompanyName, validate.IsNotEmpty)

	errs := v.Errors()
	checkSupplierEnums(
		errs,
		dto.SupplierType,
		dto.NegotiationFlexibility,
		dto.PreferredContactMethod,
	)

	return v.Valid() && len(errs) == 0, errs
}

// UpdateSupplierDto carries a partial update; nil fields are left untouched.
type UpdateSupplierDto struct {
	CompanyName            *string               `json:"company_name"`
	ContactPerson          *string               `json:"contact_person"`
	Email                  *string               `json:"email"`
	PhoneNumber            *string               `json:"phone_number"`
	Address                *string               `json:"address"`
	Country                *string               `json:"country"`
	Website                *string               `json:"website"`
	SupplierType           *models.SupplierType  `json:"supplier_type"`
	Category               *string               `json:"category"`
	ProductKeywords        []string              `json:"product_keywords"`
	ProductCertifications  []string              `json:"product_certifications"`
	MinOrderQuantity       *int64                `json:"min_order_quantity"`
	DeliveryRegions        []string              `json:"delivery_regions"`
	AverageLeadTime        *string               `json:"average_lead_time"`
	Currency               *string               `json:"currency"`
	TypicalUnitPrice       *float64              `json:"typical_unit_price"`
	NegotiationFlexibility *models.Flexibility   `json:"negotiation_flexibility"`
	PreferredContactMethod *models.ContactMethod `json:"preferred_contact_method"`
}

func (dto *UpdateSupplierDto) Validate() (bool, map[string]string) {
	errs := map[string]string{}

	if dto.CompanyName != nil && *dto.CompanyName == "" {
		errs["company_name"] = "must be provided"
	}

	checkSupplierEnums(
		errs,
		dto.SupplierType,
		dto.NegotiationFlexibility,
		dto.PreferredContactMethod,
	)

	return len(errs) == 0, errs
}

func checkSupplierEnums(
	errs map[string]string,
	supplierType *models.SupplierType,
	flexibility *models.Flexibility,
	contactMethod *models.ContactMethod,
) {
	if supplierType != nil {
		switch *supplierType {
		case models.Manufacturer, models.Distributor, models.ServiceProvider:
		default:
			errs["supplier_type"] = "invalid supplier type"
		}
	}

	if flexibility != nil {
		switch *flexibility {
		case models.FlexibilityLow, models.FlexibilityMedium, models.FlexibilityHigh:
		default:
			errs["negotiation_flexibility"] = "invalid negotiation flexibility"
		}
	}

	if contactMethod != nil {
		switch *contactMethod {
		case models.ContactEmail, models.ContactPhone, models.ContactBoth:
		default:
			errs["preferred_contact_method"] = "invalid contact method"
		}
	}
}
