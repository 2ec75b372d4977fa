package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Suppliers     *SupplierRepository
	Orders        *OrderRepository
	Quotations    *QuotationRepository
	Meetings      *MeetingRepository
	Contracts     *ContractRepository
	Notifications *NotificationRepository
}

func New(db postgres.DB) *Repositories {
	return &Repositories{
		Suppliers:     &SupplierRepository{db: db},
		Orders:        &OrderRepository{db: db},
		Quotations:    &QuotationRepository{db: db},
		Meetings:      &MeetingRepository{db: db},
		Contracts:     &ContractRepository{db: db},
		Notifications: &NotificationRepository{db: db},
	}
}
