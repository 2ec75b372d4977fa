package services

import (
	"log/slog"

	"github.com/supabase-community/gotrue-go"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"procuroid.app/internal/auth"
	"procuroid.app/internal/config"
	"procuroid.app/internal/repositories"
)

type Services struct {
	Auth          auth.Service
	Suppliers     *SupplierService
	Orders        *OrderService
	Quotations    *QuotationService
	Meetings      *MeetingService
	Contracts     *ContractService
	Notifications *NotificationService
	Dashboard     *DashboardService
	Calendar      *CalendarService
	WebSocket     *WebSocketService
}

func New(
	logger *slog.Logger,
	config config.Config,
	jobQueue *threading.JobQueue,
	repositories *repositories.Repositories,
	authService auth.Service,
) *Services {
	notifications := &NotificationService{
		logger:        logger,
		notifications: repositories.Notifications,
	}
	suppliers := &SupplierService{
		suppliers: repositories.Suppliers,
	}
	orders := &OrderService{
		orders:     repositories.Orders,
		quotations: repositories.Quotations,
	}
	quotations := &QuotationService{
		quotations:    repositories.Quotations,
		orders:        repositories.Orders,
		meetings:      repositories.Meetings,
		notifications: notifications,
	}
	meetings := &MeetingService{
		meetings:      repositories.Meetings,
		notifications: notifications,
	}
	contracts := &ContractService{
		contracts: repositories.Contracts,
	}
	dashboard := &DashboardService{
		orders:    repositories.Orders,
		suppliers: repositories.Suppliers,
		contracts: repositories.Contracts,
		meetings:  repositories.Meetings,
	}
	calendar := &CalendarService{
		logger:   logger,
		orders:   repositories.Orders,
		meetings: repositories.Meetings,
	}

	return &Services{
		Auth:          authService,
		Suppliers:     suppliers,
		Orders:        orders,
		Quotations:    quotations,
		Meetings:      meetings,
		Contracts:     contracts,
		Notifications: notifications,
		Dashboard:     dashboard,
		Calendar:      calendar,
		WebSocket: NewWebSocketService(
			logger,
			[]string{config.WebURL},
			jobQueue,
		),
	}
}

func NewAuthService(
	client gotrue.Client,
	accessExpiry string,
) auth.Service {
	return &AuthService{
		client:       client,
		accessExpiry: accessExpiry,
	}
}
