package services

import (
	"context"
	"time"

	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
	"procuroid.app/internal/repositories"
)

type OrderService struct {
	orders     *repositories.OrderRepository
	quotations *repositories.QuotationRepository
}

func (service *OrderService) CreateQuoteRequest(
	ctx context.Context,
	userID string,
	quoteRequestDto *dtos.QuoteRequestDto,
) (*models.Order, error) {
	status := models.PendingQuotations
	if quoteRequestDto.DiscoveryMode ||
		quoteRequestDto.SupplierSelection == dtos.DiscoverySuppliers {
		status = models.DiscoveryActive
	}

	return service.orders.Create(ctx, userID, *quoteRequestDto, status)
}

func (service *OrderService) GetPaginated(
	ctx context.Context,
	userID string,
	page int,
	pageSize int,
	search string,
	status models.OrderStatus,
) ([]models.Order, dtos.Pagination, error) {
	orders, totalCount, err := service.orders.GetPaginated(
		ctx,
		userID,
		page,
		pageSize,
		search,
		status,
	)
	if err != nil {
		return nil, dtos.Pagination{}, err //nolint:exhaustruct //zero value
	}

	return orders, dtos.NewPagination(page, pageSize, totalCount), nil
}

func (service *OrderService) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Order, []models.Quotation, error) {
	order, err := service.orders.GetByID(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	quotations, err := service.quotations.GetByOrderID(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	return order, quotations, nil
}

func (service *OrderService) GetOpenDiscovery(
	ctx context.Context,
) ([]models.Order, error) {
	return service.orders.GetOpenDiscovery(ctx)
}

func (service *OrderService) GetDeliveriesDueBetween(
	ctx context.Context,
	from time.Time,
	until time.Time,
) ([]models.Order, error) {
	return service.orders.GetWithDeliveryBetween(ctx, from, until)
}
