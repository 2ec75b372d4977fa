package services

import (
	"context"
	"errors"
	"fmt"

	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
	"procuroid.app/internal/repositories"
)

var ErrQuotationAlreadyDecided = errors.New("quotation already decided")

type QuotationService struct {
	quotations    *repositories.QuotationRepository
	orders        *repositories.OrderRepository
	meetings      *repositories.MeetingRepository
	notifications *NotificationService
}

func (service *QuotationService) GetByOrderID(
	ctx context.Context,
	orderID string,
	userID string,
) ([]models.Quotation, error) {
	return service.quotations.GetByOrderID(ctx, orderID, userID)
}

// Approve accepts a quotation and places the order with the winning
// supplier. The stamped total comes from the quotation.
func (service *QuotationService) Approve(
	ctx context.Context,
	id string,
	userID string,
) (*models.Quotation, error) {
	quotation, err := service.quotations.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if quotation.Status != models.QuotationPending {
		return nil, ErrQuotationAlreadyDecided
	}

	err = service.quotations.SetStatus(ctx, quotation, models.QuotationApproved)
	if err != nil {
		return nil, err
	}

	order, err := service.orders.GetByID(ctx, quotation.OrderID, userID)
	if err != nil {
		return nil, err
	}

	err = service.orders.SetPlaced(
		ctx,
		order,
		quotation.SupplierName,
		quotation.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	service.notifications.Notify(
		ctx,
		userID,
		models.NotificationQuotationApproved,
		fmt.Sprintf(
			"Quotation from %s approved, order placed for %s",
			quotation.SupplierName,
			order.ProductDescription,
		),
	)

	return quotation, nil
}

func (service *QuotationService) Reject(
	ctx context.Context,
	id string,
	userID string,
) (*models.Quotation, error) {
	quotation, err := service.quotations.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if quotation.Status != models.QuotationPending {
		return nil, ErrQuotationAlreadyDecided
	}

	err = service.quotations.SetStatus(ctx, quotation, models.QuotationRejected)
	if err != nil {
		return nil, err
	}

	service.notifications.Notify(
		ctx,
		userID,
		models.NotificationQuotationRejected,
		fmt.Sprintf("Quotation from %s rejected", quotation.SupplierName),
	)

	return quotation, nil
}

// RequestMeeting schedules a negotiation meeting with the quotation's
// supplier.
func (service *QuotationService) RequestMeeting(
	ctx context.Context,
	id string,
	userID string,
	createDto *dtos.CreateMeetingDto,
) (*models.Meeting, error) {
	quotation, err := service.quotations.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	createDto.Supplier = quotation.SupplierName
	if createDto.Reason == "" {
		createDto.Reason = fmt.Sprintf(
			"Negotiation on quotation for order %s",
			quotation.OrderID,
		)
	}

	meeting, err := service.meetings.Create(ctx, userID, *createDto)
	if err != nil {
		return nil, err
	}

	service.notifications.Notify(
		ctx,
		userID,
		models.NotificationMeetingScheduled,
		fmt.Sprintf(
			"Meeting with %s scheduled for %s",
			meeting.SupplierName,
			meeting.ScheduledAt.Format("Jan 2 15:04"),
		),
	)

	return meeting, nil
}
