package services

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/grapher"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/repositories"
)

const spendDateFormat = "2006-01-02"

type DashboardService struct {
	orders    *repositories.OrderRepository
	suppliers *repositories.SupplierRepository
	contracts *repositories.ContractRepository
	meetings  *repositories.MeetingRepository
}

func (service *DashboardService) Stats(
	ctx context.Context,
	userID string,
) (*dtos.DashboardStatsDto, error) {
	orderCounts, err := service.orders.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	supplierCount, err := service.suppliers.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	contractCount, err := service.contracts.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	upcomingMeetings, err := service.meetings.GetScheduledBetween(
		ctx,
		userID,
		now,
		now.AddDate(0, 0, 7), //nolint:mnd //a week ahead
	)
	if err != nil {
		return nil, err
	}

	return &dtos.DashboardStatsDto{
		ActiveOrders:     orderCounts.Active,
		PendingOrders:    orderCounts.Pending,
		DeliveredOrders:  orderCounts.Delivered,
		Suppliers:        supplierCount,
		ActiveContracts:  contractCount,
		UpcomingMeetings: int64(len(upcomingMeetings)),
	}, nil
}

// SpendChart returns cumulative order spend as label/value string slices,
// one point per day. The bucket decides the window: a week or thirty days.
func (service *DashboardService) SpendChart(
	ctx context.Context,
	userID string,
	bucket string,
) ([]string, []string, error) {
	days := 7
	if bucket == "month" {
		days = 30
	}

	now := time.Now().UTC()
	since := time.Date(
		now.Year(),
		now.Month(),
		now.Day(),
		0,
		0,
		0,
		0,
		time.UTC,
	).AddDate(0, 0, -days+1)

	orders, err := service.orders.GetPlacedSince(ctx, userID, since)
	if err != nil {
		return nil, nil, err
	}

	g := grapher.New[float64](
		grapher.Cumulative,
		grapher.PreviousValue,
		spendDateFormat,
		24*time.Hour, //nolint:mnd //no magic number
	)

	// anchor both ends so the chart always spans the full window
	g.AddPoint(since, 0, "")
	g.AddPoint(now, 0, "")

	for _, order := range orders {
		g.AddPoint(order.CreatedAt, order.TotalCost, "")
	}

	labels, values := g.ToStringSlices()

	return labels, values[""], nil
}
