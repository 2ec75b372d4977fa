package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"procuroid.app/internal/ical"
	"procuroid.app/internal/models"
	"procuroid.app/internal/repositories"
)

type CalendarService struct {
	logger   *slog.Logger
	orders   *repositories.OrderRepository
	meetings *repositories.MeetingRepository
}

// EventsForMonth merges order deliveries and meetings into the event list
// the calendar page renders for a given month.
func (service *CalendarService) EventsForMonth(
	ctx context.Context,
	userID string,
	year int,
	month time.Month,
	loc *time.Location,
) ([]models.CalendarEvent, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	until := from.AddDate(0, 1, 0)

	events := []models.CalendarEvent{}

	orders, err := service.orders.GetDeliveries(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		event, ok := models.CalendarEventFromOrder(order)
		if !ok {
			continue
		}

		if order.DeliveryDate.Before(from) || !order.DeliveryDate.Before(until) {
			continue
		}

		events = append(events, event)
	}

	meetings, err := service.meetings.GetScheduledBetween(
		ctx,
		userID,
		from,
		until,
	)
	if err != nil {
		return nil, err
	}

	for _, meeting := range meetings {
		events = append(events, models.CalendarEventFromMeeting(meeting))
	}

	return events, nil
}

// BuildExport renders the user's full calendar as an iCalendar document.
// Events without a resolvable start are logged and left out.
func (service *CalendarService) BuildExport(
	ctx context.Context,
	userID string,
	now time.Time,
	loc *time.Location,
) (string, error) {
	orders, err := service.orders.GetDeliveries(ctx, userID)
	if err != nil {
		return "", err
	}

	meetings, err := service.meetings.GetAll(ctx, userID)
	if err != nil {
		return "", err
	}

	icalEvents := []ical.Event{}

	for _, order := range orders {
		event, ok := models.CalendarEventFromOrder(order)
		if !ok {
			continue
		}

		icalEvents = append(icalEvents, event.ToICal())
	}

	for _, meeting := range meetings {
		icalEvents = append(
			icalEvents,
			models.CalendarEventFromMeeting(meeting).ToICal(),
		)
	}

	for _, event := range icalEvents {
		if _, err = event.StartIn(loc); errors.Is(err, ical.ErrNoStart) {
			service.logger.Warn(
				"skipping calendar event without start",
				slog.String("id", event.ID),
				logging.ErrAttr(err),
			)
		}
	}

	return ical.EncodeIn(icalEvents, now, loc), nil
}
