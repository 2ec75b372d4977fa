package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"procuroid.app/internal/models"
	"procuroid.app/internal/services"
)

// ReminderJob notifies users about meetings starting within a day and
// order deliveries due tomorrow.
type ReminderJob struct {
	meetingService      *services.MeetingService
	orderService        *services.OrderService
	notificationService *services.NotificationService
}

func NewReminderJob(
	meetingService *services.MeetingService,
	orderService *services.OrderService,
	notificationService *services.NotificationService,
) ReminderJob {
	return ReminderJob{
		meetingService:      meetingService,
		orderService:        orderService,
		notificationService: notificationService,
	}
}

func (j ReminderJob) ID() string {
	return "reminders"
}

func (j ReminderJob) RunEvery() time.Duration {
	return time.Hour
}

func (j ReminderJob) Run(ctx context.Context, logger *slog.Logger) error {
	now := time.Now()

	meetings, err := j.meetingService.GetUpcomingAllUsers(
		ctx,
		now,
		now.Add(24*time.Hour), //nolint:mnd //no magic number
	)
	if err != nil {
		return err
	}

	for _, meeting := range meetings {
		err = j.notificationService.NotifyOnce(
			ctx,
			meeting.UserID,
			models.NotificationMeetingReminder,
			fmt.Sprintf(
				"Meeting with %s starts at %s",
				meeting.SupplierName,
				meeting.ScheduledAt.Format("Jan 2 15:04"),
			),
			24*time.Hour, //nolint:mnd //no magic number
		)
		if err != nil {
			return err
		}
	}

	tomorrow := time.Date(
		now.Year(),
		now.Month(),
		now.Day(),
		0,
		0,
		0,
		0,
		now.Location(),
	).AddDate(0, 0, 1)

	orders, err := j.orderService.GetDeliveriesDueBetween(
		ctx,
		tomorrow,
		tomorrow.AddDate(0, 0, 1),
	)
	if err != nil {
		return err
	}

	logger.Debug(fmt.Sprintf("%d deliveries due tomorrow", len(orders)))

	for _, order := range orders {
		err = j.notificationService.NotifyOnce(
			ctx,
			order.UserID,
			models.NotificationDeliveryReminder,
			fmt.Sprintf(
				"Delivery of %s due tomorrow",
				order.ProductDescription,
			),
			24*time.Hour, //nolint:mnd //no magic number
		)
		if err != nil {
			return err
		}
	}

	return nil
}
