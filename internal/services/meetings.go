package services

import (
	"context"
	"fmt"
	"time"

	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
	"procuroid.app/internal/repositories"
)

type MeetingService struct {
	meetings      *repositories.MeetingRepository
	notifications *NotificationService
}

func (service *MeetingService) Create(
	ctx context.Context,
	userID string,
	createDto *dtos.CreateMeetingDto,
) (*models.Meeting, error) {
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

func (service *MeetingService) GetUpcomingAllUsers(
	ctx context.Context,
	from time.Time,
	until time.Time,
) ([]models.Meeting, error) {
	return service.meetings.GetUpcomingAllUsers(ctx, from, until)
}

func (service *MeetingService) GetAll(
	ctx context.Context,
	userID string,
	from *time.Time,
	until *time.Time,
) ([]models.Meeting, error) {
	if from == nil || until == nil {
		return service.meetings.GetAll(ctx, userID)
	}

	return service.meetings.GetScheduledBetween(ctx, userID, *from, *until)
}
