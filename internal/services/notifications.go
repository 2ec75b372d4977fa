package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"procuroid.app/internal/models"
	"procuroid.app/internal/repositories"
)

type NotificationService struct {
	logger        *slog.Logger
	notifications *repositories.NotificationRepository
}

// Notify records a notification for the user. Failures are logged and
// swallowed so a broken notification never fails the triggering action.
func (service *NotificationService) Notify(
	ctx context.Context,
	userID string,
	notificationType models.NotificationType,
	message string,
) {
	_, err := service.notifications.Create(
		ctx,
		userID,
		notificationType,
		message,
	)
	if err != nil {
		service.logger.Error(
			"failed to create notification",
			logging.ErrAttr(err),
		)
	}
}

// NotifyOnce behaves like Notify but skips the write when the same
// notification already went out in the window.
func (service *NotificationService) NotifyOnce(
	ctx context.Context,
	userID string,
	notificationType models.NotificationType,
	message string,
	window time.Duration,
) error {
	exists, err := service.notifications.ExistsSimilarSince(
		ctx,
		userID,
		notificationType,
		message,
		time.Now().Add(-window),
	)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = service.notifications.Create(
		ctx,
		userID,
		notificationType,
		message,
	)

	return err
}

func (service *NotificationService) GetAll(
	ctx context.Context,
	userID string,
	unreadOnly bool,
) ([]models.Notification, error) {
	return service.notifications.GetAll(ctx, userID, unreadOnly)
}

func (service *NotificationService) MarkRead(
	ctx context.Context,
	id string,
	userID string,
) error {
	return service.notifications.MarkRead(ctx, id, userID)
}

func (service *NotificationService) MarkAllRead(
	ctx context.Context,
	userID string,
) error {
	return service.notifications.MarkAllRead(ctx, userID)
}
