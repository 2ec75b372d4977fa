package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"procuroid.app/internal/models"
)

type NotificationRepository struct {
	db postgres.DB
}

func (repo *NotificationRepository) Create(
	ctx context.Context,
	userID string,
	notificationType models.NotificationType,
	message string,
) (*models.Notification, error) {
	query := `
		INSERT INTO procuroid.notifications (user_id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	notification := models.Notification{
		ID:        "",
		UserID:    userID,
		Type:      notificationType,
		Message:   message,
		Read:      false,
		CreatedAt: time.Time{},
	}

	err := repo.db.QueryRow(ctx, query, userID, notificationType, message).
		Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &notification, nil
}

func (repo *NotificationRepository) GetAll(
	ctx context.Context,
	userID string,
	unreadOnly bool,
) ([]models.Notification, error) {
	query := `
		SELECT id, type, message, read, created_at
		FROM procuroid.notifications
		WHERE user_id = $1
		AND (NOT $2 OR read = false)
		ORDER BY created_at DESC, id ASC
	`

	rows, err := repo.db.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		notification := models.Notification{UserID: userID}

		err = rows.Scan(
			&notification.ID,
			&notification.Type,
			&notification.Message,
			&notification.Read,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		notifications = append(notifications, notification)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return notifications, nil
}

func (repo *NotificationRepository) MarkRead(
	ctx context.Context,
	id string,
	userID string,
) error {
	query := `
		UPDATE procuroid.notifications
		SET read = true
		WHERE id = $1 AND user_id = $2
	`

	result, err := repo.db.Exec(ctx, query, id, userID)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *NotificationRepository) MarkAllRead(
	ctx context.Context,
	userID string,
) error {
	query := `
		UPDATE procuroid.notifications
		SET read = true
		WHERE user_id = $1 AND read = false
	`

	_, err := repo.db.Exec(ctx, query, userID)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

// ExistsSimilarSince reports whether an identical reminder already went out
// in the window. Keeps the reminder job from re-notifying on every run.
func (repo *NotificationRepository) ExistsSimilarSince(
	ctx context.Context,
	userID string,
	notificationType models.NotificationType,
	message string,
	since time.Time,
) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM procuroid.notifications
			WHERE user_id = $1 AND type = $2 AND message = $3
			AND created_at >= $4
		)
	`

	var exists bool
	err := repo.db.QueryRow(
		ctx,
		query,
		userID,
		notificationType,
		message,
		since,
	).Scan(&exists)
	if err != nil {
		return false, postgres.PgxErrorToHTTPError(err)
	}

	return exists, nil
}
