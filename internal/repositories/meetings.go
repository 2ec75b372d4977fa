package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type MeetingRepository struct {
	db postgres.DB
}

func (repo *MeetingRepository) Create(
	ctx context.Context,
	userID string,
	createDto dtos.CreateMeetingDto,
) (*models.Meeting, error) {
	query := `
		INSERT INTO procuroid.meetings (user_id, supplier_name, reason,
		kind, scheduled_at, duration_text, location, meeting_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	//nolint:exhaustruct //id and created_at come from the insert
	meeting := models.Meeting{
		UserID:       userID,
		SupplierName: createDto.Supplier,
		Reason:       createDto.Reason,
		Kind:         models.MeetingKind(createDto.Type),
		ScheduledAt:  createDto.ScheduledTime(),
		DurationText: createDto.Duration,
		Location:     createDto.Location,
		MeetingLink:  createDto.MeetingLink,
	}

	err := repo.db.QueryRow(
		ctx,
		query,
		userID,
		meeting.SupplierName,
		meeting.Reason,
		meeting.Kind,
		meeting.ScheduledAt,
		meeting.DurationText,
		meeting.Location,
		meeting.MeetingLink,
	).Scan(&meeting.ID, &meeting.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &meeting, nil
}

func (repo *MeetingRepository) Delete(
	ctx context.Context,
	id string,
	userID string,
) error {
	query := `
		DELETE FROM procuroid.meetings
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

func (repo *MeetingRepository) GetAll(
	ctx context.Context,
	userID string,
) ([]models.Meeting, error) {
	query := `
		SELECT id, supplier_name, reason, kind, scheduled_at,
		duration_text, location, meeting_link, created_at
		FROM procuroid.meetings
		WHERE user_id = $1
		ORDER BY scheduled_at ASC, id ASC
	`

	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	return scanMeetings(rows, userID)
}

// GetScheduledBetween returns a single user's meetings in [from, until).
// Feeds the calendar month view and the ICS export.
func (repo *MeetingRepository) GetScheduledBetween(
	ctx context.Context,
	userID string,
	from time.Time,
	until time.Time,
) ([]models.Meeting, error) {
	query := `
		SELECT id, supplier_name, reason, kind, scheduled_at,
		duration_text, location, meeting_link, created_at
		FROM procuroid.meetings
		WHERE user_id = $1
		AND scheduled_at >= $2 AND scheduled_at < $3
		ORDER BY scheduled_at ASC, id ASC
	`

	rows, err := repo.db.Query(ctx, query, userID, from, until)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	return scanMeetings(rows, userID)
}

// GetUpcomingAllUsers returns every meeting starting in the window,
// regardless of owner. Used by the reminder job.
func (repo *MeetingRepository) GetUpcomingAllUsers(
	ctx context.Context,
	from time.Time,
	until time.Time,
) ([]models.Meeting, error) {
	query := `
		SELECT id, user_id, supplier_name, reason, kind, scheduled_at,
		duration_text, location, meeting_link, created_at
		FROM procuroid.meetings
		WHERE scheduled_at >= $1 AND scheduled_at < $2
		ORDER BY scheduled_at ASC
	`

	rows, err := repo.db.Query(ctx, query, from, until)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	meetings := []models.Meeting{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		meeting := models.Meeting{}

		err = rows.Scan(
			&meeting.ID,
			&meeting.UserID,
			&meeting.SupplierName,
			&meeting.Reason,
			&meeting.Kind,
			&meeting.ScheduledAt,
			&meeting.DurationText,
			&meeting.Location,
			&meeting.MeetingLink,
			&meeting.CreatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		meetings = append(meetings, meeting)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return meetings, nil
}

func scanMeetings(rows pgx.Rows, userID string) ([]models.Meeting, error) {
	meetings := []models.Meeting{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		meeting := models.Meeting{UserID: userID}

		err := rows.Scan(
			&meeting.ID,
			&meeting.SupplierName,
			&meeting.Reason,
			&meeting.Kind,
			&meeting.ScheduledAt,
			&meeting.DurationText,
			&meeting.Location,
			&meeting.MeetingLink,
			&meeting.CreatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		meetings = append(meetings, meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return meetings, nil
}
