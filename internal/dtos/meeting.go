package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"
	"procuroid.app/internal/models"
)

type CreateMeetingDto struct {
	Supplier    string  `json:"supplier"`
	Reason      string  `json:"reason"`
	Type        string  `json:"type"`
	ScheduledAt string  `json:"scheduledAt"`
	Duration    *string `json:"duration"`
	Location    *string `json:"location"`
	MeetingLink *string `json:"meetingLink"`
}

func (dto *CreateMeetingDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "supplier", dto.Supplier, validate.IsNotEmpty)
	validate.Check(v, "scheduledAt", dto.ScheduledAt, validate.IsNotEmpty)

	errs := v.Errors()

	if dto.ScheduledAt != "" {
		if _, err := time.Parse(time.RFC3339, dto.ScheduledAt); err != nil {
			errs["scheduledAt"] = "must be an RFC 3339 timestamp"
		}
	}

	switch models.MeetingKind(dto.Type) {
	case models.MeetingInPerson, models.MeetingCall:
	default:
		errs["type"] = "must be 'meeting' or 'call'"
	}

	return len(errs) == 0, errs
}

func (dto *CreateMeetingDto) ScheduledTime() time.Time {
	scheduledAt, _ := time.Parse(time.RFC3339, dto.ScheduledAt)
	return scheduledAt
}
