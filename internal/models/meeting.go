package models

import "time"

type MeetingKind string

const (
	MeetingInPerson MeetingKind = "meeting"
	MeetingCall     MeetingKind = "call"
)

type Meeting struct {
	ID           string      `json:"id"`
	UserID       string      `json:"-"`
	SupplierName string      `json:"supplier"`
	Reason       string      `json:"reason"`
	Kind         MeetingKind `json:"type"`
	ScheduledAt  time.Time   `json:"scheduledAt"`
	DurationText *string     `json:"duration"`
	Location     *string     `json:"location"`
	MeetingLink  *string     `json:"meetingLink"`
	CreatedAt    time.Time   `json:"createdAt"`
}
