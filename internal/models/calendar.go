package models

import (
	"fmt"
	"time"

	"procuroid.app/internal/ical"
)

// CalendarEvent is the merged view of order deliveries and scheduled
// meetings the Calendar page renders. It is derived on every request and
// never persisted.
type CalendarEvent struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Type         ical.Kind  `json:"type"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Duration     string     `json:"duration"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	OrderID      string     `json:"orderId,omitempty"`
	SupplierName string     `json:"supplier,omitempty"`
	MeetingLink  string     `json:"meetingLink,omitempty"`
	ScheduledAt  *time.Time `json:"scheduledAt,omitempty"`
}

// CalendarEventFromOrder derives a delivery event from an order. Orders
// without a delivery date have nothing to put on the calendar.
func CalendarEventFromOrder(order Order) (CalendarEvent, bool) {
	if order.DeliveryDate == nil {
		//nolint:exhaustruct //zero value is discarded by the caller
		return CalendarEvent{}, false
	}

	event := CalendarEvent{
		ID:      order.ID,
		Title:   "Delivery - " + order.ProductDescription,
		Type:    ical.KindDelivery,
		Date:    order.DeliveryDate.Format("2006-01-02"),
		OrderID: order.ID,
	}

	if order.DeliveryLocation != nil {
		event.Location = *order.DeliveryLocation
	}
	if order.SupplierName != nil {
		event.SupplierName = *order.SupplierName
	}

	return event, true
}

// CalendarEventFromMeeting derives a meeting or call event. The original
// scheduling timestamp is kept so the export never re-parses date/time text.
func CalendarEventFromMeeting(meeting Meeting) CalendarEvent {
	scheduledAt := meeting.ScheduledAt

	event := CalendarEvent{
		ID:           meeting.ID,
		Title:        fmt.Sprintf("Meeting with %s", meeting.SupplierName),
		Type:         ical.Kind(meeting.Kind),
		Date:         scheduledAt.Format("2006-01-02"),
		Time:         scheduledAt.Format("3:04 PM"),
		Description:  meeting.Reason,
		SupplierName: meeting.SupplierName,
		ScheduledAt:  &scheduledAt,
	}

	if meeting.Kind == MeetingCall {
		event.Title = fmt.Sprintf("Call with %s", meeting.SupplierName)
	}
	if meeting.DurationText != nil {
		event.Duration = *meeting.DurationText
	}
	if meeting.Location != nil {
		event.Location = *meeting.Location
	}
	if meeting.MeetingLink != nil {
		event.MeetingLink = *meeting.MeetingLink
	}

	return event
}

// ToICal maps the event onto the encoder's type.
func (event CalendarEvent) ToICal() ical.Event {
	return ical.Event{
		ID:           event.ID,
		Title:        event.Title,
		Kind:         event.Type,
		Date:         event.Date,
		Time:         event.Time,
		DurationText: event.Duration,
		Location:     event.Location,
		Description:  event.Description,
		OrderID:      event.OrderID,
		SupplierName: event.SupplierName,
		MeetingLink:  event.MeetingLink,
		PreciseStart: event.ScheduledAt,
	}
}
