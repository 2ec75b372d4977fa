package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"procuroid.app/internal/ical"
	"procuroid.app/internal/models"
)

func TestCalendarEventFromOrder(t *testing.T) {
	deliveryDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	location := "Warehouse Dock"

	//nolint:exhaustruct //other fields are optional
	order := models.Order{
		ID:                 "ORD-001",
		ProductDescription: "Welding Equipment",
		DeliveryDate:       &deliveryDate,
		DeliveryLocation:   &location,
	}

	event, ok := models.CalendarEventFromOrder(order)
	assert.True(t, ok)
	assert.Equal(t, "Delivery - Welding Equipment", event.Title)
	assert.Equal(t, ical.KindDelivery, event.Type)
	assert.Equal(t, "2024-03-10", event.Date)
	assert.Equal(t, "Warehouse Dock", event.Location)
	assert.Equal(t, "ORD-001", event.OrderID)
}

func TestCalendarEventFromOrderWithoutDeliveryDate(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	order := models.Order{ID: "ORD-002"}

	_, ok := models.CalendarEventFromOrder(order)
	assert.False(t, ok)
}

func TestCalendarEventFromMeeting(t *testing.T) {
	scheduledAt := time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC)
	link := "https://meet.example/x"

	//nolint:exhaustruct //other fields are optional
	meeting := models.Meeting{
		ID:           "MTG-7",
		SupplierName: "SteelCorp Industries",
		Reason:       "Discuss steel specifications",
		Kind:         models.MeetingCall,
		ScheduledAt:  scheduledAt,
		MeetingLink:  &link,
	}

	event := models.CalendarEventFromMeeting(meeting)
	assert.Equal(t, "Call with SteelCorp Industries", event.Title)
	assert.Equal(t, ical.KindCall, event.Type)
	assert.Equal(t, "2:00 PM", event.Time)
	assert.Equal(t, &scheduledAt, event.ScheduledAt)

	encoded := event.ToICal()
	assert.Equal(t, &scheduledAt, encoded.PreciseStart)
	assert.Equal(t, "https://meet.example/x", encoded.MeetingLink)
}
