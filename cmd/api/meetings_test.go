package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

func seedMeeting(t *testing.T, supplier string, at time.Time) models.Meeting {
	t.Helper()

	//nolint:exhaustruct //other fields are optional
	meeting, err := testApp.repositories.Meetings.Create(
		context.Background(),
		userID,
		dtos.CreateMeetingDto{
			Supplier:    supplier,
			Reason:      "Contract renewal",
			Type:        "meeting",
			ScheduledAt: at.Format(time.RFC3339),
		},
	)
	require.Nil(t, err)

	t.Cleanup(func() {
		//nolint:errcheck //cleanup
		testApp.repositories.Meetings.Delete(
			context.Background(),
			meeting.ID,
			userID,
		)
	})

	return *meeting
}

func TestCreateMeetingHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/meetings",
	)

	duration := "1 hour"
	link := "https://meet.example.com/abc"

	//nolint:exhaustruct //other fields are optional
	tReq.SetData(dtos.CreateMeetingDto{
		Supplier:    "Nordic Steel Works",
		Reason:      "Price negotiation",
		Type:        "call",
		ScheduledAt: time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
		Duration:    &duration,
		MeetingLink: &link,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var meeting models.Meeting
	err := json.NewDecoder(rs.Body).Decode(&meeting)
	assert.Nil(t, err)
	assert.Equal(t, "Nordic Steel Works", meeting.SupplierName)
	assert.Equal(t, models.MeetingCall, meeting.Kind)
	require.NotNil(t, meeting.MeetingLink)
	assert.Equal(t, link, *meeting.MeetingLink)

	//nolint:errcheck //cleanup
	testApp.repositories.Meetings.Delete(
		context.Background(),
		meeting.ID,
		userID,
	)
	//nolint:errcheck //cleanup
	testApp.repositories.Notifications.MarkAllRead(
		context.Background(),
		userID,
	)
}

func TestCreateMeetingHandlerValidation(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/meetings",
	)

	//nolint:exhaustruct //invalid on purpose
	tReq.SetData(dtos.CreateMeetingDto{
		Supplier:    "Nordic Steel Works",
		Type:        "conference",
		ScheduledAt: "not-a-timestamp",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestGetMeetingsHandler(t *testing.T) {
	now := time.Now()
	seedMeeting(t, "Early Supplier", now.AddDate(0, 0, 1))
	seedMeeting(t, "Late Supplier", now.AddDate(0, 0, 5))

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/meetings",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var meetings []models.Meeting
	err := json.NewDecoder(rs.Body).Decode(&meetings)
	assert.Nil(t, err)
	assert.Len(t, meetings, 2)
	assert.Equal(t, "Early Supplier", meetings[0].SupplierName)
}

func TestGetMeetingsHandlerWindow(t *testing.T) {
	// UTC keeps the RFC 3339 offset out of the query string
	now := time.Now().UTC()
	seedMeeting(t, "In Window", now.AddDate(0, 0, 1))
	seedMeeting(t, "Out Of Window", now.AddDate(0, 0, 10))

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		fmt.Sprintf(
			"/meetings?from=%s&to=%s",
			now.Format(time.RFC3339),
			now.AddDate(0, 0, 3).Format(time.RFC3339),
		),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var meetings []models.Meeting
	err := json.NewDecoder(rs.Body).Decode(&meetings)
	assert.Nil(t, err)
	assert.Len(t, meetings, 1)
	assert.Equal(t, "In Window", meetings[0].SupplierName)
}
