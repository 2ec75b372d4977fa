package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"procuroid.app/internal/models"
)

func seedNotification(
	t *testing.T,
	notificationType models.NotificationType,
	message string,
) models.Notification {
	t.Helper()

	notification, err := testApp.repositories.Notifications.Create(
		context.Background(),
		userID,
		notificationType,
		message,
	)
	require.Nil(t, err)

	t.Cleanup(func() {
		//nolint:errcheck //cleanup
		testApp.repositories.Notifications.MarkAllRead(
			context.Background(),
			userID,
		)
	})

	return *notification
}

func TestGetNotificationsHandler(t *testing.T) {
	seedNotification(
		t,
		models.NotificationMeetingReminder,
		"Meeting with Nordic Steel Works in 2 hours",
	)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/notifications",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var notifications []models.Notification
	err := json.NewDecoder(rs.Body).Decode(&notifications)
	assert.Nil(t, err)
	require.NotEmpty(t, notifications)
	assert.Equal(
		t,
		models.NotificationMeetingReminder,
		notifications[0].Type,
	)
	assert.False(t, notifications[0].Read)
}

func TestGetNotificationsHandlerUnreadOnly(t *testing.T) {
	read := seedNotification(
		t,
		models.NotificationDeliveryReminder,
		"Delivery for order due tomorrow",
	)
	unread := seedNotification(
		t,
		models.NotificationQuotationApproved,
		"Quotation approved",
	)

	err := testApp.repositories.Notifications.MarkRead(
		context.Background(),
		read.ID,
		userID,
	)
	require.Nil(t, err)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/notifications?unread_only=true",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var notifications []models.Notification
	err = json.NewDecoder(rs.Body).Decode(&notifications)
	assert.Nil(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, unread.ID, notifications[0].ID)
}

func TestMarkNotificationReadHandler(t *testing.T) {
	notification := seedNotification(
		t,
		models.NotificationMeetingScheduled,
		"Meeting scheduled",
	)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/notifications/%s/read", notification.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNoContent, rs.StatusCode)

	notifications, err := testApp.repositories.Notifications.GetAll(
		context.Background(),
		userID,
		true,
	)
	require.Nil(t, err)
	for _, unread := range notifications {
		assert.NotEqual(t, notification.ID, unread.ID)
	}
}

func TestMarkNotificationReadHandlerNotFound(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/notifications/00000000-0000-0000-0000-000000000000/read",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNotFound, rs.StatusCode)
}

func TestMarkAllNotificationsReadHandler(t *testing.T) {
	seedNotification(
		t,
		models.NotificationSupplierDiscovery,
		"Found 3 new suppliers",
	)
	seedNotification(
		t,
		models.NotificationQuotationRejected,
		"Quotation rejected",
	)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/notifications/read-all",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNoContent, rs.StatusCode)

	notifications, err := testApp.repositories.Notifications.GetAll(
		context.Background(),
		userID,
		true,
	)
	require.Nil(t, err)
	assert.Empty(t, notifications)
}
