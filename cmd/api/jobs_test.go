package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"procuroid.app/internal/jobs"
	"procuroid.app/internal/mocks"
	"procuroid.app/internal/models"
)

func cleanupNotifications(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		//nolint:errcheck //cleanup
		testApp.repositories.Notifications.MarkAllRead(
			context.Background(),
			userID,
		)
	})
}

func TestDiscoveryJob(t *testing.T) {
	seedOrder(t, "stainless steel sheets", models.DiscoveryActive)
	cleanupNotifications(t)

	job := jobs.NewDiscoveryJob(
		mocks.NewMockedDirectoryClient(),
		"https://directory.example.com",
		testApp.services.Orders,
		testApp.services.Suppliers,
		testApp.services.Notifications,
	)
	job.ID()
	job.RunEvery()

	err := job.Run(context.Background(), logging.NewNopLogger())
	require.Nil(t, err)

	suppliers, total, err := testApp.repositories.Suppliers.GetPaginated(
		context.Background(),
		userID,
		1,
		10,
		"Nordic Steel Works",
		"company_name",
		"asc",
	)
	require.Nil(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, "Nordic Steel Works", suppliers[0].CompanyName)

	t.Cleanup(func() {
		//nolint:errcheck //cleanup
		testApp.repositories.Suppliers.Delete(
			context.Background(),
			suppliers[0].ID,
			userID,
		)
	})

	notifications, err := testApp.repositories.Notifications.GetAll(
		context.Background(),
		userID,
		true,
	)
	require.Nil(t, err)
	require.NotEmpty(t, notifications)
	assert.Equal(
		t,
		models.NotificationSupplierDiscovery,
		notifications[0].Type,
	)

	// a second run inside the window must not duplicate the notification
	err = job.Run(context.Background(), logging.NewNopLogger())
	require.Nil(t, err)

	again, err := testApp.repositories.Notifications.GetAll(
		context.Background(),
		userID,
		true,
	)
	require.Nil(t, err)
	assert.Len(t, again, len(notifications))
}

func TestDiscoveryJobNoDirectory(t *testing.T) {
	job := jobs.NewDiscoveryJob(
		mocks.NewMockedDirectoryClient(),
		"",
		testApp.services.Orders,
		testApp.services.Suppliers,
		testApp.services.Notifications,
	)

	err := job.Run(context.Background(), logging.NewNopLogger())
	assert.Nil(t, err)
}

func TestReminderJob(t *testing.T) {
	seedMeeting(t, "Nordic Steel Works", time.Now().Add(2*time.Hour))
	seedDeliveryOrder(t, time.Now().AddDate(0, 0, 1))
	cleanupNotifications(t)

	job := jobs.NewReminderJob(
		testApp.services.Meetings,
		testApp.services.Orders,
		testApp.services.Notifications,
	)
	job.ID()
	job.RunEvery()

	err := job.Run(context.Background(), logging.NewNopLogger())
	require.Nil(t, err)

	notifications, err := testApp.repositories.Notifications.GetAll(
		context.Background(),
		userID,
		true,
	)
	require.Nil(t, err)

	types := []models.NotificationType{}
	for _, notification := range notifications {
		types = append(types, notification.Type)
	}

	assert.Contains(t, types, models.NotificationMeetingReminder)
	assert.Contains(t, types, models.NotificationDeliveryReminder)
}
