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

func seedQuotation(t *testing.T, orderID string) models.Quotation {
	t.Helper()

	quotation, err := testApp.repositories.Quotations.Create(
		context.Background(),
		orderID,
		"Pacific Components Ltd",
		2.5,
		500,
		time.Now().AddDate(0, 1, 0),
		"Net 60",
		4.1,
	)
	require.Nil(t, err)

	return *quotation
}

func TestApproveQuotationHandler(t *testing.T) {
	order := seedOrder(t, "connectors", models.QuotationsReceived)
	quotation := seedQuotation(t, order.ID)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/quotations/%s/approve", quotation.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var approved models.Quotation
	err := json.NewDecoder(rs.Body).Decode(&approved)
	assert.Nil(t, err)
	assert.Equal(t, models.QuotationApproved, approved.Status)

	placedOrder, err := testApp.repositories.Orders.GetByID(
		context.Background(),
		order.ID,
		userID,
	)
	require.Nil(t, err)
	assert.Equal(t, models.OrderPlaced, placedOrder.Status)
	assert.Equal(t, quotation.TotalPrice, placedOrder.TotalCost)
	require.NotNil(t, placedOrder.SupplierName)
	assert.Equal(t, quotation.SupplierName, *placedOrder.SupplierName)

	notifications, err := testApp.repositories.Notifications.GetAll(
		context.Background(),
		userID,
		true,
	)
	require.Nil(t, err)
	assert.NotEmpty(t, notifications)

	//nolint:errcheck //cleanup
	testApp.repositories.Notifications.MarkAllRead(
		context.Background(),
		userID,
	)
}

func TestApproveQuotationHandlerTwice(t *testing.T) {
	order := seedOrder(t, "valves", models.QuotationsReceived)
	quotation := seedQuotation(t, order.ID)

	err := testApp.repositories.Quotations.SetStatus(
		context.Background(),
		&quotation,
		models.QuotationApproved,
	)
	require.Nil(t, err)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/quotations/%s/approve", quotation.ID),
	)

	rs := tReq.Do(t)
	assert.NotEqual(t, http.StatusOK, rs.StatusCode)
}

func TestRejectQuotationHandler(t *testing.T) {
	order := seedOrder(t, "bearings", models.QuotationsReceived)
	quotation := seedQuotation(t, order.ID)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/quotations/%s/reject", quotation.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var rejected models.Quotation
	err := json.NewDecoder(rs.Body).Decode(&rejected)
	assert.Nil(t, err)
	assert.Equal(t, models.QuotationRejected, rejected.Status)

	// the order must stay untouched
	unchanged, err := testApp.repositories.Orders.GetByID(
		context.Background(),
		order.ID,
		userID,
	)
	require.Nil(t, err)
	assert.Equal(t, models.QuotationsReceived, unchanged.Status)

	//nolint:errcheck //cleanup
	testApp.repositories.Notifications.MarkAllRead(
		context.Background(),
		userID,
	)
}

func TestRequestMeetingHandler(t *testing.T) {
	order := seedOrder(t, "gaskets", models.QuotationsReceived)
	quotation := seedQuotation(t, order.ID)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/quotations/%s/request-meeting", quotation.ID),
	)

	//nolint:exhaustruct //other fields are optional
	tReq.SetData(dtos.CreateMeetingDto{
		Type:        "call",
		ScheduledAt: time.Now().AddDate(0, 0, 2).Format(time.RFC3339),
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var meeting models.Meeting
	err := json.NewDecoder(rs.Body).Decode(&meeting)
	assert.Nil(t, err)
	assert.Equal(t, quotation.SupplierName, meeting.SupplierName)
	assert.Equal(t, models.MeetingCall, meeting.Kind)
	assert.NotEmpty(t, meeting.Reason)

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

func TestGetQuotationsHandler(t *testing.T) {
	order := seedOrder(t, "o-rings", models.QuotationsReceived)
	seedQuotation(t, order.ID)
	seedQuotation(t, order.ID)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		fmt.Sprintf("/orders/%s/quotations", order.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var quotations []models.Quotation
	err := json.NewDecoder(rs.Body).Decode(&quotations)
	assert.Nil(t, err)
	assert.Len(t, quotations, 2)
}
