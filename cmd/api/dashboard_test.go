package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

func TestGetDashboardStatsHandler(t *testing.T) {
	placed := seedOrder(t, "industrial fasteners", models.PendingQuotations)
	err := testApp.repositories.Orders.SetPlaced(
		context.Background(),
		&placed,
		"Nordic Steel Works",
		2500,
	)
	require.Nil(t, err)

	seedOrder(t, "hydraulic seals", models.PendingQuotations)
	seedOrder(t, "copper tubing", models.Delivered)

	seedSupplier(t, "Borealis Alloys")

	now := time.Now()
	seedContract(t, "CT-2026-010", now.AddDate(0, -1, 0), now.AddDate(0, 11, 0), 48000)
	seedMeeting(t, "Nordic Steel Works", now.Add(48*time.Hour))

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/dashboard/stats",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var stats dtos.DashboardStatsDto
	err = json.NewDecoder(rs.Body).Decode(&stats)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), stats.ActiveOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.DeliveredOrders)
	assert.Equal(t, int64(1), stats.Suppliers)
	assert.Equal(t, int64(1), stats.ActiveContracts)
	assert.Equal(t, int64(1), stats.UpcomingMeetings)
}

func TestGetDashboardSpendHandler(t *testing.T) {
	order := seedOrder(t, "stainless brackets", models.PendingQuotations)
	err := testApp.repositories.Orders.SetPlaced(
		context.Background(),
		&order,
		"Pacific Components Ltd",
		1500,
	)
	require.Nil(t, err)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/dashboard/spend",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var chart dtos.SpendChartDto
	err = json.NewDecoder(rs.Body).Decode(&chart)
	assert.Nil(t, err)
	require.NotEmpty(t, chart.Labels)
	assert.Len(t, chart.Values, len(chart.Labels))
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), chart.Labels[len(chart.Labels)-1])
	// cumulative, so the last point carries today's order
	assert.Equal(t, "1500", chart.Values[len(chart.Values)-1])
}

func TestGetDashboardSpendHandlerMonth(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/dashboard/spend?bucket=month",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var chart dtos.SpendChartDto
	err := json.NewDecoder(rs.Body).Decode(&chart)
	assert.Nil(t, err)
	assert.Len(t, chart.Labels, 30)
}
