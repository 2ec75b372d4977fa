package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"procuroid.app/internal/dtos"
)

func (app *Application) dashboardRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"GET /dashboard/stats",
		app.services.Auth.Access(app.getDashboardStatsHandler),
	)
	mux.HandleFunc(
		"GET /dashboard/spend",
		app.services.Auth.Access(app.getDashboardSpendHandler),
	)
}

func (app *Application) getDashboardStatsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	stats, err := app.services.Dashboard.Stats(r.Context(), user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, stats)
}

func (app *Application) getDashboardSpendHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		bucket = "week"
	}

	labels, values, err := app.services.Dashboard.SpendChart(
		r.Context(),
		user.ID,
		bucket,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, dtos.SpendChartDto{
		Labels: labels,
		Values: values,
	})
}
