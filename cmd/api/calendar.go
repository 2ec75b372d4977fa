package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

func (app *Application) calendarRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"GET /calendar/events",
		app.services.Auth.Access(app.getCalendarEventsHandler),
	)
	mux.HandleFunc(
		"GET /calendar/export.ics",
		app.services.Auth.Access(app.exportCalendarHandler),
	)
}

func (app *Application) getCalendarEventsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	now := time.Now()

	query := r.URL.Query()
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		year = now.Year()
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	events, err := app.services.Calendar.EventsForMonth(
		r.Context(),
		user.ID,
		year,
		time.Month(month),
		time.Local,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, events)
}

func (app *Application) exportCalendarHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	now := time.Now()
	document, err := app.services.Calendar.BuildExport(
		r.Context(),
		user.ID,
		now,
		time.Local,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf(
			"attachment; filename=procuroid-calendar-%s.ics",
			now.Format("2006-01-02"),
		),
	)
	//nolint:errcheck //response is already committed
	w.Write([]byte(document))
}
