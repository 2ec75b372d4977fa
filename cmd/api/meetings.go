package main

import (
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"procuroid.app/internal/dtos"
)

func (app *Application) meetingRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /meetings",
		app.services.Auth.Access(app.createMeetingHandler),
	)
	mux.HandleFunc(
		"GET /meetings",
		app.services.Auth.Access(app.getMeetingsHandler),
	)
}

func (app *Application) createMeetingHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	var createMeetingDto dtos.CreateMeetingDto
	err := httptools.ReadJSON(r.Body, &createMeetingDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createMeetingDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	meeting, err := app.services.Meetings.Create(
		r.Context(),
		user.ID,
		&createMeetingDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, meeting)
}

func (app *Application) getMeetingsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	query := r.URL.Query()

	var from, until *time.Time
	if fromParam, err := time.Parse(
		time.RFC3339,
		query.Get("from"),
	); err == nil {
		from = &fromParam
	}
	if untilParam, err := time.Parse(
		time.RFC3339,
		query.Get("to"),
	); err == nil {
		until = &untilParam
	}

	meetings, err := app.services.Meetings.GetAll(
		r.Context(),
		user.ID,
		from,
		until,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, meetings)
}
