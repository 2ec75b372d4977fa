package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"procuroid.app/internal/dtos"
)

func (app *Application) quotationRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"GET /orders/{id}/quotations",
		app.services.Auth.Access(app.getQuotationsHandler),
	)
	mux.HandleFunc(
		"POST /quotations/{id}/approve",
		app.services.Auth.Access(app.approveQuotationHandler),
	)
	mux.HandleFunc(
		"POST /quotations/{id}/reject",
		app.services.Auth.Access(app.rejectQuotationHandler),
	)
	mux.HandleFunc(
		"POST /quotations/{id}/request-meeting",
		app.services.Auth.Access(app.requestMeetingHandler),
	)
}

func (app *Application) getQuotationsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	quotations, err := app.services.Quotations.GetByOrderID(
		r.Context(),
		id,
		user.ID,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, quotations)
}

func (app *Application) approveQuotationHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	quotation, err := app.services.Quotations.Approve(r.Context(), id, user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, quotation)
}

func (app *Application) rejectQuotationHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	quotation, err := app.services.Quotations.Reject(r.Context(), id, user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, quotation)
}

func (app *Application) requestMeetingHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	var createMeetingDto dtos.CreateMeetingDto
	err = httptools.ReadJSON(r.Body, &createMeetingDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	// supplier comes from the quotation itself
	createMeetingDto.Supplier = "-"
	if ok, errs := createMeetingDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	meeting, err := app.services.Quotations.RequestMeeting(
		r.Context(),
		id,
		user.ID,
		&createMeetingDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, meeting)
}
