package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
)

func (app *Application) notificationRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"GET /notifications",
		app.services.Auth.Access(app.getNotificationsHandler),
	)
	mux.HandleFunc(
		"POST /notifications/{id}/read",
		app.services.Auth.Access(app.markNotificationReadHandler),
	)
	mux.HandleFunc(
		"POST /notifications/read-all",
		app.services.Auth.Access(app.markAllNotificationsReadHandler),
	)
}

func (app *Application) getNotificationsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	notifications, err := app.services.Notifications.GetAll(
		r.Context(),
		user.ID,
		unreadOnly,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, notifications)
}

func (app *Application) markNotificationReadHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = app.services.Notifications.MarkRead(r.Context(), id, user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) markAllNotificationsReadHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	err := app.services.Notifications.MarkAllRead(r.Context(), user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
