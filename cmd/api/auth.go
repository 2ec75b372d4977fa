package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"procuroid.app/internal/dtos"
)

func (app *Application) authRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/signup", app.signUpHandler)
	mux.HandleFunc("POST /auth/signin", app.signInHandler)
	mux.HandleFunc("POST /auth/refresh", app.refreshHandler)
	mux.HandleFunc(
		"GET /auth/me",
		app.services.Auth.Access(app.currentUserHandler),
	)
	mux.HandleFunc(
		"POST /auth/signout",
		app.services.Auth.Access(app.signOutHandler),
	)
}

func (app *Application) signUpHandler(w http.ResponseWriter, r *http.Request) {
	var signUpDto dtos.SignUpDto

	err := httptools.ReadJSON(r.Body, &signUpDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := signUpDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	user, err := app.services.Auth.SignUp(&signUpDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, user)
}

func (app *Application) signInHandler(w http.ResponseWriter, r *http.Request) {
	var signInDto dtos.SignInDto

	err := httptools.ReadJSON(r.Body, &signInDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := signInDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	tokens, err := app.services.Auth.SignInWithEmail(&signInDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, tokens)
}

func (app *Application) refreshHandler(w http.ResponseWriter, r *http.Request) {
	var refreshTokenDto dtos.RefreshTokenDto

	err := httptools.ReadJSON(r.Body, &refreshTokenDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := refreshTokenDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	tokens, err := app.services.Auth.SignInWithRefreshToken(
		refreshTokenDto.RefreshToken,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, tokens)
}

func (app *Application) currentUserHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	app.writeJSON(w, http.StatusOK, currentUser(r))
}

func (app *Application) signOutHandler(w http.ResponseWriter, r *http.Request) {
	accessToken, err := bearerTokenFromRequest(r)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = app.services.Auth.SignOut(accessToken)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
