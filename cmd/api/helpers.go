package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"procuroid.app/internal/constants"
	"procuroid.app/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (app *Application) writeJSON(
	w http.ResponseWriter,
	status int,
	v any,
) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.Error("failed to write JSON response", logging.ErrAttr(err))
	}
}

func currentUser(r *http.Request) models.User {
	user := contexttools.GetValue[models.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic("not signed in")
	}

	return *user
}

func bearerTokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", errors.New("no bearer token")
	}

	return token, nil
}

func pageParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}
