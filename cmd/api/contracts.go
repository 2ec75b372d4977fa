package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type contractsResponse struct {
	Success    bool              `json:"success"`
	Contracts  []models.Contract `json:"contracts"`
	Pagination dtos.Pagination   `json:"pagination"`
}

type contractDetailResponse struct {
	*models.Contract
	ExpectedUtilization float64 `json:"expected_utilization"`
}

func (app *Application) contractRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"GET /contracts",
		app.services.Auth.Access(app.getContractsHandler),
	)
	mux.HandleFunc(
		"GET /contracts/{id}",
		app.services.Auth.Access(app.getContractHandler),
	)
}

func (app *Application) getContractsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)
	page, pageSize := pageParams(r)

	contracts, pagination, err := app.services.Contracts.GetPaginated(
		r.Context(),
		user.ID,
		page,
		pageSize,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, contractsResponse{
		Success:    true,
		Contracts:  contracts,
		Pagination: pagination,
	})
}

func (app *Application) getContractHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	contract, utilization, err := app.services.Contracts.GetByID(
		r.Context(),
		id,
		user.ID,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, contractDetailResponse{
		Contract:            contract,
		ExpectedUtilization: utilization,
	})
}
