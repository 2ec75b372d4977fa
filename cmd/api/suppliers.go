package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type suppliersResponse struct {
	Success    bool              `json:"success"`
	Suppliers  []models.Supplier `json:"suppliers"`
	Pagination dtos.Pagination   `json:"pagination"`
}

func (app *Application) supplierRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"GET /suppliers",
		app.services.Auth.Access(app.getSuppliersHandler),
	)
	mux.HandleFunc(
		"POST /suppliers",
		app.services.Auth.Access(app.createSupplierHandler),
	)
	mux.HandleFunc(
		"GET /suppliers/{id}",
		app.services.Auth.Access(app.getSupplierHandler),
	)
	mux.HandleFunc(
		"PATCH /suppliers/{id}",
		app.services.Auth.Access(app.updateSupplierHandler),
	)
	mux.HandleFunc(
		"DELETE /suppliers/{id}",
		app.services.Auth.Access(app.deleteSupplierHandler),
	)
}

func (app *Application) getSuppliersHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)
	page, pageSize := pageParams(r)

	query := r.URL.Query()
	suppliers, pagination, err := app.services.Suppliers.GetPaginated(
		r.Context(),
		user.ID,
		page,
		pageSize,
		query.Get("search"),
		query.Get("sort_by"),
		query.Get("sort_order"),
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, suppliersResponse{
		Success:    true,
		Suppliers:  suppliers,
		Pagination: pagination,
	})
}

func (app *Application) getSupplierHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	supplier, err := app.services.Suppliers.GetByID(r.Context(), id, user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, supplier)
}

func (app *Application) createSupplierHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	var createSupplierDto dtos.CreateSupplierDto
	err := httptools.ReadJSON(r.Body, &createSupplierDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createSupplierDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	supplier, err := app.services.Suppliers.Create(
		r.Context(),
		user.ID,
		&createSupplierDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, supplier)
}

func (app *Application) updateSupplierHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	var updateSupplierDto dtos.UpdateSupplierDto
	err = httptools.ReadJSON(r.Body, &updateSupplierDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := updateSupplierDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	supplier, err := app.services.Suppliers.Update(
		r.Context(),
		id,
		user.ID,
		&updateSupplierDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, supplier)
}

func (app *Application) deleteSupplierHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = app.services.Suppliers.Delete(r.Context(), id, user.ID)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
