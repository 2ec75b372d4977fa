package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type ordersResponse struct {
	Success    bool            `json:"success"`
	Orders     []models.Order  `json:"orders"`
	Pagination dtos.Pagination `json:"pagination"`
}

type orderDetailResponse struct {
	Success    bool               `json:"success"`
	Order      *models.Order      `json:"order"`
	Quotations []models.Quotation `json:"quotations"`
}

func (app *Application) orderRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /quote-requests",
		app.services.Auth.Access(app.createQuoteRequestHandler),
	)
	mux.HandleFunc(
		"GET /orders",
		app.services.Auth.Access(app.getOrdersHandler),
	)
	mux.HandleFunc(
		"GET /orders/{id}",
		app.services.Auth.Access(app.getOrderHandler),
	)
}

func (app *Application) createQuoteRequestHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	var quoteRequestDto dtos.QuoteRequestDto
	err := httptools.ReadJSON(r.Body, &quoteRequestDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := quoteRequestDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	order, err := app.services.Orders.CreateQuoteRequest(
		r.Context(),
		user.ID,
		&quoteRequestDto,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, order)
}

func (app *Application) getOrdersHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)
	page, pageSize := pageParams(r)

	query := r.URL.Query()
	orders, pagination, err := app.services.Orders.GetPaginated(
		r.Context(),
		user.ID,
		page,
		pageSize,
		query.Get("search"),
		models.OrderStatus(query.Get("status")),
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, ordersResponse{
		Success:    true,
		Orders:     orders,
		Pagination: pagination,
	})
}

func (app *Application) getOrderHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	user := currentUser(r)

	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	order, quotations, err := app.services.Orders.GetByID(
		r.Context(),
		id,
		user.ID,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, orderDetailResponse{
		Success:    true,
		Order:      order,
		Quotations: quotations,
	})
}
