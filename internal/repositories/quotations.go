package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"procuroid.app/internal/models"
)

type QuotationRepository struct {
	db postgres.DB
}

func (repo *QuotationRepository) GetByOrderID(
	ctx context.Context,
	orderID string,
	userID string,
) ([]models.Quotation, error) {
	query := `
		SELECT q.id, q.supplier_name, q.price_per_unit, q.total_price,
		q.delivery_date, q.payment_terms, q.rating, q.status, q.created_at
		FROM procuroid.quotations q
		JOIN procuroid.orders o ON o.id = q.order_id
		WHERE q.order_id = $1 AND o.user_id = $2
		ORDER BY q.rating DESC, q.id ASC
	`

	rows, err := repo.db.Query(ctx, query, orderID, userID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	quotations := []models.Quotation{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		quotation := models.Quotation{OrderID: orderID}

		err = rows.Scan(
			&quotation.ID,
			&quotation.SupplierName,
			&quotation.PricePerUnit,
			&quotation.TotalPrice,
			&quotation.DeliveryDate,
			&quotation.PaymentTerms,
			&quotation.Rating,
			&quotation.Status,
			&quotation.CreatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		quotations = append(quotations, quotation)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return quotations, nil
}

func (repo *QuotationRepository) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Quotation, error) {
	query := `
		SELECT q.order_id, q.supplier_name, q.price_per_unit, q.total_price,
		q.delivery_date, q.payment_terms, q.rating, q.status, q.created_at
		FROM procuroid.quotations q
		JOIN procuroid.orders o ON o.id = q.order_id
		WHERE q.id = $1 AND o.user_id = $2
	`

	//nolint:exhaustruct //fields are scanned below
	quotation := models.Quotation{ID: id}
	err := repo.db.QueryRow(ctx, query, id, userID).Scan(
		&quotation.OrderID,
		&quotation.SupplierName,
		&quotation.PricePerUnit,
		&quotation.TotalPrice,
		&quotation.DeliveryDate,
		&quotation.PaymentTerms,
		&quotation.Rating,
		&quotation.Status,
		&quotation.CreatedAt,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &quotation, nil
}

func (repo *QuotationRepository) Create(
	ctx context.Context,
	orderID string,
	supplierName string,
	pricePerUnit float64,
	totalPrice float64,
	deliveryDate time.Time,
	paymentTerms string,
	rating float64,
) (*models.Quotation, error) {
	query := `
		INSERT INTO procuroid.quotations (order_id, supplier_name,
		price_per_unit, total_price, delivery_date, payment_terms, rating,
		status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	quotation := models.Quotation{
		ID:           "",
		OrderID:      orderID,
		SupplierName: supplierName,
		PricePerUnit: pricePerUnit,
		TotalPrice:   totalPrice,
		DeliveryDate: deliveryDate,
		PaymentTerms: paymentTerms,
		Rating:       rating,
		Status:       models.QuotationPending,
		CreatedAt:    time.Time{},
	}

	err := repo.db.QueryRow(
		ctx,
		query,
		orderID,
		supplierName,
		pricePerUnit,
		totalPrice,
		deliveryDate,
		paymentTerms,
		rating,
		models.QuotationPending,
	).Scan(&quotation.ID, &quotation.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &quotation, nil
}

func (repo *QuotationRepository) SetStatus(
	ctx context.Context,
	quotation *models.Quotation,
	status models.QuotationStatus,
) error {
	query := `
		UPDATE procuroid.quotations
		SET status = $2
		WHERE id = $1
	`

	result, err := repo.db.Exec(ctx, query, quotation.ID, status)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	quotation.Status = status

	return nil
}
