package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type OrderRepository struct {
	db postgres.DB
}

func (repo *OrderRepository) Create(
	ctx context.Context,
	userID string,
	quoteRequestDto dtos.QuoteRequestDto,
	status models.OrderStatus,
) (*models.Order, error) {
	query := `
		INSERT INTO procuroid.orders (user_id, description, order_type,
		product_description, quantity, lower_limit, upper_limit,
		delivery_date, delivery_location, discovery_mode, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	var deliveryDate *time.Time
	if quoteRequestDto.DeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", quoteRequestDto.DeliveryDate)
		if err == nil {
			deliveryDate = &parsed
		}
	}

	var deliveryLocation *string
	if quoteRequestDto.Location != "" {
		deliveryLocation = &quoteRequestDto.Location
	}

	//nolint:exhaustruct //total_cost and supplier are set on approval
	order := models.Order{
		UserID:             userID,
		Description:        quoteRequestDto.Description,
		OrderType:          quoteRequestDto.OrderType,
		ProductDescription: quoteRequestDto.ProductDescription,
		Quantity:           quoteRequestDto.Quantity,
		LowerLimit:         quoteRequestDto.LowerLimit,
		UpperLimit:         quoteRequestDto.UpperLimit,
		DeliveryDate:       deliveryDate,
		DeliveryLocation:   deliveryLocation,
		DiscoveryMode:      quoteRequestDto.DiscoveryMode,
		Status:             status,
	}

	err := repo.db.QueryRow(
		ctx,
		query,
		userID,
		order.Description,
		order.OrderType,
		order.ProductDescription,
		order.Quantity,
		order.LowerLimit,
		order.UpperLimit,
		order.DeliveryDate,
		order.DeliveryLocation,
		order.DiscoveryMode,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &order, nil
}

func (repo *OrderRepository) GetPaginated(
	ctx context.Context,
	userID string,
	page int,
	pageSize int,
	search string,
	status models.OrderStatus,
) ([]models.Order, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM procuroid.orders
		WHERE user_id = $1
		AND ($2 = '' OR description ILIKE '%' || $2 || '%'
			OR product_description ILIKE '%' || $2 || '%')
		AND ($3 = '' OR status = $3)
	`

	var totalCount int64
	err := repo.db.QueryRow(ctx, countQuery, userID, search, string(status)).
		Scan(&totalCount)
	if err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}

	query := `
		SELECT id, user_id, description, order_type, product_description,
		quantity, lower_limit, upper_limit, delivery_date,
		delivery_location, discovery_mode, status, total_cost,
		supplier_name, created_at
		FROM procuroid.orders
		WHERE user_id = $1
		AND ($2 = '' OR description ILIKE '%' || $2 || '%'
			OR product_description ILIKE '%' || $2 || '%')
		AND ($3 = '' OR status = $3)
		ORDER BY created_at DESC, id ASC
		LIMIT $4 OFFSET $5
	`

	rows, err := repo.db.Query(
		ctx,
		query,
		userID,
		search,
		string(status),
		pageSize,
		(page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	orders, err := scanOrdersWithUser(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, totalCount, nil
}

// GetDeliveries returns a user's orders that carry a delivery date.
// Feeds the calendar month view and the ICS export.
func (repo *OrderRepository) GetDeliveries(
	ctx context.Context,
	userID string,
) ([]models.Order, error) {
	query := `
		SELECT id, user_id, description, order_type, product_description,
		quantity, lower_limit, upper_limit, delivery_date,
		delivery_location, discovery_mode, status, total_cost,
		supplier_name, created_at
		FROM procuroid.orders
		WHERE user_id = $1 AND delivery_date IS NOT NULL
		ORDER BY delivery_date ASC, id ASC
	`

	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	return scanOrdersWithUser(rows)
}

func (repo *OrderRepository) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Order, error) {
	query := `
		SELECT description, order_type, product_description, quantity,
		lower_limit, upper_limit, delivery_date, delivery_location,
		discovery_mode, status, total_cost, supplier_name, created_at
		FROM procuroid.orders
		WHERE id = $1 AND user_id = $2
	`

	//nolint:exhaustruct //fields are scanned below
	order := models.Order{
		ID:     id,
		UserID: userID,
	}
	err := repo.db.QueryRow(ctx, query, id, userID).Scan(
		&order.Description,
		&order.OrderType,
		&order.ProductDescription,
		&order.Quantity,
		&order.LowerLimit,
		&order.UpperLimit,
		&order.DeliveryDate,
		&order.DeliveryLocation,
		&order.DiscoveryMode,
		&order.Status,
		&order.TotalCost,
		&order.SupplierName,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &order, nil
}

// SetPlaced transitions an order to order_placed, recording the winning
// quotation's supplier and total.
func (repo *OrderRepository) SetPlaced(
	ctx context.Context,
	order *models.Order,
	supplierName string,
	totalCost float64,
) error {
	query := `
		UPDATE procuroid.orders
		SET status = $3, supplier_name = $4, total_cost = $5
		WHERE id = $1 AND user_id = $2
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		order.ID,
		order.UserID,
		models.OrderPlaced,
		supplierName,
		totalCost,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	order.Status = models.OrderPlaced
	order.SupplierName = &supplierName
	order.TotalCost = totalCost

	return nil
}

func (repo *OrderRepository) SetStatus(
	ctx context.Context,
	order *models.Order,
	status models.OrderStatus,
) error {
	query := `
		UPDATE procuroid.orders
		SET status = $3
		WHERE id = $1 AND user_id = $2
	`

	result, err := repo.db.Exec(ctx, query, order.ID, order.UserID, status)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	order.Status = status

	return nil
}

func (repo *OrderRepository) Delete(
	ctx context.Context,
	id string,
	userID string,
) error {
	query := `
		DELETE FROM procuroid.orders
		WHERE id = $1 AND user_id = $2
	`

	result, err := repo.db.Exec(ctx, query, id, userID)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

// GetWithDeliveryBetween returns every user's placed orders due in the
// window. Used by the reminder job, so it is not scoped to a single user.
func (repo *OrderRepository) GetWithDeliveryBetween(
	ctx context.Context,
	from time.Time,
	until time.Time,
) ([]models.Order, error) {
	query := `
		SELECT id, user_id, description, order_type, product_description,
		quantity, lower_limit, upper_limit, delivery_date,
		delivery_location, discovery_mode, status, total_cost,
		supplier_name, created_at
		FROM procuroid.orders
		WHERE delivery_date >= $1 AND delivery_date < $2
		AND status = $3
		ORDER BY delivery_date ASC
	`

	rows, err := repo.db.Query(ctx, query, from, until, models.OrderPlaced)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	return scanOrdersWithUser(rows)
}

// GetOpenDiscovery returns orders still waiting on supplier discovery,
// across all users. Used by the directory sync job.
func (repo *OrderRepository) GetOpenDiscovery(
	ctx context.Context,
) ([]models.Order, error) {
	query := `
		SELECT id, user_id, description, order_type, product_description,
		quantity, lower_limit, upper_limit, delivery_date,
		delivery_location, discovery_mode, status, total_cost,
		supplier_name, created_at
		FROM procuroid.orders
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := repo.db.Query(ctx, query, models.DiscoveryActive)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	return scanOrdersWithUser(rows)
}

// GetPlacedSince feeds the dashboard spend chart.
func (repo *OrderRepository) GetPlacedSince(
	ctx context.Context,
	userID string,
	since time.Time,
) ([]models.Order, error) {
	query := `
		SELECT id, user_id, description, order_type, product_description,
		quantity, lower_limit, upper_limit, delivery_date,
		delivery_location, discovery_mode, status, total_cost,
		supplier_name, created_at
		FROM procuroid.orders
		WHERE user_id = $1 AND created_at >= $2
		AND status IN ($3, $4, $5)
		ORDER BY created_at ASC
	`

	rows, err := repo.db.Query(
		ctx,
		query,
		userID,
		since,
		models.OrderPlaced,
		models.Shipped,
		models.Delivered,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	return scanOrdersWithUser(rows)
}

type orderCounts struct {
	Active    int64
	Pending   int64
	Delivered int64
}

func (repo *OrderRepository) CountByUser(
	ctx context.Context,
	userID string,
) (orderCounts, error) {
	query := `
		SELECT
		COUNT(*) FILTER (WHERE status IN ($2, $3)),
		COUNT(*) FILTER (WHERE status IN ($4, $5, $6, $7)),
		COUNT(*) FILTER (WHERE status = $8)
		FROM procuroid.orders
		WHERE user_id = $1
	`

	var counts orderCounts
	err := repo.db.QueryRow(
		ctx,
		query,
		userID,
		models.OrderPlaced,
		models.Shipped,
		models.DiscoveryActive,
		models.PendingQuotations,
		models.QuotationsReceived,
		models.PendingApproval,
		models.Delivered,
	).Scan(&counts.Active, &counts.Pending, &counts.Delivered)
	if err != nil {
		return orderCounts{}, postgres.PgxErrorToHTTPError(err)
	}

	return counts, nil
}

func scanOrdersWithUser(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		order := models.Order{}

		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Description,
			&order.OrderType,
			&order.ProductDescription,
			&order.Quantity,
			&order.LowerLimit,
			&order.UpperLimit,
			&order.DeliveryDate,
			&order.DeliveryLocation,
			&order.DiscoveryMode,
			&order.Status,
			&order.TotalCost,
			&order.SupplierName,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return orders, nil
}
