package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"procuroid.app/internal/models"
)

type ContractRepository struct {
	db postgres.DB
}

func (repo *ContractRepository) GetPaginated(
	ctx context.Context,
	userID string,
	page int,
	pageSize int,
) ([]models.Contract, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM procuroid.contracts
		WHERE user_id = $1
	`

	var totalCount int64
	err := repo.db.QueryRow(ctx, countQuery, userID).Scan(&totalCount)
	if err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}

	query := `
		SELECT id, contract_number, supplier_name, start_date, end_date,
		total_value, status, created_at
		FROM procuroid.contracts
		WHERE user_id = $1
		ORDER BY end_date ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := repo.db.Query(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	contracts := []models.Contract{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		contract := models.Contract{UserID: userID}

		err = rows.Scan(
			&contract.ID,
			&contract.ContractNumber,
			&contract.SupplierName,
			&contract.StartDate,
			&contract.EndDate,
			&contract.TotalValue,
			&contract.Status,
			&contract.CreatedAt,
		)
		if err != nil {
			return nil, 0, postgres.PgxErrorToHTTPError(err)
		}

		contracts = append(contracts, contract)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}

	return contracts, totalCount, nil
}

func (repo *ContractRepository) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Contract, error) {
	query := `
		SELECT contract_number, supplier_name, start_date, end_date,
		total_value, status, created_at
		FROM procuroid.contracts
		WHERE id = $1 AND user_id = $2
	`

	//nolint:exhaustruct //fields are scanned below
	contract := models.Contract{
		ID:     id,
		UserID: userID,
	}
	err := repo.db.QueryRow(ctx, query, id, userID).Scan(
		&contract.ContractNumber,
		&contract.SupplierName,
		&contract.StartDate,
		&contract.EndDate,
		&contract.TotalValue,
		&contract.Status,
		&contract.CreatedAt,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &contract, nil
}

func (repo *ContractRepository) Create(
	ctx context.Context,
	userID string,
	contractNumber string,
	supplierName string,
	startDate time.Time,
	endDate time.Time,
	totalValue float64,
	status models.ContractStatus,
) (*models.Contract, error) {
	query := `
		INSERT INTO procuroid.contracts (user_id, contract_number,
		supplier_name, start_date, end_date, total_value, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	//nolint:exhaustruct //id and created_at come from the insert
	contract := models.Contract{
		UserID:         userID,
		ContractNumber: contractNumber,
		SupplierName:   supplierName,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalValue:     totalValue,
		Status:         status,
	}

	err := repo.db.QueryRow(
		ctx,
		query,
		userID,
		contractNumber,
		supplierName,
		startDate,
		endDate,
		totalValue,
		status,
	).Scan(&contract.ID, &contract.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &contract, nil
}

func (repo *ContractRepository) Delete(
	ctx context.Context,
	id string,
	userID string,
) error {
	query := `
		DELETE FROM procuroid.contracts
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

func (repo *ContractRepository) CountActiveByUser(
	ctx context.Context,
	userID string,
) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM procuroid.contracts
		WHERE user_id = $1 AND status = $2
	`

	var count int64
	err := repo.db.QueryRow(ctx, query, userID, models.ContractActive).
		Scan(&count)
	if err != nil {
		return 0, postgres.PgxErrorToHTTPError(err)
	}

	return count, nil
}
