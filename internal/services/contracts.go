package services

import (
	"context"
	"time"

	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
	"procuroid.app/internal/repositories"
)

type ContractService struct {
	contracts *repositories.ContractRepository
}

func (service *ContractService) GetPaginated(
	ctx context.Context,
	userID string,
	page int,
	pageSize int,
) ([]models.Contract, dtos.Pagination, error) {
	contracts, totalCount, err := service.contracts.GetPaginated(
		ctx,
		userID,
		page,
		pageSize,
	)
	if err != nil {
		return nil, dtos.Pagination{}, err //nolint:exhaustruct //zero value
	}

	return contracts, dtos.NewPagination(page, pageSize, totalCount), nil
}

func (service *ContractService) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Contract, float64, error) {
	contract, err := service.contracts.GetByID(ctx, id, userID)
	if err != nil {
		return nil, 0, err
	}

	return contract, contract.ExpectedUtilization(time.Now()), nil
}
