package services

import (
	"context"

	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
	"procuroid.app/internal/repositories"
	"procuroid.app/pkg/directory"
)

type SupplierService struct {
	suppliers *repositories.SupplierRepository
}

func (service *SupplierService) GetPaginated(
	ctx context.Context,
	userID string,
	page int,
	pageSize int,
	search string,
	sortBy string,
	sortOrder string,
) ([]models.Supplier, dtos.Pagination, error) {
	suppliers, totalCount, err := service.suppliers.GetPaginated(
		ctx,
		userID,
		page,
		pageSize,
		search,
		sortBy,
		sortOrder,
	)
	if err != nil {
		return nil, dtos.Pagination{}, err //nolint:exhaustruct //zero value
	}

	return suppliers, dtos.NewPagination(page, pageSize, totalCount), nil
}

func (service *SupplierService) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Supplier, error) {
	return service.suppliers.GetByID(ctx, id, userID)
}

func (service *SupplierService) Create(
	ctx context.Context,
	userID string,
	createDto *dtos.CreateSupplierDto,
) (*models.Supplier, error) {
	return service.suppliers.Create(ctx, userID, *createDto)
}

func (service *SupplierService) Update(
	ctx context.Context,
	id string,
	userID string,
	updateDto *dtos.UpdateSupplierDto,
) (*models.Supplier, error) {
	supplier, err := service.suppliers.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	err = service.suppliers.Update(ctx, supplier, *updateDto)
	if err != nil {
		return nil, err
	}

	return service.suppliers.GetByID(ctx, id, userID)
}

func (service *SupplierService) Delete(
	ctx context.Context,
	id string,
	userID string,
) error {
	return service.suppliers.Delete(ctx, id, userID)
}

// ImportDiscovered upserts directory entries as candidate suppliers and
// returns how many were stored.
func (service *SupplierService) ImportDiscovered(
	ctx context.Context,
	userID string,
	entries []directory.Entry,
) (int, error) {
	imported := 0
	for _, entry := range entries {
		country := &entry.Country
		if entry.Country == "" {
			country = nil
		}

		category := &entry.Category
		if entry.Category == "" {
			category = nil
		}

		err := service.suppliers.UpsertDiscovered(
			ctx,
			userID,
			entry.CompanyName,
			country,
			category,
			entry.Keywords,
		)
		if err != nil {
			return imported, err
		}

		imported++
	}

	return imported, nil
}
