package repositories

import (
	"context"
	"fmt"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type SupplierRepository struct {
	db postgres.DB
}

// sortableSupplierColumns allow-lists what ?sort_by may reference. Anything
// else falls back to company_name.
//
//nolint:gochecknoglobals //lookup table
var sortableSupplierColumns = map[string]string{
	"company_name":       "company_name",
	"contact_person":     "contact_person",
	"country":            "country",
	"category":           "category",
	"typical_unit_price": "typical_unit_price",
	"created_at":         "created_at",
}

func (repo *SupplierRepository) GetPaginated(
	ctx context.Context,
	userID string,
	page int,
	pageSize int,
	search string,
	sortBy string,
	sortOrder string,
) ([]models.Supplier, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM procuroid.suppliers
		WHERE user_id = $1
		AND ($2 = '' OR company_name ILIKE '%' || $2 || '%'
			OR contact_person ILIKE '%' || $2 || '%'
			OR category ILIKE '%' || $2 || '%')
	`

	var totalCount int64
	err := repo.db.QueryRow(ctx, countQuery, userID, search).Scan(&totalCount)
	if err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}

	column, ok := sortableSupplierColumns[sortBy]
	if !ok {
		column = "company_name"
	}

	direction := "ASC"
	if sortOrder == "desc" {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, company_name, contact_person, email, phone_number,
		address, country, website, supplier_type, category,
		product_keywords, product_certifications, min_order_quantity,
		delivery_regions, average_lead_time, currency, typical_unit_price,
		negotiation_flexibility, preferred_contact_method,
		discovered_from_directory, created_at
		FROM procuroid.suppliers
		WHERE user_id = $1
		AND ($2 = '' OR company_name ILIKE '%%' || $2 || '%%'
			OR contact_person ILIKE '%%' || $2 || '%%'
			OR category ILIKE '%%' || $2 || '%%')
		ORDER BY %s %s, id ASC
		LIMIT $3 OFFSET $4
	`, column, direction)

	rows, err := repo.db.Query(
		ctx,
		query,
		userID,
		search,
		pageSize,
		(page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		supplier := models.Supplier{UserID: userID}

		err = rows.Scan(
			&supplier.ID,
			&supplier.CompanyName,
			&supplier.ContactPerson,
			&supplier.Email,
			&supplier.PhoneNumber,
			&supplier.Address,
			&supplier.Country,
			&supplier.Website,
			&supplier.SupplierType,
			&supplier.Category,
			&supplier.ProductKeywords,
			&supplier.ProductCertifications,
			&supplier.MinOrderQuantity,
			&supplier.DeliveryRegions,
			&supplier.AverageLeadTime,
			&supplier.Currency,
			&supplier.TypicalUnitPrice,
			&supplier.NegotiationFlexibility,
			&supplier.PreferredContactMethod,
			&supplier.DiscoveredFromDirectory,
			&supplier.CreatedAt,
		)
		if err != nil {
			return nil, 0, postgres.PgxErrorToHTTPError(err)
		}

		suppliers = append(suppliers, supplier)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, postgres.PgxErrorToHTTPError(err)
	}

	return suppliers, totalCount, nil
}

func (repo *SupplierRepository) GetByID(
	ctx context.Context,
	id string,
	userID string,
) (*models.Supplier, error) {
	query := `
		SELECT company_name, contact_person, email, phone_number,
		address, country, website, supplier_type, category,
		product_keywords, product_certifications, min_order_quantity,
		delivery_regions, average_lead_time, currency, typical_unit_price,
		negotiation_flexibility, preferred_contact_method,
		discovered_from_directory, created_at
		FROM procuroid.suppliers
		WHERE id = $1 AND user_id = $2
	`

	//nolint:exhaustruct //fields are scanned below
	supplier := models.Supplier{
		ID:     id,
		UserID: userID,
	}
	err := repo.db.QueryRow(ctx, query, id, userID).Scan(
		&supplier.CompanyName,
		&supplier.ContactPerson,
		&supplier.Email,
		&supplier.PhoneNumber,
		&supplier.Address,
		&supplier.Country,
		&supplier.Website,
		&supplier.SupplierType,
		&supplier.Category,
		&supplier.ProductKeywords,
		&supplier.ProductCertifications,
		&supplier.MinOrderQuantity,
		&supplier.DeliveryRegions,
		&supplier.AverageLeadTime,
		&supplier.Currency,
		&supplier.TypicalUnitPrice,
		&supplier.NegotiationFlexibility,
		&supplier.PreferredContactMethod,
		&supplier.DiscoveredFromDirectory,
		&supplier.CreatedAt,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &supplier, nil
}

func (repo *SupplierRepository) Create(
	ctx context.Context,
	userID string,
	createDto dtos.CreateSupplierDto,
) (*models.Supplier, error) {
	query := `
		INSERT INTO procuroid.suppliers (user_id, company_name,
		contact_person, email, phone_number, address, country, website,
		supplier_type, category, product_keywords, product_certifications,
		min_order_quantity, delivery_regions, average_lead_time, currency,
		typical_unit_price, negotiation_flexibility,
		preferred_contact_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`

	supplier := supplierFromCreateDto(userID, createDto)

	err := repo.db.QueryRow(
		ctx,
		query,
		userID,
		createDto.CompanyName,
		createDto.ContactPerson,
		createDto.Email,
		createDto.PhoneNumber,
		createDto.Address,
		createDto.Country,
		createDto.Website,
		createDto.SupplierType,
		createDto.Category,
		keywordsOrEmpty(createDto.ProductKeywords),
		keywordsOrEmpty(createDto.ProductCertifications),
		createDto.MinOrderQuantity,
		keywordsOrEmpty(createDto.DeliveryRegions),
		createDto.AverageLeadTime,
		createDto.Currency,
		createDto.TypicalUnitPrice,
		createDto.NegotiationFlexibility,
		createDto.PreferredContactMethod,
	).Scan(&supplier.ID, &supplier.CreatedAt)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &supplier, nil
}

func (repo *SupplierRepository) Update(
	ctx context.Context,
	supplier *models.Supplier,
	updateDto dtos.UpdateSupplierDto,
) error {
	query := `
		UPDATE procuroid.suppliers
		SET company_name = COALESCE($3, company_name),
		contact_person = COALESCE($4, contact_person),
		email = COALESCE($5, email),
		phone_number = COALESCE($6, phone_number),
		address = COALESCE($7, address),
		country = COALESCE($8, country),
		website = COALESCE($9, website),
		supplier_type = COALESCE($10, supplier_type),
		category = COALESCE($11, category),
		product_keywords = COALESCE($12, product_keywords),
		product_certifications = COALESCE($13, product_certifications),
		min_order_quantity = COALESCE($14, min_order_quantity),
		delivery_regions = COALESCE($15, delivery_regions),
		average_lead_time = COALESCE($16, average_lead_time),
		currency = COALESCE($17, currency),
		typical_unit_price = COALESCE($18, typical_unit_price),
		negotiation_flexibility = COALESCE($19, negotiation_flexibility),
		preferred_contact_method = COALESCE($20, preferred_contact_method)
		WHERE id = $1 AND user_id = $2
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		supplier.ID,
		supplier.UserID,
		updateDto.CompanyName,
		updateDto.ContactPerson,
		updateDto.Email,
		updateDto.PhoneNumber,
		updateDto.Address,
		updateDto.Country,
		updateDto.Website,
		updateDto.SupplierType,
		updateDto.Category,
		updateDto.ProductKeywords,
		updateDto.ProductCertifications,
		updateDto.MinOrderQuantity,
		updateDto.DeliveryRegions,
		updateDto.AverageLeadTime,
		updateDto.Currency,
		updateDto.TypicalUnitPrice,
		updateDto.NegotiationFlexibility,
		updateDto.PreferredContactMethod,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *SupplierRepository) Delete(
	ctx context.Context,
	id string,
	userID string,
) error {
	query := `
		DELETE FROM procuroid.suppliers
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

// UpsertDiscovered stores a supplier found by the directory sync job.
// Company name is the conflict key so re-running the sync never duplicates.
func (repo *SupplierRepository) UpsertDiscovered(
	ctx context.Context,
	userID string,
	companyName string,
	country *string,
	category *string,
	productKeywords []string,
) error {
	query := `
		INSERT INTO procuroid.suppliers
		(user_id, company_name, country, category, product_keywords,
		discovered_from_directory)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (user_id, company_name) DO UPDATE SET
		country = COALESCE($3, procuroid.suppliers.country),
		category = COALESCE($4, procuroid.suppliers.category),
		product_keywords = $5
	`

	_, err := repo.db.Exec(
		ctx,
		query,
		userID,
		companyName,
		country,
		category,
		keywordsOrEmpty(productKeywords),
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *SupplierRepository) CountByUser(
	ctx context.Context,
	userID string,
) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM procuroid.suppliers
		WHERE user_id = $1
	`

	var count int64
	err := repo.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, postgres.PgxErrorToHTTPError(err)
	}

	return count, nil
}

// keywordsOrEmpty keeps text[] columns non-null; nil slices would otherwise
// reach Postgres as NULL arrays.
func keywordsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func supplierFromCreateDto(
	userID string,
	createDto dtos.CreateSupplierDto,
) models.Supplier {
	//nolint:exhaustruct //id and created_at come from the insert
	return models.Supplier{
		UserID:                 userID,
		CompanyName:            createDto.CompanyName,
		ContactPerson:          createDto.ContactPerson,
		Email:                  createDto.Email,
		PhoneNumber:            createDto.PhoneNumber,
		Address:                createDto.Address,
		Country:                createDto.Country,
		Website:                createDto.Website,
		SupplierType:           createDto.SupplierType,
		Category:               createDto.Category,
		ProductKeywords:        keywordsOrEmpty(createDto.ProductKeywords),
		ProductCertifications:  keywordsOrEmpty(createDto.ProductCertifications),
		MinOrderQuantity:       createDto.MinOrderQuantity,
		DeliveryRegions:        keywordsOrEmpty(createDto.DeliveryRegions),
		AverageLeadTime:        createDto.AverageLeadTime,
		Currency:               createDto.Currency,
		TypicalUnitPrice:       createDto.TypicalUnitPrice,
		NegotiationFlexibility: createDto.NegotiationFlexibility,
		PreferredContactMethod: createDto.PreferredContactMethod,
	}
}
