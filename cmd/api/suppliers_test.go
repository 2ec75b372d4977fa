package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

func seedSupplier(t *testing.T, companyName string) models.Supplier {
	t.Helper()

	//nolint:exhaustruct //other fields are optional
	supplier, err := testApp.repositories.Suppliers.Create(
		context.Background(),
		userID,
		dtos.CreateSupplierDto{
			CompanyName: companyName,
		},
	)
	require.Nil(t, err)

	t.Cleanup(func() {
		//nolint:errcheck //cleanup
		testApp.repositories.Suppliers.Delete(
			context.Background(),
			supplier.ID,
			userID,
		)
	})

	return *supplier
}

func TestGetSuppliersHandler(t *testing.T) {
	seedSupplier(t, "Acme Industrial")
	seedSupplier(t, "Borealis Packaging")

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/suppliers?page=1&page_size=10",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var response suppliersResponse
	err := json.NewDecoder(rs.Body).Decode(&response)
	assert.Nil(t, err)
	assert.True(t, response.Success)
	assert.Len(t, response.Suppliers, 2)
	assert.Equal(t, "Acme Industrial", response.Suppliers[0].CompanyName)
	assert.Equal(t, int64(2), response.Pagination.TotalCount)
	assert.False(t, response.Pagination.HasNext)
}

func TestGetSuppliersHandlerSearch(t *testing.T) {
	seedSupplier(t, "Acme Industrial")
	seedSupplier(t, "Borealis Packaging")

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/suppliers?search=borealis",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var response suppliersResponse
	err := json.NewDecoder(rs.Body).Decode(&response)
	assert.Nil(t, err)
	assert.Len(t, response.Suppliers, 1)
	assert.Equal(t, "Borealis Packaging", response.Suppliers[0].CompanyName)
}

func TestGetSuppliersHandlerPagination(t *testing.T) {
	for i := range 3 {
		seedSupplier(t, fmt.Sprintf("Supplier %d", i))
	}

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/suppliers?page=1&page_size=2",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var response suppliersResponse
	err := json.NewDecoder(rs.Body).Decode(&response)
	assert.Nil(t, err)
	assert.Len(t, response.Suppliers, 2)
	assert.Equal(t, int64(3), response.Pagination.TotalCount)
	assert.Equal(t, 2, response.Pagination.TotalPages)
	assert.True(t, response.Pagination.HasNext)
	assert.False(t, response.Pagination.HasPrevious)
}

func TestCreateSupplierHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/suppliers",
	)

	country := "Germany"
	supplierType := models.Manufacturer

	//nolint:exhaustruct //other fields are optional
	tReq.SetData(dtos.CreateSupplierDto{
		CompanyName:  "Rheinland Metals",
		Country:      &country,
		SupplierType: &supplierType,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var supplier models.Supplier
	err := json.NewDecoder(rs.Body).Decode(&supplier)
	assert.Nil(t, err)
	assert.Equal(t, "Rheinland Metals", supplier.CompanyName)
	assert.NotEmpty(t, supplier.ID)

	//nolint:errcheck //cleanup
	testApp.repositories.Suppliers.Delete(
		context.Background(),
		supplier.ID,
		userID,
	)
}

func TestCreateSupplierHandlerValidation(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/suppliers",
	)

	//nolint:exhaustruct //other fields are optional
	tReq.SetData(dtos.CreateSupplierDto{
		CompanyName: "",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestUpdateSupplierHandler(t *testing.T) {
	supplier := seedSupplier(t, "Old Name")

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPatch,
		fmt.Sprintf("/suppliers/%s", supplier.ID),
	)

	newName := "New Name"
	//nolint:exhaustruct //partial update
	tReq.SetData(dtos.UpdateSupplierDto{
		CompanyName: &newName,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var updated models.Supplier
	err := json.NewDecoder(rs.Body).Decode(&updated)
	assert.Nil(t, err)
	assert.Equal(t, "New Name", updated.CompanyName)
}

func TestDeleteSupplierHandler(t *testing.T) {
	supplier := seedSupplier(t, "Short Lived")

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodDelete,
		fmt.Sprintf("/suppliers/%s", supplier.ID),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNoContent, rs.StatusCode)

	_, err := testApp.repositories.Suppliers.GetByID(
		context.Background(),
		supplier.ID,
		userID,
	)
	assert.NotNil(t, err)
}

func TestGetSupplierHandlerNotFound(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/suppliers/00000000-0000-0000-0000-000000000000",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNotFound, rs.StatusCode)
}
