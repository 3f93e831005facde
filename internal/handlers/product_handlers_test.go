package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/transport"
)

func TestCreateAndGetProduct(t *testing.T) {
	store := newTestStore()
	h := &ProductHandler{Store: store}

	req := transport.CreateProductRequest{
		Name:        "Test",
		Description: "A test fragrance",
		Price:       "10.00",
		Category:    "Floral",
		Tags:        []string{"sample"},
	}
	rec, c := doJSONRequest(t, http.MethodPost, "/api/products", req)
	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	decodeJSON(t, rec, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Test", created.Name)
	require.Equal(t, "0", created.Rating)
	require.True(t, created.InStock)

	rec, c = doJSONRequest(t, http.MethodGet, "/api/products/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	decodeJSON(t, rec, &got)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Price, got.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	h := &ProductHandler{Store: newTestStore()}

	_, c := doJSONRequest(t, http.MethodGet, "/api/products/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetProduct(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetProducts_SearchAndCategoryFilters(t *testing.T) {
	store := newTestStore()
	h := &ProductHandler{Store: store}

	for _, req := range []transport.CreateProductRequest{
		{Name: "Golden Elegance", Description: "jasmine and amber", Price: "125.00", Category: "Floral"},
		{Name: "Midnight Oud", Description: "rich oud wood", Price: "200.00", Category: "Oud"},
	} {
		rec, c := doJSONRequest(t, http.MethodPost, "/api/products", req)
		require.NoError(t, h.CreateProduct(c))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, c := doJSONRequest(t, http.MethodGet, "/api/products?search=floral", nil)
	require.NoError(t, h.GetProducts(c))
	var hits []models.Product
	decodeJSON(t, rec, &hits)
	require.Len(t, hits, 1)
	require.Equal(t, "Golden Elegance", hits[0].Name)

	rec, c = doJSONRequest(t, http.MethodGet, "/api/products?search=nomatch", nil)
	require.NoError(t, h.GetProducts(c))
	decodeJSON(t, rec, &hits)
	require.Empty(t, hits)

	rec, c = doJSONRequest(t, http.MethodGet, "/api/products?category=oud", nil)
	require.NoError(t, h.GetProducts(c))
	decodeJSON(t, rec, &hits)
	require.Len(t, hits, 1)
	require.Equal(t, "Midnight Oud", hits[0].Name)
}

func TestPatchProduct(t *testing.T) {
	store := newTestStore()
	h := &ProductHandler{Store: store}

	rec, c := doJSONRequest(t, http.MethodPost, "/api/products", transport.CreateProductRequest{
		Name: "Test", Price: "10.00", Category: "Floral",
	})
	require.NoError(t, h.CreateProduct(c))
	var created models.Product
	decodeJSON(t, rec, &created)

	newPrice := "12.00"
	rec, c = doJSONRequest(t, http.MethodPatch, "/api/products/"+created.ID, transport.PatchProductRequest{Price: &newPrice})
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.PatchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var patched models.Product
	decodeJSON(t, rec, &patched)
	require.Equal(t, "12.00", patched.Price)
	require.Equal(t, "Test", patched.Name)
}

func TestDeleteProduct_ThenNotFound(t *testing.T) {
	store := newTestStore()
	h := &ProductHandler{Store: store}

	rec, c := doJSONRequest(t, http.MethodPost, "/api/products", transport.CreateProductRequest{
		Name: "Test", Price: "10.00",
	})
	require.NoError(t, h.CreateProduct(c))
	var created models.Product
	decodeJSON(t, rec, &created)

	rec, c = doJSONRequest(t, http.MethodDelete, "/api/products/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.DeleteProduct(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, c = doJSONRequest(t, http.MethodDelete, "/api/products/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	err := h.DeleteProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}
