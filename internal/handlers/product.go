package handlers

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/logging"
	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/mykafka"
	"github.com/maisonlumiere/boutique/internal/service/search"
	"github.com/maisonlumiere/boutique/internal/storage"
	"github.com/maisonlumiere/boutique/internal/transport"
)

type ProductHandler struct {
	Store    storage.Store
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

// syncIndex mirrors a product change into Elasticsearch when configured.
// Index failures are logged, never surfaced: the store is the source of truth.
func (h *ProductHandler) syncIndex(c echo.Context, prod *models.Product, deleted bool) {
	if h.ES == nil {
		return
	}
	ctx := c.Request().Context()
	var err error
	if deleted {
		err = search.DeleteProduct(ctx, h.ES, h.Index, prod.ID)
	} else {
		err = search.IndexProduct(ctx, h.ES, h.Index, prod)
	}
	if err != nil {
		logging.FromContext(ctx).Warn("es_sync_failed", "product_id", prod.ID, "error", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	if q := c.QueryParam("search"); q != "" {
		items, err := h.Store.SearchProducts(ctx, q)
		if err != nil {
			l.Error("get_products_failed", "status", 500, "reason", "search failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot search products")
		}
		return c.JSON(http.StatusOK, items)
	}

	if cat := c.QueryParam("category"); cat != "" {
		items, err := h.Store.GetProductsByCategory(ctx, cat)
		if err != nil {
			l.Error("get_products_failed", "status", 500, "reason", "category filter failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot filter products")
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.Store.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	prod, err := h.Store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		InStock:     true,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		Tags:        req.Tags,
		Ingredients: req.Ingredients,
	}
	if req.InStock != nil {
		prod.InStock = *req.InStock
	}
	if prod.Rating == "" {
		prod.Rating = "0"
	}
	if prod.Tags == nil {
		prod.Tags = []string{}
	}

	created, err := h.Store.CreateProduct(ctx, &prod)
	if err != nil {
		l.Error("create_product_failed", "status", 500, "reason", "cannot store product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store product")
	}

	h.syncIndex(c, created, false)
	publish(c, h.Producer, "product_events", created.ID, map[string]any{
		"type":      "product_created",
		"productID": created.ID,
		"name":      created.Name,
	})

	l.Info("create_product_success", "product_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch_product")

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Store.PatchProduct(ctx, req, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("patch_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("patch_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
	}

	h.syncIndex(c, prod, false)
	publish(c, h.Producer, "product_events", prod.ID, map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	l.Info("patch_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id := c.Param("id")
	if err := h.Store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("delete_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("delete_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	h.syncIndex(c, &models.Product{ID: id}, true)
	publish(c, h.Producer, "product_events", id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
