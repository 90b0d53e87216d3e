package handlers

import (
	"context"
	"errors"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/spectexnika/listing-api/pkg/dto"
)

// HotOffersHandler serves the hot-offers listing plus the slug-addressed
// product routes (both /hot-offers/product/:slug and /ads/:slug resolve
// ids the same way).
type HotOffersHandler struct {
	catalog CatalogServiceInterface
	dev     bool
}

func NewHotOffersHandler(catalog CatalogServiceInterface, dev bool) *HotOffersHandler {
	return &HotOffersHandler{catalog: catalog, dev: dev}
}

func (h *HotOffersHandler) List(c *drift.Context) {
	offers, err := h.catalog.HotOffers(context.Background())
	if err != nil {
		respondFailure(c, err, "products not found", h.dev)
		return
	}
	_ = c.JSON(200, offers)
}

func (h *HotOffersHandler) ListPaginated(c *drift.Context) {
	spec := querySpec(c, services.Products, "category_id")
	spec.Limit = intQuery(c, "limit", services.HotOffersDefaultLimit)

	res, err := h.catalog.HotOffersPage(context.Background(), spec)
	if err != nil {
		respondFailure(c, err, "products not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.HotOffersListResponse{
		Total:    res.Total,
		Limit:    res.Spec.Limit,
		Offset:   res.Spec.Offset,
		Products: res.Items,
	})
}

func (h *HotOffersHandler) GetBySlug(c *drift.Context) {
	id, err := services.ResolveSlugID(c.Param("slug"))
	if err != nil {
		respondFailure(c, err, "", h.dev)
		return
	}

	product, err := h.catalog.Get(context.Background(), services.Products, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			_ = c.JSON(404, dto.ErrorResponse{Success: false, Message: "Product not found", RequestedID: id})
			return
		}
		respondFailure(c, err, "Product not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.RecordResponse{Success: true, Data: product})
}

func (h *HotOffersHandler) IncrementViewBySlug(c *drift.Context) {
	id, err := services.ResolveSlugID(c.Param("slug"))
	if err != nil {
		respondFailure(c, err, "", h.dev)
		return
	}

	views, err := h.catalog.IncrementView(context.Background(), services.Products, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			_ = c.JSON(404, dto.ErrorResponse{Success: false, Message: "Product not found", RequestedID: id})
			return
		}
		respondFailure(c, err, "Product not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.ViewsResponse{Success: true, Views: views})
}
