package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/spectexnika/listing-api/pkg/dto"
)

type ProductHandler struct {
	catalog CatalogServiceInterface
	dev     bool
}

func NewProductHandler(catalog CatalogServiceInterface, dev bool) *ProductHandler {
	return &ProductHandler{catalog: catalog, dev: dev}
}

func (h *ProductHandler) ListPaginated(c *drift.Context) {
	spec := querySpec(c, services.Products, "category_id")

	res, err := h.catalog.List(context.Background(), services.Products, spec)
	if err != nil {
		respondFailure(c, err, "products not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.ProductListResponse{
		Total:     res.Total,
		Limit:     res.Spec.Limit,
		Offset:    res.Spec.Offset,
		Category:  res.Spec.Category,
		Search:    res.Spec.Search,
		SortBy:    res.Spec.SortBy,
		SortOrder: res.Spec.SortOrder,
		Products:  res.Items,
	})
}

func (h *ProductHandler) IncrementView(c *drift.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	views, err := h.catalog.IncrementView(context.Background(), services.Products, id)
	if err != nil {
		respondFailure(c, err, "Product not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.ViewsResponse{Success: true, Views: views})
}

func (h *ProductHandler) ToggleLike(c *drift.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.ToggleLikeRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, 400, "User ID required")
		return
	}

	liked, err := h.catalog.ToggleLike(context.Background(), services.Products, id, req.UserID)
	if err != nil {
		respondFailure(c, err, "Product not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.LikeResponse{Success: true, Liked: liked})
}
