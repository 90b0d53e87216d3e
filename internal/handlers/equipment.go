package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/spectexnika/listing-api/pkg/dto"
)

type EquipmentHandler struct {
	catalog CatalogServiceInterface
	dev     bool
}

func NewEquipmentHandler(catalog CatalogServiceInterface, dev bool) *EquipmentHandler {
	return &EquipmentHandler{catalog: catalog, dev: dev}
}

// ListAll returns the whole equipment collection unpaginated, in stored
// order.
func (h *EquipmentHandler) ListAll(c *drift.Context) {
	res, err := h.catalog.List(context.Background(), services.Equipment, listquery.Spec{})
	if err != nil {
		respondFailure(c, err, "equipment not found", h.dev)
		return
	}
	_ = c.JSON(200, res.Items)
}

func (h *EquipmentHandler) ListPaginated(c *drift.Context) {
	spec := querySpec(c, services.Equipment, "category")

	res, err := h.catalog.List(context.Background(), services.Equipment, spec)
	if err != nil {
		respondFailure(c, err, "equipment not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.EquipmentListResponse{
		Total:     res.Total,
		Limit:     res.Spec.Limit,
		Offset:    res.Spec.Offset,
		Category:  res.Spec.Category,
		Search:    res.Spec.Search,
		SortBy:    res.Spec.SortBy,
		SortOrder: res.Spec.SortOrder,
		Equipment: res.Items,
	})
}

func (h *EquipmentHandler) IncrementView(c *drift.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	views, err := h.catalog.IncrementView(context.Background(), services.Equipment, id)
	if err != nil {
		respondFailure(c, err, "Equipment not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.ViewsResponse{Success: true, Views: views})
}

func (h *EquipmentHandler) ToggleLike(c *drift.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.ToggleLikeRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, 400, "User ID required")
		return
	}

	liked, err := h.catalog.ToggleLike(context.Background(), services.Equipment, id, req.UserID)
	if err != nil {
		respondFailure(c, err, "Equipment not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.LikeResponse{Success: true, Liked: liked})
}
