package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/spectexnika/listing-api/pkg/dto"
)

type NewsHandler struct {
	catalog CatalogServiceInterface
	dev     bool
}

func NewNewsHandler(catalog CatalogServiceInterface, dev bool) *NewsHandler {
	return &NewsHandler{catalog: catalog, dev: dev}
}

func (h *NewsHandler) ListPaginated(c *drift.Context) {
	spec := querySpec(c, services.News, "tag_id")

	res, err := h.catalog.List(context.Background(), services.News, spec)
	if err != nil {
		respondFailure(c, err, "news not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.NewsListResponse{
		Total:     res.Total,
		Limit:     res.Spec.Limit,
		Offset:    res.Spec.Offset,
		TagID:     res.Spec.Category,
		Search:    res.Spec.Search,
		SortBy:    res.Spec.SortBy,
		SortOrder: res.Spec.SortOrder,
		News:      res.Items,
	})
}

// ListAll returns every news item, newest first.
func (h *NewsHandler) ListAll(c *drift.Context) {
	res, err := h.catalog.List(context.Background(), services.News, listquery.Spec{SortBy: "date"})
	if err != nil {
		respondFailure(c, err, "news not found", h.dev)
		return
	}
	_ = c.JSON(200, res.Items)
}

func (h *NewsHandler) Get(c *drift.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := h.catalog.Get(context.Background(), services.News, id)
	if err != nil {
		respondFailure(c, err, "News not found", h.dev)
		return
	}

	_ = c.JSON(200, item)
}

func (h *NewsHandler) IncrementView(c *drift.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	views, err := h.catalog.IncrementView(context.Background(), services.News, id)
	if err != nil {
		respondFailure(c, err, "News not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.ViewsResponse{Success: true, Views: views})
}

func (h *NewsHandler) ToggleLike(c *drift.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.ToggleLikeRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, 400, "User ID required")
		return
	}

	liked, err := h.catalog.ToggleLike(context.Background(), services.News, id, req.UserID)
	if err != nil {
		respondFailure(c, err, "News not found", h.dev)
		return
	}

	_ = c.JSON(200, dto.LikeResponse{Success: true, Liked: liked})
}
