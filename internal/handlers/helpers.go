package handlers

import (
	"errors"
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/spectexnika/listing-api/pkg/dto"
)

// intQuery parses a numeric query parameter leniently: missing,
// non-numeric and zero values all resolve to the fallback. Negatives
// pass through; the query engine clamps them.
func intQuery(c *drift.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

// querySpec builds a list query from the request. categoryParam names
// the filter parameter, which differs per entity (category_id, category,
// tag_id).
func querySpec(c *drift.Context, e services.Entity, categoryParam string) listquery.Spec {
	spec := listquery.Spec{
		Limit:     intQuery(c, "limit", e.DefaultLimit),
		Offset:    intQuery(c, "offset", 0),
		Category:  intQuery(c, categoryParam, 0),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	if spec.SortBy == "" {
		spec.SortBy = "date"
	}
	if spec.SortOrder == "" {
		spec.SortOrder = "desc"
	}
	return spec
}

func idParam(c *drift.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, 400, "invalid id")
		return 0, false
	}
	return id, true
}

func respondError(c *drift.Context, status int, message string) {
	_ = c.JSON(status, dto.ErrorResponse{Success: false, Message: message})
}

// respondFailure maps service errors onto the API error envelope.
// Internal error details are only exposed outside production.
func respondFailure(c *drift.Context, err error, notFoundMsg string, dev bool) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, 404, notFoundMsg)
	case errors.Is(err, services.ErrUserIDRequired):
		respondError(c, 400, "User ID required")
	case errors.Is(err, services.ErrInvalidSlug):
		respondError(c, 400, "Invalid slug format. Expected 'id-product-name'")
	default:
		msg := "internal server error"
		if dev {
			msg = err.Error()
		}
		respondError(c, 500, msg)
	}
}
