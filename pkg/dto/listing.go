package dto

import (
	"github.com/spectexnika/listing-api/internal/models"
)

// List responses echo the query that produced them, matching the shapes
// the frontend already consumes.

type ProductListResponse struct {
	Total     int             `json:"total"`
	Limit     int             `json:"limit"`
	Offset    int             `json:"offset"`
	Category  int             `json:"category"`
	Search    string          `json:"search"`
	SortBy    string          `json:"sortBy"`
	SortOrder string          `json:"sortOrder"`
	Products  []models.Record `json:"products"`
}

type EquipmentListResponse struct {
	Total     int             `json:"total"`
	Limit     int             `json:"limit"`
	Offset    int             `json:"offset"`
	Category  int             `json:"category"`
	Search    string          `json:"search"`
	SortBy    string          `json:"sortBy"`
	SortOrder string          `json:"sortOrder"`
	Equipment []models.Record `json:"equipment"`
}

type NewsListResponse struct {
	Total     int             `json:"total"`
	Limit     int             `json:"limit"`
	Offset    int             `json:"offset"`
	TagID     int             `json:"tagId"`
	Search    string          `json:"search"`
	SortBy    string          `json:"sortBy"`
	SortOrder string          `json:"sortOrder"`
	News      []models.Record `json:"news"`
}

type HotOffersListResponse struct {
	Total    int             `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
	Products []models.Record `json:"products"`
}

type RecordResponse struct {
	Success bool          `json:"success"`
	Data    models.Record `json:"data"`
}

type ViewsResponse struct {
	Success bool `json:"success"`
	Views   int  `json:"views"`
}

type LikeResponse struct {
	Success bool `json:"success"`
	Liked   bool `json:"liked"`
}

type ToggleLikeRequest struct {
	UserID string `json:"userId"`
}

type ErrorResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RequestedID int    `json:"requestedId,omitempty"`
}
