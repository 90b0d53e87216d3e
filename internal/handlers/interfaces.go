package handlers

import (
	"context"

	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/models"
	"github.com/spectexnika/listing-api/internal/services"
)

// CatalogServiceInterface defines the methods handlers use from CatalogService
type CatalogServiceInterface interface {
	List(ctx context.Context, e services.Entity, spec listquery.Spec) (listquery.Result, error)
	Get(ctx context.Context, e services.Entity, id int) (models.Record, error)
	IncrementView(ctx context.Context, e services.Entity, id int) (int, error)
	ToggleLike(ctx context.Context, e services.Entity, id int, userID string) (bool, error)
	HotOffers(ctx context.Context) ([]models.Record, error)
	HotOffersPage(ctx context.Context, spec listquery.Spec) (listquery.Result, error)
}

// RelayServiceInterface defines the methods handlers use from RelayService
type RelayServiceInterface interface {
	SendAnnouncement(ctx context.Context, payload map[string]any, files []services.Attachment) services.RelayResult
	SendMessage(ctx context.Context, messageData map[string]any) services.RelayResult
	Ping(ctx context.Context) services.RelayResult
}
