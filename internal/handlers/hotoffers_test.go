package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/models"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/spectexnika/listing-api/internal/store"
	"github.com/spectexnika/listing-api/pkg/dto"
	"github.com/spectexnika/listing-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupHotOffersTest(t *testing.T) (*testutil.MockCatalogService, *testutil.HTTPTestClient) {
	t.Helper()
	mockCatalog := new(testutil.MockCatalogService)
	handler := NewHotOffersHandler(mockCatalog, false)

	app := drift.New()
	app.Get("/api/hot-offers", handler.List)
	app.Get("/api/hot-offers/paginated", handler.ListPaginated)
	app.Get("/api/hot-offers/product/:slug", handler.GetBySlug)
	app.Post("/api/hot-offers/:slug/increment-view", handler.IncrementViewBySlug)
	app.Get("/api/ads/:slug", handler.GetBySlug)

	return mockCatalog, testutil.NewHTTPTestClient(t, app)
}

func TestHotOffersHandler_List(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	mockCatalog.On("HotOffers", mock.Anything).
		Return([]models.Record{{"id": float64(1)}, {"id": float64(2)}}, nil)

	rec := client.GET("/api/hot-offers", nil)

	testutil.AssertStatus(t, rec, 200)
	var items []models.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestHotOffersHandler_List_ServiceError(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	mockCatalog.On("HotOffers", mock.Anything).
		Return(nil, errors.New("boom"))

	rec := client.GET("/api/hot-offers", nil)

	testutil.AssertStatus(t, rec, 500)
}

func TestHotOffersHandler_ListPaginated_DefaultLimit(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	wantSpec := listquery.Spec{Limit: services.HotOffersDefaultLimit, SortBy: "date", SortOrder: "desc"}
	mockCatalog.On("HotOffersPage", mock.Anything, wantSpec).
		Return(listquery.Result{
			Total: 30,
			Items: []models.Record{{"id": float64(1)}},
			Spec:  wantSpec,
		}, nil)

	rec := client.GET("/api/hot-offers/paginated", nil)

	testutil.AssertStatus(t, rec, 200)
	var resp dto.HotOffersListResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, 30, resp.Total)
	assert.Equal(t, services.HotOffersDefaultLimit, resp.Limit)
	assert.Len(t, resp.Products, 1)
	mockCatalog.AssertExpectations(t)
}

func TestHotOffersHandler_GetBySlug(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	mockCatalog.On("Get", mock.Anything, testutil.Entity(store.Products), 10812).
		Return(models.Record{"id": float64(10812), "title": "Komatsu FG10-15"}, nil)

	rec := client.GET("/api/hot-offers/product/10812-komatsu-fg10-15", nil)

	testutil.AssertStatus(t, rec, 200)
	var resp dto.RecordResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 10812, resp.Data.ID())
}

func TestHotOffersHandler_GetBySlug_InvalidSlug(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	rec := client.GET("/api/hot-offers/product/not-a-slug", nil)

	testutil.AssertStatus(t, rec, 400)
	var resp dto.ErrorResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, "Invalid slug format. Expected 'id-product-name'", resp.Message)
	mockCatalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestHotOffersHandler_GetBySlug_NotFound(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	mockCatalog.On("Get", mock.Anything, mock.Anything, 555).
		Return(nil, services.ErrNotFound)

	rec := client.GET("/api/hot-offers/product/555-vanished", nil)

	testutil.AssertStatus(t, rec, 404)
	var resp dto.ErrorResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, "Product not found", resp.Message)
	assert.Equal(t, 555, resp.RequestedID)
}

func TestHotOffersHandler_AdsAliasResolvesSlugs(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	mockCatalog.On("Get", mock.Anything, testutil.Entity(store.Products), 7).
		Return(models.Record{"id": float64(7)}, nil)

	rec := client.GET("/api/ads/7-hilti-drill", nil)

	testutil.AssertStatus(t, rec, 200)
}

func TestHotOffersHandler_IncrementViewBySlug(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	mockCatalog.On("IncrementView", mock.Anything, testutil.Entity(store.Products), 10812).
		Return(100, nil)

	rec := client.POST("/api/hot-offers/10812-komatsu-fg10-15/increment-view", nil, nil)

	testutil.AssertStatus(t, rec, 200)
	var resp dto.ViewsResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, 100, resp.Views)
	mockCatalog.AssertExpectations(t)
}

func TestHotOffersHandler_IncrementViewBySlug_InvalidSlug(t *testing.T) {
	mockCatalog, client := setupHotOffersTest(t)

	rec := client.POST("/api/hot-offers/excavator/increment-view", nil, nil)

	testutil.AssertStatus(t, rec, 400)
	mockCatalog.AssertNotCalled(t, "IncrementView", mock.Anything, mock.Anything, mock.Anything)
}
