package handlers

import (
	"encoding/json"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
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

func setupNewsTest(t *testing.T) (*testutil.MockCatalogService, *testutil.HTTPTestClient) {
	t.Helper()
	mockCatalog := new(testutil.MockCatalogService)
	handler := NewNewsHandler(mockCatalog, false)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/api/news/paginated", handler.ListPaginated)
	app.Get("/api/news", handler.ListAll)
	app.Get("/api/news/:id", handler.Get)
	app.Post("/api/news/:id/increment-view", handler.IncrementView)
	app.Post("/api/news/:id/toggle-like", handler.ToggleLike)

	return mockCatalog, testutil.NewHTTPTestClient(t, app)
}

func TestNewsHandler_ListPaginated_TagFilter(t *testing.T) {
	mockCatalog, client := setupNewsTest(t)

	wantSpec := listquery.Spec{Limit: 10, Category: 4, SortBy: "date", SortOrder: "desc"}
	mockCatalog.On("List", mock.Anything, testutil.Entity(store.News), wantSpec).
		Return(listquery.Result{
			Total: 2,
			Items: []models.Record{{"id": float64(1)}, {"id": float64(2)}},
			Spec:  wantSpec,
		}, nil)

	rec := client.GET("/api/news/paginated?tag_id=4", nil)

	testutil.AssertStatus(t, rec, 200)
	var resp dto.NewsListResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 4, resp.TagID)
	assert.Equal(t, 10, resp.Limit)
	assert.Len(t, resp.News, 2)
	mockCatalog.AssertExpectations(t)
}

func TestNewsHandler_ListAll_NewestFirstBareArray(t *testing.T) {
	mockCatalog, client := setupNewsTest(t)

	mockCatalog.On("List", mock.Anything, testutil.Entity(store.News), listquery.Spec{SortBy: "date"}).
		Return(listquery.Result{
			Total: 2,
			Items: []models.Record{{"id": float64(2)}, {"id": float64(1)}},
		}, nil)

	rec := client.GET("/api/news", nil)

	testutil.AssertStatus(t, rec, 200)
	var items []models.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ID())
	mockCatalog.AssertExpectations(t)
}

func TestNewsHandler_Get(t *testing.T) {
	mockCatalog, client := setupNewsTest(t)

	mockCatalog.On("Get", mock.Anything, testutil.Entity(store.News), 3).
		Return(models.Record{"id": float64(3), "title": "Запуск нового склада"}, nil)

	rec := client.GET("/api/news/3", nil)

	testutil.AssertStatus(t, rec, 200)
	var item models.Record
	testutil.ParseJSON(t, rec, &item)
	assert.Equal(t, 3, item.ID())
	assert.Equal(t, "Запуск нового склада", item.Title())
}

func TestNewsHandler_Get_NotFound(t *testing.T) {
	mockCatalog, client := setupNewsTest(t)

	mockCatalog.On("Get", mock.Anything, mock.Anything, 77).
		Return(nil, services.ErrNotFound)

	rec := client.GET("/api/news/77", nil)

	testutil.AssertStatus(t, rec, 404)
	var resp dto.ErrorResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, "News not found", resp.Message)
}

func TestNewsHandler_IncrementView(t *testing.T) {
	mockCatalog, client := setupNewsTest(t)

	mockCatalog.On("IncrementView", mock.Anything, testutil.Entity(store.News), 3).
		Return(12, nil)

	rec := client.POST("/api/news/3/increment-view", nil, nil)

	testutil.AssertStatus(t, rec, 200)
	var resp dto.ViewsResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, 12, resp.Views)
}

func TestNewsHandler_ToggleLike(t *testing.T) {
	mockCatalog, client := setupNewsTest(t)

	mockCatalog.On("ToggleLike", mock.Anything, testutil.Entity(store.News), 3, "reader-9").
		Return(false, nil)

	rec := client.POST("/api/news/3/toggle-like", dto.ToggleLikeRequest{UserID: "reader-9"}, nil)

	testutil.AssertStatus(t, rec, 200)
	var resp dto.LikeResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.False(t, resp.Liked)
}
