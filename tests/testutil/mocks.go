package testutil

import (
	"context"

	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/models"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService mocks the CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, e services.Entity, spec listquery.Spec) (listquery.Result, error) {
	args := m.Called(ctx, e, spec)
	return args.Get(0).(listquery.Result), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, e services.Entity, id int) (models.Record, error) {
	args := m.Called(ctx, e, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *MockCatalogService) IncrementView(ctx context.Context, e services.Entity, id int) (int, error) {
	args := m.Called(ctx, e, id)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) ToggleLike(ctx context.Context, e services.Entity, id int, userID string) (bool, error) {
	args := m.Called(ctx, e, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) HotOffers(ctx context.Context) ([]models.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockCatalogService) HotOffersPage(ctx context.Context, spec listquery.Spec) (listquery.Result, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(listquery.Result), args.Error(1)
}

// MockRelayService mocks the RelayService
type MockRelayService struct {
	mock.Mock
}

func (m *MockRelayService) SendAnnouncement(ctx context.Context, payload map[string]any, files []services.Attachment) services.RelayResult {
	args := m.Called(ctx, payload, files)
	return args.Get(0).(services.RelayResult)
}

func (m *MockRelayService) SendMessage(ctx context.Context, messageData map[string]any) services.RelayResult {
	args := m.Called(ctx, messageData)
	return args.Get(0).(services.RelayResult)
}

func (m *MockRelayService) Ping(ctx context.Context) services.RelayResult {
	args := m.Called(ctx)
	return args.Get(0).(services.RelayResult)
}

// Entity is a mock.MatchedBy matcher for a services.Entity argument;
// entities carry function-valued accessors, so equality matching does
// not work on them.
func Entity(collection string) interface{} {
	return mock.MatchedBy(func(e services.Entity) bool {
		return e.Collection == collection
	})
}
