package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"anka-backend/internal/catalog"
	"anka-backend/internal/config"
	"anka-backend/internal/models"
	"anka-backend/internal/server"
	"anka-backend/internal/store"
)

// MockClients is a mock implementation of store.Clients for testing
type MockClients struct {
	mock.Mock
}

func (m *MockClients) Create(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClients) List(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClients) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClients) Update(ctx context.Context, id uuid.UUID, upd store.ClientUpdate) (*models.Client, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClients) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAllocations is a mock implementation of store.Allocations for testing
type MockAllocations struct {
	mock.Mock
}

func (m *MockAllocations) Create(ctx context.Context, alloc *models.Allocation) error {
	args := m.Called(ctx, alloc)
	return args.Error(0)
}

func (m *MockAllocations) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Allocation, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Allocation), args.Error(1)
}

func (m *MockAllocations) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChangeLogs is a mock implementation of store.ChangeLogs for testing
type MockChangeLogs struct {
	mock.Mock
}

func (m *MockChangeLogs) Record(ctx context.Context, entity string, entityID uuid.UUID, action, details string) {
	m.Called(ctx, entity, entityID, action, details)
}

func (m *MockChangeLogs) List(ctx context.Context, limit int) ([]models.ChangeLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChangeLog), args.Error(1)
}

// relaxedChangeLogs returns a mock that accepts any Record call; tests that
// care about the change log set expectations explicitly instead.
func relaxedChangeLogs() *MockChangeLogs {
	m := new(MockChangeLogs)
	m.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return m
}

func newTestRouter(clients *MockClients, allocs *MockAllocations, changes *MockChangeLogs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{CORSAllowedOrigins: []string{"*"}}
	return server.NewRouter(cfg, server.Deps{
		Clients:     clients,
		Allocations: allocs,
		Changes:     changes,
		Catalog:     catalog.Default(),
	})
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
