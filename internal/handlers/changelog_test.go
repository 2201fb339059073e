package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"anka-backend/internal/models"
)

func TestListChangeLog(t *testing.T) {
	changes := new(MockChangeLogs)
	r := newTestRouter(new(MockClients), new(MockAllocations), changes)

	entries := []models.ChangeLog{
		{ID: 2, CreatedAt: time.Now(), Entity: "client", EntityID: uuid.New(), Action: "update", Details: "updated client Maria"},
		{ID: 1, CreatedAt: time.Now().Add(-time.Minute), Entity: "client", EntityID: uuid.New(), Action: "create", Details: "created client Maria"},
	}
	changes.On("List", mock.Anything, 100).Return(entries, nil)

	w := performRequest(r, http.MethodGet, "/api/changelog", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.ChangeLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestListChangeLogCustomLimit(t *testing.T) {
	changes := new(MockChangeLogs)
	r := newTestRouter(new(MockClients), new(MockAllocations), changes)

	changes.On("List", mock.Anything, 5).Return([]models.ChangeLog{}, nil)

	w := performRequest(r, http.MethodGet, "/api/changelog?limit=5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	changes.AssertExpectations(t)
}

func TestListChangeLogClampsLimit(t *testing.T) {
	changes := new(MockChangeLogs)
	r := newTestRouter(new(MockClients), new(MockAllocations), changes)

	changes.On("List", mock.Anything, 1000).Return([]models.ChangeLog{}, nil)

	w := performRequest(r, http.MethodGet, "/api/changelog?limit=1000000", "")
	assert.Equal(t, http.StatusOK, w.Code)
	changes.AssertExpectations(t)
}

func TestListChangeLogBadLimit(t *testing.T) {
	changes := new(MockChangeLogs)
	r := newTestRouter(new(MockClients), new(MockAllocations), changes)

	w := performRequest(r, http.MethodGet, "/api/changelog?limit=zero", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	changes.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
