package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"anka-backend/internal/catalog"
	"anka-backend/internal/enrich"
	"anka-backend/internal/models"
	"anka-backend/internal/store"
)

type AllocationHandler struct {
	clients     store.Clients
	allocations store.Allocations
	enricher    *enrich.Service
	catalog     *catalog.Catalog
	changes     store.ChangeLogs
}

func NewAllocationHandler(
	clients store.Clients,
	allocations store.Allocations,
	enricher *enrich.Service,
	cat *catalog.Catalog,
	changes store.ChangeLogs,
) *AllocationHandler {
	return &AllocationHandler{
		clients:     clients,
		allocations: allocations,
		enricher:    enricher,
		catalog:     cat,
		changes:     changes,
	}
}

type createAllocationRequest struct {
	AssetName string          `json:"assetName" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// POST /api/clients/:id/allocations
func (h *AllocationHandler) Create(c *gin.Context) {
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req createAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	// The schema cannot express positivity for decimals; checked here,
	// still before any store access.
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		respondFieldErrors(c, "request validation failed", map[string][]string{
			"quantity": {"must be a positive number"},
		})
		return
	}

	if _, err := h.clients.GetByID(c.Request.Context(), clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "client not found")
			return
		}
		logrus.WithError(err).Error("failed to check client for allocation")
		respondError(c, http.StatusInternalServerError, "internal error while creating allocation")
		return
	}

	if !h.catalog.Has(req.AssetName) {
		respondError(c, http.StatusBadRequest,
			"asset '"+req.AssetName+"' is not in the list of allowed assets")
		return
	}

	alloc := &models.Allocation{
		ClientID:  clientID,
		AssetName: req.AssetName,
		Quantity:  req.Quantity,
	}
	if err := h.allocations.Create(c.Request.Context(), alloc); err != nil {
		logrus.WithError(err).Error("failed to create allocation")
		respondError(c, http.StatusInternalServerError, "internal error while creating allocation")
		return
	}

	h.changes.Record(c.Request.Context(), "allocation", alloc.ID, "create",
		"allocated "+alloc.Quantity.String()+" of "+alloc.AssetName)
	c.JSON(http.StatusCreated, alloc)
}

// GET /api/clients/:id/allocations
func (h *AllocationHandler) ListByClient(c *gin.Context) {
	clientID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	enriched, err := h.enricher.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		logrus.WithError(err).Error("failed to list allocations")
		respondError(c, http.StatusInternalServerError, "internal error while fetching allocations")
		return
	}
	c.JSON(http.StatusOK, enriched)
}

// DELETE /api/allocations/:id
func (h *AllocationHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.allocations.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "allocation not found")
			return
		}
		logrus.WithError(err).Error("failed to delete allocation")
		respondError(c, http.StatusInternalServerError, "internal error while deleting allocation")
		return
	}

	h.changes.Record(c.Request.Context(), "allocation", id, "delete", "deleted allocation")
	c.Status(http.StatusNoContent)
}
