package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"anka-backend/internal/models"
	"anka-backend/internal/store"
)

type ClientHandler struct {
	clients store.Clients
	changes store.ChangeLogs
}

func NewClientHandler(clients store.Clients, changes store.ChangeLogs) *ClientHandler {
	return &ClientHandler{clients: clients, changes: changes}
}

type createClientRequest struct {
	Name   string              `json:"name" binding:"required"`
	Email  string              `json:"email" binding:"required,email"`
	Status models.ClientStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type updateClientRequest struct {
	Name   *string              `json:"name" binding:"omitempty,min=1"`
	Email  *string              `json:"email" binding:"omitempty,email"`
	Status *models.ClientStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	client := &models.Client{
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	}
	if client.Status == "" {
		client.Status = models.StatusActive
	}

	if err := h.clients.Create(c.Request.Context(), client); err != nil {
		if errors.Is(err, store.ErrEmailInUse) {
			respondError(c, http.StatusConflict, "this email is already in use")
			return
		}
		logrus.WithError(err).Error("failed to create client")
		respondError(c, http.StatusInternalServerError, "internal error while creating client")
		return
	}

	h.changes.Record(c.Request.Context(), "client", client.ID, "create", "created client "+client.Name)
	c.JSON(http.StatusCreated, client)
}

// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list clients")
		respondError(c, http.StatusInternalServerError, "internal error while listing clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "client not found")
			return
		}
		logrus.WithError(err).Error("failed to get client")
		respondError(c, http.StatusInternalServerError, "internal error while fetching client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	upd := store.ClientUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	}

	client, err := h.clients.Update(c.Request.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(c, http.StatusNotFound, "client not found")
		case errors.Is(err, store.ErrEmailInUse):
			respondError(c, http.StatusConflict, "this email is already in use by another client")
		default:
			logrus.WithError(err).Error("failed to update client")
			respondError(c, http.StatusInternalServerError, "internal error while updating client")
		}
		return
	}

	// an empty body changes nothing; don't log it as an update
	if req.Name != nil || req.Email != nil || req.Status != nil {
		h.changes.Record(c.Request.Context(), "client", client.ID, "update", "updated client "+client.Name)
	}
	c.JSON(http.StatusOK, client)
}

// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "client not found")
			return
		}
		logrus.WithError(err).Error("failed to delete client")
		respondError(c, http.StatusInternalServerError, "internal error while deleting client")
		return
	}

	h.changes.Record(c.Request.Context(), "client", id, "delete", "deleted client")
	c.Status(http.StatusNoContent)
}
