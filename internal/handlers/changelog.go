package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"anka-backend/internal/store"
)

type ChangeLogHandler struct {
	changes store.ChangeLogs
}

func NewChangeLogHandler(changes store.ChangeLogs) *ChangeLogHandler {
	return &ChangeLogHandler{changes: changes}
}

const maxChangeLogLimit = 1000

// GET /api/changelog
func (h *ChangeLogHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondFieldErrors(c, "invalid limit parameter", map[string][]string{
				"limit": {"must be a positive integer"},
			})
			return
		}
		limit = n
	}
	if limit > maxChangeLogLimit {
		limit = maxChangeLogLimit
	}

	entries, err := h.changes.List(c.Request.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("failed to list change log")
		respondError(c, http.StatusInternalServerError, "internal error while fetching change log")
		return
	}
	c.JSON(http.StatusOK, entries)
}
