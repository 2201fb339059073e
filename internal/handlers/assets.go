package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anka-backend/internal/catalog"
)

type AssetHandler struct {
	catalog *catalog.Catalog
}

func NewAssetHandler(cat *catalog.Catalog) *AssetHandler {
	return &AssetHandler{catalog: cat}
}

// GET /api/assets
func (h *AssetHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}
