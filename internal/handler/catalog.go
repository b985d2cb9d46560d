package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesadeayuda/helpdesk-service/internal/service"
)

type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) Areas(c *gin.Context) {
	items, err := h.svc.ListAreas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list areas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": items})
}

func (h *CatalogHandler) Proyectos(c *gin.Context) {
	items, err := h.svc.ListProyectos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list proyectos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"proyectos": items})
}

func (h *CatalogHandler) TiposProblema(c *gin.Context) {
	items, err := h.svc.ListTiposProblema(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tipos_problema"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tipos_problema": items})
}
