package api

import (
	"net/http"

	resdto "seatbook/internal/handler/dto/response"
	"seatbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public inventory views (the programs page and
// the study-hall seat counter of the original UI).
type CatalogHandler struct {
	queries usecase.InventoryQueries
}

func NewCatalogHandler(queries usecase.InventoryQueries) *CatalogHandler {
	return &CatalogHandler{
		queries: queries,
	}
}

func (h *CatalogHandler) ListCourses(c *gin.Context) {
	views := h.queries.ListCourses(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromCourseViews(views))
}

func (h *CatalogHandler) StudyHall(c *gin.Context) {
	view := h.queries.StudyHall(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromStudyHallView(view))
}
