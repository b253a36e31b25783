package api

import (
	"errors"
	"net/http"

	reqdto "seatbook/internal/handler/dto/request"
	resdto "seatbook/internal/handler/dto/response"
	"seatbook/internal/pkg/errs"
	"seatbook/internal/pkg/jwt"
	"seatbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin        usecase.AdminCommands
	tokenService *jwt.Service
}

func NewAdminHandler(admin usecase.AdminCommands, tokenService *jwt.Service) *AdminHandler {
	return &AdminHandler{
		admin:        admin,
		tokenService: tokenService,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.admin.Login(req.Secret); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	token, err := h.tokenService.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AdminLoginResponse{Token: token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.admin.Logout()
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	views, err := h.admin.Bookings(c.Request.Context())
	if err != nil {
		h.renderAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func (h *AdminHandler) AddCourse(c *gin.Context) {
	var req reqdto.AddCourseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.admin.AddCourse(c.Request.Context(), req.Title, req.Fee, req.Seats)
	if err != nil {
		h.renderAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.AddCourseResponse{ID: id})
}

func (h *AdminHandler) ResizeStudyHall(c *gin.Context) {
	var req reqdto.ResizeStudyHallRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.admin.ResizeStudyHall(c.Request.Context(), req.Delta); err != nil {
		h.renderAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ResetAll(c *gin.Context) {
	if err := h.admin.ResetAll(c.Request.Context()); err != nil {
		h.renderAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) renderAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Admin login required",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
