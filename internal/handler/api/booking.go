package api

import (
	"errors"
	"net/http"

	reqdto "seatbook/internal/handler/dto/request"
	resdto "seatbook/internal/handler/dto/response"
	"seatbook/internal/pkg/errs"
	"seatbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	reservations usecase.ReservationCommands
}

func NewBookingHandler(reservations usecase.ReservationCommands) *BookingHandler {
	return &BookingHandler{
		reservations: reservations,
	}
}

func (h *BookingHandler) BookCourse(c *gin.Context) {
	var req reqdto.BookCourseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.reservations.BookCourse(c.Request.Context(), req.CourseID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		case errors.Is(err, errs.ErrNoSeats):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No seats available",
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
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(entry))
}

func (h *BookingHandler) BookStudyHall(c *gin.Context) {
	var req reqdto.BookStudyHallRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.reservations.BookStudyHall(c.Request.Context(), req.Name, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoSeats):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No study seats available",
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
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(entry))
}
