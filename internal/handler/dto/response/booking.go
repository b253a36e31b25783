package response

import (
	"time"

	"seatbook/internal/domain/booking"
	"seatbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	CourseID    *int64    `json:"courseId,omitempty"`
	CourseTitle string    `json:"courseTitle,omitempty"`
	Requester   string    `json:"requester"`
	Hours       int       `json:"hours,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID(),
		Kind:      b.Kind().String(),
		CourseID:  b.CourseID(),
		Requester: b.Requester().Name(),
		Hours:     b.Hours(),
		CreatedAt: b.CreatedAt(),
	}
}

func FromBookingView(v *usecase.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingViews(views []*usecase.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}
