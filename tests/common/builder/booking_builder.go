//go:build unit || e2e

package builder

import (
	"time"

	dombooking "seatbook/internal/domain/booking"
	reqdto "seatbook/internal/handler/dto/request"
	"seatbook/internal/usecase"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	Kind        dombooking.Kind
	CourseID    int64
	CourseTitle string
	Requester   string
	Hours       int
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		Kind:        dombooking.KindCourse,
		CourseID:    1,
		CourseTitle: "Digital Literacy (1 month)",
		Requester:   "Asha Verma",
		Hours:       0,
		CreatedAt:   time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC),
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	requester, _ := dombooking.NewRequester(b.Requester)
	var courseID *int64
	if b.Kind == dombooking.KindCourse {
		id := b.CourseID
		courseID = &id
	}
	return dombooking.ReconstructBooking(b.ID, b.Kind, courseID, requester, b.Hours, b.CreatedAt)
}

func (b *BookingBuilder) BuildCourseRequestDTO() reqdto.BookCourseRequest {
	return reqdto.BookCourseRequest{
		CourseID: b.CourseID,
		Name:     b.Requester,
	}
}

func (b *BookingBuilder) BuildStudyHallRequestDTO() reqdto.BookStudyHallRequest {
	return reqdto.BookStudyHallRequest{
		Name:  b.Requester,
		Hours: b.Hours,
	}
}

func (b *BookingBuilder) BuildView() *usecase.BookingView {
	view := &usecase.BookingView{
		ID:        b.ID,
		Kind:      b.Kind.String(),
		Requester: b.Requester,
		Hours:     b.Hours,
		CreatedAt: b.CreatedAt,
	}
	if b.Kind == dombooking.KindCourse {
		id := b.CourseID
		view.CourseID = &id
		view.CourseTitle = b.CourseTitle
	}
	return view
}

// Fluent builder methods
func (b *BookingBuilder) WithCourseID(id int64) *BookingBuilder {
	b.CourseID = id
	return b
}

func (b *BookingBuilder) WithRequester(name string) *BookingBuilder {
	b.Requester = name
	return b
}

func (b *BookingBuilder) AsStudyHall(hours int) *BookingBuilder {
	b.Kind = dombooking.KindStudyHall
	b.Hours = hours
	return b
}
