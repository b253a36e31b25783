package usecase

import (
	"context"
	"time"

	"seatbook/internal/domain/inventory"
	"seatbook/internal/domain/ledger"

	"github.com/google/uuid"
)

// UnknownCourseTitle is rendered for ledger entries whose course reference
// no longer resolves.
const UnknownCourseTitle = "unknown"

type CourseView struct {
	ID    int64
	Title string
	Fee   int64
	Seats int
}

type StudyHallView struct {
	AvailableSeats int
}

type BookingView struct {
	ID          uuid.UUID
	Kind        string
	CourseID    *int64
	CourseTitle string
	Requester   string
	Hours       int
	CreatedAt   time.Time
}

// InventoryQueries are the unprivileged read views the public pages render.
type InventoryQueries interface {
	ListCourses(ctx context.Context) []*CourseView
	StudyHall(ctx context.Context) StudyHallView
}

type inventoryQueriesImpl struct {
	state *EngineState
}

func NewInventoryQueries(state *EngineState) InventoryQueries {
	return &inventoryQueriesImpl{state: state}
}

func (q *inventoryQueriesImpl) ListCourses(_ context.Context) []*CourseView {
	s := q.state
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := s.inv.Courses()
	out := make([]*CourseView, len(courses))
	for i, c := range courses {
		out[i] = &CourseView{
			ID:    c.ID(),
			Title: c.Title(),
			Fee:   c.Fee(),
			Seats: c.Seats(),
		}
	}
	return out
}

func (q *inventoryQueriesImpl) StudyHall(_ context.Context) StudyHallView {
	s := q.state
	s.mu.Lock()
	defer s.mu.Unlock()

	return StudyHallView{AvailableSeats: s.inv.StudyHallSeats()}
}

func buildBookingViews(inv *inventory.Inventory, led *ledger.Ledger) []*BookingView {
	entries := led.List()
	out := make([]*BookingView, len(entries))
	for i, b := range entries {
		view := &BookingView{
			ID:        b.ID(),
			Kind:      b.Kind().String(),
			CourseID:  b.CourseID(),
			Requester: b.Requester().Name(),
			Hours:     b.Hours(),
			CreatedAt: b.CreatedAt(),
		}
		if b.IsCourseBooking() {
			view.CourseTitle = UnknownCourseTitle
			if id := b.CourseID(); id != nil {
				if c, ok := inv.FindCourse(*id); ok {
					view.CourseTitle = c.Title()
				}
			}
		}
		out[i] = view
	}
	return out
}
