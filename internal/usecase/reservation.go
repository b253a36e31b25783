package usecase

import (
	"context"
	"errors"

	"seatbook/internal/domain/booking"
	"seatbook/internal/domain/inventory"
	"seatbook/internal/pkg/errs"
)

// DefaultStudyHours is applied when a study-hall request does not name a
// duration. The original booking form always submitted 4 hours.
const DefaultStudyHours = 4

type ReservationCommands interface {
	BookCourse(ctx context.Context, courseID int64, requesterName string) (*booking.Booking, error)
	BookStudyHall(ctx context.Context, requesterName string, hours int) (*booking.Booking, error)
}

type reservationUseCaseImpl struct {
	state *EngineState
}

func NewReservationUseCase(state *EngineState) ReservationCommands {
	return &reservationUseCaseImpl{state: state}
}

// BookCourse fulfills a course booking as one logical transaction: the seat
// decrement happens first and a ledger entry is recorded only after it
// succeeds, so a failed booking leaves no partial state and every ledger
// entry corresponds to exactly one decrement.
func (r *reservationUseCaseImpl) BookCourse(ctx context.Context, courseID int64, requesterName string) (*booking.Booking, error) {
	requester, err := booking.NewRequester(requesterName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	s := r.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inv.DecrementCourseSeat(courseID); err != nil {
		switch {
		case errors.Is(err, inventory.ErrCourseNotFound):
			return nil, errs.ErrCourseNotFound
		case errors.Is(err, inventory.ErrNoCourseSeats):
			return nil, errs.ErrNoSeats
		default:
			return nil, errs.Wrap(err, "course seat decrement failed")
		}
	}

	entry, err := s.led.RecordCourse(courseID, requester, s.clock.Now())
	if err != nil {
		// Unreachable with validated inputs; the decrement already
		// happened, so surface loudly rather than silently dropping it.
		return nil, errs.Wrap(err, "ledger record failed after seat decrement")
	}

	s.persistInventory(ctx)
	s.persistLedger(ctx)

	return entry, nil
}

// BookStudyHall mirrors BookCourse against the shared study-hall pool.
func (r *reservationUseCaseImpl) BookStudyHall(ctx context.Context, requesterName string, hours int) (*booking.Booking, error) {
	requester, err := booking.NewRequester(requesterName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if hours <= 0 {
		hours = DefaultStudyHours
	}

	s := r.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inv.DecrementStudyHallSeat(); err != nil {
		return nil, errs.ErrNoSeats
	}

	entry, err := s.led.RecordStudyHall(requester, hours, s.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "ledger record failed after seat decrement")
	}

	s.persistInventory(ctx)
	s.persistLedger(ctx)

	return entry, nil
}
