package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRequesterName = errors.New("requester name cannot be empty")
	ErrInvalidKind        = errors.New("invalid booking kind")
	ErrMissingCourseID    = errors.New("course booking requires a course id")
	ErrNonPositiveHours   = errors.New("study hall hours must be positive")
)

type Requester struct {
	name string
}

func NewRequester(name string) (Requester, error) {
	if strings.TrimSpace(name) == "" {
		return Requester{}, ErrEmptyRequesterName
	}
	return Requester{name: name}, nil
}

func (r Requester) Name() string {
	return r.name
}

// Booking is one immutable ledger entry. Course bookings carry the booked
// course id as a weak reference: the course may later disappear and the
// entry must still render (with an unknown title).
type Booking struct {
	id        uuid.UUID
	kind      Kind
	courseID  *int64
	requester Requester
	hours     int
	createdAt time.Time
}

func NewCourseBooking(courseID int64, requester Requester, now time.Time) (*Booking, error) {
	return &Booking{
		id:        uuid.New(),
		kind:      KindCourse,
		courseID:  &courseID,
		requester: requester,
		createdAt: now,
	}, nil
}

func NewStudyHallBooking(requester Requester, hours int, now time.Time) (*Booking, error) {
	if hours <= 0 {
		return nil, ErrNonPositiveHours
	}
	return &Booking{
		id:        uuid.New(),
		kind:      KindStudyHall,
		requester: requester,
		hours:     hours,
		createdAt: now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	kind Kind,
	courseID *int64,
	requester Requester,
	hours int,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		kind:      kind,
		courseID:  courseID,
		requester: requester,
		hours:     hours,
		createdAt: createdAt,
	}
}

func (b *Booking) IsCourseBooking() bool {
	return b.kind == KindCourse
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Kind() Kind           { return b.kind }
func (b *Booking) CourseID() *int64     { return b.courseID }
func (b *Booking) Requester() Requester { return b.requester }
func (b *Booking) Hours() int           { return b.hours }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
