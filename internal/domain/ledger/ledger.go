package ledger

import (
	"time"

	"seatbook/internal/domain/booking"

	"github.com/google/uuid"
)

// Ledger is the append-only booking log. Entries are kept most-recent-first;
// that ordering is a display contract, not an accident, so Record prepends.
// Entries are never edited or removed individually, only cleared in bulk by
// a reset.
type Ledger struct {
	entries []*booking.Booking
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) RecordCourse(courseID int64, requester booking.Requester, now time.Time) (*booking.Booking, error) {
	b, err := booking.NewCourseBooking(courseID, requester, now)
	if err != nil {
		return nil, err
	}
	l.prepend(b)
	return b, nil
}

func (l *Ledger) RecordStudyHall(requester booking.Requester, hours int, now time.Time) (*booking.Booking, error) {
	b, err := booking.NewStudyHallBooking(requester, hours, now)
	if err != nil {
		return nil, err
	}
	l.prepend(b)
	return b, nil
}

func (l *Ledger) prepend(b *booking.Booking) {
	l.entries = append([]*booking.Booking{b}, l.entries...)
}

// List returns a most-recent-first snapshot of the ledger.
func (l *Ledger) List() []*booking.Booking {
	out := make([]*booking.Booking, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// CountForCourse reports how many ledger entries reference the given course.
func (l *Ledger) CountForCourse(courseID int64) int {
	n := 0
	for _, b := range l.entries {
		if b.IsCourseBooking() && b.CourseID() != nil && *b.CourseID() == courseID {
			n++
		}
	}
	return n
}

func (l *Ledger) Clear() {
	l.entries = nil
}

// EntrySnapshot is the persisted shape of one booking.
type EntrySnapshot struct {
	ID        uuid.UUID
	Kind      booking.Kind
	CourseID  *int64
	Requester string
	Hours     int
	CreatedAt time.Time
}

func (l *Ledger) Snapshot() []EntrySnapshot {
	out := make([]EntrySnapshot, len(l.entries))
	for i, b := range l.entries {
		out[i] = EntrySnapshot{
			ID:        b.ID(),
			Kind:      b.Kind(),
			CourseID:  b.CourseID(),
			Requester: b.Requester().Name(),
			Hours:     b.Hours(),
			CreatedAt: b.CreatedAt(),
		}
	}
	return out
}

// Restore rebuilds the ledger from persisted entries, preserving order.
// Entries with an invalid kind or blank requester are dropped rather than
// failing the whole load; the engine stays operable on a partially damaged
// record.
func Restore(entries []EntrySnapshot) *Ledger {
	l := &Ledger{entries: make([]*booking.Booking, 0, len(entries))}
	for _, e := range entries {
		if !e.Kind.IsValid() {
			continue
		}
		requester, err := booking.NewRequester(e.Requester)
		if err != nil {
			continue
		}
		l.entries = append(l.entries, booking.ReconstructBooking(
			e.ID, e.Kind, e.CourseID, requester, e.Hours, e.CreatedAt,
		))
	}
	return l
}
