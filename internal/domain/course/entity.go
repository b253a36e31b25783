package course

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTitle    = errors.New("course title cannot be empty")
	ErrNegativeFee   = errors.New("course fee cannot be negative")
	ErrNegativeSeats = errors.New("course seats cannot be negative")
	ErrNoSeatsLeft   = errors.New("course has no seats left")
)

// Course is a bookable training program with a limited seat pool.
// seats never goes below zero; the only mutations are a single-seat
// decrement on booking and a full restore from a persisted snapshot.
type Course struct {
	id    int64
	title string
	fee   int64
	seats int
}

func NewCourse(id int64, title string, fee int64, seats int) (*Course, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if fee < 0 {
		return nil, ErrNegativeFee
	}
	if seats < 0 {
		return nil, ErrNegativeSeats
	}

	return &Course{
		id:    id,
		title: title,
		fee:   fee,
		seats: seats,
	}, nil
}

// ReconstructCourse rebuilds a course from persisted state without
// re-running creation validation.
func ReconstructCourse(id int64, title string, fee int64, seats int) *Course {
	if seats < 0 {
		seats = 0
	}
	return &Course{
		id:    id,
		title: title,
		fee:   fee,
		seats: seats,
	}
}

func (c *Course) HasSeat() bool {
	return c.seats > 0
}

func (c *Course) DecrementSeat() error {
	if c.seats <= 0 {
		return ErrNoSeatsLeft
	}
	c.seats--
	return nil
}

func (c *Course) ID() int64     { return c.id }
func (c *Course) Title() string { return c.title }
func (c *Course) Fee() int64    { return c.fee }
func (c *Course) Seats() int    { return c.seats }
