//go:build unit

package course_test

import (
	"testing"

	"seatbook/internal/domain/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type newCourseCase struct {
	name  string
	title string
	fee   int64
	seats int
	errIs error
}

func TestNewCourse(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := course.NewCourse(1, "Digital Literacy (1 month)", 1500, 20)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(1), actual.ID())
		assert.Equal(t, "Digital Literacy (1 month)", actual.Title())
		assert.Equal(t, int64(1500), actual.Fee())
		assert.Equal(t, 20, actual.Seats())
		assert.True(t, actual.HasSeat())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []newCourseCase{
			{name: "empty title", title: "", fee: 1000, seats: 10, errIs: course.ErrEmptyTitle},
			{name: "whitespace title", title: "   ", fee: 1000, seats: 10, errIs: course.ErrEmptyTitle},
			{name: "negative fee", title: "Tally Basics", fee: -1, seats: 10, errIs: course.ErrNegativeFee},
			{name: "negative seats", title: "Tally Basics", fee: 1000, seats: -1, errIs: course.ErrNegativeSeats},
			{name: "zero fee OK", title: "NGO Batch", fee: 0, seats: 10},
			{name: "zero seats OK", title: "Waitlist Only", fee: 1000, seats: 0},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := course.NewCourse(9, c.title, c.fee, c.seats)

				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}

func TestCourseDecrementSeat(t *testing.T) {
	c, err := course.NewCourse(1, "DCA (6 months)", 6000, 1)
	require.NoError(t, err)

	require.NoError(t, c.DecrementSeat())
	assert.Equal(t, 0, c.Seats())
	assert.False(t, c.HasSeat())

	// Exhausted: decrement fails and the count stays at zero
	require.ErrorIs(t, c.DecrementSeat(), course.ErrNoSeatsLeft)
	assert.Equal(t, 0, c.Seats())
}

func TestReconstructCourse(t *testing.T) {
	t.Run("negative persisted seats clamp to zero", func(t *testing.T) {
		c := course.ReconstructCourse(5, "Imported", 500, -3)
		assert.Equal(t, 0, c.Seats())
	})

	t.Run("no creation validation on reconstruct", func(t *testing.T) {
		c := course.ReconstructCourse(5, "", 500, 3)
		assert.Equal(t, "", c.Title())
	})
}
