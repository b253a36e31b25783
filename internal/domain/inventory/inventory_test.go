//go:build unit

package inventory_test

import (
	"testing"

	"seatbook/internal/domain/inventory"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSnapshot() []inventory.CourseSnapshot {
	return []inventory.CourseSnapshot{
		{ID: 1, Title: "Digital Literacy (1 month)", Fee: 1500, Seats: 20},
		{ID: 2, Title: "DCA (6 months)", Fee: 6000, Seats: 15},
		{ID: 3, Title: "MS Office Essentials (2 months)", Fee: 3000, Seats: 10},
	}
}

func TestNewSeeded(t *testing.T) {
	inv := inventory.NewSeeded()

	courses, studySeats := inv.Snapshot()
	assert.Equal(t, inventory.SeedStudySeats, studySeats)

	if diff := cmp.Diff(seedSnapshot(), courses); diff != "" {
		t.Errorf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestDecrementCourseSeat(t *testing.T) {
	t.Run("decrements an available seat", func(t *testing.T) {
		inv := inventory.NewSeeded()
		require.True(t, inv.HasCourseSeat(1))

		require.NoError(t, inv.DecrementCourseSeat(1))

		c, ok := inv.FindCourse(1)
		require.True(t, ok)
		assert.Equal(t, 19, c.Seats())
	})

	t.Run("unknown course id", func(t *testing.T) {
		inv := inventory.NewSeeded()
		require.ErrorIs(t, inv.DecrementCourseSeat(999), inventory.ErrCourseNotFound)
	})

	t.Run("seats never go negative", func(t *testing.T) {
		inv := inventory.Restore([]inventory.CourseSnapshot{
			{ID: 1, Title: "Single Seat", Fee: 100, Seats: 1},
		}, 0)

		require.NoError(t, inv.DecrementCourseSeat(1))
		require.ErrorIs(t, inv.DecrementCourseSeat(1), inventory.ErrNoCourseSeats)

		c, _ := inv.FindCourse(1)
		assert.Equal(t, 0, c.Seats())
		assert.False(t, inv.HasCourseSeat(1))
	})
}

func TestDecrementStudyHallSeat(t *testing.T) {
	inv := inventory.Restore(nil, 1)

	require.True(t, inv.HasStudyHallSeat())
	require.NoError(t, inv.DecrementStudyHallSeat())
	assert.Equal(t, 0, inv.StudyHallSeats())

	require.ErrorIs(t, inv.DecrementStudyHallSeat(), inventory.ErrNoStudySeats)
	assert.Equal(t, 0, inv.StudyHallSeats())
}

func TestAddCourse(t *testing.T) {
	t.Run("assigns fresh sequential ids", func(t *testing.T) {
		inv := inventory.NewSeeded()

		id, err := inv.AddCourse("Spoken English (3 months)", 2500, 12)
		require.NoError(t, err)
		assert.Equal(t, int64(4), id)

		id, err = inv.AddCourse("Tally Basics", 2000, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)

		assert.Len(t, inv.Courses(), 5)
	})

	t.Run("rejects invalid input without mutating", func(t *testing.T) {
		inv := inventory.NewSeeded()

		_, err := inv.AddCourse("", 2500, 12)
		require.Error(t, err)
		assert.Len(t, inv.Courses(), 3)
	})

	t.Run("ids continue past restored courses", func(t *testing.T) {
		inv := inventory.Restore([]inventory.CourseSnapshot{
			{ID: 7, Title: "Imported", Fee: 100, Seats: 5},
		}, 10)

		id, err := inv.AddCourse("New", 100, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
	})
}

func TestResizeStudyHall(t *testing.T) {
	inv := inventory.NewSeeded()

	inv.ResizeStudyHall(5)
	assert.Equal(t, 65, inv.StudyHallSeats())

	inv.ResizeStudyHall(-5)
	assert.Equal(t, 60, inv.StudyHallSeats())

	// Overshooting delta clamps at zero instead of going negative
	inv.ResizeStudyHall(-1000)
	assert.Equal(t, 0, inv.StudyHallSeats())
}

func TestResetToSeed(t *testing.T) {
	inv := inventory.NewSeeded()

	require.NoError(t, inv.DecrementCourseSeat(1))
	require.NoError(t, inv.DecrementStudyHallSeat())
	_, err := inv.AddCourse("Spoken English (3 months)", 2500, 12)
	require.NoError(t, err)
	inv.ResizeStudyHall(-30)

	inv.ResetToSeed()

	courses, studySeats := inv.Snapshot()
	assert.Equal(t, inventory.SeedStudySeats, studySeats)
	if diff := cmp.Diff(seedSnapshot(), courses); diff != "" {
		t.Errorf("reset mismatch (-want +got):\n%s", diff)
	}

	// ids restart after the seed block
	id, err := inv.AddCourse("After Reset", 100, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}
