//go:build unit

package store_test

import (
	"context"
	"testing"

	"seatbook/internal/infra/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key reports not found", func(t *testing.T) {
		s, err := store.NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, found, err := s.Load(ctx, store.KeyCourses)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save then load roundtrip", func(t *testing.T) {
		s, err := store.NewFileStore(t.TempDir())
		require.NoError(t, err)

		blob := []byte(`[{"id":1,"title":"Digital Literacy (1 month)","fee":1500,"seats":20}]`)
		require.NoError(t, s.Save(ctx, store.KeyCourses, blob))

		loaded, found, err := s.Load(ctx, store.KeyCourses)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, blob, loaded)
	})

	t.Run("save overwrites", func(t *testing.T) {
		s, err := store.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, store.KeyStudySeats, []byte("60")))
		require.NoError(t, s.Save(ctx, store.KeyStudySeats, []byte("59")))

		loaded, found, err := s.Load(ctx, store.KeyStudySeats)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("59"), loaded)
	})

	t.Run("keys are independent files", func(t *testing.T) {
		dir := t.TempDir()
		s, err := store.NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, store.KeyCourses, []byte("[]")))

		_, found, err := s.Load(ctx, store.KeyBookings)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	_, found, err := s.Load(ctx, store.KeyBookings)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, store.KeyBookings, []byte("[]")))

	loaded, found, err := s.Load(ctx, store.KeyBookings)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("[]"), loaded)

	// Callers must not be able to mutate stored state through the
	// returned slice.
	loaded[0] = 'X'
	again, _, err := s.Load(ctx, store.KeyBookings)
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), again)
}
