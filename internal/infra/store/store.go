// Package store provides the durable key-value backends for the three
// engine state records. A backend only has to load and save opaque blobs;
// the repository layer owns the record formats.
package store

import "context"

// Logical record keys. Kept identical to the keys the original web client
// wrote to localStorage so a migrated data dump loads as-is.
const (
	KeyCourses    = "sm_courses"
	KeyBookings   = "sm_bookings"
	KeyStudySeats = "sm_studySeats"
)

type Store interface {
	// Load returns the blob for key, with found=false when the key has
	// never been written.
	Load(ctx context.Context, key string) (blob []byte, found bool, err error)
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}
