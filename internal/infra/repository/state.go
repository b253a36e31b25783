// Package repository maps the engine aggregates onto the key-value store.
// Record shapes stay compatible with the original client's localStorage
// blobs: sm_courses and sm_bookings are JSON arrays, sm_studySeats is a
// bare decimal string.
package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"seatbook/internal/domain/booking"
	"seatbook/internal/domain/inventory"
	"seatbook/internal/domain/ledger"
	"seatbook/internal/infra"
	"seatbook/internal/infra/store"

	"github.com/google/uuid"
)

type courseRecord struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Fee   int64  `json:"fee"`
	Seats int    `json:"seats"`
}

type studentRecord struct {
	Name string `json:"name"`
}

type bookingRecord struct {
	ID       uuid.UUID     `json:"id"`
	Type     string        `json:"type"`
	CourseID *int64        `json:"courseId,omitempty"`
	Student  studentRecord `json:"student"`
	Hours    int           `json:"hours,omitempty"`
	Date     time.Time     `json:"date"`
}

type StateRepository struct {
	store  store.Store
	logger *slog.Logger
}

func NewStateRepository(st store.Store, logger *slog.Logger) *StateRepository {
	return &StateRepository{
		store:  st,
		logger: logger,
	}
}

// LoadInventory restores the course list and study-hall pool. Each record
// falls back to the seed independently when absent or unparsable, matching
// the per-key fallback of the original client.
func (r *StateRepository) LoadInventory(ctx context.Context) (*inventory.Inventory, error) {
	seeded := inventory.NewSeeded()
	courseSnaps, studySeats := seeded.Snapshot()

	blob, found, err := r.store.Load(ctx, store.KeyCourses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load course inventory", err)
	}
	if found {
		var records []courseRecord
		if err := json.Unmarshal(blob, &records); err != nil {
			r.logger.Warn("course record unparsable, using seed", "error", err)
		} else {
			courseSnaps = make([]inventory.CourseSnapshot, len(records))
			for i, rec := range records {
				courseSnaps[i] = inventory.CourseSnapshot{
					ID:    rec.ID,
					Title: rec.Title,
					Fee:   rec.Fee,
					Seats: rec.Seats,
				}
			}
		}
	}

	blob, found, err = r.store.Load(ctx, store.KeyStudySeats)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load study hall seats", err)
	}
	if found {
		n, convErr := strconv.Atoi(strings.TrimSpace(string(blob)))
		if convErr != nil || n < 0 {
			r.logger.Warn("study seat record unparsable, using seed", "raw", string(blob))
		} else {
			studySeats = n
		}
	}

	return inventory.Restore(courseSnaps, studySeats), nil
}

func (r *StateRepository) LoadLedger(ctx context.Context) (*ledger.Ledger, error) {
	blob, found, err := r.store.Load(ctx, store.KeyBookings)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking ledger", err)
	}
	if !found {
		return ledger.New(), nil
	}

	var records []bookingRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		r.logger.Warn("booking ledger unparsable, starting empty", "error", err)
		return ledger.New(), nil
	}

	entries := make([]ledger.EntrySnapshot, len(records))
	for i, rec := range records {
		entries[i] = ledger.EntrySnapshot{
			ID:        rec.ID,
			Kind:      booking.Kind(rec.Type),
			CourseID:  rec.CourseID,
			Requester: rec.Student.Name,
			Hours:     rec.Hours,
			CreatedAt: rec.Date,
		}
	}
	return ledger.Restore(entries), nil
}

func (r *StateRepository) SaveInventory(ctx context.Context, inv *inventory.Inventory) error {
	courseSnaps, studySeats := inv.Snapshot()

	records := make([]courseRecord, len(courseSnaps))
	for i, s := range courseSnaps {
		records[i] = courseRecord{
			ID:    s.ID,
			Title: s.Title,
			Fee:   s.Fee,
			Seats: s.Seats,
		}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr("failed to encode course inventory", err, infra.KindCorruptState)
	}
	if err := r.store.Save(ctx, store.KeyCourses, blob); err != nil {
		return infra.WrapRepoErr("failed to save course inventory", err)
	}

	if err := r.store.Save(ctx, store.KeyStudySeats, []byte(strconv.Itoa(studySeats))); err != nil {
		return infra.WrapRepoErr("failed to save study hall seats", err)
	}
	return nil
}

func (r *StateRepository) SaveLedger(ctx context.Context, led *ledger.Ledger) error {
	entries := led.Snapshot()

	records := make([]bookingRecord, len(entries))
	for i, e := range entries {
		records[i] = bookingRecord{
			ID:       e.ID,
			Type:     e.Kind.String(),
			CourseID: e.CourseID,
			Student:  studentRecord{Name: e.Requester},
			Hours:    e.Hours,
			Date:     e.CreatedAt,
		}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking ledger", err, infra.KindCorruptState)
	}
	if err := r.store.Save(ctx, store.KeyBookings, blob); err != nil {
		return infra.WrapRepoErr("failed to save booking ledger", err)
	}
	return nil
}
