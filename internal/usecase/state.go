package usecase

import (
	"context"
	"log/slog"
	"sync"

	"seatbook/internal/domain/inventory"
	"seatbook/internal/domain/ledger"
	"seatbook/internal/pkg/clock"
	"seatbook/internal/pkg/errs"
)

// StateRepository is the persistence port for the engine aggregates.
type StateRepository interface {
	LoadInventory(ctx context.Context) (*inventory.Inventory, error)
	LoadLedger(ctx context.Context) (*ledger.Ledger, error)
	SaveInventory(ctx context.Context, inv *inventory.Inventory) error
	SaveLedger(ctx context.Context, led *ledger.Ledger) error
}

// EngineState is the single owner of the mutable seat state. Every compound
// operation (check, decrement, record, persist trigger) runs under mu:
// without it two callers could both observe seats > 0 and both decrement,
// which is exactly the lost-update race a naive port of the original
// single-user design would ship.
type EngineState struct {
	mu     sync.Mutex
	inv    *inventory.Inventory
	led    *ledger.Ledger
	repo   StateRepository
	clock  clock.Clock
	logger *slog.Logger
}

// NewEngineState loads the persisted state, falling back to the seed when
// no prior state exists.
func NewEngineState(ctx context.Context, repo StateRepository, clk clock.Clock, logger *slog.Logger) (*EngineState, error) {
	inv, err := repo.LoadInventory(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load inventory state")
	}
	led, err := repo.LoadLedger(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load ledger state")
	}

	return &EngineState{
		inv:    inv,
		led:    led,
		repo:   repo,
		clock:  clk,
		logger: logger,
	}, nil
}

// persistInventory and persistLedger are fire-and-forget: a store failure
// is reported but never rolls back the applied in-memory mutation.
func (s *EngineState) persistInventory(ctx context.Context) {
	if err := s.repo.SaveInventory(ctx, s.inv); err != nil {
		s.logger.Warn("failed to persist inventory, in-memory state kept", "error", err)
	}
}

func (s *EngineState) persistLedger(ctx context.Context) {
	if err := s.repo.SaveLedger(ctx, s.led); err != nil {
		s.logger.Warn("failed to persist ledger, in-memory state kept", "error", err)
	}
}
