package usecase

import (
	"context"

	"seatbook/internal/pkg/errs"
	"seatbook/internal/pkg/secret"
)

type AdminCommands interface {
	Login(secret string) error
	Logout()
	AddCourse(ctx context.Context, title string, fee int64, seats int) (int64, error)
	ResizeStudyHall(ctx context.Context, delta int) error
	ResetAll(ctx context.Context) error
	Bookings(ctx context.Context) ([]*BookingView, error)
}

// adminUseCaseImpl is a two-state machine: LoggedOut and LoggedIn. The
// session is in-memory only and resets to LoggedOut on process restart.
type adminUseCaseImpl struct {
	state         *EngineState
	verifier      *secret.Verifier
	authenticated bool
}

func NewAdminUseCase(state *EngineState, verifier *secret.Verifier) AdminCommands {
	return &adminUseCaseImpl{
		state:    state,
		verifier: verifier,
	}
}

func (a *adminUseCaseImpl) Login(candidate string) error {
	if err := a.verifier.Compare(candidate); err != nil {
		return errs.ErrInvalidCredentials
	}

	a.state.mu.Lock()
	defer a.state.mu.Unlock()
	a.authenticated = true
	return nil
}

// Logout is unconditional: a LoggedOut controller stays LoggedOut.
func (a *adminUseCaseImpl) Logout() {
	a.state.mu.Lock()
	defer a.state.mu.Unlock()
	a.authenticated = false
}

func (a *adminUseCaseImpl) AddCourse(ctx context.Context, title string, fee int64, seats int) (int64, error) {
	s := a.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if !a.authenticated {
		return 0, errs.ErrUnauthorized
	}

	id, err := s.inv.AddCourse(title, fee, seats)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	s.persistInventory(ctx)
	return id, nil
}

func (a *adminUseCaseImpl) ResizeStudyHall(ctx context.Context, delta int) error {
	s := a.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if !a.authenticated {
		return errs.ErrUnauthorized
	}

	s.inv.ResizeStudyHall(delta)
	s.persistInventory(ctx)
	return nil
}

// ResetAll wipes every persisted entity back to the seed: the three default
// courses, the 60-seat study pool and an empty ledger. The wipe is atomic
// from the caller's point of view; it runs to completion under the state
// lock before anything is persisted.
func (a *adminUseCaseImpl) ResetAll(ctx context.Context) error {
	s := a.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if !a.authenticated {
		return errs.ErrUnauthorized
	}

	s.inv.ResetToSeed()
	s.led.Clear()

	s.persistInventory(ctx)
	s.persistLedger(ctx)
	return nil
}

// Bookings returns the full booking history, most recent first. History is
// privileged: the original only rendered it inside the admin panel.
func (a *adminUseCaseImpl) Bookings(_ context.Context) ([]*BookingView, error) {
	s := a.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if !a.authenticated {
		return nil, errs.ErrUnauthorized
	}

	return buildBookingViews(s.inv, s.led), nil
}
