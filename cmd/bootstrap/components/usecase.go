package components

import (
	"context"
	"log/slog"
	"time"

	"seatbook/internal/infra/repository"
	"seatbook/internal/infra/store"
	"seatbook/internal/pkg/clock"
	"seatbook/internal/pkg/config"
	"seatbook/internal/pkg/jwt"
	"seatbook/internal/pkg/secret"
	"seatbook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewStateRepository,
		NewEngineState,
		NewSecretVerifier,
		NewTokenService,
		usecase.NewReservationUseCase,
		usecase.NewAdminUseCase,
		usecase.NewInventoryQueries,
	),
)

func NewStateRepository(st store.Store, logger *slog.Logger) usecase.StateRepository {
	return repository.NewStateRepository(st, logger)
}

func NewEngineState(repo usecase.StateRepository, clk clock.Clock, logger *slog.Logger) (*usecase.EngineState, error) {
	return usecase.NewEngineState(context.Background(), repo, clk, logger)
}

func NewSecretVerifier(cfg config.Config) (*secret.Verifier, error) {
	return secret.NewVerifier(cfg.Admin.Secret)
}

func NewTokenService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.Admin.TokenDuration)
	if err != nil {
		panic("invalid ADMIN_TOKEN_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Admin.Secret, tokenDuration)
}
