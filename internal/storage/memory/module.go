package memory

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/shopapi/internal/config"
	"github.com/polkiloo/shopapi/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	storage := New()
	if !p.Config.SeedData {
		return storage, nil
	}
	if err := storage.Seed(p.Ctx); err != nil {
		return nil, err
	}
	p.Logger.Info("sample data seeded", slog.Int("users", len(seedUsers)), slog.Int("orders", len(seedOrders)))
	return storage, nil
}
