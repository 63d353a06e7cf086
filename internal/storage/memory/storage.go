package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory. Data is lost when
// the process exits.
type Storage struct {
	users  *userRepository
	orders *orderRepository
}

// Option customises Storage.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the clock used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New creates empty storage.
func New(opts ...Option) *Storage {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return &Storage{
		users:  newUserRepository(o.now),
		orders: newOrderRepository(o.now),
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return s.users
}

func (s *Storage) Orders() repository.OrderRepository {
	return s.orders
}

var seedUsers = []model.UserCreate{
	{Username: "admin", Email: "admin@example.com"},
	{Username: "user1", Email: "user1@example.com"},
}

var seedOrders = []model.OrderCreate{
	{UserID: "1", Product: "Laptop", Quantity: 1, Price: 1200.00},
	{UserID: "1", Product: "Mouse", Quantity: 2, Price: 25.50},
	{UserID: "2", Product: "Teclado", Quantity: 1, Price: 75.00},
}

// Seed fills empty storage with sample users and orders through the regular
// create path, so seeded rows take ids 1, 2 and 1, 2, 3.
func (s *Storage) Seed(ctx context.Context) error {
	for _, in := range seedUsers {
		if _, err := s.users.Create(ctx, in); err != nil {
			return fmt.Errorf("seed user %s: %w", in.Username, err)
		}
	}
	for _, in := range seedOrders {
		if _, err := s.orders.Create(ctx, in); err != nil {
			return fmt.Errorf("seed order %s: %w", in.Product, err)
		}
	}
	return nil
}

var _ repository.Factory = (*Storage)(nil)
