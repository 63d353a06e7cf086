package repository

import (
	"context"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// Lookups and updates of a missing order fail with domainErrors.ErrNotFound.
// Listings are ordered by creation and never nil.
type OrderRepository interface {
	Create(ctx context.Context, in model.OrderCreate) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetAll(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByUser(ctx context.Context, userID string) ([]model.Order, error)
}
