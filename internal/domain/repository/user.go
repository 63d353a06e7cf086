package repository

import (
	"context"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// Lookups and updates of a missing user fail with domainErrors.ErrNotFound.
// Create and Update reject an email already held by another user with
// domainErrors.ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, in model.UserCreate) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
