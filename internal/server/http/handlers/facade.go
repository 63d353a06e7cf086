package handlers

import (
	"context"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// UserFacade describes user operations exposed via HTTP.
type UserFacade interface {
	CreateUser(ctx context.Context, in model.UserCreate) (*model.User, error)
	User(ctx context.Context, id string) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	ActiveUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	ActivateUser(ctx context.Context, id string) (*model.User, error)
	DeactivateUser(ctx context.Context, id string) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in model.OrderCreate) (*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UserOrders(ctx context.Context, userID string) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
	SendOrder(ctx context.Context, id string) (*model.Order, error)
	DeliverOrder(ctx context.Context, id string) (*model.Order, error)
	CancelOrder(ctx context.Context, id string) (*model.Order, error)
	OrderTotal(ctx context.Context, id string) (float64, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	UserFacade
	OrderFacade
}
