package app

import (
	"context"

	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/usecase"
)

// ShopFacade exposes user and order use cases to transport and workers.
type ShopFacade struct {
	users  *usecase.UserUseCase
	orders *usecase.OrderUseCase
}

func NewShopFacade(users *usecase.UserUseCase, orders *usecase.OrderUseCase) *ShopFacade {
	return &ShopFacade{users: users, orders: orders}
}

func (f *ShopFacade) CreateUser(ctx context.Context, in model.UserCreate) (*model.User, error) {
	return f.users.Create(ctx, in)
}

func (f *ShopFacade) User(ctx context.Context, id string) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *ShopFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *ShopFacade) ActiveUsers(ctx context.Context) ([]model.User, error) {
	return f.users.ListActive(ctx)
}

func (f *ShopFacade) UpdateUser(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	return f.users.Update(ctx, id, upd)
}

func (f *ShopFacade) DeleteUser(ctx context.Context, id string) (bool, error) {
	return f.users.Delete(ctx, id)
}

func (f *ShopFacade) ActivateUser(ctx context.Context, id string) (*model.User, error) {
	return f.users.Activate(ctx, id)
}

func (f *ShopFacade) DeactivateUser(ctx context.Context, id string) (*model.User, error) {
	return f.users.Deactivate(ctx, id)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, in model.OrderCreate) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *ShopFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *ShopFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *ShopFacade) UserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) UpdateOrder(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error) {
	return f.orders.Update(ctx, id, upd)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, id string) (bool, error) {
	return f.orders.Delete(ctx, id)
}

func (f *ShopFacade) SendOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Send(ctx, id)
}

func (f *ShopFacade) DeliverOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Deliver(ctx, id)
}

func (f *ShopFacade) CancelOrder(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Cancel(ctx, id)
}

func (f *ShopFacade) OrderTotal(ctx context.Context, id string) (float64, error) {
	return f.orders.Total(ctx, id)
}
