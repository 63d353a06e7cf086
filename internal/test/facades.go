package test

import (
	"context"
	"time"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	CreateFn     func(context.Context, model.UserCreate) (*model.User, error)
	UserFn       func(context.Context, string) (*model.User, error)
	UsersFn      func(context.Context) ([]model.User, error)
	ActiveFn     func(context.Context) ([]model.User, error)
	UpdateFn     func(context.Context, string, model.UserUpdate) (*model.User, error)
	DeleteFn     func(context.Context, string) (bool, error)
	ActivateFn   func(context.Context, string) (*model.User, error)
	DeactivateFn func(context.Context, string) (*model.User, error)
}

// CreateUser delegates to provided function or echoes the input as user 1.
func (s UserFacadeStub) CreateUser(ctx context.Context, in model.UserCreate) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	user := model.NewUser("1", in, testTime)
	return &user, nil
}

// User returns a default active user with the requested id.
func (s UserFacadeStub) User(ctx context.Context, id string) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return defaultUser(id), nil
}

// Users returns predefined users.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{*defaultUser("1")}, nil
}

// ActiveUsers returns predefined active users.
func (s UserFacadeStub) ActiveUsers(ctx context.Context) ([]model.User, error) {
	if s.ActiveFn != nil {
		return s.ActiveFn(ctx)
	}
	return []model.User{*defaultUser("1")}, nil
}

// UpdateUser applies the update to a default user.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, upd)
	}
	user := upd.Apply(*defaultUser(id))
	return &user, nil
}

// DeleteUser reports success unless overridden.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id string) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return true, nil
}

// ActivateUser returns an active default user.
func (s UserFacadeStub) ActivateUser(ctx context.Context, id string) (*model.User, error) {
	if s.ActivateFn != nil {
		return s.ActivateFn(ctx, id)
	}
	return defaultUser(id), nil
}

// DeactivateUser returns an inactive default user.
func (s UserFacadeStub) DeactivateUser(ctx context.Context, id string) (*model.User, error) {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	user := defaultUser(id)
	user.Deactivate()
	return user, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn     func(context.Context, model.OrderCreate) (*model.Order, error)
	OrderFn      func(context.Context, string) (*model.Order, error)
	OrdersFn     func(context.Context) ([]model.Order, error)
	UserOrdersFn func(context.Context, string) ([]model.Order, error)
	UpdateFn     func(context.Context, string, model.OrderUpdate) (*model.Order, error)
	DeleteFn     func(context.Context, string) (bool, error)
	SendFn       func(context.Context, string) (*model.Order, error)
	DeliverFn    func(context.Context, string) (*model.Order, error)
	CancelFn     func(context.Context, string) (*model.Order, error)
	TotalFn      func(context.Context, string) (float64, error)
}

// CreateOrder delegates to provided function or echoes the input as order 1.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in model.OrderCreate) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	order := model.NewOrder("1", in, testTime)
	return &order, nil
}

// Order returns a default pending order with the requested id.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return defaultOrder(id), nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{*defaultOrder("1")}, nil
}

// UserOrders returns predefined orders for given user.
func (s OrderFacadeStub) UserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	if s.UserOrdersFn != nil {
		return s.UserOrdersFn(ctx, userID)
	}
	order := defaultOrder("1")
	order.UserID = userID
	return []model.Order{*order}, nil
}

// UpdateOrder applies the update to a default order.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, upd)
	}
	order := upd.Apply(*defaultOrder(id), testTime)
	return &order, nil
}

// DeleteOrder reports success unless overridden.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id string) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return true, nil
}

// SendOrder returns a sent default order.
func (s OrderFacadeStub) SendOrder(ctx context.Context, id string) (*model.Order, error) {
	if s.SendFn != nil {
		return s.SendFn(ctx, id)
	}
	return movedOrder(id, (*model.Order).Send), nil
}

// DeliverOrder returns a delivered default order.
func (s OrderFacadeStub) DeliverOrder(ctx context.Context, id string) (*model.Order, error) {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, id)
	}
	return movedOrder(id, (*model.Order).Deliver), nil
}

// CancelOrder returns a cancelled default order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, id string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id)
	}
	return movedOrder(id, (*model.Order).Cancel), nil
}

// OrderTotal returns the total of the default order.
func (s OrderFacadeStub) OrderTotal(ctx context.Context, id string) (float64, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx, id)
	}
	return defaultOrder(id).Total(), nil
}

// ShopFacadeStub aggregates user and order stubs.
type ShopFacadeStub struct {
	UserFacadeStub
	OrderFacadeStub
}

func defaultUser(id string) *model.User {
	user := model.NewUser(id, model.UserCreate{Username: "user" + id, Email: "user" + id + "@example.com"}, testTime)
	return &user
}

func defaultOrder(id string) *model.Order {
	order := model.NewOrder(id, model.OrderCreate{UserID: "1", Product: "Laptop", Quantity: 2, Price: 10}, testTime)
	return &order
}

func movedOrder(id string, move func(*model.Order, time.Time) error) *model.Order {
	order := defaultOrder(id)
	_ = move(order, testTime)
	return order
}
