package usecase

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	recorder Recorder
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, recorder Recorder) *OrderUseCase {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &OrderUseCase{
		orders:   orders,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create places a new pending order. The owner id is stored as given.
func (u *OrderUseCase) Create(ctx context.Context, in model.OrderCreate) (*model.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	order, err := u.orders.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	u.recorder.RecordOrderCreated()
	return order, nil
}

// Get fetches order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns all orders in creation order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.GetAll(ctx)
}

// ListByUser returns orders placed by userID.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return u.orders.GetByUser(ctx, userID)
}

// Update applies a partial update. A status change must follow an allowed edge;
// repeating the current status is accepted.
func (u *OrderUseCase) Update(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	current, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, changesStatus := upd.Status.Get()
	changesStatus = changesStatus && next != current.Status
	if changesStatus && !current.Status.CanTransitionTo(next) {
		return nil, &domainErrors.TransitionError{From: string(current.Status), To: string(next)}
	}

	updated, err := u.orders.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if changesStatus {
		u.recorder.RecordOrderTransition(string(current.Status), string(updated.Status))
	}
	return updated, nil
}

// Delete removes the order and reports whether it existed.
func (u *OrderUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return u.orders.Delete(ctx, id)
}

// Send moves the order to SENT.
func (u *OrderUseCase) Send(ctx context.Context, id string) (*model.Order, error) {
	return u.transition(ctx, id, (*model.Order).Send)
}

// Deliver moves the order to DELIVERED.
func (u *OrderUseCase) Deliver(ctx context.Context, id string) (*model.Order, error) {
	return u.transition(ctx, id, (*model.Order).Deliver)
}

// Cancel moves the order to CANCELLED.
func (u *OrderUseCase) Cancel(ctx context.Context, id string) (*model.Order, error) {
	return u.transition(ctx, id, (*model.Order).Cancel)
}

// Total returns quantity multiplied by price for the order.
func (u *OrderUseCase) Total(ctx context.Context, id string) (float64, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return order.Total(), nil
}

// transition runs the entity state change and persists only the new status.
func (u *OrderUseCase) transition(ctx context.Context, id string, move func(*model.Order, time.Time) error) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := order.Status
	if err := move(order, u.now()); err != nil {
		return nil, err
	}

	updated, err := u.orders.Update(ctx, id, model.OrderUpdate{Status: model.Some(order.Status)})
	if err != nil {
		return nil, err
	}
	u.recorder.RecordOrderTransition(string(from), string(updated.Status))
	return updated, nil
}
