package memory

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/domain/repository"
)

type orderRepository struct {
	table *table[model.Order]
	now   func() time.Time
}

func newOrderRepository(now func() time.Time) *orderRepository {
	return &orderRepository{
		table: newTable(model.Order.Clone),
		now:   now,
	}
}

func (r *orderRepository) Create(_ context.Context, in model.OrderCreate) (*model.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	order, err := r.table.insert(func(id string) (model.Order, error) {
		return model.NewOrder(id, in, r.now()), nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(_ context.Context, id string) (*model.Order, error) {
	order, err := r.table.get(id)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll(_ context.Context) ([]model.Order, error) {
	return r.table.list(nil), nil
}

// Update overlays the supplied fields and always refreshes UpdatedAt, even
// when nothing was supplied. A status change is checked against the stored
// status under the table lock, so a terminal order cannot be moved by a caller
// that read it before it became terminal.
func (r *orderRepository) Update(_ context.Context, id string, upd model.OrderUpdate) (*model.Order, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	order, err := r.table.replace(id, func(current model.Order) (model.Order, error) {
		if next, ok := upd.Status.Get(); ok && next != current.Status && !current.Status.CanTransitionTo(next) {
			return model.Order{}, &domainErrors.TransitionError{From: string(current.Status), To: string(next)}
		}
		return upd.Apply(current, r.now()), nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.remove(id, nil), nil
}

func (r *orderRepository) GetByUser(_ context.Context, userID string) ([]model.Order, error) {
	return r.table.list(func(o model.Order) bool { return o.UserID == userID }), nil
}

var _ repository.OrderRepository = (*orderRepository)(nil)
