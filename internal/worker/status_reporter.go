package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// ShopFacade exposes the subset of application functionality required by the worker.
type ShopFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	Orders(ctx context.Context) ([]model.Order, error)
}

// StatusSink receives per-status entity counts.
type StatusSink interface {
	SetUsersByStatus(counts map[string]int)
	SetOrdersByStatus(counts map[string]int)
}

// StatusReporter periodically counts users and orders by status and publishes
// the numbers to a sink.
type StatusReporter struct {
	facade   ShopFacade
	sink     StatusSink
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStatusReporter constructs the reporter. A non-positive interval falls back to one minute.
func NewStatusReporter(facade ShopFacade, sink StatusSink, interval time.Duration, logger *slog.Logger) *StatusReporter {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatusReporter{
		facade:   facade,
		sink:     sink,
		interval: interval,
		logger:   logger,
	}
}

// Start collects once and then keeps collecting on every tick until Stop.
func (r *StatusReporter) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop waits for the background loop to finish.
func (r *StatusReporter) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *StatusReporter) run(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Collect(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Collect(ctx)
		}
	}
}

// Collect takes a single snapshot. Failures are logged and the previous values are kept.
func (r *StatusReporter) Collect(ctx context.Context) {
	users, err := r.facade.Users(ctx)
	if err != nil {
		r.logger.Error("list users for status report failed", slog.String("error", err.Error()))
		return
	}
	orders, err := r.facade.Orders(ctx)
	if err != nil {
		r.logger.Error("list orders for status report failed", slog.String("error", err.Error()))
		return
	}

	userCounts := map[string]int{
		string(model.UserStatusActive):   0,
		string(model.UserStatusInactive): 0,
	}
	for _, u := range users {
		userCounts[string(u.Status)]++
	}
	orderCounts := map[string]int{
		string(model.OrderStatusPending):   0,
		string(model.OrderStatusSent):      0,
		string(model.OrderStatusDelivered): 0,
		string(model.OrderStatusCancelled): 0,
	}
	for _, o := range orders {
		orderCounts[string(o.Status)]++
	}

	r.sink.SetUsersByStatus(userCounts)
	r.sink.SetOrdersByStatus(orderCounts)
	r.logger.Debug("status report collected", slog.Int("users", len(users)), slog.Int("orders", len(orders)))
}
