package model

import (
	"errors"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
)

// OrderStatus describes fulfilment lifecycle.
//
//	PENDING ──> SENT ──> DELIVERED
//	   │          │
//	   └──────────┴────> CANCELLED
//
// PENDING may also go straight to DELIVERED. DELIVERED and CANCELLED are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusSent      OrderStatus = "SENT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusSent, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusSent:    {OrderStatusDelivered, OrderStatusCancelled},
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSent, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order describes a purchase placed by a user.
type Order struct {
	ID        string
	UserID    string
	Product   string
	Quantity  int
	Price     float64
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewOrder builds a pending order from validated input.
func NewOrder(id string, in OrderCreate, createdAt time.Time) Order {
	return Order{
		ID:        id,
		UserID:    in.UserID,
		Product:   in.Product,
		Quantity:  in.Quantity,
		Price:     in.Price,
		Status:    OrderStatusPending,
		CreatedAt: createdAt,
	}
}

// Total is quantity multiplied by unit price.
func (o Order) Total() float64 {
	return float64(o.Quantity) * o.Price
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	if o.UpdatedAt != nil {
		t := *o.UpdatedAt
		o.UpdatedAt = &t
	}
	return o
}

// Send marks the order as shipped.
func (o *Order) Send(at time.Time) error {
	return o.moveTo(OrderStatusSent, at)
}

// Deliver marks the order as received by the customer.
func (o *Order) Deliver(at time.Time) error {
	return o.moveTo(OrderStatusDelivered, at)
}

// Cancel aborts the order.
func (o *Order) Cancel(at time.Time) error {
	return o.moveTo(OrderStatusCancelled, at)
}

func (o Order) IsPending() bool   { return o.Status == OrderStatusPending }
func (o Order) IsSent() bool      { return o.Status == OrderStatusSent }
func (o Order) IsDelivered() bool { return o.Status == OrderStatusDelivered }
func (o Order) IsCancelled() bool { return o.Status == OrderStatusCancelled }

func (o *Order) moveTo(next OrderStatus, at time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return &domainErrors.TransitionError{From: string(o.Status), To: string(next)}
	}
	o.Status = next
	o.touch(at)
	return nil
}

func (o *Order) touch(at time.Time) {
	o.UpdatedAt = &at
}

// OrderCreate holds data required to place an order.
type OrderCreate struct {
	UserID   string
	Product  string
	Quantity int
	Price    float64
}

// NewOrderCreate validates and normalizes order data.
func NewOrderCreate(userID, product string, quantity int, price float64) (OrderCreate, error) {
	in := OrderCreate{
		UserID:   strings.TrimSpace(userID),
		Product:  strings.TrimSpace(product),
		Quantity: quantity,
		Price:    price,
	}
	if err := in.Validate(); err != nil {
		return OrderCreate{}, err
	}
	return in, nil
}

// Validate checks order invariants.
func (c OrderCreate) Validate() error {
	return errors.Join(
		ValidateRequired("user_id", c.UserID),
		ValidateRequired("product", c.Product),
		ValidatePositiveInt("quantity", c.Quantity),
		ValidatePositiveFloat("price", c.Price),
	)
}

// OrderUpdate carries the fields a caller wants to change.
type OrderUpdate struct {
	Product  Optional[string]
	Quantity Optional[int]
	Price    Optional[float64]
	Status   Optional[OrderStatus]
}

// Normalize trims the product name the same way NewOrderCreate does.
func (u OrderUpdate) Normalize() OrderUpdate {
	if product, ok := u.Product.Get(); ok {
		u.Product = Some(strings.TrimSpace(product))
	}
	return u
}

// Validate checks only the supplied fields, after normalization.
func (u OrderUpdate) Validate() error {
	u = u.Normalize()
	var errs []error
	if product, ok := u.Product.Get(); ok {
		errs = append(errs, ValidateRequired("product", product))
	}
	if quantity, ok := u.Quantity.Get(); ok {
		errs = append(errs, ValidatePositiveInt("quantity", quantity))
	}
	if price, ok := u.Price.Get(); ok {
		errs = append(errs, ValidatePositiveFloat("price", price))
	}
	if status, ok := u.Status.Get(); ok && !status.Valid() {
		errs = append(errs, domainErrors.NewValidationError("status", "is not a known order status"))
	}
	return errors.Join(errs...)
}

// IsEmpty reports whether no field was supplied.
func (u OrderUpdate) IsEmpty() bool {
	return !u.Product.IsSet() && !u.Quantity.IsSet() && !u.Price.IsSet() && !u.Status.IsSet()
}

// Apply returns a copy of order with the supplied fields overlaid and UpdatedAt set to at.
func (u OrderUpdate) Apply(order Order, at time.Time) Order {
	u = u.Normalize()
	order = order.Clone()
	order.Product = u.Product.OrElse(order.Product)
	order.Quantity = u.Quantity.OrElse(order.Quantity)
	order.Price = u.Price.OrElse(order.Price)
	order.Status = u.Status.OrElse(order.Status)
	order.touch(at)
	return order
}
