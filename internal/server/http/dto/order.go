package dto

import (
	"errors"
	"time"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// CreateOrderRequest describes order placement payload.
type CreateOrderRequest struct {
	UserID   string  `json:"user_id"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// UpdateOrderRequest describes a partial order update. Only members present in
// the body are applied.
type UpdateOrderRequest struct {
	Product  model.Optional[string]
	Quantity model.Optional[int]
	Price    model.Optional[float64]
	Status   model.Optional[model.OrderStatus]
}

func (r *UpdateOrderRequest) UnmarshalJSON(data []byte) error {
	raw, err := decodeFields(data)
	if err != nil {
		return err
	}
	var errs [4]error
	r.Product, errs[0] = optional[string](raw, "product")
	r.Quantity, errs[1] = optional[int](raw, "quantity")
	r.Price, errs[2] = optional[float64](raw, "price")
	r.Status, errs[3] = optional[model.OrderStatus](raw, "status")
	return errors.Join(errs[:]...)
}

// ToModel converts the request into a domain update.
func (r UpdateOrderRequest) ToModel() model.OrderUpdate {
	return model.OrderUpdate{Product: r.Product, Quantity: r.Quantity, Price: r.Price, Status: r.Status}
}

// OrderResponse is the JSON view of an order.
type OrderResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Product   string     `json:"product"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Product:   o.Product,
		Quantity:  o.Quantity,
		Price:     o.Price,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}

// OrderTotalResponse reports the derived order total.
type OrderTotalResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}
