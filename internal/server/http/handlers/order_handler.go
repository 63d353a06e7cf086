package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := model.NewOrderCreate(req.UserID, req.Product, req.Quantity, req.Price)
	if err != nil {
		abortWithError(c, err)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// ListByUser handles GET /api/orders/user/:userID.
func (h *OrderHandler) ListByUser(c *gin.Context) {
	orders, err := h.facade.UserOrders(c.Request.Context(), c.Param("userID"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	h.respond(c)(h.facade.Order(c.Request.Context(), c.Param("id")))
}

// Total handles GET /api/orders/:id/total.
func (h *OrderHandler) Total(c *gin.Context) {
	id := c.Param("id")
	total, err := h.facade.OrderTotal(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderTotalResponse{OrderID: id, Total: total})
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.respond(c)(h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), req.ToModel()))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	deleted, err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !deleted {
		abortNotFound(c, "order not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// Send handles POST /api/orders/:id/send.
func (h *OrderHandler) Send(c *gin.Context) {
	h.respond(c)(h.facade.SendOrder(c.Request.Context(), c.Param("id")))
}

// Deliver handles POST /api/orders/:id/deliver.
func (h *OrderHandler) Deliver(c *gin.Context) {
	h.respond(c)(h.facade.DeliverOrder(c.Request.Context(), c.Param("id")))
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.respond(c)(h.facade.CancelOrder(c.Request.Context(), c.Param("id")))
}

func (h *OrderHandler) respond(c *gin.Context) func(*model.Order, error) {
	return func(order *model.Order, err error) {
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
	}
}
