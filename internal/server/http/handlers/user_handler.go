package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/server/http/dto"
)

// UserHandler manages user endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := model.NewUserCreate(req.Username, req.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(*user))
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// ListActive handles GET /api/users/active.
func (h *UserHandler) ListActive(c *gin.Context) {
	users, err := h.facade.ActiveUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	h.respond(c)(h.facade.User(c.Request.Context(), c.Param("id")))
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.respond(c)(h.facade.UpdateUser(c.Request.Context(), c.Param("id"), req.ToModel()))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	deleted, err := h.facade.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !deleted {
		abortNotFound(c, "user not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// Activate handles POST /api/users/:id/activate.
func (h *UserHandler) Activate(c *gin.Context) {
	h.respond(c)(h.facade.ActivateUser(c.Request.Context(), c.Param("id")))
}

// Deactivate handles POST /api/users/:id/deactivate.
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.respond(c)(h.facade.DeactivateUser(c.Request.Context(), c.Param("id")))
}

func (h *UserHandler) respond(c *gin.Context) func(*model.User, error) {
	return func(user *model.User, err error) {
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewUserResponse(*user))
	}
}
