package dto

import (
	"errors"
	"time"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// CreateUserRequest describes user registration payload.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest describes a partial user update. Only members present in
// the body are applied.
type UpdateUserRequest struct {
	Username model.Optional[string]
	Email    model.Optional[string]
	Status   model.Optional[model.UserStatus]
}

func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	raw, err := decodeFields(data)
	if err != nil {
		return err
	}
	var errs [3]error
	r.Username, errs[0] = optional[string](raw, "username")
	r.Email, errs[1] = optional[string](raw, "email")
	r.Status, errs[2] = optional[model.UserStatus](raw, "status")
	return errors.Join(errs[:]...)
}

// ToModel converts the request into a domain update.
func (r UpdateUserRequest) ToModel() model.UserUpdate {
	return model.UserUpdate{Username: r.Username, Email: r.Email, Status: r.Status}
}

// UserResponse is the JSON view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
