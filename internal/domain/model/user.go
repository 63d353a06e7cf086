package model

import (
	"errors"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
)

// UserStatus describes whether the account is enabled.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// Valid reports whether s is a known status.
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User represents a registered account.
type User struct {
	ID        string
	Username  string
	Email     string
	Status    UserStatus
	CreatedAt time.Time
}

// NewUser builds an active user from validated input.
func NewUser(id string, in UserCreate, createdAt time.Time) User {
	return User{
		ID:        id,
		Username:  in.Username,
		Email:     in.Email,
		Status:    UserStatusActive,
		CreatedAt: createdAt,
	}
}

// Activate enables the user.
func (u *User) Activate() {
	u.Status = UserStatusActive
}

// Deactivate disables the user.
func (u *User) Deactivate() {
	u.Status = UserStatusInactive
}

// IsActive reports whether the user is enabled.
func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

// UserCreate holds data required to register a user.
type UserCreate struct {
	Username string
	Email    string
}

// NewUserCreate validates and normalizes registration data.
func NewUserCreate(username, email string) (UserCreate, error) {
	in := UserCreate{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
	}
	if err := in.Validate(); err != nil {
		return UserCreate{}, err
	}
	return in, nil
}

// Validate checks registration invariants.
func (c UserCreate) Validate() error {
	return errors.Join(
		ValidateRequired("username", c.Username),
		ValidateEmail(c.Email),
	)
}

// UserUpdate carries the fields a caller wants to change.
type UserUpdate struct {
	Username Optional[string]
	Email    Optional[string]
	Status   Optional[UserStatus]
}

// Normalize trims the supplied text fields the same way NewUserCreate does.
func (u UserUpdate) Normalize() UserUpdate {
	if username, ok := u.Username.Get(); ok {
		u.Username = Some(strings.TrimSpace(username))
	}
	if email, ok := u.Email.Get(); ok {
		u.Email = Some(strings.TrimSpace(email))
	}
	return u
}

// Validate checks only the supplied fields, after normalization.
func (u UserUpdate) Validate() error {
	u = u.Normalize()
	var errs []error
	if username, ok := u.Username.Get(); ok {
		errs = append(errs, ValidateRequired("username", username))
	}
	if email, ok := u.Email.Get(); ok {
		errs = append(errs, ValidateEmail(email))
	}
	if status, ok := u.Status.Get(); ok && !status.Valid() {
		errs = append(errs, domainErrors.NewValidationError("status", "must be ACTIVE or INACTIVE"))
	}
	return errors.Join(errs...)
}

// IsEmpty reports whether no field was supplied.
func (u UserUpdate) IsEmpty() bool {
	return !u.Username.IsSet() && !u.Email.IsSet() && !u.Status.IsSet()
}

// Apply returns a copy of user with the supplied fields overlaid.
func (u UserUpdate) Apply(user User) User {
	u = u.Normalize()
	user.Username = u.Username.OrElse(user.Username)
	user.Email = u.Email.OrElse(user.Email)
	user.Status = u.Status.OrElse(user.Status)
	return user
}
