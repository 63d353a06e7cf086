package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/domain/repository"
)

// UserUseCase handles user lifecycle and the unique email rule.
type UserUseCase struct {
	users    repository.UserRepository
	recorder Recorder
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, recorder Recorder) *UserUseCase {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &UserUseCase{users: users, recorder: recorder}
}

// Create registers a new user. An email that is already taken is rejected
// before anything is written.
func (u *UserUseCase) Create(ctx context.Context, in model.UserCreate) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := u.ensureEmailFree(ctx, in.Email, ""); err != nil {
		return nil, err
	}

	user, err := u.users.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	u.recorder.RecordUserCreated()
	return user, nil
}

// Get fetches user by identifier.
func (u *UserUseCase) Get(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// List returns all users in creation order.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.GetAll(ctx)
}

// ListActive returns users with ACTIVE status.
func (u *UserUseCase) ListActive(ctx context.Context) ([]model.User, error) {
	users, err := u.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]model.User, 0, len(users))
	for _, user := range users {
		if user.IsActive() {
			active = append(active, user)
		}
	}
	return active, nil
}

// Update applies a partial update. A changed email must not belong to another user.
func (u *UserUseCase) Update(ctx context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	upd = upd.Normalize()
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	current, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if email, ok := upd.Email.Get(); ok && email != current.Email {
		if err := u.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}

	return u.users.Update(ctx, id, upd)
}

// Delete removes the user and reports whether it existed.
func (u *UserUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return u.users.Delete(ctx, id)
}

// Activate enables the user.
func (u *UserUseCase) Activate(ctx context.Context, id string) (*model.User, error) {
	return u.setStatus(ctx, id, (*model.User).Activate)
}

// Deactivate disables the user.
func (u *UserUseCase) Deactivate(ctx context.Context, id string) (*model.User, error) {
	return u.setStatus(ctx, id, (*model.User).Deactivate)
}

func (u *UserUseCase) setStatus(ctx context.Context, id string, change func(*model.User)) (*model.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	change(user)
	return u.users.Update(ctx, id, model.UserUpdate{Status: model.Some(user.Status)})
}

func (u *UserUseCase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := u.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID == selfID:
		return nil
	default:
		return &domainErrors.DuplicateEmailError{Email: email}
	}
}
