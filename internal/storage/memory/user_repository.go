package memory

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
	"github.com/polkiloo/shopapi/internal/domain/model"
	"github.com/polkiloo/shopapi/internal/domain/repository"
)

// userRepository keeps users in memory together with an email index. The index
// is only touched while the table lock is held, so the uniqueness check and the
// write happen atomically.
type userRepository struct {
	table   *table[model.User]
	byEmail map[string]string
	now     func() time.Time
}

func newUserRepository(now func() time.Time) *userRepository {
	return &userRepository{
		table:   newTable[model.User](nil),
		byEmail: make(map[string]string),
		now:     now,
	}
}

func (r *userRepository) Create(_ context.Context, in model.UserCreate) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := r.table.insert(func(id string) (model.User, error) {
		if _, taken := r.byEmail[in.Email]; taken {
			return model.User{}, &domainErrors.DuplicateEmailError{Email: in.Email}
		}
		r.byEmail[in.Email] = id
		return model.NewUser(id, in, r.now()), nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*model.User, error) {
	user, err := r.table.get(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll(_ context.Context) ([]model.User, error) {
	return r.table.list(nil), nil
}

func (r *userRepository) Update(_ context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	user, err := r.table.replace(id, func(current model.User) (model.User, error) {
		next := upd.Apply(current)
		if next.Email == current.Email {
			return next, nil
		}
		if owner, taken := r.byEmail[next.Email]; taken && owner != id {
			return model.User{}, &domainErrors.DuplicateEmailError{Email: next.Email}
		}
		delete(r.byEmail, current.Email)
		r.byEmail[next.Email] = id
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.remove(id, func(removed model.User) {
		delete(r.byEmail, removed.Email)
	}), nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := r.table.find(func(u model.User) bool { return u.Email == email })
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &user, nil
}

var _ repository.UserRepository = (*userRepository)(nil)
