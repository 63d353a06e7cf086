package test

import (
	"context"
	"strconv"
	"sync"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
	"github.com/polkiloo/shopapi/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. It does not enforce
// email uniqueness so use-case checks can be observed on their own.
type UserRepositoryStub struct {
	mu    sync.Mutex
	Users []model.User
	Next  int64
	Err   error

	CreateCalls int
	UpdateCalls []UserUpdateCall
}

// UserUpdateCall stores arguments of Update invocations.
type UserUpdateCall struct {
	ID     string
	Update model.UserUpdate
}

// NewUserRepositoryStub constructs stub repository with ids starting at 1.
func NewUserRepositoryStub(users ...model.User) *UserRepositoryStub {
	return &UserRepositoryStub{Users: users, Next: int64(len(users)) + 1}
}

// Create stores user unless stub has explicit error.
func (s *UserRepositoryStub) Create(_ context.Context, in model.UserCreate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.CreateCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := model.NewUser(strconv.FormatInt(s.Next, 10), in, testTime)
	s.Next++
	s.Users = append(s.Users, user)
	return &user, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetAll returns a copy of stored users.
func (s *UserRepositoryStub) GetAll(context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.User{}, s.Users...), nil
}

// Update records invocation and overlays supplied fields.
func (s *UserRepositoryStub) Update(_ context.Context, id string, upd model.UserUpdate) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.UpdateCalls = append(s.UpdateCalls, UserUpdateCall{ID: id, Update: upd})
	if s.Err != nil {
		return nil, s.Err
	}
	for i, u := range s.Users {
		if u.ID == id {
			s.Users[i] = upd.Apply(u)
			user := s.Users[i]
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes user and reports whether it existed.
func (s *UserRepositoryStub) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}
	for i, u := range s.Users {
		if u.ID == id {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// GetByEmail fetches user by exact email or returns not found.
func (s *UserRepositoryStub) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn  func(context.Context, model.OrderCreate) (*model.Order, error)
	GetByIDFn func(context.Context, string) (*model.Order, error)
	UpdateFn  func(context.Context, string, model.OrderUpdate) (*model.Order, error)

	mu          sync.Mutex
	Orders      []model.Order
	Created     []model.OrderCreate
	UpdateCalls []OrderUpdateCall
}

// OrderUpdateCall stores arguments of Update invocations.
type OrderUpdateCall struct {
	ID     string
	Update model.OrderUpdate
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, in model.OrderCreate) (*model.Order, error) {
	s.mu.Lock()
	s.Created = append(s.Created, in)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	order := model.NewOrder(strconv.Itoa(len(s.Created)), in, testTime)
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == id {
			order := o.Clone()
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetAll returns orders from configured slice.
func (s *OrderRepositoryStub) GetAll(context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order{}, s.Orders...), nil
}

// Update records invocation and overlays supplied fields on the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, upd model.OrderUpdate) (*model.Order, error) {
	s.mu.Lock()
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{ID: id, Update: upd})
	s.mu.Unlock()
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, upd)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders[i] = upd.Apply(o, testTime)
			order := s.Orders[i].Clone()
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes order from configured slice.
func (s *OrderRepositoryStub) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// GetByUser filters configured orders by owner.
func (s *OrderRepositoryStub) GetByUser(_ context.Context, userID string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}
