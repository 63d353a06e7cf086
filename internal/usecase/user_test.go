package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
	"github.com/polkiloo/shopapi/internal/domain/model"
	testhelpers "github.com/polkiloo/shopapi/internal/test"
)

func newUser(id, username, email string, status model.UserStatus) model.User {
	return model.User{ID: id, Username: username, Email: email, Status: status}
}

func TestUserUseCaseCreateSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	recorder := &testhelpers.RecorderStub{}
	uc := NewUserUseCase(repo, recorder)

	user, err := uc.Create(context.Background(), model.UserCreate{Username: "a", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if user.ID != "1" || user.Status != model.UserStatusActive {
		t.Fatalf("unexpected user %+v", user)
	}
	if recorder.UsersCreated != 1 {
		t.Fatalf("expected created user to be recorded")
	}
}

func TestUserUseCaseCreateDuplicateEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, model.UserCreate{Username: "a", Email: "a@x.com"}); err != nil {
		t.Fatalf("unexpected error on first create: %v", err)
	}
	_, err := uc.Create(ctx, model.UserCreate{Username: "b", Email: "a@x.com"})
	if !errors.Is(err, domainErrors.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	var dup *domainErrors.DuplicateEmailError
	if !errors.As(err, &dup) || dup.Email != "a@x.com" {
		t.Fatalf("expected duplicate email carrier, got %v", err)
	}
	if repo.CreateCalls != 1 {
		t.Fatalf("expected store to be untouched by duplicate, got %d create calls", repo.CreateCalls)
	}
	users, _ := uc.List(ctx)
	if len(users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(users))
	}
}

func TestUserUseCaseCreateRejectsInvalidInput(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewUserUseCase(repo, nil)

	if _, err := uc.Create(context.Background(), model.UserCreate{Username: "a", Email: "nope"}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.CreateCalls != 0 {
		t.Fatalf("repository should not be called for invalid input")
	}
}

func TestUserUseCaseCreatePropagatesLookupError(t *testing.T) {
	boom := errors.New("boom")
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = boom
	uc := NewUserUseCase(repo, nil)

	if _, err := uc.Create(context.Background(), model.UserCreate{Username: "a", Email: "a@x.com"}); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestUserUseCaseListActive(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub(
		newUser("1", "a", "a@x.com", model.UserStatusActive),
		newUser("2", "b", "b@x.com", model.UserStatusInactive),
		newUser("3", "c", "c@x.com", model.UserStatusActive),
	)
	uc := NewUserUseCase(repo, nil)

	active, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 2 || active[0].ID != "1" || active[1].ID != "3" {
		t.Fatalf("unexpected active users %+v", active)
	}
}

func TestUserUseCaseUpdateEmail(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		id      string
		email   string
		wantErr error
	}{
		{"keeps own email", "1", "a@x.com", nil},
		{"free email", "1", "new@x.com", nil},
		{"email of another user", "1", "b@x.com", domainErrors.ErrDuplicateEmail},
		{"unknown user", "9", "z@x.com", domainErrors.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := testhelpers.NewUserRepositoryStub(
				newUser("1", "a", "a@x.com", model.UserStatusActive),
				newUser("2", "b", "b@x.com", model.UserStatusActive),
			)
			uc := NewUserUseCase(repo, nil)

			user, err := uc.Update(ctx, tc.id, model.UserUpdate{Email: model.Some(tc.email)})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if len(repo.UpdateCalls) != 0 {
					t.Fatalf("store should not be updated on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Email != tc.email || user.Username != "a" {
				t.Fatalf("unexpected user after update %+v", user)
			}
		})
	}
}

func TestUserUseCaseUpdateTrimsEmail(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.NewUserRepositoryStub(
		newUser("1", "a", "a@x.com", model.UserStatusActive),
		newUser("2", "b", "b@x.com", model.UserStatusActive),
	)
	uc := NewUserUseCase(repo, nil)

	if _, err := uc.Update(ctx, "1", model.UserUpdate{Email: model.Some(" b@x.com ")}); !errors.Is(err, domainErrors.ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email for padded address, got %v", err)
	}

	user, err := uc.Update(ctx, "1", model.UserUpdate{Email: model.Some("  new@x.com ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "new@x.com" {
		t.Fatalf("expected trimmed email, got %q", user.Email)
	}
	if len(repo.UpdateCalls) != 1 {
		t.Fatalf("expected one store update, got %d", len(repo.UpdateCalls))
	}
	if email, _ := repo.UpdateCalls[0].Update.Email.Get(); email != "new@x.com" {
		t.Fatalf("expected store to receive trimmed email, got %q", email)
	}
}

func TestUserUseCaseUpdateRejectsExplicitEmptyUsername(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub(newUser("1", "a", "a@x.com", model.UserStatusActive))
	uc := NewUserUseCase(repo, nil)

	if _, err := uc.Update(context.Background(), "1", model.UserUpdate{Username: model.Some("")}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUserUseCaseActivateDeactivate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub(newUser("1", "a", "a@x.com", model.UserStatusActive))
	uc := NewUserUseCase(repo, nil)
	ctx := context.Background()

	user, err := uc.Deactivate(ctx, "1")
	if err != nil {
		t.Fatalf("deactivate returned error: %v", err)
	}
	if user.Status != model.UserStatusInactive {
		t.Fatalf("expected INACTIVE, got %s", user.Status)
	}

	user, err = uc.Activate(ctx, "1")
	if err != nil {
		t.Fatalf("activate returned error: %v", err)
	}
	if user.Status != model.UserStatusActive {
		t.Fatalf("expected ACTIVE, got %s", user.Status)
	}

	for _, call := range repo.UpdateCalls {
		if call.Update.Username.IsSet() || call.Update.Email.IsSet() || !call.Update.Status.IsSet() {
			t.Fatalf("expected status-only update, got %+v", call.Update)
		}
	}

	if _, err := uc.Activate(ctx, "404"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserUseCaseDeleteIsIdempotent(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub(newUser("1", "a", "a@x.com", model.UserStatusActive))
	uc := NewUserUseCase(repo, nil)
	ctx := context.Background()

	if ok, _ := uc.Delete(ctx, "1"); !ok {
		t.Fatalf("expected first delete to succeed")
	}
	for i := 0; i < 2; i++ {
		if ok, _ := uc.Delete(ctx, "1"); ok {
			t.Fatalf("expected repeated delete to return false")
		}
	}
}
