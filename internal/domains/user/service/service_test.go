package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karzone-backend/internal/domains/user/model"
	"karzone-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == model.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0)
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	// Same ordering contract as the SQL repository
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func newTestService() (ServiceInterface, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, jwt.NewManager("test-secret")), repo
}

func signupRequest() model.SignupRequest {
	return model.SignupRequest{
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	}
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	// The hash never equals the raw password
	assert.NotEqual(t, "s3cret-pass", resp.User.PasswordHash)

	login, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupRequest())
	assert.Equal(t, model.ErrEmailAlreadyExists, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), model.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.Equal(t, model.ErrInvalidCredentials, err)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newTestService()

	// Unknown email and wrong password are indistinguishable to the caller
	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.Equal(t, model.ErrInvalidCredentials, err)
}

func TestListUsersNewestFirst(t *testing.T) {
	svc, repo := newTestService()

	for i, created := range []time.Time{
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, repo.Create(context.Background(), &model.User{
			ID:        uuid.New(),
			FullName:  "User",
			Email:     "user" + string(rune('a'+i)) + "@example.com",
			CreatedAt: created,
		}))
	}

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC), users[0].CreatedAt)
	assert.Equal(t, time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC), users[1].CreatedAt)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), users[2].CreatedAt)
}

func TestGetMe(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	u, err := svc.GetMe(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.User.Email, u.Email)

	_, err = svc.GetMe(context.Background(), uuid.New())
	assert.Equal(t, model.ErrUserNotFound, err)
}
