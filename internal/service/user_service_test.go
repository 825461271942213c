package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/core/auth"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/pkg/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	created *domain.User
}

func (f *fakeUserRepo) FindAll(context.Context, int, int) ([]domain.User, error) { return nil, nil }
func (f *fakeUserRepo) FindCount(context.Context) (int64, error)                 { return 0, nil }
func (f *fakeUserRepo) FindByID(context.Context, string) (*domain.User, error)   { return nil, nil }

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	f.created = u
	return nil
}

func (f *fakeUserRepo) UpdateByID(context.Context, string, domain.UserFields) (*domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) DeleteByID(context.Context, string) (bool, error) { return false, nil }

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "webshop", TTL: time.Minute}
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, testJWTer(), zap.NewNop(), testPagination)

	session, err := svc.Register(context.Background(), "Robbert", "robbert@example.com", "12345678")
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.NotEmpty(t, repo.created.ID)
	assert.NotEqual(t, "12345678", repo.created.PasswordHash)
	assert.True(t, utils.CheckPassword("12345678", repo.created.PasswordHash))
	assert.Equal(t, domain.Roles{domain.RoleUser}, repo.created.Roles)

	require.NotEmpty(t, session.Token)
	claims, err := testJWTer().Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.created.ID, claims.UID)
	assert.True(t, claims.HasRole(domain.RoleUser))
	assert.False(t, claims.HasRole(domain.RoleAdmin))
}

func TestLogin(t *testing.T) {
	known := &domain.User{
		ID:           "5e12e34a-7816-4eab-8bbe-a18a2d3113bd",
		Name:         "Robbert",
		Email:        "robbert@example.com",
		PasswordHash: utils.HashPassword("12345678"),
		Roles:        domain.Roles{domain.RoleUser, domain.RoleAdmin},
	}
	banned := &domain.User{
		ID:           "3fba4b21-4c9e-42fc-bef2-7b4e2e63b0e2",
		Email:        "banned@example.com",
		PasswordHash: utils.HashPassword("12345678"),
		Roles:        domain.Roles{domain.RoleUser},
		Banned:       true,
	}
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		known.Email:  known,
		banned.Email: banned,
	}}
	svc := NewUserService(repo, testJWTer(), zap.NewNop(), testPagination)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		session, err := svc.Login(ctx, "robbert@example.com", "12345678")
		require.NoError(t, err)
		assert.Equal(t, known.ID, session.User.ID)

		claims, err := testJWTer().Parse(session.Token)
		require.NoError(t, err)
		assert.True(t, claims.HasRole(domain.RoleAdmin))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "robbert@example.com", "wachtwoord")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "12345678")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("banned user", func(t *testing.T) {
		_, err := svc.Login(ctx, "banned@example.com", "12345678")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
