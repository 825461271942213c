package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/core/database"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	. "github.com/RobbertNaessens/webapp-backend/internal/repo"
	"github.com/RobbertNaessens/webapp-backend/pkg/utils"
)

// newTestDB opens a fresh in-memory store per test. The DSN name must be
// unique so parallel tests do not share state; _fk turns on foreign key
// enforcement, which sqlite leaves off by default.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          "file:" + utils.NewID() + "?mode=memory&cache=shared&_fk=1",
		MaxOpenConns: 4,
		MaxIdleConns: 4,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func mustCreateType(t *testing.T, r *TypeRepo, title string) domain.Type {
	t.Helper()
	typ, err := r.Create(context.Background(), domain.TypeFields{Title: title})
	require.NoError(t, err)
	require.NotNil(t, typ)
	return *typ
}

func mustCreateItem(t *testing.T, r *ItemRepo, fields domain.ItemFields) domain.Item {
	t.Helper()
	item, err := r.Create(context.Background(), fields)
	require.NoError(t, err)
	require.NotNil(t, item)
	return *item
}

func mustCreateUser(t *testing.T, r *UserRepo, name, email string) domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword("12345678"),
		Roles:        domain.Roles{domain.RoleUser},
	}
	require.NoError(t, r.Create(context.Background(), u))
	return *u
}

func strptr(s string) *string { return &s }
