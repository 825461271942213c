package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	. "github.com/RobbertNaessens/webapp-backend/internal/repo"
)

type orderFixture struct {
	orders *OrderRepo
	items  *ItemRepo
	types  *TypeRepo
	users  *UserRepo
	user   domain.User
	item   domain.Item
}

func newOrderFixture(t *testing.T) orderFixture {
	db := newTestDB(t)
	log := zap.NewNop()
	f := orderFixture{
		orders: NewOrderRepo(db, log),
		items:  NewItemRepo(db, log),
		types:  NewTypeRepo(db, log),
		users:  NewUserRepo(db, log),
	}
	f.user = mustCreateUser(t, f.users, "Robbert Naessens", "robbert@example.com")
	typ := mustCreateType(t, f.types, "Ketting")
	f.item = mustCreateItem(t, f.items, domain.ItemFields{
		Title:    "item1",
		ImageSrc: "/images/item1.jpg",
		TypeID:   typ.ID,
		Price:    domain.MustPrice("9.99"),
	})
	return f
}

func (f orderFixture) snapshot(amount int) domain.ItemSnapshots {
	return domain.ItemSnapshots{{
		ID:       f.item.ID,
		Title:    f.item.Title,
		ImageSrc: f.item.ImageSrc,
		Price:    f.item.Price,
		Amount:   amount,
	}}
}

func TestOrderCreateExpandsUser(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	created, err := f.orders.Create(ctx, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(2)})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotEmpty(t, created.ID)

	assert.Equal(t, f.user.ID, created.User.ID)
	assert.Equal(t, "Robbert Naessens", created.User.Name)
	assert.Equal(t, "robbert@example.com", created.User.Email)
	assert.Equal(t, domain.Roles{domain.RoleUser}, created.User.Roles)
	assert.Empty(t, created.User.PasswordHash)

	require.Len(t, created.Items, 1)
	assert.Equal(t, 2, created.Items[0].Amount)
	assert.Equal(t, "9.99", created.Items[0].Price.StringFixed(2))
}

func TestOrderSnapshotSurvivesCatalogEdits(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	created, err := f.orders.Create(ctx, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(1)})
	require.NoError(t, err)

	// Reprice and rename the live item, then remove it entirely.
	_, err = f.items.UpdateByID(ctx, f.item.ID, domain.ItemFields{
		Title:    "andere titel",
		ImageSrc: f.item.ImageSrc,
		TypeID:   f.item.Type.ID,
		Price:    domain.MustPrice("99.99"),
	})
	require.NoError(t, err)
	_, err = f.items.DeleteByID(ctx, f.item.ID)
	require.NoError(t, err)

	got, err := f.orders.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "item1", got.Items[0].Title)
	assert.Equal(t, "9.99", got.Items[0].Price.StringFixed(2))
}

func TestOrderUserExpansionIsLive(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	created, err := f.orders.Create(ctx, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(1)})
	require.NoError(t, err)

	_, err = f.users.UpdateByID(ctx, f.user.ID, domain.UserFields{Name: "R. Naessens", Email: f.user.Email})
	require.NoError(t, err)

	got, err := f.orders.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "R. Naessens", got.User.Name)
}

func TestOrderFindByUserID(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.orders.Create(ctx, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(1)})
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(3)})
	require.NoError(t, err)

	got, err := f.orders.FindByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	other := mustCreateUser(t, f.users, "Test User", "test@example.com")
	none, err := f.orders.FindByUserID(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderFindByIDAbsent(t *testing.T) {
	f := newOrderFixture(t)

	got, err := f.orders.FindByID(context.Background(), "30497787-139e-4c4c-a94e-c4913c565c1b")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderUpdateOverwritesSnapshot(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	created, err := f.orders.Create(ctx, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(1)})
	require.NoError(t, err)

	updated, err := f.orders.UpdateByID(ctx, created.ID, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(5)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 5, updated.Items[0].Amount)
}

func TestUserDeleteCascadesToOrders(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	created, err := f.orders.Create(ctx, domain.OrderFields{UserID: f.user.ID, Items: f.snapshot(1)})
	require.NoError(t, err)

	ok, err := f.users.DeleteByID(ctx, f.user.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := f.orders.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
