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

type itemFixture struct {
	items *ItemRepo
	types *TypeRepo
	typ   domain.Type
}

func newItemFixture(t *testing.T) itemFixture {
	db := newTestDB(t)
	log := zap.NewNop()
	f := itemFixture{items: NewItemRepo(db, log), types: NewTypeRepo(db, log)}
	f.typ = mustCreateType(t, f.types, "Ketting")
	return f
}

func (f itemFixture) fields(title, price string) domain.ItemFields {
	return domain.ItemFields{
		Title:    title,
		ImageSrc: "/images/" + title + ".jpg",
		TypeID:   f.typ.ID,
		Price:    domain.MustPrice(price),
	}
}

func TestItemCreateReadRoundTrip(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	fields := f.fields("item1", "9.99")
	fields.Description = strptr("mooie ketting")
	created := mustCreateItem(t, f.items, fields)

	require.NotEmpty(t, created.ID)
	assert.Equal(t, "item1", created.Title)
	assert.Equal(t, f.typ, created.Type)
	require.NotNil(t, created.Description)
	assert.Equal(t, "mooie ketting", *created.Description)
	assert.Equal(t, "9.99", created.Price.StringFixed(2))

	got, err := f.items.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	again, err := f.items.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestItemFindByIDAbsent(t *testing.T) {
	f := newItemFixture(t)

	got, err := f.items.FindByID(context.Background(), "1f63d28b-7e65-43c9-9eb7-2a9b0be4a5d0")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestItemFindAllOrderingAndWindow(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	// Inserted out of order on purpose; reads must sort by title.
	for _, row := range [][2]string{
		{"Ring", "24.99"},
		{"Armband", "9.99"},
		{"Oorbellen", "14.99"},
		{"Ketting", "19.99"},
	} {
		mustCreateItem(t, f.items, f.fields(row[0], row[1]))
	}

	all, err := f.items.FindAll(ctx, 100, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"Armband", "Ketting", "Oorbellen", "Ring"},
		[]string{all[0].Title, all[1].Title, all[2].Title, all[3].Title})

	window, err := f.items.FindAll(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "Ketting", window[0].Title)
	assert.Equal(t, "19.99", window[0].Price.StringFixed(2))
	assert.Equal(t, "Oorbellen", window[1].Title)
	assert.Equal(t, "14.99", window[1].Price.StringFixed(2))

	// Count ignores the window.
	count, err := f.items.FindCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestItemFindByType(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()
	other := mustCreateType(t, f.types, "Armband")

	mustCreateItem(t, f.items, f.fields("item2", "19.99"))
	mustCreateItem(t, f.items, f.fields("item1", "9.99"))
	outside := f.fields("item3", "14.99")
	outside.TypeID = other.ID
	mustCreateItem(t, f.items, outside)

	got, err := f.items.FindByType(ctx, "Ketting")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "item1", got[0].Title)
	assert.Equal(t, "item2", got[1].Title)

	none, err := f.items.FindByType(ctx, "Zwevende sieraden")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestItemUpdateOverwritesEveryColumn(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	fields := f.fields("item1", "9.99")
	fields.Description = strptr("origineel")
	created := mustCreateItem(t, f.items, fields)

	// An update without a description must write NULL, not keep the old one.
	updated, err := f.items.UpdateByID(ctx, created.ID, f.fields("item1 bis", "500.0"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "item1 bis", updated.Title)
	assert.Nil(t, updated.Description)
	assert.Equal(t, "500.00", updated.Price.StringFixed(2))
}

func TestItemDeleteByID(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()
	created := mustCreateItem(t, f.items, f.fields("item1", "9.99"))

	ok, err := f.items.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.items.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = f.items.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTypeDeleteCascadesToItems(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()
	created := mustCreateItem(t, f.items, f.fields("item1", "9.99"))

	ok, err := f.types.DeleteByID(ctx, f.typ.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := f.items.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
