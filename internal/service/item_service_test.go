package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/core/config"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
)

// fakeItemRepo records the window it was asked for and plays back canned
// results.
type fakeItemRepo struct {
	items      []domain.Item
	byID       *domain.Item
	gotLimit   int
	gotOffset  int
	gotTypeArg string
}

func (f *fakeItemRepo) FindAll(_ context.Context, limit, offset int) ([]domain.Item, error) {
	f.gotLimit, f.gotOffset = limit, offset
	return f.items, nil
}

func (f *fakeItemRepo) FindCount(context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeItemRepo) FindByID(context.Context, string) (*domain.Item, error) {
	return f.byID, nil
}

func (f *fakeItemRepo) FindByType(_ context.Context, typeTitle string) ([]domain.Item, error) {
	f.gotTypeArg = typeTitle
	return f.items, nil
}

func (f *fakeItemRepo) Create(_ context.Context, fields domain.ItemFields) (*domain.Item, error) {
	return &domain.Item{Title: fields.Title}, nil
}

func (f *fakeItemRepo) UpdateByID(_ context.Context, id string, fields domain.ItemFields) (*domain.Item, error) {
	return &domain.Item{ID: id, Title: fields.Title}, nil
}

func (f *fakeItemRepo) DeleteByID(context.Context, string) (bool, error) {
	return false, nil
}

var testPagination = config.Pagination{Limit: 100, Offset: 0}

func intptr(n int) *int { return &n }

func TestItemGetAllAppliesDefaults(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.Item{{Title: "item1"}}}
	svc := NewItemService(repo, zap.NewNop(), testPagination)

	list, err := svc.GetAll(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, 100, list.Limit)
	assert.Equal(t, 0, list.Offset)
	assert.EqualValues(t, 1, list.Count)
}

func TestItemGetAllPassesExplicitWindow(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo, zap.NewNop(), testPagination)

	list, err := svc.GetAll(context.Background(), intptr(2), intptr(1))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.gotLimit)
	assert.Equal(t, 1, repo.gotOffset)
	assert.Equal(t, 2, list.Limit)
	assert.Equal(t, 1, list.Offset)
}

func TestItemGetByIDAbsentIsNotFound(t *testing.T) {
	svc := NewItemService(&fakeItemRepo{}, zap.NewNop(), testPagination)

	_, err := svc.GetByID(context.Background(), "b05c8bf4-93a4-46cd-8b4c-feb6a9110b5c")
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "There is no item with id b05c8bf4-93a4-46cd-8b4c-feb6a9110b5c", nf.Msg)
	assert.Equal(t, map[string]any{"id": "b05c8bf4-93a4-46cd-8b4c-feb6a9110b5c"}, nf.Payload)
}

func TestItemGetByTypeEmptyIsNotAnError(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewItemService(repo, zap.NewNop(), testPagination)

	out, err := svc.GetByType(context.Background(), "Ketting")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out.Data)
	assert.Equal(t, "Ketting", repo.gotTypeArg)
}
