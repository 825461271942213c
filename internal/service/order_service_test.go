package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
)

type fakeOrderRepo struct {
	byUser map[string][]domain.Order
}

func (f *fakeOrderRepo) FindAll(context.Context, int, int) ([]domain.Order, error) { return nil, nil }
func (f *fakeOrderRepo) FindCount(context.Context) (int64, error)                  { return 0, nil }
func (f *fakeOrderRepo) FindByID(context.Context, string) (*domain.Order, error)   { return nil, nil }

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID string) ([]domain.Order, error) {
	return f.byUser[userID], nil
}

func (f *fakeOrderRepo) Create(context.Context, domain.OrderFields) (*domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateByID(context.Context, string, domain.OrderFields) (*domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) DeleteByID(context.Context, string) (bool, error) { return false, nil }

func TestOrderGetByIDAbsentIsNotFound(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, zap.NewNop(), testPagination)

	_, err := svc.GetByID(context.Background(), "30497787-139e-4c4c-a94e-c4913c565c1b")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, map[string]any{"id": "30497787-139e-4c4c-a94e-c4913c565c1b"}, nf.Payload)
}

func TestOrderGetByUserIDEmptyIsNotAnError(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, zap.NewNop(), testPagination)

	out, err := svc.GetByUserID(context.Background(), "5e12e34a-7816-4eab-8bbe-a18a2d3113bd")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out.Data)
}
