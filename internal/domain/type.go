package domain

import "context"

// Type is a product category. Items reference it; deleting a type cascades
// to its items at the store level.
type Type struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type TypeFields struct {
	Title string
}

type TypeRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]Type, error)
	FindCount(ctx context.Context) (int64, error)
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id string) (*Type, error)
	Create(ctx context.Context, fields TypeFields) (*Type, error)
	UpdateByID(ctx context.Context, id string, fields TypeFields) (*Type, error)
	// DeleteByID reports whether a row was actually removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
