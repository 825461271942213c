package domain

import "context"

// Item is a catalog product. Reads always expand the type reference to the
// embedded {id, title} object; the bare foreign key never leaves the
// repository layer.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	ImageSrc    string  `json:"imagesrc"`
	Type        Type    `json:"type"`
	Description *string `json:"description,omitempty"`
	Price       Price   `json:"price"`
}

// ItemFields is the write payload for an item. Updates apply every field
// unconditionally: a nil Description is written as NULL, not skipped.
type ItemFields struct {
	Title       string
	ImageSrc    string
	TypeID      string
	Description *string
	Price       Price
}

type ItemRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]Item, error)
	FindCount(ctx context.Context) (int64, error)
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id string) (*Item, error)
	// FindByType matches the joined type title exactly (case-sensitive) and
	// returns an empty slice when no items match.
	FindByType(ctx context.Context, typeTitle string) ([]Item, error)
	Create(ctx context.Context, fields ItemFields) (*Item, error)
	UpdateByID(ctx context.Context, id string, fields ItemFields) (*Item, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
