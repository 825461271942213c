package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ItemSnapshot is a frozen copy of item data embedded in an order at
// creation time. It is immune to later catalog edits: the order keeps what
// was bought at the price it was bought for.
type ItemSnapshot struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ImageSrc    string `json:"imagesrc"`
	Description string `json:"description,omitempty"`
	Price       Price  `json:"price"`
	Amount      int    `json:"amount,omitempty"`
}

// ItemSnapshots is stored verbatim as a JSON column. The repository never
// interprets its contents.
type ItemSnapshots []ItemSnapshot

func (s ItemSnapshots) Value() (driver.Value, error) {
	b, err := json.Marshal([]ItemSnapshot(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *ItemSnapshots) Scan(v any) error {
	switch src := v.(type) {
	case []byte:
		return json.Unmarshal(src, (*[]ItemSnapshot)(s))
	case string:
		return json.Unmarshal([]byte(src), (*[]ItemSnapshot)(s))
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ItemSnapshots", v)
	}
}

// Order pairs a user with the snapshot of purchased items. On read the user
// reference is expanded from the live user row; the items are not.
type Order struct {
	ID    string        `json:"id"`
	User  User          `json:"user"`
	Items ItemSnapshots `json:"items"`
}

type OrderFields struct {
	UserID string
	Items  ItemSnapshots
}

type OrderRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]Order, error)
	FindCount(ctx context.Context) (int64, error)
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id string) (*Order, error)
	// FindByUserID returns every order the user placed; an empty slice when
	// there are none.
	FindByUserID(ctx context.Context, userID string) ([]Order, error)
	Create(ctx context.Context, fields OrderFields) (*Order, error)
	UpdateByID(ctx context.Context, id string, fields OrderFields) (*Order, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
