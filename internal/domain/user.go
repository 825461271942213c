package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Roles is the set of role tags on a user, stored as a JSON column.
// Every user carries "user"; admins additionally carry "admin".
type Roles []string

func (r Roles) Has(role string) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

func (r Roles) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Roles) Scan(v any) error {
	switch src := v.(type) {
	case []byte:
		return json.Unmarshal(src, (*[]string)(r))
	case string:
		return json.Unmarshal([]byte(src), (*[]string)(r))
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Roles", v)
	}
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Roles        Roles  `json:"roles"`
	Banned       bool   `json:"-"`
}

type UserFields struct {
	Name  string
	Email string
}

type UserRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]User, error)
	FindCount(ctx context.Context) (int64, error)
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByEmail returns (nil, nil) when no row matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdateByID(ctx context.Context, id string, fields UserFields) (*User, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
