package utils

import "github.com/google/uuid"

// NewID returns a random UUID for a new row.
func NewID() string { return uuid.NewString() }
