package service

import "fmt"

// NotFoundError signals that a single-entity lookup found no matching row.
// It carries the lookup key so the transport layer can echo it back.
// Anything else a repository returns passes through the services untouched.
type NotFoundError struct {
	Msg     string
	Payload map[string]any
}

func (e *NotFoundError) Error() string { return e.Msg }

func notFound(payload map[string]any, format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...), Payload: payload}
}
