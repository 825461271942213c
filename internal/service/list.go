package service

// List is the shared envelope for paginated getAll responses. Count is the
// total row count ignoring the pagination window, so a caller can compute
// the number of pages without a second round trip.
type List[T any] struct {
	Data   []T   `json:"data"`
	Count  int64 `json:"count"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// Data wraps unpaginated list results (items by type, orders by user).
type Data[T any] struct {
	Data []T `json:"data"`
}
