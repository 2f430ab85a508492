package entity

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects one bounded slice of an ordered result set.
// Number is zero-based.
type PageRequest struct {
	Number int
	Size   int
}

// Normalize clamps the request into valid bounds so a repository can
// use it directly in LIMIT/OFFSET clauses.
func (p PageRequest) Normalize() PageRequest {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is one slice of a larger ordered result set together with the
// total number of matching elements.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}
