package entity

import "time"

type Book struct {
	ID        int64
	Title     string
	Author    string
	ISBN      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookFilter narrows a paginated book search. Empty fields impose no
// constraint. Title and Author match as case-insensitive substrings,
// ISBN matches exactly.
type BookFilter struct {
	Title  string
	Author string
	ISBN   string
}
