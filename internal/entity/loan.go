package entity

import "time"

type Loan struct {
	ID        int64
	Customer  string
	Email     string
	Book      Book
	LoanDate  time.Time
	Returned  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoanFilter narrows a paginated loan search. Empty fields impose no
// constraint. Customer matches exactly, ISBN matches the loaned book's
// isbn exactly.
type LoanFilter struct {
	Customer string
	ISBN     string
}
