package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/daniel/library/internal/entity"
	"github.com/daniel/library/pkg/logger"
)

const loanColumns = `
l.id, l.customer, l.email, l.loan_date, l.returned, l.created_at, l.updated_at,
b.id, b.title, b.author, b.isbn
`

func scanLoan(row pgx.Row) (entity.Loan, error) {
	var loan entity.Loan
	err := row.Scan(
		&loan.ID, &loan.Customer, &loan.Email, &loan.LoanDate, &loan.Returned,
		&loan.CreatedAt, &loan.UpdatedAt,
		&loan.Book.ID, &loan.Book.Title, &loan.Book.Author, &loan.Book.ISBN,
	)
	return loan, err
}

func (p *postgresRepository) CreateLoan(ctx context.Context, loan entity.Loan) (entity.Loan, error) {
	const query = `
INSERT INTO loan (book_id, customer, email)
VALUES ($1, $2, $3)
RETURNING id, loan_date, returned, created_at, updated_at
`
	result := entity.Loan{
		Customer: loan.Customer,
		Email:    loan.Email,
		Book:     loan.Book,
	}

	err := p.conn(ctx).QueryRow(ctx, query, loan.Book.ID, loan.Customer, loan.Email).
		Scan(&result.ID, &result.LoanDate, &result.Returned, &result.CreatedAt, &result.UpdatedAt)

	// The partial unique index on active loans catches creations that
	// raced past the in-transaction check.
	if isUniqueViolation(err) {
		return entity.Loan{}, fmt.Errorf("book %d has an active loan: %w", loan.Book.ID, entity.ErrBookAlreadyLoaned)
	}

	if logger.CheckError(err, p.logger, "can not insert loan", zap.Error(err)) {
		return entity.Loan{}, err
	}

	return result, nil
}

func (p *postgresRepository) GetLoan(ctx context.Context, loanID int64) (entity.Loan, error) {
	query := `
SELECT ` + loanColumns + `
FROM loan l
JOIN book b ON b.id = l.book_id
WHERE l.id = $1
`
	loan, err := scanLoan(p.conn(ctx).QueryRow(ctx, query, loanID))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Loan{}, entity.ErrLoanNotFound
	}

	if err != nil {
		return entity.Loan{}, err
	}

	return loan, nil
}

// GetLoanForUpdate locks the loan row and its book row so that
// flipping the returned flag is serialized against loan creation for
// the same book.
func (p *postgresRepository) GetLoanForUpdate(ctx context.Context, loanID int64) (entity.Loan, error) {
	query := `
SELECT ` + loanColumns + `
FROM loan l
JOIN book b ON b.id = l.book_id
WHERE l.id = $1 FOR UPDATE
`
	loan, err := scanLoan(p.conn(ctx).QueryRow(ctx, query, loanID))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Loan{}, entity.ErrLoanNotFound
	}

	if err != nil {
		return entity.Loan{}, err
	}

	return loan, nil
}

func (p *postgresRepository) UpdateLoan(ctx context.Context, loan entity.Loan) error {
	const query = `
UPDATE loan SET returned = $1, updated_at = now()
WHERE id = $2
`
	tag, err := p.conn(ctx).Exec(ctx, query, loan.Returned, loan.ID)

	// Re-activating a loan while another active loan exists violates
	// the partial unique index.
	if isUniqueViolation(err) {
		return fmt.Errorf("book %d has an active loan: %w", loan.Book.ID, entity.ErrBookAlreadyLoaned)
	}

	if logger.CheckError(err, p.logger, "can not update loan", zap.Error(err)) {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrLoanNotFound
	}

	return nil
}

func (p *postgresRepository) HasActiveLoan(ctx context.Context, bookID int64) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM loan WHERE book_id = $1 AND NOT returned)
`
	var exists bool
	if err := p.conn(ctx).QueryRow(ctx, query, bookID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func loanFilterExpressions(filter entity.LoanFilter) []goqu.Expression {
	expressions := make([]goqu.Expression, 0)

	if filter.Customer != "" {
		expressions = append(expressions, goqu.I("l.customer").Eq(filter.Customer))
	}

	if filter.ISBN != "" {
		expressions = append(expressions, goqu.I("b.isbn").Eq(filter.ISBN))
	}

	return expressions
}

func (p *postgresRepository) FindLoans(ctx context.Context, filter entity.LoanFilter, page entity.PageRequest) (entity.Page[entity.Loan], error) {
	return p.findLoans(ctx, loanFilterExpressions(filter), page)
}

func (p *postgresRepository) FindLoansByBook(ctx context.Context, bookID int64, page entity.PageRequest) (entity.Page[entity.Loan], error) {
	return p.findLoans(ctx, []goqu.Expression{goqu.I("l.book_id").Eq(bookID)}, page)
}

func (p *postgresRepository) findLoans(ctx context.Context, where []goqu.Expression, page entity.PageRequest) (entity.Page[entity.Loan], error) {
	page = page.Normalize()

	joined := goqu.Dialect(dialectPostgres).
		From(goqu.T("loan").As("l")).
		Join(goqu.T("book").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("l.book_id")))).
		Where(where...)

	countQuery, _, err := joined.Select(goqu.COUNT(goqu.Star())).ToSQL()

	if err != nil {
		return entity.Page[entity.Loan]{}, fmt.Errorf("can not build loan count query: %w", err)
	}

	var total int64
	if err = p.conn(ctx).QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return entity.Page[entity.Loan]{}, err
	}

	selectQuery, _, err := joined.
		Select(
			"l.id", "l.customer", "l.email", "l.loan_date", "l.returned",
			"l.created_at", "l.updated_at",
			"b.id", "b.title", "b.author", "b.isbn",
		).
		Order(goqu.I("l.id").Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())).
		ToSQL()

	if err != nil {
		return entity.Page[entity.Loan]{}, fmt.Errorf("can not build loan select query: %w", err)
	}

	rows, err := p.conn(ctx).Query(ctx, selectQuery)

	if err != nil {
		return entity.Page[entity.Loan]{}, err
	}

	defer rows.Close()

	content := make([]entity.Loan, 0, page.Size)

	for rows.Next() {
		var loan entity.Loan

		if err = rows.Scan(
			&loan.ID, &loan.Customer, &loan.Email, &loan.LoanDate, &loan.Returned,
			&loan.CreatedAt, &loan.UpdatedAt,
			&loan.Book.ID, &loan.Book.Title, &loan.Book.Author, &loan.Book.ISBN,
		); err != nil {
			return entity.Page[entity.Loan]{}, err
		}

		content = append(content, loan)
	}

	if err = rows.Err(); err != nil {
		return entity.Page[entity.Loan]{}, err
	}

	return entity.Page[entity.Loan]{
		Content:       content,
		Number:        page.Number,
		Size:          page.Size,
		TotalElements: total,
	}, nil
}
