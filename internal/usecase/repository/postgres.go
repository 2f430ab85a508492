package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/daniel/library/internal/entity"
	"github.com/daniel/library/pkg/logger"
)

const ErrUniqueViolation = "23505"

const dialectPostgres = "postgres"

// DataBase is the subset of pgxpool.Pool used by the repositories.
// pgx.Tx satisfies it too, which lets conn route queries into the
// transaction injected by the transactor.
type DataBase interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ BooksRepository = (*postgresRepository)(nil)
var _ LoansRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

func (p *postgresRepository) conn(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ErrUniqueViolation
}

func (p *postgresRepository) CreateBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO book (title, author, isbn)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at
`
	result := entity.Book{
		Title:  book.Title,
		Author: book.Author,
		ISBN:   book.ISBN,
	}

	err := p.conn(ctx).QueryRow(ctx, query, book.Title, book.Author, book.ISBN).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)

	if isUniqueViolation(err) {
		return entity.Book{}, fmt.Errorf("isbn %s is taken: %w", book.ISBN, entity.ErrDuplicateISBN)
	}

	if logger.CheckError(err, p.logger, "can not insert book", zap.Error(err)) {
		return entity.Book{}, err
	}

	return result, nil
}

// GetBook locks the book row when called inside a transaction.
// DeleteBook depends on that to serialize against loan creation.
func (p *postgresRepository) GetBook(ctx context.Context, bookID int64) (entity.Book, error) {
	const query = `
SELECT id, title, author, isbn, created_at, updated_at
FROM book
WHERE id = $1 FOR UPDATE
`
	var book entity.Book
	err := p.conn(ctx).QueryRow(ctx, query, bookID).
		Scan(&book.ID, &book.Title, &book.Author, &book.ISBN, &book.CreatedAt, &book.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

// GetBookByISBN locks the book row when called inside a transaction.
// Loan creation relies on that lock to serialize the active-loan check
// per book.
func (p *postgresRepository) GetBookByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	const query = `
SELECT id, title, author, isbn, created_at, updated_at
FROM book
WHERE isbn = $1 FOR UPDATE
`
	var book entity.Book
	err := p.conn(ctx).QueryRow(ctx, query, isbn).
		Scan(&book.ID, &book.Title, &book.Author, &book.ISBN, &book.CreatedAt, &book.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) UpdateBook(ctx context.Context, book entity.Book) error {
	const query = `
UPDATE book SET title = $1, author = $2, isbn = $3, updated_at = now()
WHERE id = $4
`
	tag, err := p.conn(ctx).Exec(ctx, query, book.Title, book.Author, book.ISBN, book.ID)

	if isUniqueViolation(err) {
		return fmt.Errorf("isbn %s is taken: %w", book.ISBN, entity.ErrDuplicateISBN)
	}

	if logger.CheckError(err, p.logger, "can not update book", zap.Error(err)) {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

// DeleteBook removes the book together with its returned loan history.
// Active loans are checked by the use case before this call; the
// cascade only ever drops history rows.
func (p *postgresRepository) DeleteBook(ctx context.Context, bookID int64) error {
	const query = `
DELETE FROM book WHERE id = $1
`
	tag, err := p.conn(ctx).Exec(ctx, query, bookID)

	if logger.CheckError(err, p.logger, "can not delete book", zap.Error(err)) {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

func bookFilterExpressions(filter entity.BookFilter) []goqu.Expression {
	expressions := make([]goqu.Expression, 0)

	if filter.Title != "" {
		expressions = append(expressions, goqu.C("title").ILike("%"+filter.Title+"%"))
	}

	if filter.Author != "" {
		expressions = append(expressions, goqu.C("author").ILike("%"+filter.Author+"%"))
	}

	if filter.ISBN != "" {
		expressions = append(expressions, goqu.C("isbn").Eq(filter.ISBN))
	}

	return expressions
}

func (p *postgresRepository) FindBooks(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) (entity.Page[entity.Book], error) {
	page = page.Normalize()
	where := bookFilterExpressions(filter)

	countQuery, _, err := goqu.Dialect(dialectPostgres).
		From("book").
		Select(goqu.COUNT(goqu.Star())).
		Where(where...).
		ToSQL()

	if err != nil {
		return entity.Page[entity.Book]{}, fmt.Errorf("can not build book count query: %w", err)
	}

	var total int64
	if err = p.conn(ctx).QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return entity.Page[entity.Book]{}, err
	}

	selectQuery, _, err := goqu.Dialect(dialectPostgres).
		From("book").
		Select("id", "title", "author", "isbn", "created_at", "updated_at").
		Where(where...).
		Order(goqu.I("id").Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())).
		ToSQL()

	if err != nil {
		return entity.Page[entity.Book]{}, fmt.Errorf("can not build book select query: %w", err)
	}

	rows, err := p.conn(ctx).Query(ctx, selectQuery)

	if err != nil {
		return entity.Page[entity.Book]{}, err
	}

	defer rows.Close()

	content := make([]entity.Book, 0, page.Size)

	for rows.Next() {
		var book entity.Book

		if err = rows.Scan(&book.ID, &book.Title, &book.Author, &book.ISBN, &book.CreatedAt, &book.UpdatedAt); err != nil {
			return entity.Page[entity.Book]{}, err
		}

		content = append(content, book)
	}

	if err = rows.Err(); err != nil {
		return entity.Page[entity.Book]{}, err
	}

	return entity.Page[entity.Book]{
		Content:       content,
		Number:        page.Number,
		Size:          page.Size,
		TotalElements: total,
	}, nil
}
