package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"

	"github.com/daniel/library/internal/entity"
)

const loanDateLayout = "2006-01-02"

type BookDTO struct {
	ID     int64  `json:"id,omitempty"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

func (d BookDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Author, validation.Required),
		validation.Field(&d.ISBN, validation.Required),
	)
}

type LoanRequestDTO struct {
	ISBN     string `json:"isbn"`
	Customer string `json:"customer"`
	Email    string `json:"email"`
}

func (d LoanRequestDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ISBN, validation.Required),
		validation.Field(&d.Customer, validation.Required),
		validation.Field(&d.Email, validation.Required, is.Email),
	)
}

type ReturnedLoanDTO struct {
	Returned *bool `json:"returned"`
}

func (d ReturnedLoanDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Returned, validation.NotNil),
	)
}

type LoanDTO struct {
	ID       int64   `json:"id"`
	Customer string  `json:"customer"`
	Email    string  `json:"email"`
	Book     BookDTO `json:"book"`
	LoanDate string  `json:"loanDate"`
	Returned bool    `json:"returned"`
}

type PageDTO[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
}

func bookToDTO(book entity.Book) BookDTO {
	return BookDTO{
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
		ISBN:   book.ISBN,
	}
}

func loanToDTO(loan entity.Loan) LoanDTO {
	return LoanDTO{
		ID:       loan.ID,
		Customer: loan.Customer,
		Email:    loan.Email,
		Book:     bookToDTO(loan.Book),
		LoanDate: loan.LoanDate.Format(loanDateLayout),
		Returned: loan.Returned,
	}
}

func bookPageToDTO(page entity.Page[entity.Book]) PageDTO[BookDTO] {
	return PageDTO[BookDTO]{
		Content:       lo.Map(page.Content, func(book entity.Book, _ int) BookDTO { return bookToDTO(book) }),
		Page:          page.Number,
		Size:          page.Size,
		TotalElements: page.TotalElements,
	}
}

func loanPageToDTO(page entity.Page[entity.Loan]) PageDTO[LoanDTO] {
	return PageDTO[LoanDTO]{
		Content:       lo.Map(page.Content, func(loan entity.Loan, _ int) LoanDTO { return loanToDTO(loan) }),
		Page:          page.Number,
		Size:          page.Size,
		TotalElements: page.TotalElements,
	}
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	if err != nil {
		return 0, errInvalidID
	}

	return id, nil
}

func parsePageRequest(r *http.Request) (entity.PageRequest, error) {
	page := entity.PageRequest{Size: entity.DefaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		number, err := strconv.Atoi(raw)

		if err != nil || number < 0 {
			return entity.PageRequest{}, errInvalidPageParams
		}

		page.Number = number
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)

		if err != nil || size <= 0 {
			return entity.PageRequest{}, errInvalidPageParams
		}

		page.Size = size
	}

	return page.Normalize(), nil
}
