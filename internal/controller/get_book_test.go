package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daniel/library/internal/entity"
)

func TestGetBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		useCaseErr   error
		codeResponse int
	}{
		{name: "valid get book",
			target:       "/api/books/42",
			codeResponse: http.StatusOK},

		{name: "invalid id",
			target:       "/api/books/abc",
			codeResponse: http.StatusBadRequest},

		{name: "unknown book",
			target:       "/api/books/42",
			useCaseErr:   entity.ErrBookNotFound,
			codeResponse: http.StatusNotFound},

		{name: "internal error",
			target:       "/api/books/42",
			useCaseErr:   errInternal,
			codeResponse: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockBooksUseCase, s := initBooksTest(t)
			code := test.codeResponse

			if code != http.StatusBadRequest {
				book := entity.Book{}
				if test.useCaseErr == nil {
					book = entity.Book{ID: 42, Title: "t", Author: "a", ISBN: "i"}
				}
				mockBooksUseCase.EXPECT().GetBook(gomock.Any(), int64(42)).Return(book, test.useCaseErr)
			}

			recorder := serveRequest(t, s, http.MethodGet, test.target, "")
			require.Equal(t, code, recorder.Code)

			if code != http.StatusOK {
				return
			}

			var dto BookDTO
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
			require.Equal(t, int64(42), dto.ID)
		})
	}
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	const body = `{"title":"t2","author":"a2","isbn":"i2"}`

	tests := []struct {
		name         string
		target       string
		body         string
		useCaseErr   error
		codeResponse int
	}{
		{name: "valid update book",
			target:       "/api/books/42",
			body:         body,
			codeResponse: http.StatusOK},

		{name: "invalid id",
			target:       "/api/books/abc",
			body:         body,
			codeResponse: http.StatusBadRequest},

		{name: "missing fields",
			target:       "/api/books/42",
			body:         `{"title":"t2"}`,
			codeResponse: http.StatusBadRequest},

		{name: "unknown book",
			target:       "/api/books/42",
			body:         body,
			useCaseErr:   entity.ErrBookNotFound,
			codeResponse: http.StatusNotFound},

		{name: "taken isbn",
			target:       "/api/books/42",
			body:         body,
			useCaseErr:   entity.ErrDuplicateISBN,
			codeResponse: http.StatusConflict},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockBooksUseCase, s := initBooksTest(t)
			code := test.codeResponse

			if code != http.StatusBadRequest {
				book := entity.Book{}
				if test.useCaseErr == nil {
					book = entity.Book{ID: 42, Title: "t2", Author: "a2", ISBN: "i2"}
				}
				mockBooksUseCase.EXPECT().
					UpdateBook(gomock.Any(), int64(42), "t2", "a2", "i2").
					Return(book, test.useCaseErr)
			}

			recorder := serveRequest(t, s, http.MethodPut, test.target, test.body)
			require.Equal(t, code, recorder.Code)

			if code != http.StatusOK {
				return
			}

			var dto BookDTO
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
			require.Equal(t, "i2", dto.ISBN)
		})
	}
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		useCaseErr   error
		codeResponse int
	}{
		{name: "valid delete book",
			target:       "/api/books/42",
			codeResponse: http.StatusNoContent},

		{name: "invalid id",
			target:       "/api/books/abc",
			codeResponse: http.StatusBadRequest},

		{name: "unknown book",
			target:       "/api/books/42",
			useCaseErr:   entity.ErrBookNotFound,
			codeResponse: http.StatusNotFound},

		{name: "book loaned out",
			target:       "/api/books/42",
			useCaseErr:   entity.ErrBookHasActiveLoan,
			codeResponse: http.StatusConflict},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockBooksUseCase, s := initBooksTest(t)
			code := test.codeResponse

			if code != http.StatusBadRequest {
				mockBooksUseCase.EXPECT().DeleteBook(gomock.Any(), int64(42)).Return(test.useCaseErr)
			}

			recorder := serveRequest(t, s, http.MethodDelete, test.target, "")
			require.Equal(t, code, recorder.Code)
		})
	}
}
