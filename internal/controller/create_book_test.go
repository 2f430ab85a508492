package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daniel/library/internal/entity"
)

func TestCreateBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		useCaseErr   error
		codeResponse int
	}{
		{name: "valid create book",
			body:         `{"title":"The Go Programming Language","author":"Donovan","isbn":"978-0134190440"}`,
			codeResponse: http.StatusCreated},

		{name: "missing title",
			body:         `{"author":"Donovan","isbn":"978-0134190440"}`,
			codeResponse: http.StatusBadRequest},

		{name: "malformed body",
			body:         `{"title":`,
			codeResponse: http.StatusBadRequest},

		{name: "taken isbn",
			body:         `{"title":"The Go Programming Language","author":"Donovan","isbn":"978-0134190440"}`,
			useCaseErr:   entity.ErrDuplicateISBN,
			codeResponse: http.StatusConflict},

		{name: "internal error",
			body:         `{"title":"The Go Programming Language","author":"Donovan","isbn":"978-0134190440"}`,
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
					book = entity.Book{ID: 1, Title: "The Go Programming Language", Author: "Donovan", ISBN: "978-0134190440"}
				}
				mockBooksUseCase.EXPECT().
					CreateBook(gomock.Any(), "The Go Programming Language", "Donovan", "978-0134190440").
					Return(book, test.useCaseErr)
			}

			recorder := serveRequest(t, s, http.MethodPost, "/api/books", test.body)
			require.Equal(t, code, recorder.Code)

			if code != http.StatusCreated {
				return
			}

			require.Equal(t, "/api/books/1", recorder.Header().Get("Location"))

			var dto BookDTO
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
			require.Equal(t, int64(1), dto.ID)
			require.Equal(t, "978-0134190440", dto.ISBN)
		})
	}
}
