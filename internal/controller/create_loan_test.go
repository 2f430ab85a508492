package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daniel/library/internal/entity"
)

func TestCreateLoan(t *testing.T) {
	t.Parallel()

	const body = `{"isbn":"978-0134190440","customer":"Alice","email":"alice@example.com"}`

	loanDate := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		useCaseErr   error
		codeResponse int
	}{
		{name: "valid create loan",
			body:         body,
			codeResponse: http.StatusCreated},

		{name: "missing customer",
			body:         `{"isbn":"978-0134190440","email":"alice@example.com"}`,
			codeResponse: http.StatusBadRequest},

		{name: "invalid email",
			body:         `{"isbn":"978-0134190440","customer":"Alice","email":"not-an-email"}`,
			codeResponse: http.StatusBadRequest},

		{name: "unknown book",
			body:         body,
			useCaseErr:   entity.ErrBookNotFound,
			codeResponse: http.StatusNotFound},

		{name: "book loaned out",
			body:         body,
			useCaseErr:   entity.ErrBookAlreadyLoaned,
			codeResponse: http.StatusConflict},

		{name: "internal error",
			body:         body,
			useCaseErr:   errInternal,
			codeResponse: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockLoansUseCase, s := initLoansTest(t)
			code := test.codeResponse

			if code != http.StatusBadRequest {
				loan := entity.Loan{}
				if test.useCaseErr == nil {
					loan = entity.Loan{
						ID:       7,
						Customer: "Alice",
						Email:    "alice@example.com",
						Book:     entity.Book{ID: 42, ISBN: "978-0134190440"},
						LoanDate: loanDate,
					}
				}
				mockLoansUseCase.EXPECT().
					CreateLoan(gomock.Any(), "978-0134190440", "Alice", "alice@example.com").
					Return(loan, test.useCaseErr)
			}

			recorder := serveRequest(t, s, http.MethodPost, "/api/loans", test.body)
			require.Equal(t, code, recorder.Code)

			if code != http.StatusCreated {
				return
			}

			require.Equal(t, "/api/loans/7", recorder.Header().Get("Location"))

			var dto LoanDTO
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
			require.Equal(t, int64(7), dto.ID)
			require.Equal(t, "978-0134190440", dto.Book.ISBN)
			require.Equal(t, "2026-08-28", dto.LoanDate)
			require.False(t, dto.Returned)
		})
	}
}
