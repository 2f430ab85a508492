package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daniel/library/internal/entity"
)

func TestReturnLoan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		body         string
		returned     bool
		useCaseErr   error
		codeResponse int
	}{
		{name: "valid return loan",
			target:       "/api/loans/7",
			body:         `{"returned":true}`,
			returned:     true,
			codeResponse: http.StatusOK},

		{name: "valid reactivate loan",
			target:       "/api/loans/7",
			body:         `{"returned":false}`,
			returned:     false,
			codeResponse: http.StatusOK},

		{name: "invalid id",
			target:       "/api/loans/abc",
			body:         `{"returned":true}`,
			codeResponse: http.StatusBadRequest},

		{name: "missing returned flag",
			target:       "/api/loans/7",
			body:         `{}`,
			codeResponse: http.StatusBadRequest},

		{name: "unknown loan",
			target:       "/api/loans/7",
			body:         `{"returned":true}`,
			returned:     true,
			useCaseErr:   entity.ErrLoanNotFound,
			codeResponse: http.StatusNotFound},

		{name: "reactivate while book loaned out",
			target:       "/api/loans/7",
			body:         `{"returned":false}`,
			returned:     false,
			useCaseErr:   entity.ErrBookAlreadyLoaned,
			codeResponse: http.StatusConflict},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockLoansUseCase, s := initLoansTest(t)
			code := test.codeResponse

			if code != http.StatusBadRequest {
				loan := entity.Loan{}
				if test.useCaseErr == nil {
					loan = entity.Loan{ID: 7, Returned: test.returned, Book: entity.Book{ID: 42}}
				}
				mockLoansUseCase.EXPECT().
					SetLoanReturned(gomock.Any(), int64(7), test.returned).
					Return(loan, test.useCaseErr)
			}

			recorder := serveRequest(t, s, http.MethodPatch, test.target, test.body)
			require.Equal(t, code, recorder.Code)

			if code != http.StatusOK {
				return
			}

			var dto LoanDTO
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
			require.Equal(t, int64(7), dto.ID)
			require.Equal(t, test.returned, dto.Returned)
		})
	}
}

func TestGetLoan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		useCaseErr   error
		codeResponse int
	}{
		{name: "valid get loan",
			target:       "/api/loans/7",
			codeResponse: http.StatusOK},

		{name: "invalid id",
			target:       "/api/loans/abc",
			codeResponse: http.StatusBadRequest},

		{name: "unknown loan",
			target:       "/api/loans/7",
			useCaseErr:   entity.ErrLoanNotFound,
			codeResponse: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockLoansUseCase, s := initLoansTest(t)
			code := test.codeResponse

			if code != http.StatusBadRequest {
				loan := entity.Loan{}
				if test.useCaseErr == nil {
					loan = entity.Loan{ID: 7, Customer: "Alice", Book: entity.Book{ID: 42}}
				}
				mockLoansUseCase.EXPECT().GetLoan(gomock.Any(), int64(7)).Return(loan, test.useCaseErr)
			}

			recorder := serveRequest(t, s, http.MethodGet, test.target, "")
			require.Equal(t, code, recorder.Code)

			if code != http.StatusOK {
				return
			}

			var dto LoanDTO
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dto))
			require.Equal(t, int64(7), dto.ID)
		})
	}
}
