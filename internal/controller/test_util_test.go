package controller

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/daniel/library/internal/controller/mocks"
)

var errInternal = errors.New("internal error")

func initBooksTest(t *testing.T) (*mocks.MockBooksUseCase, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)
	booksUseCase := mocks.NewMockBooksUseCase(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, booksUseCase, nil)
	return booksUseCase, service
}

func initLoansTest(t *testing.T) (*mocks.MockLoansUseCase, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loansUseCase := mocks.NewMockLoansUseCase(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, nil, loansUseCase)
	return loansUseCase, service
}

func initServiceTest(t *testing.T) (*mocks.MockBooksUseCase, *mocks.MockLoansUseCase, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)
	booksUseCase := mocks.NewMockBooksUseCase(ctrl)
	loansUseCase := mocks.NewMockLoansUseCase(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, booksUseCase, loansUseCase)
	return booksUseCase, loansUseCase, service
}

func serveRequest(t *testing.T, s *implementation, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	s.Routes().ServeHTTP(recorder, request)

	return recorder
}
