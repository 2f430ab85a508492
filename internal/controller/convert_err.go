package controller

import (
	"errors"
	"net/http"

	"github.com/daniel/library/internal/entity"
)

var (
	errInvalidID         = errors.New("id must be an integer")
	errInvalidPageParams = errors.New("page and size must be non-negative integers")
)

type errorDTO struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorDTO{Error: err.Error()})
}

// convertErr maps domain errors onto HTTP statuses. Conflict and
// not-found responses carry the sentinel message so transaction
// wrapping never leaks into the body.
func (i *implementation) convertErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrBookNotFound):
		writeError(w, http.StatusNotFound, entity.ErrBookNotFound)
	case errors.Is(err, entity.ErrLoanNotFound):
		writeError(w, http.StatusNotFound, entity.ErrLoanNotFound)
	case errors.Is(err, entity.ErrDuplicateISBN):
		writeError(w, http.StatusConflict, entity.ErrDuplicateISBN)
	case errors.Is(err, entity.ErrBookAlreadyLoaned):
		writeError(w, http.StatusConflict, entity.ErrBookAlreadyLoaned)
	case errors.Is(err, entity.ErrBookHasActiveLoan):
		writeError(w, http.StatusConflict, entity.ErrBookHasActiveLoan)
	default:
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
