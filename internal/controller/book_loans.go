package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/log"
)

var GetBookLoansDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_get_book_loans_duration_ms",
	Help:    "Duration of GetBookLoans in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBookLoansDuration)
}

// GetBookLoans pages the full lending history of one book, returned
// loans included.
func (i *implementation) GetBookLoans(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GetBookLoansDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	bookID, err := parseID(r)

	if log.ErrorGetBookLoans(i.logger, err, "Got invalid request", traceID, bookID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	span.SetAttributes(attribute.Int64("book_id", bookID))

	page, err := parsePageRequest(r)

	if log.ErrorGetBookLoans(i.logger, err, "Got invalid request", traceID, bookID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	book, err := i.booksUseCase.GetBook(r.Context(), bookID)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	result, err := i.loansUseCase.FindLoansByBook(r.Context(), book, page)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loanPageToDTO(result))
}
