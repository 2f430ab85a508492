package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/log"
)

var GetBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_get_book_duration_ms",
	Help:    "Duration of GetBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBookDuration)
}

func (i *implementation) GetBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GetBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	bookID, err := parseID(r)

	if log.ErrorGetBook(i.logger, err, "Got invalid request", traceID, bookID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	span.SetAttributes(attribute.Int64("book_id", bookID))

	book, err := i.booksUseCase.GetBook(r.Context(), bookID)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	log.InfoGetBook(i.logger, "book was fetched", traceID, bookID)
	writeJSON(w, http.StatusOK, bookToDTO(book))
}
