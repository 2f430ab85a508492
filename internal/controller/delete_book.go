package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/log"
)

var DeleteBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_delete_book_duration_ms",
	Help:    "Duration of DeleteBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(DeleteBookDuration)
}

func (i *implementation) DeleteBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		DeleteBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	bookID, err := parseID(r)

	if log.ErrorDeleteBook(i.logger, err, "Got invalid request", traceID, bookID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err = i.booksUseCase.DeleteBook(r.Context(), bookID); err != nil {
		i.convertErr(w, err)
		return
	}

	log.InfoDeleteBook(i.logger, "book was deleted", traceID, bookID)
	w.WriteHeader(http.StatusNoContent)
}
