package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/entity"
	"github.com/daniel/library/internal/log"
)

var FindBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_find_books_duration_ms",
	Help:    "Duration of FindBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(FindBooksDuration)
}

func (i *implementation) FindBooks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		FindBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	page, err := parsePageRequest(r)

	if log.ErrorFindBooks(i.logger, err, "Got invalid request", traceID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	filter := entity.BookFilter{
		Title:  r.URL.Query().Get("title"),
		Author: r.URL.Query().Get("author"),
		ISBN:   r.URL.Query().Get("isbn"),
	}

	result, err := i.booksUseCase.FindBooks(r.Context(), filter, page)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookPageToDTO(result))
}
