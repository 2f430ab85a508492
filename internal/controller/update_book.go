package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/log"
)

var UpdateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_update_book_duration_ms",
	Help:    "Duration of UpdateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateBookDuration)
}

func (i *implementation) UpdateBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		UpdateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	bookID, err := parseID(r)

	if log.ErrorUpdateBook(i.logger, err, "Got invalid request", traceID, bookID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var dto BookDTO
	if err = json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err = dto.Validate(); log.ErrorUpdateBook(i.logger, err, "Got invalid request", traceID, bookID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	book, err := i.booksUseCase.UpdateBook(r.Context(), bookID, dto.Title, dto.Author, dto.ISBN)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	log.InfoUpdateBook(i.logger, "book was updated", traceID, bookID, book.ISBN)
	writeJSON(w, http.StatusOK, bookToDTO(book))
}
