package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/log"
)

var CreateBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_create_book_duration_ms",
	Help:    "Duration of CreateBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(CreateBookDuration)
}

func (i *implementation) CreateBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		CreateBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	var dto BookDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := dto.Validate(); log.ErrorCreateBook(i.logger, err, "Got invalid request", traceID, dto.ISBN) {
		span.SetAttributes(attribute.String("isbn", dto.ISBN))
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	book, err := i.booksUseCase.CreateBook(r.Context(), dto.Title, dto.Author, dto.ISBN)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	log.InfoCreateBook(i.logger, "book was created", traceID, book.ISBN, book.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/books/%d", book.ID))
	writeJSON(w, http.StatusCreated, bookToDTO(book))
}
