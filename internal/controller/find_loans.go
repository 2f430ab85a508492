package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/entity"
	"github.com/daniel/library/internal/log"
)

var FindLoansDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_find_loans_duration_ms",
	Help:    "Duration of FindLoans in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(FindLoansDuration)
}

func (i *implementation) FindLoans(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		FindLoansDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	page, err := parsePageRequest(r)

	if log.ErrorFindLoans(i.logger, err, "Got invalid request", traceID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	filter := entity.LoanFilter{
		Customer: r.URL.Query().Get("customer"),
		ISBN:     r.URL.Query().Get("isbn"),
	}

	result, err := i.loansUseCase.FindLoans(r.Context(), filter, page)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loanPageToDTO(result))
}
