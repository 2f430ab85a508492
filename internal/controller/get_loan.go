package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/log"
)

var GetLoanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_get_loan_duration_ms",
	Help:    "Duration of GetLoan in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetLoanDuration)
}

func (i *implementation) GetLoan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		GetLoanDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	loanID, err := parseID(r)

	if log.ErrorGetLoan(i.logger, err, "Got invalid request", traceID, loanID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	span.SetAttributes(attribute.Int64("loan_id", loanID))

	loan, err := i.loansUseCase.GetLoan(r.Context(), loanID)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	log.InfoGetLoan(i.logger, "loan was fetched", traceID, loanID)
	writeJSON(w, http.StatusOK, loanToDTO(loan))
}
