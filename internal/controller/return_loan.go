package controller

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/daniel/library/internal/log"
)

var ReturnLoanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_return_loan_duration_ms",
	Help:    "Duration of ReturnLoan in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ReturnLoanDuration)
}

func (i *implementation) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		ReturnLoanDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	loanID, err := parseID(r)

	if log.ErrorReturnLoan(i.logger, err, "Got invalid request", traceID, loanID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	span.SetAttributes(attribute.Int64("loan_id", loanID))

	var dto ReturnedLoanDTO
	if err = json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err = dto.Validate(); log.ErrorReturnLoan(i.logger, err, "Got invalid request", traceID, loanID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	loan, err := i.loansUseCase.SetLoanReturned(r.Context(), loanID, *dto.Returned)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	log.InfoReturnLoan(i.logger, "loan returned flag was set", traceID, loanID, loan.Returned)
	writeJSON(w, http.StatusOK, loanToDTO(loan))
}
