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

var CreateLoanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_create_loan_duration_ms",
	Help:    "Duration of CreateLoan in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(CreateLoanDuration)
}

func (i *implementation) CreateLoan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		CreateLoanDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	var dto LoanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := dto.Validate(); log.ErrorCreateLoan(i.logger, err, "Got invalid request", traceID, dto.ISBN, dto.Customer) {
		span.SetAttributes(attribute.String("isbn", dto.ISBN))
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	loan, err := i.loansUseCase.CreateLoan(r.Context(), dto.ISBN, dto.Customer, dto.Email)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	log.InfoCreateLoan(i.logger, "loan was created", traceID, dto.ISBN, dto.Customer, loan.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/loans/%d", loan.ID))
	writeJSON(w, http.StatusCreated, loanToDTO(loan))
}
