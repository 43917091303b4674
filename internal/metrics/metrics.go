package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

var (
	// Registry holds the gigmart collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gigmart",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gigmart",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	ledgerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gigmart",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	ledgerVolume = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gigmart",
			Subsystem: "ledger",
			Name:      "points_moved_total",
			Help:      "Points moved by successful ledger operations.",
		},
		[]string{"operation"},
	)

	assignmentOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gigmart",
			Subsystem: "assignment",
			Name:      "operations_total",
			Help:      "Gig assignment operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		ledgerOperations,
		ledgerVolume,
		assignmentOperations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler records request counts and latency labelled by the matched chi route.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

func RecordLedgerOperation(operation string, amount int64, err error) {
	ledgerOperations.WithLabelValues(operation, Outcome(err)).Inc()
	if err == nil && amount > 0 {
		ledgerVolume.WithLabelValues(operation).Add(float64(amount))
	}
}

func RecordAssignmentOperation(operation string, err error) {
	assignmentOperations.WithLabelValues(operation, Outcome(err)).Inc()
}

// Outcome collapses an operation error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrContention):
		return "contention"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrGigNotOpen):
		return "gig_not_open"
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidGig),
		errors.Is(err, domain.ErrSelfTransfer),
		errors.Is(err, domain.ErrBalanceOverflow),
		errors.Is(err, domain.ErrOwnGig),
		errors.Is(err, domain.ErrDuplicateApplication),
		errors.Is(err, domain.ErrGigNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrNotGigPoster),
		errors.Is(err, domain.ErrNotApplicant):
		return "rejected"
	default:
		return "error"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
