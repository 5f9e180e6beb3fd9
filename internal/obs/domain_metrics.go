package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CheckoutAttemptTotal counts checkout submissions by outcome.
	CheckoutAttemptTotal *prometheus.CounterVec
	// CheckoutAbortTotal counts aborted checkouts by the reason of the first failing line.
	CheckoutAbortTotal *prometheus.CounterVec
	// CheckoutDuration records the latency of full checkout processing in milliseconds.
	CheckoutDuration prometheus.Histogram
	// PriceResolutionTotal counts unit price resolutions by audience and source.
	PriceResolutionTotal *prometheus.CounterVec
	// CartsAbandonedTotal counts carts expired by the background sweep.
	CartsAbandonedTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CheckoutAttemptTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_attempt_total",
			Help:      "Count of checkout submissions by outcome.",
		}, []string{"result"})
		CheckoutAbortTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_abort_total",
			Help:      "Count of aborted checkouts by validation reason.",
		}, []string{"reason"})
		CheckoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_duration_ms",
			Help:      "Latency of checkout processing in milliseconds.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		})
		PriceResolutionTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_resolution_total",
			Help:      "Count of unit price resolutions by audience and source.",
		}, []string{"audience", "source"})
		CartsAbandonedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carts_abandoned_total",
			Help:      "Number of stale carts marked abandoned by the sweep.",
		})

		mustRegisterCollector(reg, CheckoutAttemptTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CheckoutAttemptTotal = v
			}
		})
		mustRegisterCollector(reg, CheckoutAbortTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CheckoutAbortTotal = v
			}
		})
		mustRegisterCollector(reg, CheckoutDuration, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				CheckoutDuration = v
			}
		})
		mustRegisterCollector(reg, PriceResolutionTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				PriceResolutionTotal = v
			}
		})
		mustRegisterCollector(reg, CartsAbandonedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CartsAbandonedTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
