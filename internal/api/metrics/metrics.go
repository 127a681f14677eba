// Package metrics defines all custom Prometheus metrics for the BitesNearU
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bitesnearu"

// CheckoutsTotal counts checkout attempts by outcome.
// Label:
//   - result: "success", "not_authenticated", "empty_cart",
//     "no_payment_method", "invalid_promo", or "error"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, by outcome.",
	},
	[]string{"result"},
)

// CheckoutAmount observes the finalized total of each successful checkout.
var CheckoutAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_amount_pounds",
		Help:      "Finalized checkout totals in pounds.",
		Buckets:   []float64{1, 2.5, 5, 10, 20, 50, 100},
	},
)

// CartMutationsTotal counts cart ledger mutations.
// Label:
//   - op: "add", "update", "remove", or "clear"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart ledger mutations, by operation.",
	},
	[]string{"op"},
)

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// PromoQuotesTotal counts promo code evaluations for the checkout view.
// Label:
//   - result: "applied" or "invalid"
var PromoQuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "promo_quotes_total",
		Help:      "Total number of promo code evaluations, by result.",
	},
	[]string{"result"},
)
