// internal/observability/metrics.go
package observability

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ListQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_list_queries_total",
			Help: "Total product list queries served",
		},
	)
	ContactRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_contact_requests_total",
			Help: "Total supplier contact requests forwarded",
		},
	)
	SeededProductsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_seeded_products_total",
			Help: "Total products inserted by the initial seed",
		},
	)
	SyntheticProductsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_synthetic_products_total",
			Help: "Total synthetic demo products generated",
		},
	)
)

var registerOnce sync.Once

// Register installs the catalog collectors on the default registry. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ListQueriesTotal,
			ContactRequestsTotal,
			SeededProductsTotal,
			SyntheticProductsTotal,
		)
	})
}

func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
