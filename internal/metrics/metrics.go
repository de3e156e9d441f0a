package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogSearches is a Prometheus counter for tracking catalog view derivations.
	CatalogSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_searches_total",
		Help: "The total number of catalog search/sort requests served",
	})

	// OrdersComposed is a Prometheus counter for tracking successfully composed orders.
	OrdersComposed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_composed_total",
		Help: "The total number of orders that passed validation and were composed",
	})

	// OrdersDispatched tracks built channel actions, labelled by delivery channel.
	OrdersDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_dispatched_total",
		Help: "The total number of order channel actions built, by channel",
	}, []string{"channel"})

	// ValidationFailures is a Prometheus counter for rejected order forms.
	ValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_validation_failures_total",
		Help: "The total number of order submissions rejected by validation",
	})

	// ChatMessages is a Prometheus counter for answered chat messages.
	ChatMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_total",
		Help: "The total number of chat messages answered",
	})
)
