// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reelvault"

var (
	// CatalogCacheTotal tracks catalog cache lookups.
	// Labels:
	//   - operation: get_movies, get_movie_by_id
	//   - status: hit, miss
	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_total",
			Help:      "Total number of catalog cache lookups",
		},
		[]string{"operation", "status"},
	)

	// CatalogFetchesTotal tracks remote catalog fetches.
	// Labels:
	//   - operation: get_movies, get_movie_by_id, search
	//   - status: success, error
	CatalogFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_fetches_total",
			Help:      "Total number of remote catalog fetches",
		},
		[]string{"operation", "status"},
	)

	// RentalOperationsTotal tracks rental store operations.
	// Labels:
	//   - operation: add, get, get_all, remove, sweep, is_rented
	//   - status: success, error, rejected
	RentalOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rental_operations_total",
			Help:      "Total number of rental store operations",
		},
		[]string{"operation", "status"},
	)

	// RentalsSweptTotal counts rentals removed by expiry sweeps.
	RentalsSweptTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rentals_swept_total",
			Help:      "Total number of expired rentals removed by sweeps",
		},
	)

	// SingleflightRequestsTotal tracks singleflight behavior on
	// catalog fetches.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)

	// HTTPRequestDuration tracks catalog API request latency.
	// Labels:
	//   - method, path, status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of catalog API requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Cache status constants.
const (
	CacheStatusHit  = "hit"
	CacheStatusMiss = "miss"
)

// Operation status constants.
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusRejected = "rejected"
)

// Catalog operation constants.
const (
	OpGetMovies    = "get_movies"
	OpGetMovieByID = "get_movie_by_id"
	OpSearch       = "search"
)

// Rental operation constants.
const (
	OpAdd      = "add"
	OpGet      = "get"
	OpGetAll   = "get_all"
	OpRemove   = "remove"
	OpSweep    = "sweep"
	OpIsRented = "is_rented"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)
