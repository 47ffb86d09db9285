package store

import "github.com/prometheus/client_golang/prometheus"

var CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "list_sync",
	Subsystem: "store",
	Name:      "cache_lookups_total",
}, []string{"result"})

var QueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "list_sync",
	Subsystem: "store",
	Name:      "query_duration_seconds",
	Buckets:   prometheus.DefBuckets,
}, []string{"op"})

// Collectors returns the store metrics for registration by the server.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{CacheLookups, QueryDuration}
}
