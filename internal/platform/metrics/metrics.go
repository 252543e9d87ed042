// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics owns the Prometheus collectors exported by the catalog API.

Collectors are registered on a dedicated [prometheus.Registry] rather than the
global default so tests can build isolated instances.
*/
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes recorded by [Metrics.ObserveQuery].
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeValidation = "validation"
	OutcomeError      = "error"
)

// Cache results recorded by [Metrics.ObserveCache].
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics groups the service collectors.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	queries      *prometheus.CounterVec
	cache        *prometheus.CounterVec
}

// New creates and registers all collectors, including Go runtime and process stats.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Catalog resolver invocations by resolver and outcome.",
		}, []string{"resolver", "outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_cache_total",
			Help: "Read-through cache lookups by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.queries,
		m.cache,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveQuery records one resolver invocation.
func (m *Metrics) ObserveQuery(resolver, outcome string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(resolver, outcome).Inc()
}

// ObserveCache records one cache lookup.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cache.WithLabelValues(result).Inc()
}
