// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the prometheus metrics of HTTP requests and the
// retried movement transactions in a private registry.
type Metrics struct {
	reqTotal   *prometheus.CounterVec
	reqLatency *prometheus.HistogramVec
	txRetries  prometheus.Counter
	registry   *prometheus.Registry
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	reqTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	reqLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	txRetries := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gpc_movement_tx_retries_total",
		Help: "Conflicting movement transactions which were retried",
	})
	registry.MustRegister(reqTotal, reqLatency, txRetries)
	return &Metrics{
		reqTotal:   reqTotal,
		reqLatency: reqLatency,
		txRetries:  txRetries,
		registry:   registry,
	}
}

// Middleware returns a gin middleware which counts the requests and
// observes their latency, labeled by the matched route pattern.
func (m *Metrics) Middleware() HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.reqTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.reqLatency.WithLabelValues(c.Request.Method, route, status).Observe(
			time.Since(start).Seconds(),
		)
	}
}

// ObserveTxRetry counts one retried transaction. Its signature matches
// the movementsuc.WithRetryObserver option.
func (m *Metrics) ObserveTxRetry(context.Context, int, error) {
	m.txRetries.Inc()
}

// Register registers the /metrics endpoint on e.
func (m *Metrics) Register(e *Engine) {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	e.GET("/metrics", gin.WrapH(h))
}
