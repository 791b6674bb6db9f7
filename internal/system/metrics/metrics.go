/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package metrics exposes the Prometheus metrics of the forms service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes recorded by the submission pipeline.
const (
	OutcomeAccepted          = "accepted"
	OutcomeInvalid           = "invalid"
	OutcomeRejectedToken     = "rejected_token"
	OutcomeRejectedHoneypot  = "rejected_honeypot"
	OutcomeRejectedRateLimit = "rejected_rate_limit"
	OutcomeUnavailable       = "unavailable"
	OutcomeError             = "error"
)

// SubmissionRecorderInterface records the outcome of submission attempts.
type SubmissionRecorderInterface interface {
	ObserveSubmission(outcome string, duration time.Duration)
}

// ExportRecorderInterface records the size of CSV exports.
type ExportRecorderInterface interface {
	AddExportedEntries(count int)
}

// Metrics holds the collectors of the service.
type Metrics struct {
	registry           *prometheus.Registry
	submissions        *prometheus.CounterVec
	submissionDuration prometheus.Histogram
	exportedEntries    prometheus.Counter
}

// NewMetrics creates the collectors and registers them, with the process and Go runtime collectors,
// in a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tidforms",
			Name:      "submissions_total",
			Help:      "Number of public submission attempts by outcome.",
		}, []string{"outcome"}),
		submissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tidforms",
			Name:      "submission_duration_seconds",
			Help:      "Time taken to process a public submission attempt.",
			Buckets:   prometheus.DefBuckets,
		}),
		exportedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tidforms",
			Name:      "exported_entries_total",
			Help:      "Number of entries written to CSV exports.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.submissions,
		m.submissionDuration,
		m.exportedEntries,
	)
	return m
}

// ObserveSubmission records a submission attempt.
func (m *Metrics) ObserveSubmission(outcome string, duration time.Duration) {
	m.submissions.WithLabelValues(outcome).Inc()
	m.submissionDuration.Observe(duration.Seconds())
}

// AddExportedEntries records the number of entries written to an export.
func (m *Metrics) AddExportedEntries(count int) {
	m.exportedEntries.Add(float64(count))
}

// Handler returns the HTTP handler serving the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Initialize registers the metrics endpoint.
func Initialize(mux *http.ServeMux, m *Metrics) {
	mux.Handle("GET /metrics", m.Handler())
}
