// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

// Package metrics records validation runs as Prometheus gauges, written in the
// node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/gameday-weather/stadiums/stadium"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stadiums"

// Metrics holds the gauges of one command invocation.
type Metrics struct {
	registry *prometheus.Registry

	Valid   *prometheus.GaugeVec
	Errors  *prometheus.GaugeVec
	Records *prometheus.GaugeVec
}

// New creates the gauges on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Valid: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "validation_valid",
			Help:      "1 when the stadium dataset passed validation, 0 otherwise",
		}, []string{"file"}),
		Errors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "validation_errors",
			Help:      "Number of validation errors reported for the dataset",
		}, []string{"file"}),
		Records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Number of distinct stadiums per league",
		}, []string{"file", "league"}),
	}

	m.registry.MustRegister(m.Valid, m.Errors, m.Records)

	return m
}

// Observe records the outcome of a validation run.
func (m *Metrics) Observe(r stadium.Result) {
	valid := 0.0
	if r.Valid {
		valid = 1
	}

	m.Valid.WithLabelValues(r.Path).Set(valid)
	m.Errors.WithLabelValues(r.Path).Set(float64(len(r.Errors)))

	if r.Counts != nil {
		m.Records.WithLabelValues(r.Path, stadium.NFL).Set(float64(r.Counts.NFL))
		m.Records.WithLabelValues(r.Path, stadium.NCAA).Set(float64(r.Counts.NCAA))
	}
}

// WriteTextfile writes every gauge to path, replacing it atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
