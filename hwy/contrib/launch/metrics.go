// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package launch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by a Launcher.
type Metrics struct {
	launches    *prometheus.CounterVec
	units       *prometheus.CounterVec
	maskedLanes *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the launch collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		launches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hwy_launch_total",
			Help: "Total number of kernel launches",
		}, []string{"kernel"}),

		units: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hwy_launch_units_total",
			Help: "Total number of units of work executed",
		}, []string{"kernel"}),

		maskedLanes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hwy_launch_masked_lanes_total",
			Help: "Total number of lanes masked off past the end of the buffer",
		}, []string{"kernel"}),

		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hwy_launch_rejected_total",
			Help: "Total number of launches rejected by configuration checks",
		}, []string{"kernel", "reason"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hwy_launch_duration_seconds",
			Help:    "Wall time of kernel launches",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		}, []string{"kernel"}),
	}
}

func (m *Metrics) observeLaunch(kernel string, units, masked int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.launches.WithLabelValues(kernel).Inc()
	m.units.WithLabelValues(kernel).Add(float64(units))
	m.maskedLanes.WithLabelValues(kernel).Add(float64(masked))
	m.duration.WithLabelValues(kernel).Observe(elapsed.Seconds())
}

func (m *Metrics) observeReject(kernel string, err error) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(kernel, reason(err)).Inc()
}
