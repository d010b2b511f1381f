// Copyright 2025 tracetier UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CascadeFanOutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "tracetier_cascade_fan_out_duration_seconds",
	Help:    "Duration of trace request cascade fan out operations in seconds",
	Buckets: prometheus.DefBuckets,
})

var CascadeChildRequestAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tracetier_cascade_child_request_amount",
	Help: "The total number of child trace requests created through cascading",
})

var CascadeDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "tracetier_daemon_deferred_cascade_duration_seconds",
	Help:    "Duration of deferred cascade daemon runs in seconds",
	Buckets: prometheus.DefBuckets,
})

var ResponseSubmittedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tracetier_response_submitted_amount",
	Help: "The total number of submitted assessment responses",
})

var RollupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "tracetier_rollup_duration_seconds",
	Help:    "Duration of trace request roll up computations in seconds",
	Buckets: prometheus.DefBuckets,
})
