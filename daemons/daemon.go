// Copyright (C) 2025 tracetier GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"context"
	"log/slog"
	"time"

	"github.com/tracetier-dev/tracetier/monitoring"
	"github.com/tracetier-dev/tracetier/shared"
)

// DaemonRunner encapsulates daemon dependencies and lifecycle
type DaemonRunner struct {
	cascadeService shared.CascadeService

	interval time.Duration
}

// NewDaemonRunner creates a new daemon runner with injected dependencies
func NewDaemonRunner(cascadeService shared.CascadeService) *DaemonRunner {
	return &DaemonRunner{
		cascadeService: cascadeService,

		interval: 5 * time.Minute,
	}
}

// Start initiates all background daemons
func (runner *DaemonRunner) Start() {
	go func() {
		runner.tick()
		ticker := time.NewTicker(runner.interval)
		defer ticker.Stop()
		for range ticker.C {
			runner.tick()
		}
	}()
}

func (runner *DaemonRunner) tick() {
	slog.Info("starting background jobs", "time", time.Now())
	start := time.Now()

	if err := runner.propagateDeferredCascades(); err != nil {
		monitoring.Alert("could not propagate deferred cascades", err)
	}

	slog.Info("background jobs finished", "duration", time.Since(start))
}

// propagateDeferredCascades fans out cascades whose parents configured
// on_completion timing and have completed since the last run.
func (runner *DaemonRunner) propagateDeferredCascades() error {
	start := time.Now()
	defer func() {
		monitoring.CascadeDaemonDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return runner.cascadeService.PropagateDeferred(ctx)
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)
