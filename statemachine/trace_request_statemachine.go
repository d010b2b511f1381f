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

package statemachine

import (
	"github.com/pkg/errors"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/shared"
)

// The request lifecycle is a strict forward machine:
//
//	pending -> in_progress -> completed
//	pending | in_progress -> rejected
//
// completed and rejected are terminal. There is no way back out of a
// terminal state, reopening a request means creating a new one.
var allowedTransitions = map[dtos.RequestStatus][]dtos.RequestStatus{
	dtos.RequestStatusPending:    {dtos.RequestStatusInProgress, dtos.RequestStatusRejected},
	dtos.RequestStatusInProgress: {dtos.RequestStatusCompleted, dtos.RequestStatusRejected},
	dtos.RequestStatusCompleted:  {},
	dtos.RequestStatusRejected:   {},
}

func CanTransition(from, to dtos.RequestStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves a request to the given status. Moving to the current
// status is a no-op, not an error - the first response of a target org
// may race with a manual acknowledge of the same request.
func Transition(request *models.TraceRequest, to dtos.RequestStatus) error {
	if request.Status == to {
		return nil
	}

	if request.Status.IsTerminal() {
		return errors.Wrapf(shared.ErrAlreadyTerminal, "request %s is %s", request.ID, request.Status)
	}

	if !CanTransition(request.Status, to) {
		return errors.Wrapf(shared.ErrInvalidTransition, "cannot transition from %s to %s", request.Status, to)
	}

	request.Status = to
	return nil
}

// MarkInProgress is the transition triggered by the first incoming
// response. Idempotent for requests which already are in progress.
func MarkInProgress(request *models.TraceRequest) error {
	return Transition(request, dtos.RequestStatusInProgress)
}

// Complete may only be called once the response completeness check has
// passed. Completion straight out of pending is not allowed, the collector
// marks the request in progress first.
func Complete(request *models.TraceRequest) error {
	return Transition(request, dtos.RequestStatusCompleted)
}

func Reject(request *models.TraceRequest) error {
	return Transition(request, dtos.RequestStatusRejected)
}
