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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/shared"
)

func TestTransition(t *testing.T) {
	t.Run("pending moves to in_progress", func(t *testing.T) {
		request := models.TraceRequest{Status: dtos.RequestStatusPending}
		assert.NoError(t, Transition(&request, dtos.RequestStatusInProgress))
		assert.Equal(t, dtos.RequestStatusInProgress, request.Status)
	})

	t.Run("transition to the current status is a no-op", func(t *testing.T) {
		request := models.TraceRequest{Status: dtos.RequestStatusInProgress}
		assert.NoError(t, Transition(&request, dtos.RequestStatusInProgress))
		assert.Equal(t, dtos.RequestStatusInProgress, request.Status)
	})

	t.Run("pending may not jump straight to completed", func(t *testing.T) {
		request := models.TraceRequest{Status: dtos.RequestStatusPending}
		err := Transition(&request, dtos.RequestStatusCompleted)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		assert.Equal(t, dtos.RequestStatusPending, request.Status)
	})

	t.Run("in_progress completes", func(t *testing.T) {
		request := models.TraceRequest{Status: dtos.RequestStatusInProgress}
		assert.NoError(t, Complete(&request))
		assert.Equal(t, dtos.RequestStatusCompleted, request.Status)
	})

	t.Run("rejection works from pending and in_progress", func(t *testing.T) {
		pending := models.TraceRequest{Status: dtos.RequestStatusPending}
		assert.NoError(t, Reject(&pending))

		inProgress := models.TraceRequest{Status: dtos.RequestStatusInProgress}
		assert.NoError(t, Reject(&inProgress))
	})

	t.Run("terminal states are final", func(t *testing.T) {
		completed := models.TraceRequest{Status: dtos.RequestStatusCompleted}
		assert.ErrorIs(t, Transition(&completed, dtos.RequestStatusInProgress), shared.ErrAlreadyTerminal)
		assert.ErrorIs(t, Transition(&completed, dtos.RequestStatusRejected), shared.ErrAlreadyTerminal)

		rejected := models.TraceRequest{Status: dtos.RequestStatusRejected}
		assert.ErrorIs(t, Transition(&rejected, dtos.RequestStatusCompleted), shared.ErrAlreadyTerminal)
	})
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(dtos.RequestStatusPending, dtos.RequestStatusInProgress))
	assert.True(t, CanTransition(dtos.RequestStatusPending, dtos.RequestStatusRejected))
	assert.True(t, CanTransition(dtos.RequestStatusInProgress, dtos.RequestStatusCompleted))
	assert.True(t, CanTransition(dtos.RequestStatusInProgress, dtos.RequestStatusRejected))

	assert.False(t, CanTransition(dtos.RequestStatusPending, dtos.RequestStatusCompleted))
	assert.False(t, CanTransition(dtos.RequestStatusCompleted, dtos.RequestStatusPending))
	assert.False(t, CanTransition(dtos.RequestStatusRejected, dtos.RequestStatusInProgress))
	assert.False(t, CanTransition(dtos.RequestStatusInProgress, dtos.RequestStatusPending))
}
