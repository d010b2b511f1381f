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
package accesscontrol

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/shared"
)

func TestRequestGuardAuthorize(t *testing.T) {
	guard := NewRequestGuard()

	requester := uuid.New()
	target := uuid.New()
	stranger := uuid.New()

	request := models.TraceRequest{
		RequestingOrgID: requester,
		TargetOrgID:     target,
	}

	t.Run("both sides of a request may read it", func(t *testing.T) {
		assert.NoError(t, guard.Authorize(requester, request, shared.ActionRead))
		assert.NoError(t, guard.Authorize(target, request, shared.ActionRead))
	})

	t.Run("an unrelated org may not read it", func(t *testing.T) {
		err := guard.Authorize(stranger, request, shared.ActionRead)
		assert.ErrorIs(t, err, shared.ErrAccessDenied)
	})

	t.Run("both sides may update, field rules live in the services", func(t *testing.T) {
		assert.NoError(t, guard.Authorize(requester, request, shared.ActionUpdate))
		assert.NoError(t, guard.Authorize(target, request, shared.ActionUpdate))
		assert.ErrorIs(t, guard.Authorize(stranger, request, shared.ActionUpdate), shared.ErrAccessDenied)
	})

	t.Run("only the requester may delete", func(t *testing.T) {
		assert.NoError(t, guard.Authorize(requester, request, shared.ActionDelete))
		assert.ErrorIs(t, guard.Authorize(target, request, shared.ActionDelete), shared.ErrAccessDenied)
		assert.ErrorIs(t, guard.Authorize(stranger, request, shared.ActionDelete), shared.ErrAccessDenied)
	})

	t.Run("create is never granted through the guard", func(t *testing.T) {
		assert.ErrorIs(t, guard.Authorize(requester, request, shared.ActionCreate), shared.ErrAccessDenied)
	})
}

func TestRequestGuardAuthorizeCascade(t *testing.T) {
	guard := NewRequestGuard()

	requester := uuid.New()
	target := uuid.New()

	parent := models.TraceRequest{
		RequestingOrgID: requester,
		TargetOrgID:     target,
	}

	t.Run("the target org may cascade to its own suppliers", func(t *testing.T) {
		assert.NoError(t, guard.AuthorizeCascade(target, parent))
	})

	t.Run("the requester may not cascade a request it sent", func(t *testing.T) {
		assert.ErrorIs(t, guard.AuthorizeCascade(requester, parent), shared.ErrAccessDenied)
	})

	t.Run("an unrelated org may not cascade", func(t *testing.T) {
		assert.ErrorIs(t, guard.AuthorizeCascade(uuid.New(), parent), shared.ErrAccessDenied)
	})
}
