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
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/shared"
)

// requestGuard decides which organization may do what on a trace request.
// It is deliberately free of any ambient state - the actor org always
// arrives as an explicit argument.
type requestGuard struct {
}

var _ shared.RequestGuard = requestGuard{}

func NewRequestGuard() requestGuard {
	return requestGuard{}
}

// Authorize checks a single request operation.
// Both sides of a request may read and update it - which fields each side
// may touch is enforced by the services. Deleting is reserved for the
// requesting org, a target can never delete an incoming request. Everything
// else is denied - including orgs which merely sit elsewhere in the same
// cascade tree.
func (requestGuard) Authorize(actorOrgID uuid.UUID, request models.TraceRequest, action shared.Action) error {
	isRequester := actorOrgID == request.RequestingOrgID
	isTarget := actorOrgID == request.TargetOrgID

	switch action {
	case shared.ActionRead, shared.ActionUpdate:
		if isRequester || isTarget {
			return nil
		}
	case shared.ActionDelete:
		if isRequester {
			return nil
		}
	}

	return errors.Wrapf(shared.ErrAccessDenied, "org %s may not %s request %s", actorOrgID, action, request.ID)
}

// AuthorizeCascade checks whether the actor org may fan the parent request
// out to its own suppliers. Only the org the parent is addressed to may do
// that - the requester already sits above the parent in the tree.
func (requestGuard) AuthorizeCascade(actorOrgID uuid.UUID, parent models.TraceRequest) error {
	if actorOrgID != parent.TargetOrgID {
		return errors.Wrapf(shared.ErrAccessDenied, "org %s is not the target of request %s", actorOrgID, parent.ID)
	}
	return nil
}
