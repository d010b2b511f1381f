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
package shared

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tracetier-dev/tracetier/database/models"
)

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("organization", org)
}

// GetOrg returns the organization the current route is scoped to. The
// actor organization of every guard call is derived from it - there is no
// ambient organization state outside the request context.
func GetOrg(ctx Context) models.Org {
	return ctx.Get("organization").(models.Org)
}

func MaybeGetOrg(ctx Context) (models.Org, error) {
	org, ok := ctx.Get("organization").(models.Org)
	if !ok {
		return models.Org{}, fmt.Errorf("could not get organization from context")
	}
	return org, nil
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func GetOrgSlug(ctx Context) (string, error) {
	slug := SanitizeParam(ctx.Param("organization"))
	if slug == "" {
		return "", fmt.Errorf("could not get organization slug from request")
	}
	return slug, nil
}

func GetTraceRequestID(ctx Context) (uuid.UUID, error) {
	id, err := uuid.Parse(SanitizeParam(ctx.Param("traceRequestID")))
	if err != nil {
		return uuid.Nil, fmt.Errorf("could not parse trace request id: %w", err)
	}
	return id, nil
}
