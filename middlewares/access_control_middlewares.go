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

package middlewares

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/tracetier-dev/tracetier/shared"
)

// MultiOrganizationMiddlewareRBAC resolves the :organization slug, checks
// that the session user is a member of that organization and stores the
// organization together with its domain RBAC on the context.
func MultiOrganizationMiddlewareRBAC(rbacProvider shared.RBACProvider, organizationService shared.OrgService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			// get the organization from the provided context
			organization, err := shared.GetOrgSlug(ctx)
			if err != nil {
				slog.Error("could not get organization from url", "err", err)
				return echo.NewHTTPError(400, "invalid organization")
			}
			if organization == "" {
				// if no organization is provided, we can't continue
				slog.Error("no organization provided")
				return ctx.JSON(400, map[string]string{"error": "no organization"})
			}

			// get the organization
			org, err := organizationService.ReadBySlug(organization)
			if err != nil {
				return echo.NewHTTPError(404, "organization not found").WithInternal(err)
			}

			domainRBAC := rbacProvider.GetDomainRBAC(org.ID.String())

			// check if the user is allowed to access the organization
			session := shared.GetSession(ctx)
			allowed, err := domainRBAC.HasAccess(session.GetUserID())
			if err != nil {
				slog.Info("asking user to reauthorize", "err", err)
				return ctx.JSON(401, map[string]string{"error": err.Error()})
			}

			if !allowed {
				// not allowed - do not leak that the organization exists
				slog.Error("access denied in multiOrganizationMiddleware", "user", session.GetUserID(), "organization", organization)
				return ctx.JSON(404, map[string]string{"error": "could not find organization"})
			}

			shared.SetOrg(ctx, *org)
			shared.SetRBAC(ctx, domainRBAC)
			// continue to the request
			return next(ctx)
		}
	}
}

// OrganizationAccessControlMiddleware checks the casbin policy of the
// current organization domain for the given object and action.
func OrganizationAccessControlMiddleware(obj shared.Object, act shared.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			// get the rbac
			rbac := shared.GetRBAC(ctx)
			// get the user
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				ctx.Response().WriteHeader(500)
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}

			// check if the user has the required role
			if !allowed {
				slog.Error("access denied in accessControlMiddleware", "user", user, "object", obj, "action", act)
				ctx.Response().WriteHeader(404)
				return echo.NewHTTPError(404, "could not find organization")
			}

			return next(ctx)
		}
	}
}
