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
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tracetier-dev/tracetier/accesscontrol"
)

// SessionMiddleware builds the session from the identity headers the
// fronting auth proxy injects. Requests without an identity still pass
// with NoSession - the membership middlewares decide about access.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID := ctx.Request().Header.Get("X-User-Id")
			if userID == "" {
				// not authenticated - it might be that the route does not
				// require a membership at all
				ctx.Set("session", accesscontrol.NoSession)
				return next(ctx)
			}

			scopes := strings.Fields(ctx.Request().Header.Get("X-Scopes"))
			ctx.Set("session", accesscontrol.NewSession(userID, scopes))
			return next(ctx)
		}
	}
}
