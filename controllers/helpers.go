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

package controllers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tracetier-dev/tracetier/shared"
)

// translateError maps the sentinel errors of the service layer onto HTTP
// status codes. Anything unknown stays a 500 so the central error handler
// logs it.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var httpError *echo.HTTPError
	if errors.As(err, &httpError) {
		return err
	}

	switch {
	case errors.Is(err, shared.ErrNotFound):
		return echo.NewHTTPError(404, "could not find trace request").WithInternal(err)
	case errors.Is(err, shared.ErrAccessDenied):
		return echo.NewHTTPError(403, "access denied").WithInternal(err)
	case errors.Is(err, shared.ErrInvalidReference):
		return echo.NewHTTPError(400, "referenced entity does not exist").WithInternal(err)
	case errors.Is(err, shared.ErrInvalidTransition):
		return echo.NewHTTPError(409, "status transition is not allowed").WithInternal(err)
	case errors.Is(err, shared.ErrAlreadyTerminal):
		return echo.NewHTTPError(409, "request is already in a terminal state").WithInternal(err)
	case errors.Is(err, shared.ErrCascadeExhausted):
		return echo.NewHTTPError(409, "no lower tier remains to cascade to").WithInternal(err)
	case errors.Is(err, shared.ErrConflict):
		return echo.NewHTTPError(409, "conflicting state").WithInternal(err)
	case errors.Is(err, shared.ErrDependencyUnavailable):
		return echo.NewHTTPError(503, "an upstream dependency is unavailable").WithInternal(err)
	case errors.Is(err, shared.ErrMalformedTree):
		return echo.NewHTTPError(500, "cascade tree is malformed").WithInternal(err)
	default:
		return echo.NewHTTPError(500, "internal server error").WithInternal(err)
	}
}
