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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/tracetier-dev/tracetier/controllers"
	"github.com/tracetier-dev/tracetier/middlewares"
	"github.com/tracetier-dev/tracetier/shared"
)

type TraceRequestRouter struct {
	*echo.Group
}

func NewTraceRequestRouter(
	orgRouter OrgRouter,
	traceRequestController *controllers.TraceRequestController,
) TraceRequestRouter {
	/**
	Trace request router
	Organization membership is already enforced by the organization router.
	The cross-organization rules (requester vs target) are enforced by the
	request guard inside the services - a member of the target organization
	reaches these routes through its own organization slug.
	*/
	traceRequestRouter := orgRouter.Group.Group("/trace-requests",
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectTraceRequest, shared.ActionRead))

	traceRequestRouter.GET("/", traceRequestController.List)
	traceRequestRouter.GET("/:traceRequestID/", traceRequestController.Read)
	traceRequestRouter.GET("/:traceRequestID/children/", traceRequestController.Children)
	traceRequestRouter.GET("/:traceRequestID/rollup/", traceRequestController.Rollup)
	traceRequestRouter.GET("/:traceRequestID/responses/", traceRequestController.GetResponse)

	writeAccessRequired := traceRequestRouter.Group("", middlewares.OrganizationAccessControlMiddleware(shared.ObjectTraceRequest, shared.ActionUpdate))

	writeAccessRequired.POST("/", traceRequestController.Create)
	writeAccessRequired.PATCH("/:traceRequestID/", traceRequestController.Patch)
	writeAccessRequired.DELETE("/:traceRequestID/", traceRequestController.Delete)
	writeAccessRequired.POST("/:traceRequestID/cascade/", traceRequestController.Cascade)
	writeAccessRequired.POST("/:traceRequestID/responses/", traceRequestController.SubmitResponse)

	return TraceRequestRouter{Group: traceRequestRouter}
}
