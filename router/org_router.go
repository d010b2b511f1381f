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

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	sessionGroup SessionRouter,
	orgController *controllers.OrgController,
	orgService shared.OrgService,
	casbinRBACProvider shared.RBACProvider,
) OrgRouter {
	/**
	Organization router
	*/
	orgRouter := sessionGroup.Group.Group("/organizations")
	orgRouter.GET("/", orgController.List)
	orgRouter.POST("/", orgController.Create, middlewares.NeededScope([]string{"manage"}))

	/**
	Organization scoped router
	All routes below this line are scoped to a specific organization.
	*/
	organizationRouter := orgRouter.Group("/:organization",
		middlewares.MultiOrganizationMiddlewareRBAC(casbinRBACProvider, orgService),
		middlewares.OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionRead))

	organizationRouter.GET("/", orgController.Read)
	organizationRouter.GET("/members/", orgController.Members)

	organizationRouter.DELETE("/", orgController.Delete, middlewares.NeededScope([]string{"manage"}), middlewares.OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionDelete))

	organizationUpdateAccessControlRequired := organizationRouter.Group("", middlewares.NeededScope([]string{"manage"}), middlewares.OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionUpdate))

	organizationUpdateAccessControlRequired.PATCH("/", orgController.Update)
	organizationUpdateAccessControlRequired.PUT("/members/:userID/", orgController.ChangeRole)

	return OrgRouter{Group: organizationRouter}
}
