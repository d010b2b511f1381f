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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/transformer"
	"github.com/tracetier-dev/tracetier/utils"
)

type OrgController struct {
	orgService             shared.OrgService
	organizationRepository shared.OrganizationRepository
	rbacProvider           shared.RBACProvider
}

func NewOrgController(orgService shared.OrgService, organizationRepository shared.OrganizationRepository, rbacProvider shared.RBACProvider) *OrgController {
	return &OrgController{
		orgService:             orgService,
		organizationRepository: organizationRepository,
		rbacProvider:           rbacProvider,
	}
}

func (o *OrgController) Create(ctx shared.Context) error {
	var req dtos.OrgCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	organization := transformer.OrgCreateRequestToModel(req)
	if err := o.orgService.CreateOrganization(ctx, &organization); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.OrgDTOFromModel(organization))
}

func (o *OrgController) Read(ctx shared.Context) error {
	return ctx.JSON(200, transformer.OrgDTOFromModel(shared.GetOrg(ctx)))
}

func (o *OrgController) Update(ctx shared.Context) error {
	var req dtos.OrgPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	organization := shared.GetOrg(ctx)
	if transformer.ApplyOrgPatchRequest(req, &organization) {
		if err := o.organizationRepository.Update(nil, &organization); err != nil {
			return echo.NewHTTPError(500, "could not update organization").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.OrgDTOFromModel(organization))
}

func (o *OrgController) Delete(ctx shared.Context) error {
	organizationID := shared.GetOrg(ctx).ID

	if err := o.organizationRepository.Delete(nil, organizationID); err != nil {
		return echo.NewHTTPError(500, "could not delete organization").WithInternal(err)
	}

	return ctx.NoContent(200)
}

// List returns every organization the current user is a member of. The
// casbin domains of the user are the organization ids.
func (o *OrgController) List(ctx shared.Context) error {
	userID := shared.GetSession(ctx).GetUserID()

	domains, err := o.rbacProvider.DomainsOfUser(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get domains of user").WithInternal(err)
	}

	organizationIDs := make([]uuid.UUID, 0, len(domains))
	for _, domain := range domains {
		id, err := uuid.Parse(domain)
		if err != nil {
			continue
		}
		organizationIDs = append(organizationIDs, id)
	}

	organizations, err := o.organizationRepository.List(organizationIDs)
	if err != nil {
		return echo.NewHTTPError(500, "could not read organizations").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(organizations, transformer.OrgDTOFromModel))
}

func (o *OrgController) Members(ctx shared.Context) error {
	members, err := shared.GetRBAC(ctx).GetAllMembersOfOrganization()
	if err != nil {
		return echo.NewHTTPError(500, "could not get members of organization").WithInternal(err)
	}

	return ctx.JSON(200, dtos.OrgDetailsDTO{
		OrgDTO:  transformer.OrgDTOFromModel(shared.GetOrg(ctx)),
		Members: members,
	})
}

func (o *OrgController) ChangeRole(ctx shared.Context) error {
	userID := shared.SanitizeParam(ctx.Param("userID"))
	if userID == "" {
		return echo.NewHTTPError(400, "userID is required")
	}

	var req dtos.OrgChangeRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	rbac := shared.GetRBAC(ctx)

	currentRole, err := rbac.GetDomainRole(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get current role").WithInternal(err)
	}
	if currentRole == shared.RoleOwner {
		return echo.NewHTTPError(409, "the owner role cannot be changed")
	}

	if currentRole != "" {
		if err := rbac.RevokeRole(userID, currentRole); err != nil {
			return echo.NewHTTPError(500, "could not revoke current role").WithInternal(err)
		}
	}
	if err := rbac.GrantRole(userID, shared.Role(req.Role)); err != nil {
		return echo.NewHTTPError(500, "could not grant role").WithInternal(err)
	}

	return ctx.NoContent(200)
}
