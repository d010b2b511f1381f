// Copyright 2025 tracetier UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/shared"
)

type OrgService struct {
	organizationRepository shared.OrganizationRepository
	rbacProvider           shared.RBACProvider
}

var _ shared.OrgService = (*OrgService)(nil)

func NewOrgService(organizationRepository shared.OrganizationRepository, rbacProvider shared.RBACProvider) *OrgService {
	return &OrgService{
		organizationRepository: organizationRepository,
		rbacProvider:           rbacProvider,
	}
}

func (o *OrgService) CreateOrganization(ctx shared.Context, organization *models.Org) error {
	if organization.Name == "" || organization.Slug == "" {
		return echo.NewHTTPError(409, "organizations with an empty name or an empty slug are not allowed").WithInternal(fmt.Errorf("organizations with an empty name or an empty slug are not allowed"))
	}

	err := o.organizationRepository.Create(nil, organization)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return echo.NewHTTPError(409, "organization with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create organization").WithInternal(err)
	}

	rbac := o.rbacProvider.GetDomainRBAC(organization.ID.String())
	userID := shared.GetSession(ctx).GetUserID()
	if err = shared.BootstrapOrg(rbac, userID, shared.RoleOwner); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap organization roles").WithInternal(err)
	}
	ctx.Set("rbac", rbac)

	return nil
}

func (o *OrgService) ReadBySlug(slug string) (*models.Org, error) {
	if slug == "" {
		return nil, echo.NewHTTPError(400, "slug is required")
	}

	org, err := o.organizationRepository.ReadBySlug(slug)
	return &org, err
}
