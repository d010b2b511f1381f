// Copyright 2025 tracetier UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"go.uber.org/fx"

	"github.com/tracetier-dev/tracetier/shared"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewDirectoryService, fx.As(new(shared.OrganizationDirectory))),
		fx.Annotate(NewCatalogService, fx.As(new(shared.AssessmentCatalog))),
		fx.Annotate(NewTraceRequestService, fx.As(new(shared.TraceRequestService))),
		fx.Annotate(NewCascadeService, fx.As(new(shared.CascadeService))),
		fx.Annotate(NewResponseService, fx.As(new(shared.ResponseService))),
		fx.Annotate(NewOrgService, fx.As(new(shared.OrgService))),
	),
)
