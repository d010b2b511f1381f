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

type TraceRequestController struct {
	traceRequestService shared.TraceRequestService
	cascadeService      shared.CascadeService
	responseService     shared.ResponseService
}

func NewTraceRequestController(
	traceRequestService shared.TraceRequestService,
	cascadeService shared.CascadeService,
	responseService shared.ResponseService,
) *TraceRequestController {
	return &TraceRequestController{
		traceRequestService: traceRequestService,
		cascadeService:      cascadeService,
		responseService:     responseService,
	}
}

func (c *TraceRequestController) Create(ctx shared.Context) error {
	var req dtos.TraceRequestCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	request, err := transformer.TraceRequestCreateRequestToModel(req)
	if err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	actorOrgID := shared.GetOrg(ctx).ID
	if err := c.traceRequestService.Create(ctx.Request().Context(), actorOrgID, &request); err != nil {
		return translateError(err)
	}

	return ctx.JSON(201, transformer.TraceRequestToDTO(request))
}

func (c *TraceRequestController) Read(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	request, err := c.traceRequestService.Read(shared.GetOrg(ctx).ID, id)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(200, transformer.TraceRequestToDTO(request))
}

// List returns the requests of the current organization. The role query
// parameter picks the side: requester (default) or target.
func (c *TraceRequestController) List(ctx shared.Context) error {
	role := dtos.OrgRole(ctx.QueryParam("role"))
	if role == "" {
		role = dtos.OrgRoleRequester
	}
	if role != dtos.OrgRoleRequester && role != dtos.OrgRoleTarget {
		return echo.NewHTTPError(400, "role must be requester or target")
	}

	filter, err := filterFromQuery(ctx)
	if err != nil {
		return err
	}

	requests, err := c.traceRequestService.ListByOrganization(shared.GetOrg(ctx).ID, role, filter)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(200, utils.Map(requests, transformer.TraceRequestToDTO))
}

func (c *TraceRequestController) Patch(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	var patch dtos.TraceRequestPatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(patch); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	request, err := c.traceRequestService.Patch(ctx.Request().Context(), shared.GetOrg(ctx).ID, id, patch)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(200, transformer.TraceRequestToDTO(request))
}

func (c *TraceRequestController) Delete(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	if err := c.traceRequestService.Delete(shared.GetOrg(ctx).ID, id); err != nil {
		return translateError(err)
	}

	return ctx.NoContent(200)
}

func (c *TraceRequestController) Children(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	children, err := c.traceRequestService.ListChildren(shared.GetOrg(ctx).ID, id)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(200, utils.Map(children, transformer.TraceRequestToDTO))
}

func (c *TraceRequestController) Cascade(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	var req dtos.CascadeRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	childIDs, err := c.cascadeService.Cascade(ctx.Request().Context(), shared.GetOrg(ctx).ID, id, req.SupplierOrgIDs)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(201, map[string][]uuid.UUID{"childRequestIds": childIDs})
}

func (c *TraceRequestController) SubmitResponse(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	var req dtos.SubmitResponseRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	response, err := c.responseService.Submit(ctx.Request().Context(), shared.GetOrg(ctx).ID, id, req.Answers)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(201, transformer.AssessmentResponseToDTO(response))
}

func (c *TraceRequestController) GetResponse(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	response, err := c.responseService.GetResponse(shared.GetOrg(ctx).ID, id)
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(200, transformer.AssessmentResponseToDTO(response))
}

func (c *TraceRequestController) Rollup(ctx shared.Context) error {
	id, err := shared.GetTraceRequestID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid trace request id").WithInternal(err)
	}

	actorOrgID := shared.GetOrg(ctx).ID

	var rollup dtos.RollupDTO
	if ctx.QueryParam("recursive") == "true" {
		rollup, err = c.cascadeService.RollupTree(actorOrgID, id)
	} else {
		rollup, err = c.cascadeService.Rollup(actorOrgID, id)
	}
	if err != nil {
		return translateError(err)
	}

	return ctx.JSON(200, rollup)
}

func filterFromQuery(ctx shared.Context) (shared.TraceRequestFilter, error) {
	var filter shared.TraceRequestFilter

	if status := ctx.QueryParam("status"); status != "" {
		s := dtos.RequestStatus(status)
		switch s {
		case dtos.RequestStatusPending, dtos.RequestStatusInProgress, dtos.RequestStatusCompleted, dtos.RequestStatusRejected:
			filter.Status = &s
		default:
			return filter, echo.NewHTTPError(400, "unknown status filter")
		}
	}

	if priority := ctx.QueryParam("priority"); priority != "" {
		p := dtos.RequestPriority(priority)
		switch p {
		case dtos.RequestPriorityLow, dtos.RequestPriorityMedium, dtos.RequestPriorityHigh, dtos.RequestPriorityUrgent:
			filter.Priority = &p
		default:
			return filter, echo.NewHTTPError(400, "unknown priority filter")
		}
	}

	if assessmentID := ctx.QueryParam("assessmentId"); assessmentID != "" {
		id, err := uuid.Parse(assessmentID)
		if err != nil {
			return filter, echo.NewHTTPError(400, "invalid assessment id filter").WithInternal(err)
		}
		filter.AssessmentID = &id
	}

	switch ctx.QueryParam("overdue") {
	case "":
	case "true":
		filter.Overdue = utils.Ptr(true)
	case "false":
		filter.Overdue = utils.Ptr(false)
	default:
		return filter, echo.NewHTTPError(400, "overdue filter must be true or false")
	}

	return filter, nil
}
