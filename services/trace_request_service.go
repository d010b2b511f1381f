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

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/statemachine"
)

type TraceRequestService struct {
	traceRequestRepository shared.TraceRequestRepository
	responseRepository     shared.AssessmentResponseRepository
	guard                  shared.RequestGuard
	directory              shared.OrganizationDirectory
	catalog                shared.AssessmentCatalog
}

var _ shared.TraceRequestService = (*TraceRequestService)(nil)

func NewTraceRequestService(
	traceRequestRepository shared.TraceRequestRepository,
	responseRepository shared.AssessmentResponseRepository,
	guard shared.RequestGuard,
	directory shared.OrganizationDirectory,
	catalog shared.AssessmentCatalog,
) *TraceRequestService {
	return &TraceRequestService{
		traceRequestRepository: traceRequestRepository,
		responseRepository:     responseRepository,
		guard:                  guard,
		directory:              directory,
		catalog:                catalog,
	}
}

// Create persists a new root request on behalf of the actor org. The
// target org must resolve in the directory, the assessment in the catalog.
// Both collaborator calls are bounded, a timeout degrades to
// ErrDependencyUnavailable rather than blocking the request.
func (s *TraceRequestService) Create(ctx context.Context, actorOrgID uuid.UUID, request *models.TraceRequest) error {
	request.RequestingOrgID = actorOrgID
	if request.Status == "" {
		request.Status = dtos.RequestStatusPending
	}
	if request.Priority == "" {
		request.Priority = dtos.RequestPriorityMedium
	}

	resolveCtx, cancel := context.WithTimeout(ctx, shared.DefaultCollaboratorTimeout)
	defer cancel()

	if _, err := s.directory.ResolveOrganization(resolveCtx, request.TargetOrgID); err != nil {
		return err
	}
	if _, _, err := s.catalog.ResolveAssessment(resolveCtx, request.AssessmentID); err != nil {
		return err
	}

	return s.traceRequestRepository.Create(nil, request)
}

// Read returns the request with its parent preloaded, so the detail view
// can show where in the cascade the request hangs.
func (s *TraceRequestService) Read(actorOrgID uuid.UUID, id uuid.UUID) (models.TraceRequest, error) {
	request, err := s.traceRequestRepository.ReadWithParent(id)
	if err != nil {
		return models.TraceRequest{}, err
	}

	if err := s.guard.Authorize(actorOrgID, request, shared.ActionRead); err != nil {
		return models.TraceRequest{}, err
	}

	return request, nil
}

// Patch applies due date, priority and status edits. Which side may edit
// what follows the request roles: schedule fields belong to the requester,
// acknowledging (in_progress) to the target, rejection to either side.
// Completion is never patched in, it only happens through a submitted
// response.
func (s *TraceRequestService) Patch(ctx context.Context, actorOrgID uuid.UUID, id uuid.UUID, patch dtos.TraceRequestPatchRequest) (models.TraceRequest, error) {
	var patched models.TraceRequest

	err := s.traceRequestRepository.Transaction(func(tx shared.DB) error {
		request, err := s.traceRequestRepository.ReadForUpdate(tx, id)
		if err != nil {
			return err
		}

		if err := s.guard.Authorize(actorOrgID, request, shared.ActionUpdate); err != nil {
			return err
		}

		isRequester := actorOrgID == request.RequestingOrgID
		isTarget := actorOrgID == request.TargetOrgID

		if patch.DueDate != nil || patch.Priority != nil {
			if !isRequester {
				return errors.Wrap(shared.ErrAccessDenied, "only the requesting org may edit due date and priority")
			}
			if request.Status.IsTerminal() {
				return errors.Wrapf(shared.ErrAlreadyTerminal, "request %s is %s", request.ID, request.Status)
			}
			if patch.DueDate != nil {
				request.DueDate = patch.DueDate
			}
			if patch.Priority != nil {
				request.Priority = *patch.Priority
			}
		}

		if patch.Status != nil {
			switch *patch.Status {
			case dtos.RequestStatusInProgress:
				if !isTarget {
					return errors.Wrap(shared.ErrAccessDenied, "only the target org may mark a request in progress")
				}
			case dtos.RequestStatusRejected:
				// target declines, requester cancels - both end up rejected
			default:
				return errors.Wrapf(shared.ErrInvalidTransition, "status %s cannot be set directly", *patch.Status)
			}

			if err := statemachine.Transition(&request, *patch.Status); err != nil {
				return err
			}
		}

		if err := s.traceRequestRepository.Save(tx, &request); err != nil {
			return err
		}

		patched = request
		return nil
	})

	return patched, err
}

// Delete removes a request which never got traction. A request with
// responses or children is history, deleting it would orphan the cascade -
// that is a conflict the caller has to resolve first.
func (s *TraceRequestService) Delete(actorOrgID uuid.UUID, id uuid.UUID) error {
	return s.traceRequestRepository.Transaction(func(tx shared.DB) error {
		request, err := s.traceRequestRepository.ReadForUpdate(tx, id)
		if err != nil {
			return err
		}

		if err := s.guard.Authorize(actorOrgID, request, shared.ActionDelete); err != nil {
			return err
		}

		childCount, err := s.traceRequestRepository.CountChildren(id)
		if err != nil {
			return err
		}
		if childCount > 0 {
			return errors.Wrapf(shared.ErrConflict, "request %s still has %d child requests", id, childCount)
		}

		responseCount, err := s.responseRepository.CountByRequest(id)
		if err != nil {
			return err
		}
		if responseCount > 0 {
			return errors.Wrapf(shared.ErrConflict, "request %s already has responses", id)
		}

		return s.traceRequestRepository.Delete(tx, id)
	})
}

func (s *TraceRequestService) ListByOrganization(orgID uuid.UUID, role dtos.OrgRole, filter shared.TraceRequestFilter) ([]models.TraceRequest, error) {
	return s.traceRequestRepository.ListByOrganization(orgID, role, filter)
}

func (s *TraceRequestService) ListChildren(actorOrgID uuid.UUID, parentID uuid.UUID) ([]models.TraceRequest, error) {
	parent, err := s.traceRequestRepository.Read(parentID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Authorize(actorOrgID, parent, shared.ActionRead); err != nil {
		return nil, err
	}

	return s.traceRequestRepository.ListChildren(parentID)
}
