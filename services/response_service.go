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
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tracetier-dev/tracetier/database/models"
	databasetypes "github.com/tracetier-dev/tracetier/database/types"
	"github.com/tracetier-dev/tracetier/monitoring"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/statemachine"
)

type ResponseService struct {
	traceRequestRepository shared.TraceRequestRepository
	responseRepository     shared.AssessmentResponseRepository
	catalog                shared.AssessmentCatalog
}

var _ shared.ResponseService = (*ResponseService)(nil)

func NewResponseService(
	traceRequestRepository shared.TraceRequestRepository,
	responseRepository shared.AssessmentResponseRepository,
	catalog shared.AssessmentCatalog,
) *ResponseService {
	return &ResponseService{
		traceRequestRepository: traceRequestRepository,
		responseRepository:     responseRepository,
		catalog:                catalog,
	}
}

// Submit records the target org's answers against a request. Resubmitting
// replaces the earlier response. The row lock on the request serializes
// concurrent submissions so the lifecycle transition cannot race. Once the
// answers satisfy the assessment's required questions the request moves to
// completed.
func (s *ResponseService) Submit(ctx context.Context, actorOrgID uuid.UUID, traceRequestID uuid.UUID, answers map[string]any) (models.AssessmentResponse, error) {
	var submitted models.AssessmentResponse

	err := s.traceRequestRepository.Transaction(func(tx shared.DB) error {
		request, err := s.traceRequestRepository.ReadForUpdate(tx, traceRequestID)
		if err != nil {
			return err
		}

		if actorOrgID != request.TargetOrgID {
			return errors.Wrapf(shared.ErrAccessDenied, "org %s is not the target of request %s", actorOrgID, traceRequestID)
		}

		if request.Status.IsTerminal() {
			return errors.Wrapf(shared.ErrAlreadyTerminal, "request %s is %s", traceRequestID, request.Status)
		}

		response := models.AssessmentResponse{
			TraceRequestID:  traceRequestID,
			RespondingOrgID: actorOrgID,
			Answers:         databasetypes.JSONB(answers),
			SubmittedAt:     time.Now(),
		}

		if err := s.responseRepository.UpsertResponse(tx, &response); err != nil {
			return err
		}

		// the first response pulls the request out of pending
		if err := statemachine.MarkInProgress(&request); err != nil {
			return err
		}

		complete, err := s.answersComplete(ctx, request.AssessmentID, answers)
		if err != nil {
			return err
		}
		if complete {
			if err := statemachine.Complete(&request); err != nil {
				return err
			}
		}

		if err := s.traceRequestRepository.Save(tx, &request); err != nil {
			return err
		}

		submitted = response
		return nil
	})
	if err != nil {
		return models.AssessmentResponse{}, err
	}

	monitoring.ResponseSubmittedAmount.Inc()
	return submitted, nil
}

// GetResponse returns the target org's submitted response. Both sides of
// the request may read it, anyone else gets the same ErrAccessDenied the
// rest of the request surface hands out.
func (s *ResponseService) GetResponse(actorOrgID uuid.UUID, traceRequestID uuid.UUID) (models.AssessmentResponse, error) {
	request, err := s.traceRequestRepository.Read(traceRequestID)
	if err != nil {
		return models.AssessmentResponse{}, err
	}

	if actorOrgID != request.RequestingOrgID && actorOrgID != request.TargetOrgID {
		return models.AssessmentResponse{}, errors.Wrapf(shared.ErrAccessDenied, "org %s is not part of request %s", actorOrgID, traceRequestID)
	}

	return s.responseRepository.FindByRequestAndOrg(traceRequestID, request.TargetOrgID)
}

// answersComplete checks the submission against the assessment's required
// questions. The answer payloads are opaque to the core - only the catalog
// knows the schema, this check is pure key presence.
func (s *ResponseService) answersComplete(ctx context.Context, assessmentID uuid.UUID, answers map[string]any) (bool, error) {
	resolveCtx, cancel := context.WithTimeout(ctx, shared.DefaultCollaboratorTimeout)
	defer cancel()

	_, requiredQuestionIDs, err := s.catalog.ResolveAssessment(resolveCtx, assessmentID)
	if err != nil {
		return false, err
	}

	for _, questionID := range requiredQuestionIDs {
		if _, ok := answers[questionID]; !ok {
			return false, nil
		}
	}
	return true, nil
}
