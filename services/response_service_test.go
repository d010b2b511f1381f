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

package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/mocks"
	"github.com/tracetier-dev/tracetier/services"
	"github.com/tracetier-dev/tracetier/shared"
)

func TestSubmit(t *testing.T) {
	requesterID := uuid.New()
	targetID := uuid.New()
	assessmentID := uuid.New()

	newRequest := func(status dtos.RequestStatus) models.TraceRequest {
		request := models.TraceRequest{
			RequestingOrgID: requesterID,
			TargetOrgID:     targetID,
			AssessmentID:    assessmentID,
			Status:          status,
		}
		request.ID = uuid.New()
		return request
	}

	t.Run("should complete the request when all required questions are answered", func(t *testing.T) {
		request := newRequest(dtos.RequestStatusPending)

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, request.ID).Return(request, nil)

		var savedRequest models.TraceRequest
		repository.On("Save", mock.Anything, mock.Anything).Return(func(tx shared.DB, r *models.TraceRequest) error {
			savedRequest = *r
			return nil
		})

		responseRepository := mocks.NewSharedAssessmentResponseRepository(t)
		responseRepository.On("UpsertResponse", mock.Anything, mock.Anything).Return(nil)

		catalog := mocks.NewSharedAssessmentCatalog(t)
		catalog.On("ResolveAssessment", mock.Anything, assessmentID).Return("CSRD 2025", []string{"q1", "q2"}, nil)

		service := services.NewResponseService(repository, responseRepository, catalog)

		response, err := service.Submit(context.Background(), targetID, request.ID, map[string]any{"q1": "yes", "q2": 42})

		assert.NoError(t, err)
		assert.Equal(t, targetID, response.RespondingOrgID)
		assert.Equal(t, dtos.RequestStatusCompleted, savedRequest.Status)
	})

	t.Run("should leave the request in progress on a partial submission", func(t *testing.T) {
		request := newRequest(dtos.RequestStatusPending)

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, request.ID).Return(request, nil)

		var savedRequest models.TraceRequest
		repository.On("Save", mock.Anything, mock.Anything).Return(func(tx shared.DB, r *models.TraceRequest) error {
			savedRequest = *r
			return nil
		})

		responseRepository := mocks.NewSharedAssessmentResponseRepository(t)
		responseRepository.On("UpsertResponse", mock.Anything, mock.Anything).Return(nil)

		catalog := mocks.NewSharedAssessmentCatalog(t)
		catalog.On("ResolveAssessment", mock.Anything, assessmentID).Return("CSRD 2025", []string{"q1", "q2"}, nil)

		service := services.NewResponseService(repository, responseRepository, catalog)

		_, err := service.Submit(context.Background(), targetID, request.ID, map[string]any{"q1": "yes"})

		assert.NoError(t, err)
		assert.Equal(t, dtos.RequestStatusInProgress, savedRequest.Status)
	})

	t.Run("should only accept submissions from the target org", func(t *testing.T) {
		request := newRequest(dtos.RequestStatusPending)

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, request.ID).Return(request, nil)

		service := services.NewResponseService(repository, mocks.NewSharedAssessmentResponseRepository(t), mocks.NewSharedAssessmentCatalog(t))

		_, err := service.Submit(context.Background(), requesterID, request.ID, map[string]any{"q1": "yes"})

		assert.ErrorIs(t, err, shared.ErrAccessDenied)
	})

	t.Run("should refuse a submission against a terminal request", func(t *testing.T) {
		request := newRequest(dtos.RequestStatusRejected)

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, request.ID).Return(request, nil)

		service := services.NewResponseService(repository, mocks.NewSharedAssessmentResponseRepository(t), mocks.NewSharedAssessmentCatalog(t))

		_, err := service.Submit(context.Background(), targetID, request.ID, map[string]any{"q1": "yes"})

		assert.ErrorIs(t, err, shared.ErrAlreadyTerminal)
	})

	t.Run("should fail when the catalog is unavailable", func(t *testing.T) {
		request := newRequest(dtos.RequestStatusPending)

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, request.ID).Return(request, nil)

		responseRepository := mocks.NewSharedAssessmentResponseRepository(t)
		responseRepository.On("UpsertResponse", mock.Anything, mock.Anything).Return(nil)

		catalog := mocks.NewSharedAssessmentCatalog(t)
		catalog.On("ResolveAssessment", mock.Anything, assessmentID).Return("", nil, shared.ErrDependencyUnavailable)

		service := services.NewResponseService(repository, responseRepository, catalog)

		_, err := service.Submit(context.Background(), targetID, request.ID, map[string]any{"q1": "yes"})

		assert.ErrorIs(t, err, shared.ErrDependencyUnavailable)
	})
}

func TestGetResponse(t *testing.T) {
	requesterID := uuid.New()
	targetID := uuid.New()

	request := models.TraceRequest{
		RequestingOrgID: requesterID,
		TargetOrgID:     targetID,
	}
	request.ID = uuid.New()

	t.Run("should hand the requester the target org's response", func(t *testing.T) {
		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("Read", request.ID).Return(request, nil)

		responseRepository := mocks.NewSharedAssessmentResponseRepository(t)
		responseRepository.On("FindByRequestAndOrg", request.ID, targetID).Return(models.AssessmentResponse{RespondingOrgID: targetID}, nil)

		service := services.NewResponseService(repository, responseRepository, mocks.NewSharedAssessmentCatalog(t))

		response, err := service.GetResponse(requesterID, request.ID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, response.RespondingOrgID)
	})

	t.Run("should deny an org outside the request", func(t *testing.T) {
		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("Read", request.ID).Return(request, nil)

		responseRepository := mocks.NewSharedAssessmentResponseRepository(t)

		service := services.NewResponseService(repository, responseRepository, mocks.NewSharedAssessmentCatalog(t))

		_, err := service.GetResponse(uuid.New(), request.ID)

		assert.ErrorIs(t, err, shared.ErrAccessDenied)
		responseRepository.AssertNotCalled(t, "FindByRequestAndOrg", mock.Anything, mock.Anything)
	})

	t.Run("should surface a missing response as not found", func(t *testing.T) {
		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("Read", request.ID).Return(request, nil)

		responseRepository := mocks.NewSharedAssessmentResponseRepository(t)
		responseRepository.On("FindByRequestAndOrg", request.ID, targetID).Return(models.AssessmentResponse{}, shared.ErrNotFound)

		service := services.NewResponseService(repository, responseRepository, mocks.NewSharedAssessmentCatalog(t))

		_, err := service.GetResponse(targetID, request.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
