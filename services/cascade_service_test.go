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

func passthroughTransaction(repository *mocks.SharedTraceRequestRepository) {
	repository.On("Transaction", mock.Anything).Return(func(f func(shared.DB) error) error {
		return f(nil)
	})
}

func cascadeParent(requesterID, targetID uuid.UUID) models.TraceRequest {
	parent := models.TraceRequest{
		RequestingOrgID: requesterID,
		TargetOrgID:     targetID,
		AssessmentID:    uuid.New(),
		Status:          dtos.RequestStatusInProgress,
		Priority:        dtos.RequestPriorityHigh,
		CascadeSettings: models.CascadeSettings{
			EnableCascade: true,
			TargetTiers:   []string{"tier-2", "tier-3"},
			CascadeScope:  dtos.CascadeScopeSpecific,
			CascadeTiming: dtos.CascadeTimingImmediate,
			Type:          dtos.CascadeTypeRequired,
		},
	}
	parent.ID = uuid.New()
	return parent
}

func TestCascade(t *testing.T) {
	requesterID := uuid.New()
	targetID := uuid.New()

	t.Run("should create a child per supplier and consume one tier", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		supplierA := uuid.New()
		supplierB := uuid.New()

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return(nil, nil)

		var created []models.TraceRequest
		repository.On("Create", mock.Anything, mock.Anything).Return(func(tx shared.DB, child *models.TraceRequest) error {
			child.ID = uuid.New()
			created = append(created, *child)
			return nil
		})

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", targetID, mock.Anything).Return(nil)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		childIDs, err := service.Cascade(context.Background(), targetID, parent.ID, []uuid.UUID{supplierA, supplierB})

		assert.NoError(t, err)
		assert.Len(t, childIDs, 2)
		assert.Len(t, created, 2)
		for _, child := range created {
			assert.Equal(t, targetID, child.RequestingOrgID)
			assert.Equal(t, parent.ID, *child.ParentRequestID)
			assert.Equal(t, []string{"tier-3"}, child.CascadeSettings.TargetTiers)
			assert.Equal(t, dtos.RequestStatusPending, child.Status)
			assert.Equal(t, parent.Priority, child.Priority)
			assert.NotNil(t, child.DueDate)
		}
	})

	t.Run("should return the existing child instead of creating a duplicate", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		supplier := uuid.New()

		existing := models.TraceRequest{
			RequestingOrgID: targetID,
			TargetOrgID:     supplier,
			Status:          dtos.RequestStatusPending,
		}
		existing.ID = uuid.New()
		now := existing.CreatedAt
		existing.DueDate = &now

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return([]models.TraceRequest{existing}, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", targetID, mock.Anything).Return(nil)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		childIDs, err := service.Cascade(context.Background(), targetID, parent.ID, []uuid.UUID{supplier})

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{existing.ID}, childIDs)
		repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should fail when no lower tier remains", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		parent.CascadeSettings.TargetTiers = nil

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", targetID, mock.Anything).Return(nil)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		_, err := service.Cascade(context.Background(), targetID, parent.ID, []uuid.UUID{uuid.New()})

		assert.ErrorIs(t, err, shared.ErrCascadeExhausted)
	})

	t.Run("should fail when cascading is disabled on the parent", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		parent.CascadeSettings.EnableCascade = false

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", targetID, mock.Anything).Return(nil)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		_, err := service.Cascade(context.Background(), targetID, parent.ID, []uuid.UUID{uuid.New()})

		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("should only allow the target org to cascade", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", requesterID, mock.Anything).Return(shared.ErrAccessDenied)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		_, err := service.Cascade(context.Background(), requesterID, parent.ID, []uuid.UUID{uuid.New()})

		assert.ErrorIs(t, err, shared.ErrAccessDenied)
	})

	t.Run("should hold back the due date and remember the supplier for on_completion cascades", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		parent.CascadeSettings.CascadeTiming = dtos.CascadeTimingOnCompletion
		supplier := uuid.New()

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return(nil, nil)

		var created []models.TraceRequest
		repository.On("Create", mock.Anything, mock.Anything).Return(func(tx shared.DB, child *models.TraceRequest) error {
			child.ID = uuid.New()
			created = append(created, *child)
			return nil
		})

		var savedParent models.TraceRequest
		repository.On("Save", mock.Anything, mock.Anything).Return(func(tx shared.DB, request *models.TraceRequest) error {
			savedParent = *request
			return nil
		})

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", targetID, mock.Anything).Return(nil)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		_, err := service.Cascade(context.Background(), targetID, parent.ID, []uuid.UUID{supplier})

		assert.NoError(t, err)
		assert.Len(t, created, 1)
		assert.Nil(t, created[0].DueDate)
		assert.Equal(t, []uuid.UUID{supplier}, savedParent.GetDeferredSupplierIDs())
	})

	t.Run("should backfill the due date once the parent completed", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		parent.CascadeSettings.CascadeTiming = dtos.CascadeTimingOnCompletion
		parent.Status = dtos.RequestStatusCompleted
		supplier := uuid.New()
		assert.NoError(t, parent.SetDeferredSupplierIDs([]uuid.UUID{supplier}))

		existing := models.TraceRequest{
			RequestingOrgID: targetID,
			TargetOrgID:     supplier,
			Status:          dtos.RequestStatusPending,
		}
		existing.ID = uuid.New()

		repository := mocks.NewSharedTraceRequestRepository(t)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return([]models.TraceRequest{existing}, nil)

		var saved []models.TraceRequest
		repository.On("Save", mock.Anything, mock.Anything).Return(func(tx shared.DB, request *models.TraceRequest) error {
			saved = append(saved, *request)
			return nil
		})

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", targetID, mock.Anything).Return(nil)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		childIDs, err := service.Cascade(context.Background(), targetID, parent.ID, []uuid.UUID{supplier})

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{existing.ID}, childIDs)

		// the child got its due date, the parent its bookkeeping cleared
		assert.Len(t, saved, 2)
		assert.NotNil(t, saved[0].DueDate)
		assert.Empty(t, saved[1].GetDeferredSupplierIDs())
	})

	t.Run("should fail when the directory cannot resolve the suppliers", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)

		repository := mocks.NewSharedTraceRequestRepository(t)
		guard := mocks.NewSharedRequestGuard(t)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, shared.ErrDependencyUnavailable)

		service := services.NewCascadeService(repository, guard, directory, mocks.NewSharedPubSubBroker(t))

		_, err := service.Cascade(context.Background(), targetID, parent.ID, []uuid.UUID{uuid.New()})

		assert.ErrorIs(t, err, shared.ErrDependencyUnavailable)
		repository.AssertNotCalled(t, "Transaction", mock.Anything)
	})
}

func TestRollup(t *testing.T) {
	requesterID := uuid.New()
	targetID := uuid.New()

	newChild := func(status dtos.RequestStatus) models.TraceRequest {
		child := models.TraceRequest{Status: status}
		child.ID = uuid.New()
		return child
	}

	t.Run("should aggregate the direct children by status", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)

		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("Read", parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return([]models.TraceRequest{
			newChild(dtos.RequestStatusPending),
			newChild(dtos.RequestStatusPending),
			newChild(dtos.RequestStatusCompleted),
			newChild(dtos.RequestStatusRejected),
		}, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("Authorize", requesterID, mock.Anything, shared.ActionRead).Return(nil)

		service := services.NewCascadeService(repository, guard, mocks.NewSharedOrganizationDirectory(t), mocks.NewSharedPubSubBroker(t))

		rollup, err := service.Rollup(requesterID, parent.ID)

		assert.NoError(t, err)
		assert.Equal(t, 4, rollup.TotalChildren)
		assert.Equal(t, 2, rollup.ByStatus[dtos.RequestStatusPending])
		assert.Equal(t, 1, rollup.ByStatus[dtos.RequestStatusCompleted])
		assert.Equal(t, 1, rollup.ByStatus[dtos.RequestStatusRejected])
		assert.InDelta(t, 0.25, rollup.PercentResponded, 0.0001)
	})

	t.Run("should return an empty rollup for a leaf request", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)

		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("Read", parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return(nil, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("Authorize", requesterID, mock.Anything, shared.ActionRead).Return(nil)

		service := services.NewCascadeService(repository, guard, mocks.NewSharedOrganizationDirectory(t), mocks.NewSharedPubSubBroker(t))

		rollup, err := service.Rollup(requesterID, parent.ID)

		assert.NoError(t, err)
		assert.Equal(t, 0, rollup.TotalChildren)
		assert.Zero(t, rollup.PercentResponded)
	})

	t.Run("should fold the whole subtree", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		child := newChild(dtos.RequestStatusCompleted)
		grandChild := newChild(dtos.RequestStatusPending)

		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("Read", parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return([]models.TraceRequest{child}, nil)
		repository.On("ListChildren", child.ID).Return([]models.TraceRequest{grandChild}, nil)
		repository.On("ListChildren", grandChild.ID).Return(nil, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("Authorize", requesterID, mock.Anything, shared.ActionRead).Return(nil)

		service := services.NewCascadeService(repository, guard, mocks.NewSharedOrganizationDirectory(t), mocks.NewSharedPubSubBroker(t))

		rollup, err := service.RollupTree(requesterID, parent.ID)

		assert.NoError(t, err)
		assert.Equal(t, 2, rollup.TotalChildren)
		assert.InDelta(t, 0.5, rollup.PercentResponded, 0.0001)
	})

	t.Run("should fail closed on a corrupt tree", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		child := newChild(dtos.RequestStatusPending)

		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("Read", parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return([]models.TraceRequest{child}, nil)
		// the child claims itself as its own descendant
		repository.On("ListChildren", child.ID).Return([]models.TraceRequest{child}, nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("Authorize", requesterID, mock.Anything, shared.ActionRead).Return(nil)

		service := services.NewCascadeService(repository, guard, mocks.NewSharedOrganizationDirectory(t), mocks.NewSharedPubSubBroker(t))

		_, err := service.RollupTree(requesterID, parent.ID)

		assert.ErrorIs(t, err, shared.ErrMalformedTree)
	})
}

func TestPropagateDeferred(t *testing.T) {
	requesterID := uuid.New()
	targetID := uuid.New()

	t.Run("should finish the fan out of completed parents", func(t *testing.T) {
		parent := cascadeParent(requesterID, targetID)
		parent.CascadeSettings.CascadeTiming = dtos.CascadeTimingOnCompletion
		parent.Status = dtos.RequestStatusCompleted
		supplier := uuid.New()
		assert.NoError(t, parent.SetDeferredSupplierIDs([]uuid.UUID{supplier}))

		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("ListCompletedWithPendingCascade").Return([]models.TraceRequest{parent}, nil)
		passthroughTransaction(repository)
		repository.On("ReadForUpdate", mock.Anything, parent.ID).Return(parent, nil)
		repository.On("ListChildren", parent.ID).Return(nil, nil)
		repository.On("Create", mock.Anything, mock.Anything).Return(func(tx shared.DB, child *models.TraceRequest) error {
			child.ID = uuid.New()
			return nil
		})
		repository.On("Save", mock.Anything, mock.Anything).Return(nil)

		guard := mocks.NewSharedRequestGuard(t)
		guard.On("AuthorizeCascade", targetID, mock.Anything).Return(nil)

		directory := mocks.NewSharedOrganizationDirectory(t)
		directory.On("ResolveOrganizations", mock.Anything, mock.Anything).Return(nil, nil)

		broker := mocks.NewSharedPubSubBroker(t)
		broker.On("Publish", mock.Anything, mock.Anything).Return(nil)

		service := services.NewCascadeService(repository, guard, directory, broker)

		err := service.PropagateDeferred(context.Background())

		assert.NoError(t, err)
		broker.AssertCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("should do nothing when no cascade is pending", func(t *testing.T) {
		repository := mocks.NewSharedTraceRequestRepository(t)
		repository.On("ListCompletedWithPendingCascade").Return(nil, nil)

		service := services.NewCascadeService(repository, mocks.NewSharedRequestGuard(t), mocks.NewSharedOrganizationDirectory(t), mocks.NewSharedPubSubBroker(t))

		assert.NoError(t, service.PropagateDeferred(context.Background()))
	})
}
