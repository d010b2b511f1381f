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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/monitoring"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/utils"
)

// children get one month to respond once a cascade reaches them
const cascadeDueOffset = 30 * 24 * time.Hour

// maxRollupDepth caps the descent of RollupTree. The tier list shrinks by
// one per hop so a well formed tree can never get this deep - hitting the
// cap means the parent pointers are corrupt.
const maxRollupDepth = 32

type CascadeService struct {
	traceRequestRepository shared.TraceRequestRepository
	guard                  shared.RequestGuard
	directory              shared.OrganizationDirectory
	broker                 shared.PubSubBroker
}

var _ shared.CascadeService = (*CascadeService)(nil)

func NewCascadeService(
	traceRequestRepository shared.TraceRequestRepository,
	guard shared.RequestGuard,
	directory shared.OrganizationDirectory,
	broker shared.PubSubBroker,
) *CascadeService {
	return &CascadeService{
		traceRequestRepository: traceRequestRepository,
		guard:                  guard,
		directory:              directory,
		broker:                 broker,
	}
}

// Cascade fans the parent request out to the selected supplier orgs. The
// whole fan out commits in a single transaction - a reader either sees none
// or all children of a batch. Cascading the same supplier twice returns the
// existing child instead of creating a duplicate.
func (s *CascadeService) Cascade(ctx context.Context, actorOrgID uuid.UUID, parentID uuid.UUID, supplierOrgIDs []uuid.UUID) ([]uuid.UUID, error) {
	start := time.Now()
	defer func() {
		monitoring.CascadeFanOutDuration.Observe(time.Since(start).Seconds())
	}()

	resolveCtx, cancel := context.WithTimeout(ctx, shared.DefaultCollaboratorTimeout)
	defer cancel()
	if _, err := s.directory.ResolveOrganizations(resolveCtx, supplierOrgIDs); err != nil {
		return nil, err
	}

	var childIDs []uuid.UUID

	err := s.traceRequestRepository.Transaction(func(tx shared.DB) error {
		// the row lock serializes concurrent cascades of the same parent
		parent, err := s.traceRequestRepository.ReadForUpdate(tx, parentID)
		if err != nil {
			return err
		}

		if err := s.guard.AuthorizeCascade(actorOrgID, parent); err != nil {
			return err
		}

		if !parent.CascadeSettings.EnableCascade {
			return errors.Wrapf(shared.ErrConflict, "cascading is not enabled for request %s", parentID)
		}

		if len(parent.CascadeSettings.TargetTiers) == 0 {
			return errors.Wrapf(shared.ErrCascadeExhausted, "request %s has no lower tier left", parentID)
		}

		existingChildren, err := s.traceRequestRepository.ListChildren(parentID)
		if err != nil {
			return err
		}
		childByTarget := make(map[uuid.UUID]models.TraceRequest, len(existingChildren))
		for _, child := range existingChildren {
			childByTarget[child.TargetOrgID] = child
		}

		deferred := parent.CascadeSettings.CascadeTiming == dtos.CascadeTimingOnCompletion
		parentCompleted := parent.Status == dtos.RequestStatusCompleted

		for _, supplierOrgID := range supplierOrgIDs {
			if existing, ok := childByTarget[supplierOrgID]; ok {
				// the deferred job re-invokes cascade once the parent
				// completed - that is when deferred children get their due
				// date
				if existing.DueDate == nil && deferred && parentCompleted {
					existing.DueDate = utils.Ptr(time.Now().Add(cascadeDueOffset))
					if err := s.traceRequestRepository.Save(tx, &existing); err != nil {
						return err
					}
				}
				childIDs = append(childIDs, existing.ID)
				continue
			}

			child := s.buildChild(parent, supplierOrgID, deferred && !parentCompleted)
			if err := s.traceRequestRepository.Create(tx, &child); err != nil {
				return err
			}
			childByTarget[supplierOrgID] = child
			childIDs = append(childIDs, child.ID)
			monitoring.CascadeChildRequestAmount.Inc()
		}

		// remember deferred suppliers so the background job can finish the
		// fan out after completion
		if deferred && !parentCompleted {
			merged := mergeSupplierIDs(parent.GetDeferredSupplierIDs(), supplierOrgIDs)
			if err := parent.SetDeferredSupplierIDs(merged); err != nil {
				return err
			}
			return s.traceRequestRepository.Save(tx, &parent)
		}
		if len(parent.GetDeferredSupplierIDs()) > 0 {
			if err := parent.SetDeferredSupplierIDs(nil); err != nil {
				return err
			}
			return s.traceRequestRepository.Save(tx, &parent)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return childIDs, nil
}

func (s *CascadeService) buildChild(parent models.TraceRequest, supplierOrgID uuid.UUID, deferDueDate bool) models.TraceRequest {
	settings := parent.CascadeSettings
	// one tier is consumed per hop
	currentTier := settings.TargetTiers[0]
	settings.TargetTiers = settings.TargetTiers[1:]

	assessmentID := parent.AssessmentID
	if template, ok := settings.TierTemplates[currentTier]; ok {
		if templateID, err := uuid.Parse(template); err == nil {
			assessmentID = templateID
		}
	}

	child := models.TraceRequest{
		RequestingOrgID: parent.TargetOrgID,
		TargetOrgID:     supplierOrgID,
		AssessmentID:    assessmentID,
		ParentRequestID: utils.Ptr(parent.ID),
		ProductIDs:      parent.ProductIDs,
		CascadeSettings: settings,
		Status:          dtos.RequestStatusPending,
		Priority:        parent.Priority,
	}

	if !deferDueDate {
		child.DueDate = utils.Ptr(time.Now().Add(cascadeDueOffset))
	}

	return child
}

// Rollup is a pure read time aggregation over the direct children. It
// never mutates the parent - the parent's own status tracks its own
// response, not its cascade.
func (s *CascadeService) Rollup(actorOrgID uuid.UUID, requestID uuid.UUID) (dtos.RollupDTO, error) {
	start := time.Now()
	defer func() {
		monitoring.RollupDuration.Observe(time.Since(start).Seconds())
	}()

	request, err := s.traceRequestRepository.Read(requestID)
	if err != nil {
		return dtos.RollupDTO{}, err
	}

	if err := s.guard.Authorize(actorOrgID, request, shared.ActionRead); err != nil {
		return dtos.RollupDTO{}, err
	}

	children, err := s.traceRequestRepository.ListChildren(requestID)
	if err != nil {
		return dtos.RollupDTO{}, err
	}

	return aggregate(children), nil
}

// RollupTree folds over all descendants, not only direct children. The
// data model forbids cycles, but the aggregator must not spin on corrupt
// rows - the descent is depth capped and fails closed.
func (s *CascadeService) RollupTree(actorOrgID uuid.UUID, requestID uuid.UUID) (dtos.RollupDTO, error) {
	start := time.Now()
	defer func() {
		monitoring.RollupDuration.Observe(time.Since(start).Seconds())
	}()

	request, err := s.traceRequestRepository.Read(requestID)
	if err != nil {
		return dtos.RollupDTO{}, err
	}

	if err := s.guard.Authorize(actorOrgID, request, shared.ActionRead); err != nil {
		return dtos.RollupDTO{}, err
	}

	seen := map[uuid.UUID]bool{requestID: true}
	var descendants []models.TraceRequest

	frontier := []uuid.UUID{requestID}
	for depth := 0; len(frontier) > 0; depth++ {
		if depth >= maxRollupDepth {
			return dtos.RollupDTO{}, errors.Wrapf(shared.ErrMalformedTree, "rollup of request %s exceeded depth %d", requestID, maxRollupDepth)
		}

		var next []uuid.UUID
		for _, id := range frontier {
			children, err := s.traceRequestRepository.ListChildren(id)
			if err != nil {
				return dtos.RollupDTO{}, err
			}
			for _, child := range children {
				if seen[child.ID] {
					return dtos.RollupDTO{}, errors.Wrapf(shared.ErrMalformedTree, "request %s appears twice in the tree of %s", child.ID, requestID)
				}
				seen[child.ID] = true
				descendants = append(descendants, child)
				next = append(next, child.ID)
			}
		}
		frontier = next
	}

	return aggregate(descendants), nil
}

// PropagateDeferred finishes on_completion cascades whose parent has
// completed since. Invoked periodically by the daemon. Failures of a single
// parent are logged and skipped, the next run picks them up again.
func (s *CascadeService) PropagateDeferred(ctx context.Context) error {
	parents, err := s.traceRequestRepository.ListCompletedWithPendingCascade()
	if err != nil {
		return err
	}

	for _, parent := range parents {
		supplierOrgIDs := parent.GetDeferredSupplierIDs()
		if len(supplierOrgIDs) == 0 {
			continue
		}

		// the cascade was initiated by the parent's target org - the job
		// acts on its behalf
		if _, err := s.Cascade(ctx, parent.TargetOrgID, parent.ID, supplierOrgIDs); err != nil {
			slog.Error("could not propagate deferred cascade", "requestID", parent.ID, "err", err)
			continue
		}

		if err := s.broker.Publish(ctx, cascadePropagatedMessage{parentID: parent.ID}); err != nil {
			slog.Warn("could not publish cascade propagation", "requestID", parent.ID, "err", err)
		}
	}

	return nil
}

type cascadePropagatedMessage struct {
	parentID uuid.UUID
}

func (cascadePropagatedMessage) GetChannel() shared.PubSubChannel {
	return shared.CascadePropagated
}

func (m cascadePropagatedMessage) GetPayload() map[string]any {
	return map[string]any{
		"parentRequestId": m.parentID.String(),
	}
}

func mergeSupplierIDs(existing, incoming []uuid.UUID) []uuid.UUID {
	merged := make([]uuid.UUID, 0, len(existing)+len(incoming))
	seen := make(map[uuid.UUID]bool, len(existing)+len(incoming))
	for _, id := range append(existing, incoming...) {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}
	return merged
}

func aggregate(requests []models.TraceRequest) dtos.RollupDTO {
	rollup := dtos.RollupDTO{
		TotalChildren: len(requests),
		ByStatus:      map[dtos.RequestStatus]int{},
	}

	for _, request := range requests {
		rollup.ByStatus[request.Status]++
	}

	if rollup.TotalChildren > 0 {
		rollup.PercentResponded = float64(rollup.ByStatus[dtos.RequestStatusCompleted]) / float64(rollup.TotalChildren)
	}

	return rollup
}
