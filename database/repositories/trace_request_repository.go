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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/utils"
)

type traceRequestRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.TraceRequest, *gorm.DB]
}

var _ shared.TraceRequestRepository = (*traceRequestRepository)(nil)

func NewTraceRequestRepository(db *gorm.DB) *traceRequestRepository {
	return &traceRequestRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.TraceRequest](db),
	}
}

// Create enforces the referential invariants of a request. A request
// pointing at a missing org or assessment surfaces as ErrInvalidReference
// rather than a raw postgres error.
func (r *traceRequestRepository) Create(tx *gorm.DB, request *models.TraceRequest) error {
	if request.RequestingOrgID == request.TargetOrgID {
		return errors.Wrap(shared.ErrInvalidReference, "requesting and target org must differ")
	}

	if request.ParentRequestID != nil {
		var parent models.TraceRequest
		if err := r.GetDB(tx).First(&parent, "id = ?", *request.ParentRequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(shared.ErrInvalidReference, "parent request does not exist")
			}
			return err
		}
		if err := validateParentLink(parent, request); err != nil {
			return err
		}
	}

	err := r.GetDB(tx).Create(request).Error
	if isForeignKeyViolation(err) {
		return errors.Wrap(shared.ErrInvalidReference, err.Error())
	}
	return err
}

// the child hangs below the org which was asked in the parent
func validateParentLink(parent models.TraceRequest, child *models.TraceRequest) error {
	if parent.TargetOrgID != child.RequestingOrgID {
		return errors.Wrap(shared.ErrInvalidReference, "parent target org does not match child requesting org")
	}
	return nil
}

func (r *traceRequestRepository) Read(id uuid.UUID) (models.TraceRequest, error) {
	var request models.TraceRequest
	err := r.db.First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return request, shared.ErrNotFound
	}
	return request, err
}

func (r *traceRequestRepository) ReadWithParent(id uuid.UUID) (models.TraceRequest, error) {
	var request models.TraceRequest
	err := r.db.Preload("ParentRequest").First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return request, shared.ErrNotFound
	}
	return request, err
}

// ReadForUpdate takes a row level lock on the request. Always call it
// inside a transaction, otherwise the lock is released immediately.
func (r *traceRequestRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.TraceRequest, error) {
	var request models.TraceRequest
	err := r.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return request, shared.ErrNotFound
	}
	return request, err
}

func (r *traceRequestRepository) ListByOrganization(orgID uuid.UUID, role dtos.OrgRole, filter shared.TraceRequestFilter) ([]models.TraceRequest, error) {
	var requests []models.TraceRequest

	query := r.db.Model(&models.TraceRequest{})
	switch role {
	case dtos.OrgRoleTarget:
		query = query.Where("target_org_id = ?", orgID)
	default:
		query = query.Where("requesting_org_id = ?", orgID)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.AssessmentID != nil {
		query = query.Where("assessment_id = ?", *filter.AssessmentID)
	}
	if filter.Overdue != nil {
		// overdue is derived from due date and status, terminal requests
		// never count as overdue
		overdueExpr := "due_date IS NOT NULL AND due_date < ? AND status NOT IN ?"
		terminal := []dtos.RequestStatus{dtos.RequestStatusCompleted, dtos.RequestStatusRejected}
		if *filter.Overdue {
			query = query.Where(overdueExpr, time.Now(), terminal)
		} else {
			query = query.Not(overdueExpr, time.Now(), terminal)
		}
	}

	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *traceRequestRepository) ListChildren(parentID uuid.UUID) ([]models.TraceRequest, error) {
	var children []models.TraceRequest
	err := r.db.Where("parent_request_id = ?", parentID).Order("created_at ASC").Find(&children).Error
	return children, err
}

func (r *traceRequestRepository) CountChildren(parentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TraceRequest{}).Where("parent_request_id = ?", parentID).Count(&count).Error
	return count, err
}

// ListCompletedWithPendingCascade returns completed requests which still
// carry deferred suppliers from an on_completion cascade.
func (r *traceRequestRepository) ListCompletedWithPendingCascade() ([]models.TraceRequest, error) {
	var requests []models.TraceRequest
	err := r.db.
		Where("status = ?", dtos.RequestStatusCompleted).
		Where("deferred_supplier_ids IS NOT NULL AND deferred_supplier_ids != 'null'::jsonb AND deferred_supplier_ids != '[]'::jsonb").
		Find(&requests).Error
	return requests, err
}
