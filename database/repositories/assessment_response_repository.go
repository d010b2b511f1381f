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
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/utils"
)

type assessmentResponseRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.AssessmentResponse, *gorm.DB]
}

var _ shared.AssessmentResponseRepository = (*assessmentResponseRepository)(nil)

func NewAssessmentResponseRepository(db *gorm.DB) *assessmentResponseRepository {
	return &assessmentResponseRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.AssessmentResponse](db),
	}
}

func (r *assessmentResponseRepository) FindByRequestAndOrg(traceRequestID, respondingOrgID uuid.UUID) (models.AssessmentResponse, error) {
	var response models.AssessmentResponse
	err := r.db.Where("trace_request_id = ? AND responding_org_id = ?", traceRequestID, respondingOrgID).First(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response, shared.ErrNotFound
	}
	return response, err
}

func (r *assessmentResponseRepository) CountByRequest(traceRequestID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.AssessmentResponse{}).Where("trace_request_id = ?", traceRequestID).Count(&count).Error
	return count, err
}

// UpsertResponse replaces an earlier response of the same org for the same
// request. The unique index on (trace_request_id, responding_org_id) makes
// the replace atomic.
func (r *assessmentResponseRepository) UpsertResponse(tx *gorm.DB, response *models.AssessmentResponse) error {
	return r.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "trace_request_id"}, {Name: "responding_org_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "submitted_at", "updated_at"}),
	}).Create(response).Error
}
