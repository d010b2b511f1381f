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
	"gorm.io/gorm"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/utils"
)

type assessmentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Assessment, *gorm.DB]
}

var _ shared.AssessmentRepository = (*assessmentRepository)(nil)

func NewAssessmentRepository(db *gorm.DB) *assessmentRepository {
	return &assessmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Assessment](db),
	}
}
