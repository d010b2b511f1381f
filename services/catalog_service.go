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
	"gorm.io/gorm"

	"github.com/tracetier-dev/tracetier/shared"
)

// CatalogService resolves assessment metadata. Like the directory it is a
// collaborator behind a boundary - calls are bounded and degrade to
// ErrDependencyUnavailable on timeout.
type CatalogService struct {
	assessmentRepository shared.AssessmentRepository
}

var _ shared.AssessmentCatalog = (*CatalogService)(nil)

func NewCatalogService(assessmentRepository shared.AssessmentRepository) *CatalogService {
	return &CatalogService{
		assessmentRepository: assessmentRepository,
	}
}

func (s *CatalogService) ResolveAssessment(ctx context.Context, id uuid.UUID) (string, []string, error) {
	type result struct {
		title               string
		requiredQuestionIDs []string
		err                 error
	}

	ch := make(chan result, 1)
	go func() {
		assessment, err := s.assessmentRepository.Read(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				err = errors.Wrapf(shared.ErrInvalidReference, "assessment %s does not exist", id)
			}
			ch <- result{err: err}
			return
		}
		ch <- result{title: assessment.Title, requiredQuestionIDs: assessment.GetRequiredQuestionIDs()}
	}()

	select {
	case <-ctx.Done():
		return "", nil, errors.Wrap(shared.ErrDependencyUnavailable, "assessment catalog timed out")
	case res := <-ch:
		return res.title, res.requiredQuestionIDs, res.err
	}
}
