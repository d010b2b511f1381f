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
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/shared"
	"github.com/tracetier-dev/tracetier/transformer"
)

// DirectoryService is the organization directory collaborator. It is
// backed by the local org table today but treated as a remote, fallible
// dependency: every call is bounded by the caller's context and a timeout
// degrades to ErrDependencyUnavailable instead of hanging a request.
type DirectoryService struct {
	organizationRepository shared.OrganizationRepository
}

var _ shared.OrganizationDirectory = (*DirectoryService)(nil)

func NewDirectoryService(organizationRepository shared.OrganizationRepository) *DirectoryService {
	return &DirectoryService{
		organizationRepository: organizationRepository,
	}
}

func (s *DirectoryService) ResolveOrganization(ctx context.Context, id uuid.UUID) (dtos.OrgDTO, error) {
	type result struct {
		org dtos.OrgDTO
		err error
	}

	ch := make(chan result, 1)
	go func() {
		org, err := s.organizationRepository.Read(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				err = errors.Wrapf(shared.ErrInvalidReference, "org %s does not exist", id)
			}
			ch <- result{err: err}
			return
		}
		ch <- result{org: transformer.OrgDTOFromModel(org)}
	}()

	select {
	case <-ctx.Done():
		return dtos.OrgDTO{}, errors.Wrap(shared.ErrDependencyUnavailable, "organization directory timed out")
	case res := <-ch:
		return res.org, res.err
	}
}

func (s *DirectoryService) ResolveOrganizations(ctx context.Context, ids []uuid.UUID) ([]dtos.OrgDTO, error) {
	orgs := make([]dtos.OrgDTO, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(10)
	for i, id := range ids {
		group.Go(func() error {
			org, err := s.ResolveOrganization(groupCtx, id)
			if err != nil {
				return err
			}
			orgs[i] = org
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return orgs, nil
}
