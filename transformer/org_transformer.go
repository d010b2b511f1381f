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

package transformer

import (
	"github.com/gosimple/slug"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
)

func OrgDTOFromModel(org models.Org) dtos.OrgDTO {
	return dtos.OrgDTO{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		Address:      org.Address,
		ContactEmail: org.ContactEmail,
		CreatedAt:    org.CreatedAt,
	}
}

func OrgCreateRequestToModel(req dtos.OrgCreateRequest) models.Org {
	return models.Org{
		Name:         req.Name,
		Slug:         slug.Make(req.Name),
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
	}
}

// ApplyOrgPatchRequest copies the set fields of the patch onto the model
// and reports whether anything changed. A renamed organization gets a
// fresh slug.
func ApplyOrgPatchRequest(req dtos.OrgPatchRequest, org *models.Org) bool {
	updated := false
	if req.Name != nil && *req.Name != org.Name {
		updated = true
		org.Name = *req.Name
		org.Slug = slug.Make(*req.Name)
	}
	if req.Address != nil {
		updated = true
		org.Address = req.Address
	}
	if req.ContactEmail != nil {
		updated = true
		org.ContactEmail = req.ContactEmail
	}
	return updated
}
