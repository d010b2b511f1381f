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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type OrgCreateRequest struct {
	Name         string  `json:"name" validate:"required"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
}

type OrgPatchRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
}

type OrgDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Address      *string   `json:"address,omitempty"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrgDetailsDTO struct {
	OrgDTO
	Members []string `json:"members"`
}

type OrgChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}
