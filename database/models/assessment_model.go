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

package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Assessment is a catalog record. The question schema itself is opaque to
// this service - only the required question ids are needed to decide
// whether a response counts as complete.
type Assessment struct {
	Model
	Title               string         `json:"title" gorm:"type:text;not null;"`
	RequiredQuestionIDs datatypes.JSON `json:"requiredQuestionIds" gorm:"type:jsonb;"`
}

func (m Assessment) TableName() string {
	return "assessments"
}

func (m *Assessment) GetRequiredQuestionIDs() []string {
	if len(m.RequiredQuestionIDs) == 0 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(m.RequiredQuestionIDs, &ids); err != nil {
		return nil
	}
	return ids
}
