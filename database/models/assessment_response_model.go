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
	"time"

	"github.com/google/uuid"

	databasetypes "github.com/tracetier-dev/tracetier/database/types"
)

// AssessmentResponse holds the answers a supplier submitted for a trace
// request. The answers payload is opaque to this service; the assessment
// catalog owns its schema. At most one response exists per
// (trace_request_id, responding_org_id) - a resubmission replaces.
type AssessmentResponse struct {
	Model
	TraceRequestID  uuid.UUID           `json:"traceRequestId" gorm:"type:uuid;not null;uniqueIndex:idx_response_request_org;"`
	RespondingOrgID uuid.UUID           `json:"respondingOrgId" gorm:"type:uuid;not null;uniqueIndex:idx_response_request_org;"`
	Answers         databasetypes.JSONB `json:"answers" gorm:"type:jsonb;"`
	SubmittedAt     time.Time           `json:"submittedAt" gorm:"type:timestamp with time zone;not null;"`

	RespondingOrg Org `json:"-" gorm:"foreignKey:RespondingOrgID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m AssessmentResponse) TableName() string {
	return "assessment_responses"
}
