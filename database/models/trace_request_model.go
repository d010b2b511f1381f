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
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tracetier-dev/tracetier/dtos"
)

// CascadeSettings controls whether and how a request fans out to lower
// supplier tiers. Stored as a single jsonb column.
type CascadeSettings struct {
	EnableCascade bool               `json:"enableCascade"`
	TargetTiers   []string           `json:"targetTiers"`
	CascadeScope  dtos.CascadeScope  `json:"cascadeScope"`
	CascadeTiming dtos.CascadeTiming `json:"cascadeTiming"`
	Type          dtos.CascadeType   `json:"type"`
	TierTemplates map[string]string  `json:"tierTemplates,omitempty"`
}

func (s CascadeSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *CascadeSettings) Scan(value any) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(data, s)
}

type TraceRequest struct {
	Model
	RequestingOrgID uuid.UUID  `json:"requestingOrgId" gorm:"type:uuid;not null;index;"`
	TargetOrgID     uuid.UUID  `json:"targetOrgId" gorm:"type:uuid;not null;index;"`
	AssessmentID    uuid.UUID  `json:"assessmentId" gorm:"type:uuid;not null;"`
	ParentRequestID *uuid.UUID `json:"parentRequestId" gorm:"type:uuid;index;"`

	RequestingOrg Org           `json:"requestingOrg" gorm:"foreignKey:RequestingOrgID;references:ID;constraint:OnDelete:CASCADE;"`
	TargetOrg     Org           `json:"targetOrg" gorm:"foreignKey:TargetOrgID;references:ID;constraint:OnDelete:CASCADE;"`
	ParentRequest *TraceRequest `json:"-" gorm:"foreignKey:ParentRequestID;references:ID;"`

	// empty means the whole supplier relationship is in scope
	ProductIDs      datatypes.JSON       `json:"productIds" gorm:"type:jsonb;"`
	CascadeSettings CascadeSettings      `json:"cascadeSettings" gorm:"type:jsonb;"`
	Status          dtos.RequestStatus   `json:"status" gorm:"type:text;not null;default:'pending';"`
	Priority        dtos.RequestPriority `json:"priority" gorm:"type:text;not null;default:'medium';"`
	DueDate         *time.Time           `json:"dueDate" gorm:"type:timestamp with time zone;"`

	// suppliers queued for on_completion fan out. Cleared once propagated.
	DeferredSupplierIDs datatypes.JSON `json:"-" gorm:"type:jsonb;"`

	Responses []AssessmentResponse `json:"responses" gorm:"foreignKey:TraceRequestID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m TraceRequest) TableName() string {
	return "trace_requests"
}

func (m *TraceRequest) IsRoot() bool {
	return m.ParentRequestID == nil
}

// Overdue is never stored. A terminal request is never overdue, no matter
// how far the due date lies in the past.
func (m *TraceRequest) IsOverdue(now time.Time) bool {
	if m.DueDate == nil || m.Status.IsTerminal() {
		return false
	}
	return m.DueDate.Before(now)
}

func (m *TraceRequest) GetProductIDs() []string {
	if len(m.ProductIDs) == 0 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(m.ProductIDs, &ids); err != nil {
		return nil
	}
	return ids
}

func (m *TraceRequest) GetDeferredSupplierIDs() []uuid.UUID {
	if len(m.DeferredSupplierIDs) == 0 {
		return nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(m.DeferredSupplierIDs, &ids); err != nil {
		return nil
	}
	return ids
}

func (m *TraceRequest) SetDeferredSupplierIDs(ids []uuid.UUID) error {
	if ids == nil {
		m.DeferredSupplierIDs = datatypes.JSON("[]")
		return nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	m.DeferredSupplierIDs = data
	return nil
}

func (m *TraceRequest) SetProductIDs(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	m.ProductIDs = data
	return nil
}
