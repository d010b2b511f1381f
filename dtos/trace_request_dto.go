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

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
)

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusRejected
}

type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "low"
	RequestPriorityMedium RequestPriority = "medium"
	RequestPriorityHigh   RequestPriority = "high"
	RequestPriorityUrgent RequestPriority = "urgent"
)

type CascadeScope string

const (
	CascadeScopeAll      CascadeScope = "all"
	CascadeScopeSpecific CascadeScope = "specific"
)

type CascadeTiming string

const (
	CascadeTimingImmediate    CascadeTiming = "immediate"
	CascadeTimingOnCompletion CascadeTiming = "on_completion"
)

type CascadeType string

const (
	CascadeTypeRequired CascadeType = "required"
	CascadeTypeOptional CascadeType = "optional"
)

// OrgRole is the role an organization plays relative to a trace request.
type OrgRole string

const (
	OrgRoleRequester OrgRole = "requester"
	OrgRoleTarget    OrgRole = "target"
)

type CascadeSettingsDTO struct {
	EnableCascade bool          `json:"enableCascade"`
	TargetTiers   []string      `json:"targetTiers"`
	CascadeScope  CascadeScope  `json:"cascadeScope" validate:"omitempty,oneof=all specific"`
	CascadeTiming CascadeTiming `json:"cascadeTiming" validate:"omitempty,oneof=immediate on_completion"`
	Type          CascadeType   `json:"type" validate:"omitempty,oneof=required optional"`
	// optional per-tier template overrides, passed through opaquely
	TierTemplates map[string]string `json:"tierTemplates,omitempty"`
}

type TraceRequestCreateRequest struct {
	TargetOrgID     uuid.UUID          `json:"targetOrgId" validate:"required"`
	AssessmentID    uuid.UUID          `json:"assessmentId" validate:"required"`
	ProductIDs      []string           `json:"productIds"`
	CascadeSettings CascadeSettingsDTO `json:"cascadeSettings"`
	Priority        RequestPriority    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate         *time.Time         `json:"dueDate"`
}

type TraceRequestPatchRequest struct {
	Priority *RequestPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate  *time.Time       `json:"dueDate"`
	Status   *RequestStatus   `json:"status" validate:"omitempty,oneof=pending in_progress completed rejected"`
}

type CascadeRequest struct {
	SupplierOrgIDs []uuid.UUID `json:"supplierOrgIds" validate:"required,min=1"`
}

type SubmitResponseRequest struct {
	Answers map[string]any `json:"answers" validate:"required"`
}

type TraceRequestDTO struct {
	ID              uuid.UUID          `json:"id"`
	RequestingOrgID uuid.UUID          `json:"requestingOrgId"`
	TargetOrgID     uuid.UUID          `json:"targetOrgId"`
	AssessmentID    uuid.UUID          `json:"assessmentId"`
	ProductIDs      []string           `json:"productIds"`
	ParentRequestID *uuid.UUID         `json:"parentRequestId,omitempty"`
	Root            bool               `json:"root"`
	Parent          *TraceRequestDTO   `json:"parent,omitempty"`
	CascadeSettings CascadeSettingsDTO `json:"cascadeSettings"`
	Status          RequestStatus      `json:"status"`
	Priority        RequestPriority    `json:"priority"`
	DueDate         *time.Time         `json:"dueDate,omitempty"`
	Overdue         bool               `json:"overdue"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type AssessmentResponseDTO struct {
	ID              uuid.UUID      `json:"id"`
	TraceRequestID  uuid.UUID      `json:"traceRequestId"`
	RespondingOrgID uuid.UUID      `json:"respondingOrgId"`
	Answers         map[string]any `json:"answers"`
	SubmittedAt     time.Time      `json:"submittedAt"`
}

type RollupDTO struct {
	TotalChildren    int                   `json:"totalChildren"`
	ByStatus         map[RequestStatus]int `json:"byStatus"`
	PercentResponded float64               `json:"percentResponded"`
}
