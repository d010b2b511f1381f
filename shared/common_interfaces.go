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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/utils"
)

// TraceRequestFilter narrows down listings. Overdue is derived from
// (status, dueDate, now), it is never a stored column.
type TraceRequestFilter struct {
	Status       *dtos.RequestStatus
	Priority     *dtos.RequestPriority
	AssessmentID *uuid.UUID
	Overdue      *bool
}

type TraceRequestRepository interface {
	utils.Repository[uuid.UUID, models.TraceRequest, DB]
	ReadWithParent(id uuid.UUID) (models.TraceRequest, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.TraceRequest, error)
	ListByOrganization(orgID uuid.UUID, role dtos.OrgRole, filter TraceRequestFilter) ([]models.TraceRequest, error)
	ListChildren(parentID uuid.UUID) ([]models.TraceRequest, error)
	CountChildren(parentID uuid.UUID) (int64, error)
	ListCompletedWithPendingCascade() ([]models.TraceRequest, error)
}

type AssessmentResponseRepository interface {
	utils.Repository[uuid.UUID, models.AssessmentResponse, DB]
	FindByRequestAndOrg(traceRequestID, respondingOrgID uuid.UUID) (models.AssessmentResponse, error)
	CountByRequest(traceRequestID uuid.UUID) (int64, error)
	UpsertResponse(tx DB, response *models.AssessmentResponse) error
}

type AssessmentRepository interface {
	utils.Repository[uuid.UUID, models.Assessment, DB]
}

type OrganizationRepository interface {
	utils.Repository[uuid.UUID, models.Org, DB]
	ReadBySlug(slug string) (models.Org, error)
}

// OrganizationDirectory resolves organization identities. It is an
// external collaborator - calls carry a context and degrade to
// ErrDependencyUnavailable on timeout.
type OrganizationDirectory interface {
	ResolveOrganization(ctx context.Context, id uuid.UUID) (dtos.OrgDTO, error)
	ResolveOrganizations(ctx context.Context, ids []uuid.UUID) ([]dtos.OrgDTO, error)
}

// AssessmentCatalog resolves assessment metadata. Used to validate
// response completeness before a request may transition to completed.
type AssessmentCatalog interface {
	ResolveAssessment(ctx context.Context, id uuid.UUID) (title string, requiredQuestionIDs []string, err error)
}

// RequestGuard authorizes an actor organization against a request.
type RequestGuard interface {
	Authorize(actorOrgID uuid.UUID, request models.TraceRequest, action Action) error
	AuthorizeCascade(actorOrgID uuid.UUID, parent models.TraceRequest) error
}

type TraceRequestService interface {
	Create(ctx context.Context, actorOrgID uuid.UUID, request *models.TraceRequest) error
	Read(actorOrgID uuid.UUID, id uuid.UUID) (models.TraceRequest, error)
	Patch(ctx context.Context, actorOrgID uuid.UUID, id uuid.UUID, patch dtos.TraceRequestPatchRequest) (models.TraceRequest, error)
	Delete(actorOrgID uuid.UUID, id uuid.UUID) error
	ListByOrganization(orgID uuid.UUID, role dtos.OrgRole, filter TraceRequestFilter) ([]models.TraceRequest, error)
	ListChildren(actorOrgID uuid.UUID, parentID uuid.UUID) ([]models.TraceRequest, error)
}

type CascadeService interface {
	Cascade(ctx context.Context, actorOrgID uuid.UUID, parentID uuid.UUID, supplierOrgIDs []uuid.UUID) ([]uuid.UUID, error)
	Rollup(actorOrgID uuid.UUID, requestID uuid.UUID) (dtos.RollupDTO, error)
	RollupTree(actorOrgID uuid.UUID, requestID uuid.UUID) (dtos.RollupDTO, error)
	PropagateDeferred(ctx context.Context) error
}

type ResponseService interface {
	Submit(ctx context.Context, actorOrgID uuid.UUID, traceRequestID uuid.UUID, answers map[string]any) (models.AssessmentResponse, error)
	GetResponse(actorOrgID uuid.UUID, traceRequestID uuid.UUID) (models.AssessmentResponse, error)
}

type OrgService interface {
	CreateOrganization(ctx Context, organization *models.Org) error
	ReadBySlug(slug string) (*models.Org, error)
}

// DaemonRunner starts the background jobs of this instance.
type DaemonRunner interface {
	Start()
}

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

type AccessControl interface {
	HasAccess(subject string) (bool, error)

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error

	GrantRole(subject string, role Role) error
	RevokeRole(subject string, role Role) error

	AllowRole(role Role, object Object, action []Action) error
	IsAllowed(subject string, object Object, action Action) (bool, error)

	GetOwnerOfOrganization() (string, error)
	GetAllMembersOfOrganization() ([]string, error)
	GetDomainRole(user string) (Role, error)
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}

type RBACMiddleware = func(obj Object, act Action) echo.MiddlewareFunc

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectOrganization Object = "organization"
	ObjectTraceRequest Object = "trace-request"
	ObjectUser         Object = "user"
)

// DefaultCollaboratorTimeout bounds synchronous calls to the directory
// and catalog collaborators.
const DefaultCollaboratorTimeout = 5 * time.Second
