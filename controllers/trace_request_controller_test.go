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

package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tracetier-dev/tracetier/controllers"
	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
	"github.com/tracetier-dev/tracetier/mocks"
	"github.com/tracetier-dev/tracetier/shared"
)

func newTestContext(t *testing.T, method, target, body string) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e := echo.New()
	ctx := e.NewContext(req, rec)

	org := models.Org{Name: "acme", Slug: "acme"}
	org.ID = uuid.New()
	shared.SetOrg(ctx, org)

	return ctx, rec
}

func TestTraceRequestControllerCreate(t *testing.T) {
	t.Run("should reject a payload without a target org", func(t *testing.T) {
		ctx, _ := newTestContext(t, http.MethodPost, "/", fmt.Sprintf(`{"assessmentId": %q}`, uuid.NewString()))

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.Create(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("should respond with 201 and the created request", func(t *testing.T) {
		body := fmt.Sprintf(`{"targetOrgId": %q, "assessmentId": %q, "priority": "high"}`, uuid.NewString(), uuid.NewString())
		ctx, rec := newTestContext(t, http.MethodPost, "/", body)

		service := mocks.NewSharedTraceRequestService(t)
		service.On("Create", mock.Anything, shared.GetOrg(ctx).ID, mock.Anything).Return(nil)

		controller := controllers.NewTraceRequestController(service, mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)
	})

	t.Run("should translate an unresolvable target to a 400", func(t *testing.T) {
		body := fmt.Sprintf(`{"targetOrgId": %q, "assessmentId": %q}`, uuid.NewString(), uuid.NewString())
		ctx, _ := newTestContext(t, http.MethodPost, "/", body)

		service := mocks.NewSharedTraceRequestService(t)
		service.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(shared.ErrInvalidReference)

		controller := controllers.NewTraceRequestController(service, mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.Create(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}

func TestTraceRequestControllerList(t *testing.T) {
	t.Run("should reject an unknown role", func(t *testing.T) {
		ctx, _ := newTestContext(t, http.MethodGet, "/?role=stranger", "")

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.List(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("should pass the filters through to the service", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodGet, "/?role=target&status=pending&overdue=true", "")

		service := mocks.NewSharedTraceRequestService(t)
		service.On("ListByOrganization", shared.GetOrg(ctx).ID, dtos.OrgRoleTarget, mock.MatchedBy(func(filter shared.TraceRequestFilter) bool {
			return filter.Status != nil && *filter.Status == dtos.RequestStatusPending &&
				filter.Overdue != nil && *filter.Overdue
		})).Return(nil, nil)

		controller := controllers.NewTraceRequestController(service, mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should reject an unknown status filter", func(t *testing.T) {
		ctx, _ := newTestContext(t, http.MethodGet, "/?status=done", "")

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.List(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}

func TestTraceRequestControllerCascade(t *testing.T) {
	t.Run("should reject an empty supplier list", func(t *testing.T) {
		requestID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodPost, "/", `{"supplierOrgIds": []}`)
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.Cascade(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("should translate an exhausted cascade to a 409", func(t *testing.T) {
		requestID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodPost, "/", fmt.Sprintf(`{"supplierOrgIds": [%q]}`, uuid.NewString()))
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		cascadeService := mocks.NewSharedCascadeService(t)
		cascadeService.On("Cascade", mock.Anything, shared.GetOrg(ctx).ID, requestID, mock.Anything).Return(nil, shared.ErrCascadeExhausted)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), cascadeService, mocks.NewSharedResponseService(t))

		err := controller.Cascade(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
	})

	t.Run("should respond with the created child ids", func(t *testing.T) {
		requestID := uuid.New()
		supplier := uuid.New()
		childID := uuid.New()

		ctx, rec := newTestContext(t, http.MethodPost, "/", fmt.Sprintf(`{"supplierOrgIds": [%q]}`, supplier))
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		cascadeService := mocks.NewSharedCascadeService(t)
		cascadeService.On("Cascade", mock.Anything, shared.GetOrg(ctx).ID, requestID, []uuid.UUID{supplier}).Return([]uuid.UUID{childID}, nil)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), cascadeService, mocks.NewSharedResponseService(t))

		err := controller.Cascade(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)
		assert.Contains(t, rec.Body.String(), childID.String())
	})
}

func TestTraceRequestControllerRollup(t *testing.T) {
	t.Run("should pick the tree rollup for recursive=true", func(t *testing.T) {
		requestID := uuid.New()
		ctx, rec := newTestContext(t, http.MethodGet, "/?recursive=true", "")
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		cascadeService := mocks.NewSharedCascadeService(t)
		cascadeService.On("RollupTree", shared.GetOrg(ctx).ID, requestID).Return(dtos.RollupDTO{TotalChildren: 3}, nil)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), cascadeService, mocks.NewSharedResponseService(t))

		err := controller.Rollup(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		cascadeService.AssertNotCalled(t, "Rollup", mock.Anything, mock.Anything)
	})

	t.Run("should translate a malformed tree to a 500", func(t *testing.T) {
		requestID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodGet, "/", "")
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		cascadeService := mocks.NewSharedCascadeService(t)
		cascadeService.On("Rollup", shared.GetOrg(ctx).ID, requestID).Return(dtos.RollupDTO{}, shared.ErrMalformedTree)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), cascadeService, mocks.NewSharedResponseService(t))

		err := controller.Rollup(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 500, httpError.Code)
		assert.Equal(t, "cascade tree is malformed", httpError.Message)
		assert.ErrorIs(t, httpError.Internal, shared.ErrMalformedTree)
	})
}

func TestTraceRequestControllerSubmitResponse(t *testing.T) {
	t.Run("should translate a terminal request to a 409", func(t *testing.T) {
		requestID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodPost, "/", `{"answers": {"q1": "yes"}}`)
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		responseService := mocks.NewSharedResponseService(t)
		responseService.On("Submit", mock.Anything, shared.GetOrg(ctx).ID, requestID, mock.Anything).Return(models.AssessmentResponse{}, shared.ErrAlreadyTerminal)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), responseService)

		err := controller.SubmitResponse(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
	})

	t.Run("should respond with 201 and the stored response", func(t *testing.T) {
		requestID := uuid.New()
		ctx, rec := newTestContext(t, http.MethodPost, "/", `{"answers": {"q1": "yes"}}`)
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		stored := models.AssessmentResponse{TraceRequestID: requestID, RespondingOrgID: shared.GetOrg(ctx).ID}
		stored.ID = uuid.New()

		responseService := mocks.NewSharedResponseService(t)
		responseService.On("Submit", mock.Anything, shared.GetOrg(ctx).ID, requestID, map[string]any{"q1": "yes"}).Return(stored, nil)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), responseService)

		err := controller.SubmitResponse(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)
	})
}

func TestTraceRequestControllerGetResponse(t *testing.T) {
	t.Run("should return the stored response", func(t *testing.T) {
		requestID := uuid.New()
		ctx, rec := newTestContext(t, http.MethodGet, "/", "")
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		stored := models.AssessmentResponse{TraceRequestID: requestID}
		stored.ID = uuid.New()

		responseService := mocks.NewSharedResponseService(t)
		responseService.On("GetResponse", shared.GetOrg(ctx).ID, requestID).Return(stored, nil)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), responseService)

		err := controller.GetResponse(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), stored.ID.String())
	})

	t.Run("should translate a missing response to a 404", func(t *testing.T) {
		requestID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodGet, "/", "")
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		responseService := mocks.NewSharedResponseService(t)
		responseService.On("GetResponse", shared.GetOrg(ctx).ID, requestID).Return(models.AssessmentResponse{}, shared.ErrNotFound)

		controller := controllers.NewTraceRequestController(mocks.NewSharedTraceRequestService(t), mocks.NewSharedCascadeService(t), responseService)

		err := controller.GetResponse(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
	})
}

func TestTraceRequestControllerDelete(t *testing.T) {
	t.Run("should translate a cascade conflict to a 409", func(t *testing.T) {
		requestID := uuid.New()
		ctx, _ := newTestContext(t, http.MethodDelete, "/", "")
		ctx.SetParamNames("traceRequestID")
		ctx.SetParamValues(requestID.String())

		service := mocks.NewSharedTraceRequestService(t)
		service.On("Delete", shared.GetOrg(ctx).ID, requestID).Return(shared.ErrConflict)

		controller := controllers.NewTraceRequestController(service, mocks.NewSharedCascadeService(t), mocks.NewSharedResponseService(t))

		err := controller.Delete(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
	})
}
