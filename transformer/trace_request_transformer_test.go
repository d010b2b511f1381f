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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tracetier-dev/tracetier/database/models"
	databasetypes "github.com/tracetier-dev/tracetier/database/types"
	"github.com/tracetier-dev/tracetier/dtos"
)

func TestTraceRequestToDTO(t *testing.T) {
	t.Run("should compute overdue from the due date and status", func(t *testing.T) {
		past := time.Now().Add(-24 * time.Hour)
		request := models.TraceRequest{
			Status:  dtos.RequestStatusPending,
			DueDate: &past,
		}

		dto := TraceRequestToDTO(request)

		assert.True(t, dto.Overdue)
	})

	t.Run("should never mark a terminal request overdue", func(t *testing.T) {
		past := time.Now().Add(-24 * time.Hour)
		request := models.TraceRequest{
			Status:  dtos.RequestStatusCompleted,
			DueDate: &past,
		}

		dto := TraceRequestToDTO(request)

		assert.False(t, dto.Overdue)
	})

	t.Run("should flag root requests and inline a preloaded parent", func(t *testing.T) {
		parent := models.TraceRequest{RequestingOrgID: uuid.New(), TargetOrgID: uuid.New()}
		parent.ID = uuid.New()

		child := models.TraceRequest{
			RequestingOrgID: parent.TargetOrgID,
			TargetOrgID:     uuid.New(),
			ParentRequestID: &parent.ID,
			ParentRequest:   &parent,
		}

		parentDTO := TraceRequestToDTO(parent)
		childDTO := TraceRequestToDTO(child)

		assert.True(t, parentDTO.Root)
		assert.Nil(t, parentDTO.Parent)
		assert.False(t, childDTO.Root)
		assert.Equal(t, parent.ID, childDTO.Parent.ID)
	})

	t.Run("should round trip the cascade settings", func(t *testing.T) {
		settings := dtos.CascadeSettingsDTO{
			EnableCascade: true,
			TargetTiers:   []string{"tier-2", "tier-3"},
			CascadeScope:  dtos.CascadeScopeSpecific,
			CascadeTiming: dtos.CascadeTimingOnCompletion,
			Type:          dtos.CascadeTypeRequired,
			TierTemplates: map[string]string{"tier-2": uuid.NewString()},
		}

		dto := CascadeSettingsToDTO(CascadeSettingsFromDTO(settings))

		assert.Equal(t, settings, dto)
	})

	t.Run("should carry the response answers as a plain map", func(t *testing.T) {
		response := models.AssessmentResponse{
			TraceRequestID: uuid.New(),
			Answers:        databasetypes.JSONB{"q1": "yes", "q2": float64(42)},
		}

		dto := AssessmentResponseToDTO(response)

		assert.Equal(t, map[string]any{"q1": "yes", "q2": float64(42)}, dto.Answers)
	})

	t.Run("should carry the product ids of the create request", func(t *testing.T) {
		req := dtos.TraceRequestCreateRequest{
			TargetOrgID:  uuid.New(),
			AssessmentID: uuid.New(),
			ProductIDs:   []string{"sku-1", "sku-2"},
		}

		request, err := TraceRequestCreateRequestToModel(req)

		assert.NoError(t, err)
		assert.Equal(t, []string{"sku-1", "sku-2"}, request.GetProductIDs())
	})
}

func TestApplyOrgPatchRequest(t *testing.T) {
	t.Run("should refresh the slug when renaming", func(t *testing.T) {
		org := models.Org{Name: "Acme GmbH", Slug: "acme-gmbh"}
		newName := "Acme Supply AG"

		updated := ApplyOrgPatchRequest(dtos.OrgPatchRequest{Name: &newName}, &org)

		assert.True(t, updated)
		assert.Equal(t, "acme-supply-ag", org.Slug)
	})

	t.Run("should report no change for an empty patch", func(t *testing.T) {
		org := models.Org{Name: "Acme GmbH", Slug: "acme-gmbh"}

		updated := ApplyOrgPatchRequest(dtos.OrgPatchRequest{}, &org)

		assert.False(t, updated)
		assert.Equal(t, "acme-gmbh", org.Slug)
	})
}
