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
	"time"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/dtos"
)

func CascadeSettingsFromDTO(dto dtos.CascadeSettingsDTO) models.CascadeSettings {
	return models.CascadeSettings{
		EnableCascade: dto.EnableCascade,
		TargetTiers:   dto.TargetTiers,
		CascadeScope:  dto.CascadeScope,
		CascadeTiming: dto.CascadeTiming,
		Type:          dto.Type,
		TierTemplates: dto.TierTemplates,
	}
}

func CascadeSettingsToDTO(settings models.CascadeSettings) dtos.CascadeSettingsDTO {
	return dtos.CascadeSettingsDTO{
		EnableCascade: settings.EnableCascade,
		TargetTiers:   settings.TargetTiers,
		CascadeScope:  settings.CascadeScope,
		CascadeTiming: settings.CascadeTiming,
		Type:          settings.Type,
		TierTemplates: settings.TierTemplates,
	}
}

func TraceRequestCreateRequestToModel(req dtos.TraceRequestCreateRequest) (models.TraceRequest, error) {
	request := models.TraceRequest{
		TargetOrgID:     req.TargetOrgID,
		AssessmentID:    req.AssessmentID,
		CascadeSettings: CascadeSettingsFromDTO(req.CascadeSettings),
		Priority:        req.Priority,
		DueDate:         req.DueDate,
	}
	if err := request.SetProductIDs(req.ProductIDs); err != nil {
		return models.TraceRequest{}, err
	}
	return request, nil
}

// TraceRequestToDTO renders a request for the api. Overdue is computed at
// render time, never stored.
func TraceRequestToDTO(request models.TraceRequest) dtos.TraceRequestDTO {
	dto := dtos.TraceRequestDTO{
		ID:              request.ID,
		RequestingOrgID: request.RequestingOrgID,
		TargetOrgID:     request.TargetOrgID,
		AssessmentID:    request.AssessmentID,
		ProductIDs:      request.GetProductIDs(),
		ParentRequestID: request.ParentRequestID,
		Root:            request.IsRoot(),
		CascadeSettings: CascadeSettingsToDTO(request.CascadeSettings),
		Status:          request.Status,
		Priority:        request.Priority,
		DueDate:         request.DueDate,
		Overdue:         request.IsOverdue(time.Now()),
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}

	// only preloaded on the detail read, list rows stay flat
	if request.ParentRequest != nil {
		parent := TraceRequestToDTO(*request.ParentRequest)
		dto.Parent = &parent
	}

	return dto
}

func AssessmentResponseToDTO(response models.AssessmentResponse) dtos.AssessmentResponseDTO {
	return dtos.AssessmentResponseDTO{
		ID:              response.ID,
		TraceRequestID:  response.TraceRequestID,
		RespondingOrgID: response.RespondingOrgID,
		Answers:         response.Answers,
		SubmittedAt:     response.SubmittedAt,
	}
}
