package handler

import (
	"github.com/agenda-universal/especialidades-api/internal/core/ports"
)

// --- Request → Service input ---

func toSpecialtyInput(req specialtyRequest) ports.SpecialtyInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return ports.SpecialtyInput{
		Name:        req.Name,
		Description: req.Description,
		Active:      active,
	}
}

// --- Service result → HTTP response ---

func toSpecialtyResponse(d *ports.SpecialtyDetail) specialtyResponse {
	return specialtyResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Active:      d.Active,
	}
}

func toListResponse(details []ports.SpecialtyDetail) []specialtyResponse {
	out := make([]specialtyResponse, len(details))
	for i, d := range details {
		out[i] = toSpecialtyResponse(&d)
	}
	return out
}
