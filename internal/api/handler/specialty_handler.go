package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenda-universal/especialidades-api/internal/api/metrics"
	"github.com/agenda-universal/especialidades-api/internal/core/ports"
)

// SpecialtyHandler handles HTTP requests for specialty operations.
type SpecialtyHandler struct {
	service ports.SpecialtyService
}

func NewSpecialtyHandler(service ports.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{service: service}
}

// Create handles POST /especialidades.
//
// @Summary      Create a specialty
// @Tags         especialidades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      specialtyRequest  true  "Specialty fields"
// @Success      201   {object}  specialtyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /especialidades [post]
func (h *SpecialtyHandler) Create(c echo.Context) error {
	var req specialtyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), toSpecialtyInput(req))
	if err != nil {
		return err
	}

	metrics.SpecialtiesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toSpecialtyResponse(detail))
}

// List handles GET /especialidades.
//
// @Summary      List all specialties
// @Tags         especialidades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   specialtyResponse
// @Failure      401  {object}  errorResponse
// @Router       /especialidades [get]
func (h *SpecialtyHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(details))
}

// Get handles GET /especialidades/:id.
//
// @Summary      Get a specialty by id
// @Tags         especialidades
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Specialty identifier"
// @Success      200  {object}  specialtyResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /especialidades/{id} [get]
func (h *SpecialtyHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSpecialtyResponse(detail))
}

// Update handles PUT /especialidades/:id. Full replacement, no merge.
//
// @Summary      Replace a specialty
// @Tags         especialidades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Specialty identifier"
// @Param        body  body      specialtyRequest  true  "Replacement fields"
// @Success      200   {object}  specialtyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /especialidades/{id} [put]
func (h *SpecialtyHandler) Update(c echo.Context) error {
	var req specialtyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), c.Param("id"), toSpecialtyInput(req))
	if err != nil {
		return err
	}

	metrics.SpecialtiesUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toSpecialtyResponse(detail))
}

// Delete handles DELETE /especialidades/:id.
//
// @Summary      Delete a specialty
// @Tags         especialidades
// @Security     BearerAuth
// @Param        id  path  string  true  "Specialty identifier"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /especialidades/{id} [delete]
func (h *SpecialtyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.SpecialtiesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
