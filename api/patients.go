package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dentalops/roster/errors"
	"github.com/dentalops/roster/patients"
)

type PatientListResponse struct {
	Patients      []*patients.EnrichedPatient `json:"patients"`
	CountPatients int64                       `json:"countPatients"`
}

// ListPatients
// (GET /v1/patients)
func (h *Handler) ListPatients(c echo.Context) error {
	practice := c.QueryParam("practice")
	if practice == "" {
		return fmt.Errorf("%w: practice is required", errors.BadRequest)
	}

	page, err := intQueryParam(c, "page", 1)
	if err != nil {
		return err
	}
	perPage, err := intQueryParam(c, "perPage", 0)
	if err != nil {
		return err
	}

	params := patients.ListParams{
		PracticeId:  practice,
		Page:        page,
		PerPage:     perPage,
		Category:    patients.FilterCategory(c.QueryParam("filter")),
		FilterField: c.QueryParam("fieldFilter"),
		FilterBy:    c.QueryParam("filterBy"),
		SortBy:      c.QueryParam("sortBy"),
		SortOrder:   c.QueryParam("typeSort"),
	}

	list, err := h.patients.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PatientListResponse{
		Patients:      list.Patients,
		CountPatients: list.Total,
	})
}

// GetEligibility
// (GET /v1/eligibility)
func (h *Handler) GetEligibility(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return fmt.Errorf("%w: id is required", errors.BadRequest)
	}

	eligibility, err := h.patients.ListEligibility(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": eligibility})
}

// SearchPatientsByName
// (GET /v1/practices/{practiceId}/patients/{filter})
func (h *Handler) SearchPatientsByName(c echo.Context) error {
	matches, err := h.patients.SearchByName(c.Request().Context(), c.Param("practiceId"), c.Param("filter"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"patients": matches})
}

// GetFamilyMembers
// (GET /v1/patients/{id}/family)
func (h *Handler) GetFamilyMembers(c echo.Context) error {
	members, err := h.patients.GetFamilyMembers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"familyMembers": members})
}

func intQueryParam(c echo.Context, name string, defaultValue int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errors.BadRequest, name)
	}
	return value, nil
}
