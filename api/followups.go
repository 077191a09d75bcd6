package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dentalops/roster/errors"
	"github.com/dentalops/roster/patients"
)

type CreateFollowUpRequest struct {
	PatientId   string    `json:"patientId"`
	Date        time.Time `json:"date"`
	Assignee    string    `json:"assignee"`
	Description string    `json:"description"`
}

// CreateFollowUp
// (POST /v1/patients/followups)
func (h *Handler) CreateFollowUp(c echo.Context) error {
	request := CreateFollowUpRequest{}
	if err := c.Bind(&request); err != nil {
		return fmt.Errorf("%w: invalid request body", errors.BadRequest)
	}
	if request.PatientId == "" {
		return fmt.Errorf("%w: patientId is required", errors.BadRequest)
	}

	token := c.Request().Header.Get(echo.HeaderAuthorization)
	if token == "" {
		return errors.Unauthorized
	}

	create := patients.FollowUpCreate{
		PatientId:   request.PatientId,
		DueDate:     request.Date,
		Assignee:    request.Assignee,
		Description: request.Description,
	}
	if _, err := h.patients.CreateFollowUp(c.Request().Context(), create, token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Patient followed successful!"})
}
