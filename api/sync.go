package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentalops/roster/errors"
	"github.com/dentalops/roster/patients"
)

type SyncPatientsRequest struct {
	Patients []*patients.Patient `json:"patients"`
	Company  string              `json:"company"`
	Practice string              `json:"practice"`
}

// SyncPatientFiles
// (POST /v1/patients/sync)
func (h *Handler) SyncPatientFiles(c echo.Context) error {
	request := SyncPatientsRequest{}
	if err := c.Bind(&request); err != nil {
		return fmt.Errorf("%w: invalid request body", errors.BadRequest)
	}

	if err := h.dispatcher.Dispatch(c.Request().Context(), request.Patients, request.Company, request.Practice); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Sync patient files successful!"})
}
