package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator wraps an engine that already carries the site's custom tags.
func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the admin login body, sent as JSON or as a form.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UpdateScheduleRequest changes the meeting link of a class.
type UpdateScheduleRequest struct {
	ID       int    `json:"id" form:"id" validate:"required"`
	MeetLink string `json:"meet_link" form:"meet_link" validate:"required,url"`
}

// EmailsRequest selects the students whose addresses are listed.
type EmailsRequest struct {
	Program string `json:"program" form:"program"`
}

// formValues returns the first value of every posted form field.
func formValues(c echo.Context) map[string]string {
	params, err := c.FormParams()
	if err != nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

func isJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
