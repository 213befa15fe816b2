package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/service"
)

// APIHandler serves the JSON endpoints.
type APIHandler struct {
	catalog       *catalog.Catalog
	registrations *service.Registrations
	contacts      *service.Contacts
	students      *service.Students
}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler(cat *catalog.Catalog, regs *service.Registrations, contacts *service.Contacts, students *service.Students) *APIHandler {
	return &APIHandler{catalog: cat, registrations: regs, contacts: contacts, students: students}
}

// Register stores a student from the accumulated wizard mapping.
func (h *APIHandler) Register(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, APIResponse{Message: MsgInvalidBody})
	}

	ctx := c.Request().Context()
	st, err := h.registrations.Register(ctx, service.RegisterInputFromMap(body))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, APIResponse{
		Success:   true,
		Message:   service.MsgRegistered,
		StudentID: st.StudentID,
	})
}

// Contact stores a contact message.
func (h *APIHandler) Contact(c echo.Context) error {
	var in service.ContactInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, APIResponse{Message: MsgInvalidBody})
	}
	if _, err := h.contacts.Submit(c.Request().Context(), in); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, APIResponse{Success: true, Message: service.MsgContactReceived})
}

// Schedules lists every class session.
func (h *APIHandler) Schedules(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Schedule())
}

// Programs lists the program catalogue.
func (h *APIHandler) Programs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Programs())
}

// Statistics reports live registration figures, or the headline numbers when
// the students cannot be read.
func (h *APIHandler) Statistics(c echo.Context) error {
	stats, err := h.students.Stats(c.Request().Context(), service.APIWindow)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Falling back to static statistics", "error", err)
		return c.JSON(http.StatusOK, h.catalog.Statistics())
	}
	return c.JSON(http.StatusOK, stats)
}

// serviceError maps a field error to 400 and anything else to 500.
func serviceError(c echo.Context, err error) error {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return c.JSON(http.StatusBadRequest, APIResponse{Message: fe.Message})
	}
	middleware.FromContext(c.Request().Context()).Error("Request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, APIResponse{Message: MsgErrorPrefix + err.Error()})
}
