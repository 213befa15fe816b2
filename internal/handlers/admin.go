package handlers

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/service"
	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/view"
	"github.com/nfrund/zawiya/internal/view/pages"
)

// AdminHandler serves the administration pages.
type AdminHandler struct {
	responder
	cfg      config.Provider
	catalog  *catalog.Catalog
	students *service.Students
	classes  *service.Classes
	now      func() time.Time
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(r rendering.Renderer, cfg config.Provider, cat *catalog.Catalog, students *service.Students, classes *service.Classes) *AdminHandler {
	return &AdminHandler{
		responder: responder{renderer: r},
		cfg:       cfg,
		catalog:   cat,
		students:  students,
		classes:   classes,
		now:       time.Now,
	}
}

// Index sends /admin to the login page.
func (h *AdminHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, pages.AdminLoginPath)
}

// LoginGet renders the login form.
func (h *AdminHandler) LoginGet(c echo.Context) error {
	if middleware.IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, pages.AdminDashboardPath)
	}
	return h.page(c, http.StatusOK, "لوحة التحكم", nil, pages.AdminLogin())
}

// LoginPost checks the credentials. JSON clients get the envelope; the htmx form
// is redirected on success and shown a toast otherwise.
func (h *AdminHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, APIResponse{Message: MsgInvalidBody})
	}

	err := h.checkCredentials(req)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Administrator login failed", "username", req.Username, "error", err)
	}
	ok := err == nil
	switch {
	case isJSON(c):
		if !ok {
			return c.JSON(http.StatusUnauthorized, APIResponse{Message: MsgBadCredentials})
		}
	case !ok:
		center, batch := notifications()
		center.Notify(MsgBadCredentials, notify.Error, 0)
		return h.fragment(c, http.StatusOK, batch)
	}

	if err := middleware.SetAdmin(c, true); err != nil {
		return err
	}
	middleware.FromContext(c.Request().Context()).Info("Administrator logged in", "username", req.Username)

	if isJSON(c) {
		return c.JSON(http.StatusOK, APIResponse{Success: true})
	}
	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", pages.AdminDashboardPath)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, pages.AdminDashboardPath)
}

// checkCredentials fails for every login while no admin password is configured.
func (h *AdminHandler) checkCredentials(req LoginRequest) error {
	user := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.GetAdminUsername()))
	pass := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.GetAdminPassword()))
	if user&pass != 1 || h.cfg.GetAdminPassword() == "" {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// Logout clears the admin flag.
func (h *AdminHandler) Logout(c echo.Context) error {
	if err := middleware.SetAdmin(c, false); err != nil {
		return err
	}
	view.SetFlashSuccess(c, MsgLoggedOut)
	return c.Redirect(http.StatusSeeOther, pages.AdminLoginPath)
}

// Dashboard renders the registration overview and the schedule editor.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	stats, err := h.students.Stats(ctx, service.DashboardWindow)
	if err != nil {
		return err
	}
	students, err := h.students.List(ctx)
	if err != nil {
		return err
	}
	return h.page(c, http.StatusOK, "لوحة التحكم", nil, pages.Dashboard(pages.DashboardProps{
		Stats:    stats,
		Students: students,
		Schedule: h.catalog.Schedule(),
		Programs: h.catalog.Programs(),
	}))
}

// UpdateSchedule changes a class's meeting link and regenerates its QR code.
func (h *AdminHandler) UpdateSchedule(c echo.Context) error {
	var req UpdateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, UpdateScheduleResponse{Message: MsgInvalidBody})
	}
	if err := c.Validate(&req); err != nil {
		return h.scheduleFailure(c, http.StatusBadRequest, MsgInvalidBody)
	}

	ctx := c.Request().Context()
	name, err := h.classes.UpdateMeetLink(ctx, req.ID, req.MeetLink)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.scheduleFailure(c, http.StatusNotFound, MsgClassNotFound)
		}
		middleware.FromContext(ctx).Error("Failed to update meeting link", "class_id", req.ID, "error", err)
		return h.scheduleFailure(c, http.StatusInternalServerError, MsgErrorPrefix+err.Error())
	}

	if isJSON(c) {
		return c.JSON(http.StatusOK, UpdateScheduleResponse{Success: true, Message: service.MsgLinkUpdated, QRCode: name})
	}
	var row domain.ClassSession
	for _, cl := range h.catalog.Schedule() {
		if cl.ID == req.ID {
			row = cl
		}
	}
	center, batch := notifications()
	center.Notify(service.MsgLinkUpdated, notify.Success, 0)
	return h.fragment(c, http.StatusOK, batch, pages.ScheduleRow(row, name))
}

// scheduleFailure answers JSON clients with status and the htmx form with a
// toast, leaving the row untouched.
func (h *AdminHandler) scheduleFailure(c echo.Context, status int, msg string) error {
	if isJSON(c) {
		return c.JSON(status, UpdateScheduleResponse{Message: msg})
	}
	center, batch := notifications()
	center.Notify(msg, notify.Error, 0)
	c.Response().Header().Set("HX-Reswap", "none")
	return h.fragment(c, http.StatusOK, batch)
}

// Export downloads every student as a spreadsheet.
func (h *AdminHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()
	resp := c.Response()
	// The workbook is built in memory first so a failure can still redirect.
	buf := new(bytes.Buffer)
	if err := h.students.Export(ctx, buf); err != nil {
		middleware.FromContext(ctx).Error("Export failed", "error", err)
		view.SetFlashError(c, MsgExportFailed+err.Error())
		return c.Redirect(http.StatusSeeOther, pages.AdminDashboardPath)
	}
	resp.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+service.ExportFileName(h.now())+`"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Emails lists the addresses of a program's students.
func (h *AdminHandler) Emails(c echo.Context) error {
	var req EmailsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, APIResponse{Message: MsgInvalidBody})
	}
	if req.Program == "" {
		req.Program = service.AllPrograms
	}

	emails, err := h.students.Emails(c.Request().Context(), req.Program)
	if err != nil {
		return err
	}
	if isJSON(c) {
		return c.JSON(http.StatusOK, EmailsResponse{Success: true, Emails: emails, Count: len(emails)})
	}
	return h.fragment(c, http.StatusOK, nil, pages.EmailList(emails))
}
