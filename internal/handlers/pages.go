package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/contact"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/service"
	"github.com/nfrund/zawiya/internal/validate"
	"github.com/nfrund/zawiya/internal/view"
	"github.com/nfrund/zawiya/internal/view/pages"
)

// PageHandler serves the public pages.
type PageHandler struct {
	responder
	catalog       *catalog.Catalog
	registrations *service.Registrations
	checker       validate.Checker
	baseURL       string
	now           func() time.Time
}

// NewPageHandler creates a PageHandler. baseURL is the public address of the site.
func NewPageHandler(r rendering.Renderer, cat *catalog.Catalog, regs *service.Registrations, checker validate.Checker, baseURL string) *PageHandler {
	return &PageHandler{
		responder:     responder{renderer: r},
		catalog:       cat,
		registrations: regs,
		checker:       checker,
		baseURL:       baseURL,
		now:           time.Now,
	}
}

// HomeGet renders the home page.
func (h *PageHandler) HomeGet(c echo.Context) error {
	return h.home(c, http.StatusOK)
}

// NotFound renders the home page with a 404 status.
func (h *PageHandler) NotFound(c echo.Context) error {
	return h.home(c, http.StatusNotFound)
}

func (h *PageHandler) home(c echo.Context, status int) error {
	return h.page(c, status, "", nil, pages.Home(pages.HomeProps{
		Programs:   h.catalog.Programs(),
		Statistics: h.catalog.Statistics(),
		Teachers:   h.catalog.Structure().Teachers,
		FAQ:        h.catalog.FAQ(),
	}))
}

// ContactGet renders the contact page.
func (h *PageHandler) ContactGet(c echo.Context) error {
	s := contact.New(h.checker, nil, nil, nil)
	return h.page(c, http.StatusOK, "اتصل بنا", nil, pages.Contact(pages.ContactProps{
		Submitter: s,
		Subjects:  h.catalog.ContactSubjects(),
	}))
}

// StructureGet renders the organisation page.
func (h *PageHandler) StructureGet(c echo.Context) error {
	return h.page(c, http.StatusOK, "الهيكل التنظيمي", nil, pages.Structure(pages.StructureProps{
		Structure:  h.catalog.Structure(),
		LazyImages: lazyImages(c),
	}))
}

// ScheduleGet renders a student's schedule. Unknown students are sent home with
// an error flash.
func (h *PageHandler) ScheduleGet(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("student_id")

	sched, err := h.registrations.Schedule(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			view.SetFlashError(c, MsgUnknownStudent)
		} else {
			middleware.FromContext(ctx).Error("Failed to load schedule", "student_id", id, "error", err)
			view.SetFlashError(c, MsgScheduleFailed)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	label, _ := h.catalog.ProgramLabel(sched.Student.Program)
	return h.page(c, http.StatusOK, "جدول الحصص", nil, pages.Schedule(pages.ScheduleProps{
		Student:      *sched.Student,
		ProgramLabel: label,
		Classes:      sched.Classes,
		QRCodes:      sched.QRCodes,
		Now:          h.now(),
		LazyImages:   lazyImages(c),
		PageURL:      h.baseURL + c.Request().URL.Path,
	}))
}
