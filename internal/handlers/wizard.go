package handlers

import (
	"maps"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/registration"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/service"
	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/validate"
	"github.com/nfrund/zawiya/internal/view"
	"github.com/nfrund/zawiya/internal/view/pages"
)

// WizardHandler drives the registration wizard. The wizard state lives in the
// visitor's session between requests.
type WizardHandler struct {
	responder
	catalog   *catalog.Catalog
	checker   validate.Checker
	submitter registration.Submitter
}

// NewWizardHandler creates a WizardHandler.
func NewWizardHandler(r rendering.Renderer, cat *catalog.Catalog, checker validate.Checker, submitter registration.Submitter) *WizardHandler {
	return &WizardHandler{
		responder: responder{renderer: r},
		catalog:   cat,
		checker:   checker,
		submitter: submitter,
	}
}

// Start renders the registration page on step 1, discarding any earlier progress.
func (h *WizardHandler) Start(c echo.Context) error {
	if err := view.ClearWizard(c); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to reset wizard", "error", err)
	}
	w := h.wizard(nil)
	return h.page(c, http.StatusOK, "التسجيل", nil, pages.Register(pages.RegisterProps{
		Wizard:     w,
		Programs:   h.catalog.Programs(),
		States:     h.catalog.States(),
		Values:     w.Data(),
		OpenModals: openModalSet(view.LoadModals(c)),
	}))
}

// Next validates the current step and advances.
func (h *WizardHandler) Next(c echo.Context) error {
	center, batch := notifications()
	w := h.restore(c, center)
	values := formValues(c)
	w.Next(values)
	return h.respond(c, w, batch, values)
}

// Prev goes back one step.
func (h *WizardHandler) Prev(c echo.Context) error {
	center, batch := notifications()
	w := h.restore(c, center)
	values := formValues(c)
	w.Prev()
	return h.respond(c, w, batch, values)
}

// Select marks the clicked program option.
func (h *WizardHandler) Select(c echo.Context) error {
	center, batch := notifications()
	w := h.restore(c, center)
	values := formValues(c)
	w.SelectProgram(values[registration.FieldProgram])
	return h.respond(c, w, batch, values)
}

// Submit sends the registration. On success the browser is sent to the
// student's schedule.
func (h *WizardHandler) Submit(c echo.Context) error {
	center, batch := notifications()
	w := h.restore(c, center)
	values := formValues(c)

	out := w.Submit(c.Request().Context(), values, values[registration.FieldTerms] != "")
	if out.Redirect != "" {
		if err := view.ClearWizard(c); err != nil {
			middleware.FromContext(c.Request().Context()).Warn("Failed to reset wizard", "error", err)
		}
		view.SetFlashSuccess(c, service.MsgRegistered)
		c.Response().Header().Set("HX-Redirect", out.Redirect)
		return c.NoContent(http.StatusOK)
	}
	return h.respond(c, w, batch, values)
}

func (h *WizardHandler) wizard(n notify.Notifier) *registration.Wizard {
	if n == nil {
		n = notify.NewCenter(&notify.Batch{}, nil)
	}
	return registration.New(registration.Deps{
		Checker:   h.checker,
		Notifier:  n,
		Submitter: h.submitter,
		Programs:  h.catalog,
	})
}

func (h *WizardHandler) restore(c echo.Context, n notify.Notifier) *registration.Wizard {
	w := h.wizard(n)
	if st, ok := view.LoadWizard(c); ok {
		w.Restore(st)
	}
	return w
}

// respond saves the wizard and swaps it in place. The inputs just posted are
// shown over the accumulated data so nothing typed is lost.
func (h *WizardHandler) respond(c echo.Context, w *registration.Wizard, batch *notify.Batch, values map[string]string) error {
	if err := view.SaveWizard(c, w.State()); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to save wizard", "error", err)
	}
	shown := w.Data()
	maps.Copy(shown, values)
	return h.fragment(c, http.StatusOK, batch, pages.Wizard(pages.RegisterProps{
		Wizard:   w,
		Programs: h.catalog.Programs(),
		States:   h.catalog.States(),
		Values:   shown,
	}))
}

func openModalSet(st view.ModalState) map[string]bool {
	out := make(map[string]bool, len(st.Open))
	for _, id := range st.Open {
		out[id] = true
	}
	return out
}
