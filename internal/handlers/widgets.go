package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/zawiya/internal/analytics"
	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/service"
	"github.com/nfrund/zawiya/internal/ui"
	"github.com/nfrund/zawiya/internal/ui/accordion"
	"github.com/nfrund/zawiya/internal/ui/modal"
	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/ui/search"
	"github.com/nfrund/zawiya/internal/ui/share"
	"github.com/nfrund/zawiya/internal/view"
	"github.com/nfrund/zawiya/internal/view/components"
	"github.com/nfrund/zawiya/internal/view/pages"
)

// WidgetHandler serves the small interactive pieces of the pages: newsletter,
// search, FAQ, modals, copy and share.
type WidgetHandler struct {
	responder
	catalog    *catalog.Catalog
	newsletter *service.Newsletter
	tracker    *analytics.Tracker
}

// NewWidgetHandler creates a WidgetHandler.
func NewWidgetHandler(r rendering.Renderer, cat *catalog.Catalog, nl *service.Newsletter, tracker *analytics.Tracker) *WidgetHandler {
	return &WidgetHandler{responder: responder{renderer: r}, catalog: cat, newsletter: nl, tracker: tracker}
}

// Newsletter subscribes the posted address.
func (h *WidgetHandler) Newsletter(c echo.Context) error {
	addr := c.FormValue("email")
	center, batch := notifications()

	res, ok := h.newsletter.Subscribe(c.Request().Context(), addr)
	form := pages.NewsletterProps{Email: addr}
	switch {
	case !res.Valid:
		form.Error = res.Reason
	case !ok:
		center.Notify(MsgSubscribeFailed, notify.Error, 0)
	default:
		form.Email = ""
		center.Notify(service.MsgSubscribed, notify.Success, 0)
	}
	return h.fragment(c, http.StatusOK, batch, pages.NewsletterForm(form))
}

// Search filters the cards of a page by the query.
func (h *WidgetHandler) Search(c echo.Context) error {
	var items []search.Item
	if c.QueryParam("page") == pages.HomeSearchPage {
		items = pages.HomeSearchItems(h.catalog.Programs(), h.catalog.Structure().Teachers, h.catalog.FAQ())
	}
	items = search.Filter(c.QueryParam("q"), items)
	return h.fragment(c, http.StatusOK, nil, components.SearchFilterOOB(items))
}

// FAQ applies a click to the accordion. The page posts the open item, so the
// accordion is rebuilt from the request alone.
func (h *WidgetHandler) FAQ(c echo.Context) error {
	faq := h.catalog.FAQ()
	acc := accordion.New(len(faq))
	if open, err := strconv.Atoi(c.FormValue("open")); err == nil && open >= 0 {
		acc.Toggle(open)
	}
	if item, err := strconv.Atoi(c.FormValue("item")); err == nil {
		acc.Toggle(item)
	}
	return h.fragment(c, http.StatusOK, nil, components.FAQList(faq, acc))
}

// ModalOpen opens the modal named in the path.
func (h *WidgetHandler) ModalOpen(c echo.Context) error {
	return h.modal(c, func(ctl *modal.Controller, id string) { ctl.Open(id) })
}

// ModalClose closes the modal named in the path.
func (h *WidgetHandler) ModalClose(c echo.Context) error {
	return h.modal(c, func(ctl *modal.Controller, id string) { ctl.Close(id) })
}

// ModalOverlay handles a click inside an open modal; only clicks on the
// overlay itself close it.
func (h *WidgetHandler) ModalOverlay(c echo.Context) error {
	overlay := c.FormValue("overlay") == "true"
	return h.modal(c, func(ctl *modal.Controller, id string) { ctl.OverlayClick(id, overlay) })
}

// ModalCloseAll closes every open modal, as Escape does.
func (h *WidgetHandler) ModalCloseAll(c echo.Context) error {
	ctl, lock, st := h.modals(c)
	ctl.KeyDown(modal.EscapeKey)
	if err := h.saveModals(c, ctl, lock); err != nil {
		return err
	}
	nodes := make([]g.Node, 0, len(st.Open)+1)
	for _, id := range st.Open {
		nodes = append(nodes, pages.RegisterModal(id, ctl.IsOpen(id), true))
	}
	nodes = append(nodes, components.ScrollLock(lock.Locked(), true))
	return h.fragment(c, http.StatusOK, nil, nodes...)
}

func (h *WidgetHandler) modal(c echo.Context, apply func(*modal.Controller, string)) error {
	id := c.Param("id")
	node := pages.RegisterModal(id, false, false)
	if node == nil {
		return c.NoContent(http.StatusNotFound)
	}

	ctl, lock, _ := h.modals(c)
	apply(ctl, id)
	if err := h.saveModals(c, ctl, lock); err != nil {
		return err
	}
	return h.fragment(c, http.StatusOK, nil,
		pages.RegisterModal(id, ctl.IsOpen(id), false),
		components.ScrollLock(lock.Locked(), true),
	)
}

// modals rebuilds the visitor's modal controller from the session.
func (h *WidgetHandler) modals(c echo.Context) (*modal.Controller, *ui.ScrollLock, view.ModalState) {
	st := view.LoadModals(c)
	lock := &ui.ScrollLock{}
	if st.Locked {
		lock.Lock()
	}
	ctl := modal.New(lock, pages.RegisterModals...)
	ctl.Restore(st.Open)
	return ctl, lock, st
}

func (h *WidgetHandler) saveModals(c echo.Context, ctl *modal.Controller, lock *ui.ScrollLock) error {
	return view.SaveModals(c, view.ModalState{Open: ctl.OpenIDs(), Locked: lock.Locked()})
}

// Copy asks the page to write the posted text to the clipboard. The outcome is
// reported back to CopyResult once the browser has tried.
func (h *WidgetHandler) Copy(c echo.Context) error {
	events := clientEvents{}
	_ = events.WriteText(c.FormValue("text"))
	return events.write(c)
}

// CopyResult tells the user how the clipboard write went.
func (h *WidgetHandler) CopyResult(c echo.Context) error {
	center, batch := notifications()
	helper := &share.Helper{Primary: reportedResult(c), Notifier: center}
	helper.Copy(c.FormValue("text"))
	return h.fragment(c, http.StatusOK, batch)
}

// Share opens the native share sheet when the browser has one and otherwise
// copies the link.
func (h *WidgetHandler) Share(c echo.Context) error {
	events := clientEvents{}
	if c.FormValue("native") == "true" {
		_ = events.Share(c.FormValue("title"), c.FormValue("text"), c.FormValue("url"))
	} else {
		_ = events.WriteText(c.FormValue("url"))
	}
	return events.write(c)
}

// ShareResult records a completed native share; a rejected one is only logged.
func (h *WidgetHandler) ShareResult(c echo.Context) error {
	center, batch := notifications()
	helper := &share.Helper{
		Sharer:   reportedResult(c),
		Notifier: center,
		Tracker:  h.visitorTracker(c),
		Logger:   middleware.FromContext(c.Request().Context()),
	}
	helper.Share(c.FormValue("title"), c.FormValue("text"), c.FormValue("url"))
	return h.fragment(c, http.StatusOK, batch)
}

// ToastExpired acknowledges a toast's expiry; htmx then removes the element.
func (h *WidgetHandler) ToastExpired(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (h *WidgetHandler) visitorTracker(c echo.Context) share.EventTracker {
	if h.tracker == nil {
		return nil
	}
	return h.tracker.For(middleware.VisitorID(c))
}

// clientEvents collects the HX-Trigger events handed to the page script. It is
// the clipboard and the share sheet of an htmx response.
type clientEvents map[string]any

func (e clientEvents) WriteText(text string) error {
	e[components.CopyEvent] = map[string]string{"text": text}
	return nil
}

func (e clientEvents) Share(title, text, url string) error {
	e[components.ShareEvent] = map[string]string{"title": title, "text": text, "url": url}
	return nil
}

func (e clientEvents) write(c echo.Context) error {
	raw, err := json.Marshal(map[string]any(e))
	if err != nil {
		return err
	}
	c.Response().Header().Set("HX-Trigger", string(raw))
	return c.NoContent(http.StatusOK)
}

// clientResult replays the outcome of a clipboard write or share the page
// script reported with ok and error form values.
type clientResult struct{ err error }

func reportedResult(c echo.Context) clientResult {
	if c.FormValue("ok") == "true" {
		return clientResult{}
	}
	reason := c.FormValue("error")
	if reason == "" {
		reason = "rejected by the browser"
	}
	return clientResult{err: errors.New(reason)}
}

func (r clientResult) WriteText(string) error { return r.err }

func (r clientResult) Share(string, string, string) error { return r.err }
