package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/contact"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/validate"
	"github.com/nfrund/zawiya/internal/view/pages"
)

// ContactHandler serves the htmx side of the contact form.
type ContactHandler struct {
	responder
	catalog *catalog.Catalog
	checker validate.Checker
	sender  contact.Sender
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(r rendering.Renderer, cat *catalog.Catalog, checker validate.Checker, sender contact.Sender) *ContactHandler {
	return &ContactHandler{responder: responder{renderer: r}, catalog: cat, checker: checker, sender: sender}
}

// Submit validates and sends the message, answering with the form or the
// success panel.
func (h *ContactHandler) Submit(c echo.Context) error {
	center, batch := notifications()
	s := contact.New(h.checker, h.sender, center, nil)
	s.Submit(c.Request().Context(), formValues(c))
	return h.fragment(c, http.StatusOK, batch, pages.ContactPanel(pages.ContactProps{
		Submitter: s,
		Subjects:  h.catalog.ContactSubjects(),
	}))
}

// Form returns an empty form; the success panel requests it when it expires.
func (h *ContactHandler) Form(c echo.Context) error {
	return h.fragment(c, http.StatusOK, nil, pages.ContactPanel(pages.ContactProps{
		Submitter: contact.New(h.checker, nil, nil, nil),
		Subjects:  h.catalog.ContactSubjects(),
	}))
}
