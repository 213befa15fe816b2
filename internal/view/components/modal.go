package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Modal paths. The modal id is the last path segment.
const (
	ModalOpenPath     = "/ui/modal/open/"
	ModalClosePath    = "/ui/modal/close/"
	ModalOverlayPath  = "/ui/modal/overlay/"
	ModalCloseAllPath = "/ui/modal/close-all"
)

// ModalProps describes one declared dialog.
type ModalProps struct {
	ID    string
	Title string
	Body  g.Node
	Open  bool
	// OOB renders the modal as an out-of-band swap.
	OOB bool
}

// ModalID is the element id of a modal.
func ModalID(id string) string { return "modal-" + id }

// Modal renders a dialog. Clicks inside an open modal are posted with a flag
// telling whether they landed on the overlay itself; only those close it.
func Modal(p ModalProps) g.Node {
	return Div(ID(ModalID(p.ID)),
		c.Classes{"modal": true, "active": p.Open},
		Role("dialog"),
		Aria("hidden", ariaBool(!p.Open)),
		g.If(p.OOB, hx.SwapOOB("true")),
		g.If(p.Open, g.Group{
			hx.Post(ModalOverlayPath + p.ID),
			hx.Trigger("click"),
			hx.Vals("js:{overlay: event.target === event.currentTarget}"),
			hx.Target("this"),
			hx.Swap("outerHTML"),
		}),
		Div(Class("modal-content"),
			Div(Class("modal-header"),
				H3(g.Text(p.Title)),
				Button(Type("button"), Class("modal-close"), Aria("label", "إغلاق"), hx.Trigger("click consume"),
					hx.Post(ModalClosePath+p.ID),
					hx.Target("#"+ModalID(p.ID)),
					hx.Swap("outerHTML"),
					I(Class("fas fa-times")),
				),
			),
			Div(Class("modal-body"), p.Body),
		),
	)
}

// ModalTrigger is a control opening the modal id.
func ModalTrigger(id, label string) g.Node {
	return A(Href("#"), Class("modal-trigger"), Data("modal", id),
		hx.Post(ModalOpenPath+id),
		hx.Target("#"+ModalID(id)),
		hx.Swap("outerHTML"),
		g.Text(label),
	)
}

// EscapeListener posts close-all when Escape is pressed anywhere on the page.
func EscapeListener() g.Node {
	return Div(ID("modal-escape"), Class("hidden"),
		hx.Post(ModalCloseAllPath),
		hx.Trigger("keyup[key=='Escape'] from:body"),
		hx.Swap("none"),
	)
}

// ScrollLock renders the stylesheet that disables page scroll while locked.
func ScrollLock(locked bool, oob bool) g.Node {
	css := ""
	if locked {
		css = "body{overflow:hidden}"
	}
	return StyleEl(ID("scroll-lock"), g.If(oob, hx.SwapOOB("true")), g.Raw(css))
}

func ariaBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
