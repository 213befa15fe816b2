package components

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Share paths. The page script posts ok=true|false to the result paths after
// the browser has tried the clipboard or the share sheet.
const (
	CopyPath        = "/ui/copy"
	CopyResultPath  = "/ui/copy/result"
	SharePath       = "/ui/share"
	ShareResultPath = "/ui/share/result"
)

// HX-Trigger events handled by the page script: CopyEvent writes to the
// clipboard, ShareEvent opens the native share sheet.
const (
	CopyEvent  = "zawiya:copy"
	ShareEvent = "zawiya:share"
)

// CopyButton asks the server to copy text; the server answers with CopyEvent.
func CopyButton(label, text string) g.Node {
	return Button(Type("button"), Class("btn btn-outline copy-btn"),
		hx.Post(CopyPath),
		hx.Vals(jsonVals(map[string]string{"text": text})),
		hx.Swap("none"),
		I(Class("fas fa-copy")), g.Text(" "+label),
	)
}

// ShareButton shares a page link, falling back to copying it.
func ShareButton(title, text, url string) g.Node {
	return Button(Type("button"), Class("btn btn-outline share-btn"),
		hx.Post(SharePath),
		hx.Vals(jsonVals(map[string]string{"title": title, "text": text, "url": url})),
		hx.Swap("none"),
		I(Class("fas fa-share-alt")), g.Text(" مشاركة"),
	)
}

func jsonVals(v map[string]string) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}

// LoadingOverlay is shown by htmx while a request marked with it is in flight.
func LoadingOverlay() g.Node {
	return Div(ID("loadingOverlay"), Class("loading-overlay htmx-indicator"),
		Div(Class("spinner")),
		P(g.Text("جاري المعالجة...")),
	)
}
