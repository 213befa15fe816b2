package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/ui/lazy"
)

// ObserverCookie is set by the page script: "1" when the browser can observe
// visibility, "0" when it cannot. Without the cookie images are deferred.
const ObserverCookie = "zawiya_io"

// placeholderSrc is a transparent pixel shown until a deferred image loads.
const placeholderSrc = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"

// LazyImages prepares images for rendering: with observer support the real
// source stays deferred, otherwise every image gets its source at once.
func LazyImages(observer bool, images ...*lazy.Image) []*lazy.Image {
	lazy.NewLoader(observer, images...)
	return images
}

// Image renders a lazy.Image. Deferred images carry data-src and a placeholder,
// plus a noscript copy with the real source for pages without the script.
func Image(img *lazy.Image, alt, class string) g.Node {
	if img.DataSrc != "" {
		return g.Group{
			Img(ID(img.ID), Class(class+" lazy"), Src(placeholderSrc), Data("src", img.DataSrc), Alt(alt)),
			NoScript(Img(Class(class), Src(img.DataSrc), Alt(alt))),
		}
	}
	return Img(ID(img.ID), Class(class), Src(img.Src), Alt(alt), g.Attr("loading", "lazy"))
}
