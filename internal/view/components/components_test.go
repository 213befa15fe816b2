package components_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/zawiya/internal/ui/lazy"
	"github.com/nfrund/zawiya/internal/view/components"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestNavbarCarriesScrollSettings(t *testing.T) {
	out := render(t, components.Navbar("/contact"))

	assert.Contains(t, out, `data-section-offset="200"`)
	assert.Contains(t, out, `data-anchor-margin="20"`)
	assert.Contains(t, out, `data-scrolled-after="100"`)
	assert.Contains(t, out, `data-scroll-top-after="300"`)
	assert.Contains(t, out, `data-parallax="0.5"`)
	assert.Contains(t, out, `<a href="/contact" class="active nav-link">`)
}

func TestCounterFinalText(t *testing.T) {
	out := render(t, components.Counter("students", 120, "طالب", "fas fa-users"))

	assert.Contains(t, out, `data-target="120"`)
	assert.Contains(t, out, `data-final="120+"`)
	assert.Contains(t, out, `>0</span>`)
}

func TestImage(t *testing.T) {
	deferred := &lazy.Image{ID: "qr-1", DataSrc: "/qrcodes/qr_1.png"}
	out := render(t, components.Image(deferred, "QR", "qr-code"))
	assert.Contains(t, out, `class="qr-code lazy"`)
	assert.Contains(t, out, `data-src="/qrcodes/qr_1.png"`)
	assert.Contains(t, out, `<noscript><img class="qr-code" src="/qrcodes/qr_1.png" alt="QR"></noscript>`)

	eager := &lazy.Image{ID: "logo", Src: "/static/images/logo.png"}
	out = render(t, components.Image(eager, "logo", "member-image"))
	assert.Contains(t, out, `src="/static/images/logo.png"`)
	assert.NotContains(t, out, "noscript")
}
