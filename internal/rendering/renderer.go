// Package rendering writes templ components and gomponents nodes to echo responses.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/middleware"
)

// Renderer renders any supported component (templ or gomponents).
type Renderer interface {
	// RenderComponent renders a component to bytes, e.g. for a fragment embedded elsewhere.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full page with the given status.
	RenderPage(c echo.Context, status int, component any) error

	// RenderFragments writes several components back to back, the way htmx expects a
	// target fragment followed by out-of-band swaps.
	RenderFragments(c echo.Context, status int, components ...any) error
}

// UniversalRenderer renders templ.Component values and anything implementing
// Render(io.Writer) error, such as gomponents.Node.
type UniversalRenderer struct{}

func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case nil:
		return nil
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	return r.RenderFragments(c, status, component)
}

// RenderFragments buffers the output first so a failing component produces an error
// response instead of a truncated page.
func (r *UniversalRenderer) RenderFragments(c echo.Context, status int, components ...any) error {
	ctx := c.Request().Context()
	var buf bytes.Buffer
	for _, comp := range components {
		if err := r.render(ctx, comp, &buf); err != nil {
			middleware.FromContext(ctx).Error("Failed to render component", "error", err, "path", c.Request().URL.Path)
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// Render implements echo.Renderer, so c.Render(status, name, component) works too.
// The component is passed as data; name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
