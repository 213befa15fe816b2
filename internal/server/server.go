package server

import (
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/handlers"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/storage"
)

// Handlers are the request handlers mounted by RegisterRoutes.
type Handlers struct {
	Pages   *handlers.PageHandler
	Wizard  *handlers.WizardHandler
	Contact *handlers.ContactHandler
	API     *handlers.APIHandler
	Admin   *handlers.AdminHandler
	Widgets *handlers.WidgetHandler
	QRCodes *storage.FileHandler
}

// Deps are what the server needs besides its handlers.
type Deps struct {
	Config    config.Provider
	Renderer  *rendering.UniversalRenderer
	Validate  *validator.Validate
	PageViews middleware.PageViewTracker
	// Static holds the files served under /static and the service worker.
	Static fs.FS
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	handlers Handlers
	static   fs.FS
}

// New creates a Server with the middleware chain installed. Routes are added
// by RegisterRoutes.
func New(deps Deps, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator(deps.Validate)
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.Visitor)
	e.Use(middleware.Logger)
	if deps.PageViews != nil {
		e.Use(middleware.PageViews(deps.PageViews))
	}

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		handlers: h,
		static:   deps.Static,
	}
}
