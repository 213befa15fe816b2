package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/view"
	"github.com/nfrund/zawiya/internal/view/components"
	"github.com/nfrund/zawiya/internal/view/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	h := s.handlers
	e := s.E
	rateLimiter := middleware.RateLimiter()

	if s.static != nil {
		e.StaticFS("/static", s.static)
		e.GET("/service-worker.js", func(c echo.Context) error {
			c.Response().Header().Set("Service-Worker-Allowed", "/")
			return echo.StaticFileHandler("service-worker.js", s.static)(c)
		})
	}
	e.GET("/qrcodes/:file", h.QRCodes.Serve)

	// Pages.
	e.GET("/", h.Pages.HomeGet)
	e.GET("/contact", h.Pages.ContactGet)
	e.GET("/structure", h.Pages.StructureGet)
	e.GET("/schedule/:student_id", h.Pages.ScheduleGet)

	// Registration wizard.
	e.GET("/register", h.Wizard.Start)
	e.POST(pages.WizardNextPath, h.Wizard.Next)
	e.POST(pages.WizardPrevPath, h.Wizard.Prev)
	e.POST(pages.WizardSelectPath, h.Wizard.Select)
	e.POST(pages.WizardSubmitPath, h.Wizard.Submit, rateLimiter)

	// Contact form.
	e.POST(pages.ContactSubmitPath, h.Contact.Submit, rateLimiter)
	e.GET(pages.ContactFormPath, h.Contact.Form)

	// Widgets.
	e.POST(pages.NewsletterPath, h.Widgets.Newsletter, rateLimiter)
	e.GET(components.SearchPath, h.Widgets.Search)
	e.POST(components.FAQPath, h.Widgets.FAQ)
	e.POST(components.ModalOpenPath+":id", h.Widgets.ModalOpen)
	e.POST(components.ModalClosePath+":id", h.Widgets.ModalClose)
	e.POST(components.ModalOverlayPath+":id", h.Widgets.ModalOverlay)
	e.POST(components.ModalCloseAllPath, h.Widgets.ModalCloseAll)
	e.POST(components.CopyPath, h.Widgets.Copy)
	e.POST(components.CopyResultPath, h.Widgets.CopyResult)
	e.POST(components.SharePath, h.Widgets.Share)
	e.POST(components.ShareResultPath, h.Widgets.ShareResult)
	e.GET(view.ToastExpiredPath, h.Widgets.ToastExpired)

	// JSON API.
	api := e.Group("/api")
	api.POST("/register", h.API.Register, rateLimiter)
	api.POST("/contact", h.API.Contact, rateLimiter)
	api.GET("/schedules", h.API.Schedules)
	api.GET("/programs", h.API.Programs)
	api.GET("/statistics", h.API.Statistics)

	// Administration.
	e.GET("/admin", h.Admin.Index)
	e.GET(pages.AdminLoginPath, h.Admin.LoginGet)
	e.POST(pages.AdminLoginPath, h.Admin.LoginPost, rateLimiter)
	e.GET(pages.AdminLogoutPath, h.Admin.Logout)
	e.GET(pages.AdminDashboardPath, h.Admin.Dashboard, middleware.RequireAdmin)
	e.POST(pages.AdminUpdateSchedulePath, h.Admin.UpdateSchedule, middleware.RequireAdmin)
	e.GET(pages.AdminExportPath, h.Admin.Export, middleware.RequireAdmin)
	e.POST(pages.AdminEmailsPath, h.Admin.Emails, middleware.RequireAdmin)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.RouteNotFound("/api/*", func(c echo.Context) error {
		return echo.ErrNotFound
	})
	e.RouteNotFound("/*", h.Pages.NotFound)
}
