// Package app wires the site's services into a samber/do injector and runs them.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/zawiya/internal/analytics"
	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/database"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/email"
	"github.com/nfrund/zawiya/internal/handlers"
	"github.com/nfrund/zawiya/internal/kvstore"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/pubsub"
	"github.com/nfrund/zawiya/internal/qr"
	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/script"
	"github.com/nfrund/zawiya/internal/server"
	"github.com/nfrund/zawiya/internal/service"
	"github.com/nfrund/zawiya/internal/storage"
	"github.com/nfrund/zawiya/internal/validate"
	"github.com/nfrund/zawiya/web"
)

// ScheduleRuleFile is the optional Tengo rule in the data directory that
// replaces the built-in class eligibility rule.
const ScheduleRuleFile = "schedule_rule.tengo"

// Repositories are the stores behind the registration and contact flows. The
// injector closes them on shutdown.
type Repositories struct {
	database.Repositories
	close func()
}

func (r *Repositories) Shutdown() error {
	r.close()
	return nil
}

// Bus is the message bus with its tracing exporter.
type Bus struct {
	*pubsub.WatermillBridge
	flush func()
}

func (b *Bus) Shutdown() error {
	err := b.Close()
	b.flush()
	return err
}

// NewInjector registers every service of the site. Data files live on fs under
// the configured data directory.
func NewInjector(cfg *config.Config, fs afero.Fs, logger *slog.Logger) *do.RootScope {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, fs)
	do.ProvideValue(i, validate.New())

	do.Provide(i, func(i do.Injector) (*kvstore.Store, error) {
		return kvstore.New(fs, filepath.Join(cfg.GetDataDir(), "kv")), nil
	})
	do.Provide(i, func(i do.Injector) (storage.Store, error) {
		return storage.NewAferoStore(afero.NewBasePathFs(fs, cfg.GetDataDir())), nil
	})
	do.Provide(i, func(i do.Injector) (*Repositories, error) {
		kv := do.MustInvoke[*kvstore.Store](i)
		repos, closeFn, err := database.NewRepositories(context.Background(), cfg, kv)
		if err != nil {
			return nil, err
		}
		return &Repositories{Repositories: repos, close: closeFn}, nil
	})
	do.Provide(i, func(i do.Injector) (*catalog.Catalog, error) {
		if cfg.GetCatalogPath() == "" {
			return catalog.Default(), nil
		}
		return catalog.Load(fs, cfg.GetCatalogPath())
	})
	do.Provide(i, func(i do.Injector) (*script.ScheduleRule, error) {
		return loadScheduleRule(fs, filepath.Join(cfg.GetDataDir(), ScheduleRuleFile), logger)
	})
	do.Provide(i, func(i do.Injector) (*qr.Generator, error) {
		return qr.NewGenerator(do.MustInvoke[storage.Store](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*Bus, error) {
		tracer, flush, err := pubsub.SetupTracing(context.Background(), pubsub.TracingConfigFromEnv())
		if err != nil {
			return nil, fmt.Errorf("failed to set up tracing: %w", err)
		}
		return &Bus{WatermillBridge: pubsub.NewWatermillBridgeWithTracer(tracer), flush: flush}, nil
	})
	do.Provide(i, func(i do.Injector) (*analytics.Tracker, error) {
		return analytics.New(do.MustInvoke[*Bus](i), logger), nil
	})
	do.Provide(i, func(i do.Injector) (domain.EmailSender, error) {
		return email.NewEmailService(cfg)
	})

	provideServices(i)
	provideHandlers(i)
	return i
}

func provideServices(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*service.Registrations, error) {
		return service.NewRegistrations(
			do.MustInvoke[*Repositories](i).Students,
			do.MustInvoke[*catalog.Catalog](i),
			do.MustInvoke[*script.ScheduleRule](i),
			do.MustInvoke[*qr.Generator](i),
			do.MustInvoke[*Bus](i),
			do.MustInvoke[*validate.Validator](i).Engine(),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*service.Contacts, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return service.NewContacts(
			do.MustInvoke[*Repositories](i).Contacts,
			do.MustInvoke[domain.EmailSender](i),
			cfg.GetAdminEmail(),
			do.MustInvoke[*Bus](i),
			do.MustInvoke[*validate.Validator](i).Engine(),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*service.Students, error) {
		return service.NewStudents(do.MustInvoke[*Repositories](i).Students), nil
	})
	do.Provide(i, func(i do.Injector) (*service.Classes, error) {
		return service.NewClasses(do.MustInvoke[*catalog.Catalog](i), do.MustInvoke[*qr.Generator](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*service.Newsletter, error) {
		return service.NewNewsletter(
			do.MustInvoke[*kvstore.Store](i),
			do.MustInvoke[*validate.Validator](i),
			do.MustInvoke[*Bus](i),
		), nil
	})
}

func provideHandlers(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, func(i do.Injector) (server.Handlers, error) {
		cfg := do.MustInvoke[config.Provider](i)
		r := do.MustInvoke[*rendering.UniversalRenderer](i)
		cat := do.MustInvoke[*catalog.Catalog](i)
		v := do.MustInvoke[*validate.Validator](i)
		regs := do.MustInvoke[*service.Registrations](i)
		contacts := do.MustInvoke[*service.Contacts](i)
		students := do.MustInvoke[*service.Students](i)

		return server.Handlers{
			Pages:   handlers.NewPageHandler(r, cat, regs, v, cfg.GetAppBaseURL()),
			Wizard:  handlers.NewWizardHandler(r, cat, v, handlers.RegistrationSubmitter{Registrations: regs}),
			Contact: handlers.NewContactHandler(r, cat, v, handlers.ContactSender{Contacts: contacts}),
			API:     handlers.NewAPIHandler(cat, regs, contacts, students),
			Admin:   handlers.NewAdminHandler(r, cfg, cat, students, do.MustInvoke[*service.Classes](i)),
			Widgets: handlers.NewWidgetHandler(r, cat, do.MustInvoke[*service.Newsletter](i), do.MustInvoke[*analytics.Tracker](i)),
			QRCodes: storage.NewFileHandler(do.MustInvoke[storage.Store](i), qr.Dir, "image/png"),
		}, nil
	})
	do.Provide(i, func(i do.Injector) (*server.Server, error) {
		tracker := do.MustInvoke[*analytics.Tracker](i)
		s := server.New(server.Deps{
			Config:   do.MustInvoke[config.Provider](i),
			Renderer: do.MustInvoke[*rendering.UniversalRenderer](i),
			Validate: do.MustInvoke[*validate.Validator](i).Engine(),
			PageViews: middleware.PageViewTrackerFunc(func(visitor, path string) {
				tracker.For(visitor).TrackPageView(path)
			}),
			Static: web.Static,
		}, do.MustInvoke[server.Handlers](i))
		s.RegisterRoutes()
		return s, nil
	})
}

// loadScheduleRule compiles the rule file when present and falls back to the
// built-in rule otherwise.
func loadScheduleRule(fs afero.Fs, path string, logger *slog.Logger) (*script.ScheduleRule, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return script.NewScheduleRule("")
	}
	rule, err := script.NewScheduleRule(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", path, err)
	}
	logger.Info("Loaded schedule rule", "path", path)
	return rule, nil
}
