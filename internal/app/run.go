package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/server"
	"github.com/nfrund/zawiya/internal/service"
)

// Serve starts the background listeners and the HTTP server, and blocks until
// ctx is cancelled. Every service is shut down before it returns.
func Serve(ctx context.Context, i *do.RootScope) error {
	defer i.Shutdown()

	logger := do.MustInvoke[*slog.Logger](i)
	bus, err := do.Invoke[*Bus](i)
	if err != nil {
		return err
	}
	if err := service.StartListeners(ctx, bus, logger); err != nil {
		return fmt.Errorf("failed to start listeners: %w", err)
	}

	cat, err := do.Invoke[*catalog.Catalog](i)
	if err != nil {
		return err
	}
	if err := cat.Watch(ctx); err != nil {
		logger.Warn("Catalog changes will need a restart", "error", err)
	}

	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		return err
	}
	return srv.Start(ctx, do.MustInvoke[config.Provider](i).GetAppAddr())
}
