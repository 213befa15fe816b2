package storage

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/middleware"
)

// FileHandler serves stored files from one directory of a Store.
type FileHandler struct {
	store       Store
	dir         string
	contentType string
}

// NewFileHandler serves files under dir with the given content type.
func NewFileHandler(s Store, dir, contentType string) *FileHandler {
	return &FileHandler{store: s, dir: dir, contentType: contentType}
}

// Serve streams the file named by the ":file" route parameter.
func (h *FileHandler) Serve(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	name := c.Param("file")
	// Only plain file names are served; anything else cannot exist in the store.
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return c.String(http.StatusNotFound, "File not found")
	}

	content, err := h.store.Open(ctx, filepath.Join(h.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c.String(http.StatusNotFound, "File not found")
		}
		logger.Error("Failed to open stored file", slog.String("file", name), slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, "Could not retrieve file")
	}
	defer content.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Stream(http.StatusOK, h.contentType, content)
}
