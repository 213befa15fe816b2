// Package qr renders meeting links as QR code images in the file store.
package qr

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/nfrund/zawiya/internal/storage"
)

// Dir is the store directory holding QR images.
const Dir = "qrcodes"

// Size is the image edge length in pixels.
const Size = 256

// Generator writes QR images into a store.
type Generator struct {
	store storage.Store
}

func NewGenerator(store storage.Store) *Generator {
	return &Generator{store: store}
}

// StudentFile names the QR image of one class for one student.
func StudentFile(classID int, studentID string) string {
	return fmt.Sprintf("qr_%d_%s.png", classID, studentID)
}

// UpdatedFile names the QR image written when a class link changes.
func UpdatedFile(classID int) string {
	return fmt.Sprintf("qr_schedule_%d_updated.png", classID)
}

// ForStudent writes the image for a class and student unless it already exists.
func (g *Generator) ForStudent(ctx context.Context, classID int, studentID, link string) (string, error) {
	name := StudentFile(classID, studentID)
	ok, err := g.store.Exists(ctx, filepath.Join(Dir, name))
	if err != nil {
		return "", err
	}
	if ok {
		return name, nil
	}
	return name, g.write(ctx, name, link)
}

// ForUpdatedLink always (re)writes the image for a class's new link.
func (g *Generator) ForUpdatedLink(ctx context.Context, classID int, link string) (string, error) {
	name := UpdatedFile(classID)
	return name, g.write(ctx, name, link)
}

func (g *Generator) write(ctx context.Context, name, content string) error {
	png, err := qrcode.Encode(content, qrcode.Low, Size)
	if err != nil {
		return fmt.Errorf("failed to encode QR for %s: %w", name, err)
	}
	if _, err := g.store.Save(ctx, filepath.Join(Dir, name), bytes.NewReader(png)); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}
