package service

import (
	"context"
	"fmt"

	"github.com/nfrund/zawiya/internal/catalog"
	"github.com/nfrund/zawiya/internal/qr"
)

// MsgLinkUpdated confirms a meeting link change.
const MsgLinkUpdated = "تم تحديث الرابط وإنشاء QR Code جديد"

// Classes manages the weekly schedule.
type Classes struct {
	catalog *catalog.Catalog
	qr      *qr.Generator
}

func NewClasses(cat *catalog.Catalog, gen *qr.Generator) *Classes {
	return &Classes{catalog: cat, qr: gen}
}

// UpdateMeetLink changes a class's link and writes a QR image for it. It
// returns the image file name; an unknown class wraps domain.ErrNotFound.
func (s *Classes) UpdateMeetLink(ctx context.Context, id int, link string) (string, error) {
	if _, err := s.catalog.UpdateMeetLink(id, link); err != nil {
		return "", err
	}
	name, err := s.qr.ForUpdatedLink(ctx, id, link)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	return name, nil
}
