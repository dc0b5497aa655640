package product

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/product"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/media"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/storage"
)

var ErrStorageDisabled = errors.New("image storage is not configured")

type UploadImage struct {
	repo     domain.Repository
	uploader storage.Uploader
	audit    audit.Recorder
}

// NewUploadImage accepts a nil uploader; Execute then fails with
// ErrStorageDisabled.
func NewUploadImage(repo domain.Repository, uploader storage.Uploader, audit audit.Recorder) *UploadImage {
	return &UploadImage{repo: repo, uploader: uploader, audit: audit}
}

func (uc *UploadImage) Enabled() bool {
	return uc.uploader != nil
}

func (uc *UploadImage) Execute(ctx context.Context, productID uint, r io.Reader) (*models.Product, error) {
	if uc.uploader == nil {
		return nil, ErrStorageDisabled
	}

	if _, err := uc.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	body, err := media.NormalizeProductImage(r)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return nil, httperr.ErrValidation(map[string]string{"imagen": "La imagen no puede exceder 5 MB"})
	case errors.Is(err, media.ErrUnsupported):
		return nil, httperr.ErrValidation(map[string]string{"imagen": "Formato de imagen no soportado"})
	case err != nil:
		return nil, err
	}

	key := fmt.Sprintf("productos/%d/%s.webp", productID, uuid.NewString())
	url, err := uc.uploader.Put(ctx, key, body, media.ContentType)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.SetImageURL(ctx, productID, url)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionUploadImage,
		Entity:    Entity,
		EntityID:  audit.ID(productID),
		Metadata:  map[string]string{"key": key},
		RequestID: audit.RequestID(ctx),
	})
	return p, nil
}
