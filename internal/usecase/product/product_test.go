package product

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/infra/memory"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

var clock = timezone.FixedClock{At: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)}

func shampoo(stock int) *models.Product {
	return &models.Product{
		Name:     "Shampoo",
		Price:    decimal.NewFromInt(3500),
		Stock:    stock,
		MinStock: models.DefaultMinStock,
		Active:   true,
	}
}

type fakeUploader struct {
	keys []string
	err  error
}

func (f *fakeUploader) Put(_ context.Context, key string, body []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.test/" + key, nil
}

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewManageProducts(store.Products(), clock, audit.Nop{})

	p, err := uc.Create(ctx, shampoo(4))
	require.NoError(t, err)

	t.Run("Positive_Added", func(t *testing.T) {
		got, err := uc.AdjustStock(ctx, p.ID, 6)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Stock)
	})

	t.Run("Negative_Subtracted", func(t *testing.T) {
		got, err := uc.AdjustStock(ctx, p.ID, -7)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Stock)
		assert.True(t, got.LowStock())
	})

	t.Run("BelowZero_ValidationUnchanged", func(t *testing.T) {
		_, err := uc.AdjustStock(ctx, p.ID, -4)
		be, ok := httperr.As(err)
		require.True(t, ok)
		assert.Contains(t, be.Fields, "Stock")

		got, err := store.Products().GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Stock)
	})

	t.Run("Missing_NotFound", func(t *testing.T) {
		_, err := uc.AdjustStock(ctx, 999, 1)
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})
}

func TestLowStock_StrictlyBelowThreshold(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	manage := NewManageProducts(store.Products(), clock, audit.Nop{})

	for _, stock := range []int{9, 10, 0, 25} {
		_, err := manage.Create(ctx, shampoo(stock))
		require.NoError(t, err)
	}

	low, err := NewQueryProducts(store.Products(), 10).LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, 0, low[0].Stock)
	assert.Equal(t, 9, low[1].Stock)
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()

	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, image.NewRGBA(image.Rect(0, 0, 40, 40))))

	t.Run("NoStorage_Disabled", func(t *testing.T) {
		store := memory.NewStore()
		_, err := NewUploadImage(store.Products(), nil, audit.Nop{}).Execute(ctx, 1, &pngBuf)
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})

	t.Run("Valid_URLStored", func(t *testing.T) {
		store := memory.NewStore()
		p, err := NewManageProducts(store.Products(), clock, audit.Nop{}).Create(ctx, shampoo(5))
		require.NoError(t, err)

		up := &fakeUploader{}
		got, err := NewUploadImage(store.Products(), up, audit.Nop{}).Execute(ctx, p.ID, bytes.NewReader(pngBuf.Bytes()))
		require.NoError(t, err)

		require.Len(t, up.keys, 1)
		assert.True(t, strings.HasPrefix(up.keys[0], "productos/1/"))
		assert.True(t, strings.HasSuffix(up.keys[0], ".webp"))
		require.NotNil(t, got.ImageURL)
		assert.Equal(t, "https://cdn.test/"+up.keys[0], *got.ImageURL)
	})

	t.Run("NotAnImage_Validation", func(t *testing.T) {
		store := memory.NewStore()
		p, err := NewManageProducts(store.Products(), clock, audit.Nop{}).Create(ctx, shampoo(5))
		require.NoError(t, err)

		_, err = NewUploadImage(store.Products(), &fakeUploader{}, audit.Nop{}).Execute(ctx, p.ID, strings.NewReader("nope"))
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})

	t.Run("UploadFails_ErrorPropagated", func(t *testing.T) {
		store := memory.NewStore()
		p, err := NewManageProducts(store.Products(), clock, audit.Nop{}).Create(ctx, shampoo(5))
		require.NoError(t, err)

		boom := errors.New("s3 down")
		_, err = NewUploadImage(store.Products(), &fakeUploader{err: boom}, audit.Nop{}).Execute(ctx, p.ID, bytes.NewReader(pngBuf.Bytes()))
		assert.ErrorIs(t, err, boom)

		got, err := store.Products().GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ImageURL)
	})
}
