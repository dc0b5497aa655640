package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeProductImage(t *testing.T) {
	t.Run("Large_ScaledToFit", func(t *testing.T) {
		out, err := NormalizeProductImage(bytes.NewReader(pngOf(t, 1600, 400)))
		require.NoError(t, err)

		cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 800, cfg.Width)
		assert.Equal(t, 200, cfg.Height)
	})

	t.Run("Small_SizeKept", func(t *testing.T) {
		out, err := NormalizeProductImage(bytes.NewReader(pngOf(t, 120, 90)))
		require.NoError(t, err)

		cfg, err := xwebp.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 120, cfg.Width)
		assert.Equal(t, 90, cfg.Height)
	})

	t.Run("NotAnImage_Unsupported", func(t *testing.T) {
		_, err := NormalizeProductImage(strings.NewReader("%PDF-1.4"))
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestFit_Portrait(t *testing.T) {
	dst := fit(image.NewRGBA(image.Rect(0, 0, 300, 1200)), MaxSide)
	assert.Equal(t, image.Rect(0, 0, 200, 800), dst.Bounds())
}
