package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxUploadBytes = 5 << 20
	MaxSide        = 800
	Quality        = 80
	ContentType    = "image/webp"
)

var (
	ErrTooLarge    = errors.New("image exceeds upload limit")
	ErrUnsupported = errors.New("unsupported image format")
)

var accepted = map[string]bool{"jpeg": true, "png": true, "gif": true, "webp": true}

// NormalizeProductImage decodes r, shrinks it to fit MaxSide x MaxSide
// keeping the aspect ratio and re-encodes it as lossy WebP.
func NormalizeProductImage(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil || !accepted[format] {
		return nil, ErrUnsupported
	}

	dst := fit(src, MaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// fit returns src unchanged when it already fits.
func fit(src image.Image, side int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= side && h <= side {
		return src
	}

	nw, nh := side, side
	if w > h {
		nh = max(1, h*side/w)
	} else {
		nw = max(1, w*side/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
