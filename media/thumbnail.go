// Package media resizes local images into cached JPEG thumbnails.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	jpegQuality      = 80
	defaultCacheSize = 64
	maxSourceSize    = 10 << 20 // 10MB
)

// Widths are the thumbnail widths that may be requested.
var Widths = []int{320, 640, 960}

var (
	ErrUnsupportedWidth = errors.New("media: unsupported thumbnail width")
	ErrUnsupportedType  = errors.New("media: unsupported image type")
	ErrInvalidPath      = errors.New("media: invalid image path")
	ErrTooLarge         = errors.New("media: source image too large")
)

var allowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type cacheKey struct {
	name  string
	width int
}

// Thumbnailer produces thumbnails of images found in an fs.FS. Results are
// kept in a bounded cache, oldest entries evicted first. It is safe for
// concurrent use.
type Thumbnailer struct {
	fsys fs.FS
	max  int

	mu    sync.Mutex
	cache map[cacheKey][]byte
	order []cacheKey
}

// NewThumbnailer serves images from fsys, caching at most size thumbnails.
// A non-positive size uses a default.
func NewThumbnailer(fsys fs.FS, size int) *Thumbnailer {
	if size <= 0 {
		size = defaultCacheSize
	}
	return &Thumbnailer{fsys: fsys, max: size, cache: make(map[cacheKey][]byte)}
}

// AllowedWidth reports whether width is one of Widths.
func AllowedWidth(width int) bool {
	return slices.Contains(Widths, width)
}

// Thumbnail returns name scaled down to width as JPEG bytes. Images that
// are already narrower keep their size.
func (t *Thumbnailer) Thumbnail(name string, width int) ([]byte, error) {
	if !AllowedWidth(width) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}

	key := cacheKey{name: name, width: width}
	if b, ok := t.cached(key); ok {
		return b, nil
	}

	raw, err := fs.ReadFile(t.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(raw) > maxSourceSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, name)
	}
	if mt := mimetype.Detect(raw); !slices.ContainsFunc(allowedTypes, mt.Is) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	out, err := scale(raw, width)
	if err != nil {
		return nil, fmt.Errorf("thumbnail %s: %w", name, err)
	}
	t.store(key, out)
	return out, nil
}

func scale(raw []byte, width int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		h = max(h*width/w, 1)
		w = width
	}

	// JPEG has no alpha; flatten onto white.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *Thumbnailer) cached(key cacheKey) ([]byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, ok := t.cache[key]
	return b, ok
}

func (t *Thumbnailer) store(key cacheKey, b []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.cache[key]; ok {
		return
	}
	for len(t.order) >= t.max {
		delete(t.cache, t.order[0])
		t.order = t.order[1:]
	}
	t.cache[key] = b
	t.order = append(t.order, key)
}

// Len returns the number of cached thumbnails.
func (t *Thumbnailer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cache)
}
