package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"images/wide.png":  {Data: pngBytes(t, 800, 400)},
		"images/small.png": {Data: pngBytes(t, 100, 50)},
		"notes.txt":        {Data: []byte("not an image at all")},
	}
}

func decodeJPEG(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func TestThumbnailScalesDown(t *testing.T) {
	th := NewThumbnailer(testFS(t), 0)

	b, err := th.Thumbnail("/images/wide.png", 320)
	require.NoError(t, err)

	img := decodeJPEG(t, b)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestThumbnailNeverUpscales(t *testing.T) {
	th := NewThumbnailer(testFS(t), 0)

	b, err := th.Thumbnail("images/small.png", 960)
	require.NoError(t, err)

	img := decodeJPEG(t, b)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestThumbnailErrors(t *testing.T) {
	th := NewThumbnailer(testFS(t), 0)

	tests := []struct {
		name  string
		path  string
		width int
		want  error
	}{
		{"width not allowed", "images/wide.png", 500, ErrUnsupportedWidth},
		{"parent traversal", "../secret.png", 320, ErrInvalidPath},
		{"empty path", "/", 320, ErrInvalidPath},
		{"not an image", "notes.txt", 320, ErrUnsupportedType},
		{"missing file", "images/none.png", 320, fs.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := th.Thumbnail(tt.path, tt.width)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestThumbnailCache(t *testing.T) {
	th := NewThumbnailer(testFS(t), 2)

	first, err := th.Thumbnail("images/wide.png", 320)
	require.NoError(t, err)
	again, err := th.Thumbnail("images/wide.png", 320)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, th.Len())

	_, err = th.Thumbnail("images/wide.png", 640)
	require.NoError(t, err)
	_, err = th.Thumbnail("images/small.png", 320)
	require.NoError(t, err)
	assert.Equal(t, 2, th.Len(), "cache is bounded")
}

func TestAllowedWidth(t *testing.T) {
	for _, w := range Widths {
		assert.True(t, AllowedWidth(w))
	}
	assert.False(t, AllowedWidth(0))
	assert.False(t, AllowedWidth(1200))
}
