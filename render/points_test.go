package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/opencoff/go-owenhash/internal/testutil"
)

func TestPointImageDimensions(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var buf bytes.Buffer
	counts := []int{4, 16}
	err := PointImage(&buf, counts, 0, 1, Identity2D)
	assert(err == nil, "PointImage failed: %v", err)

	img, err := png.Decode(&buf)
	assert(err == nil, "png.Decode failed: %v", err)

	b := img.Bounds()
	wantW := Resolution * len(counts)
	assert(b.Dx() == wantW, "image width = %d, want %d", b.Dx(), wantW)
	assert(b.Dy() == Resolution, "image height = %d, want %d", b.Dy(), Resolution)
}

func TestPointImageDefaultsWhenEmpty(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var buf bytes.Buffer
	err := PointImage(&buf, nil, 0, 1, Identity2D)
	assert(err == nil, "PointImage failed: %v", err)

	img, err := png.Decode(&buf)
	assert(err == nil, "png.Decode failed: %v", err)

	wantW := Resolution * len(DefaultPointCounts)
	assert(img.Bounds().Dx() == wantW, "image width = %d, want %d", img.Bounds().Dx(), wantW)
}

func TestPointImageDrawsSomethingBlack(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var buf bytes.Buffer
	err := PointImage(&buf, []int{64}, 0, 1, Identity2D)
	assert(err == nil, "PointImage failed: %v", err)

	img, err := png.Decode(&buf)
	assert(err == nil, "png.Decode failed: %v", err)

	foundBlack := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !foundBlack; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r == 0 && g == 0 && bl == 0 {
				foundBlack = true
				break
			}
		}
	}
	assert(foundBlack, "point image has no plotted (black) pixels")
}
