package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/opencoff/go-owenhash/internal/testutil"
	"github.com/opencoff/go-owenhash/stats"
)

func TestStatsImageDimensions(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var s stats.Stats
	var buf bytes.Buffer
	err := StatsImage(&buf, s)
	assert(err == nil, "StatsImage failed: %v", err)

	img, err := png.Decode(&buf)
	assert(err == nil, "png.Decode failed: %v", err)

	b := img.Bounds()
	assert(b.Dx() == heatmapSide*3, "image width = %d, want %d", b.Dx(), heatmapSide*3)
	assert(b.Dy() == heatmapSide, "image height = %d, want %d", b.Dy(), heatmapSide)
}

func TestIntensityClamps(t *testing.T) {
	assert := testutil.NewAsserter(t)

	assert(intensity(-1) == 0, "intensity(-1) = %d, want 0", intensity(-1))
	assert(intensity(2) == 255, "intensity(2) = %d, want 255", intensity(2))
	assert(intensity(0) == 0, "intensity(0) = %d, want 0", intensity(0))
	assert(intensity(1) == 255, "intensity(1) = %d, want 255", intensity(1))
}

func TestStatsImageCellIsUniform(t *testing.T) {
	assert := testutil.NewAsserter(t)

	var s stats.Stats
	s.Avalanche[0][0] = 0.75
	var buf bytes.Buffer
	err := StatsImage(&buf, s)
	assert(err == nil, "StatsImage failed: %v", err)

	img, err := png.Decode(&buf)
	assert(err == nil, "png.Decode failed: %v", err)

	want := intensity(0.75)
	for y := 0; y < cellSize; y++ {
		for x := 0; x < cellSize; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			got := uint8(r >> 8)
			assert(got == want, "cell[0][0] pixel (%d,%d) = %d, want %d", x, y, got, want)
		}
	}
}
