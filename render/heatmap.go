package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/opencoff/go-owenhash/stats"
)

// cellSize is the pixel size of each 32x32 heatmap's per-entry gray block
// (spec.md §6: "each cell an 8×8 gray block").
const cellSize = 8

// heatmapSide is one heatmap's pixel width/height.
const heatmapSide = cellSize * 32

// StatsImage renders spec.md §6's three-panel stats heatmap: Avalanche,
// AvalancheAvgBias, and TreeBias, left to right, and writes it as a PNG
// to w.
func StatsImage(w io.Writer, s stats.Stats) error {
	img := image.NewRGBA(image.Rect(0, 0, heatmapSide*3, heatmapSide))

	panels := [3]*[32][32]float64{&s.Avalanche, &s.AvalancheAvgBias, &s.TreeBias}
	for p, m := range panels {
		xOff := p * heatmapSide
		for i := 0; i < 32; i++ {
			for j := 0; j < 32; j++ {
				gray := intensity(m[i][j])
				fillCell(img, xOff+j*cellSize, i*cellSize, gray)
			}
		}
	}

	return png.Encode(w, img)
}

// intensity maps a stats value to an 8-bit gray level: clamp(value, 0, 1)
// * 255 (spec.md §6).
func intensity(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v * 255)
}

func fillCell(img *image.RGBA, x0, y0 int, gray uint8) {
	c := color.RGBA{R: gray, G: gray, B: gray, A: 255}
	for y := y0; y < y0+cellSize; y++ {
		for x := x0; x < x0+cellSize; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
