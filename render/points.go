// Package render draws the two PNG outputs spec.md §6 describes: point-set
// panels showing (possibly scrambled) Sobol' points in the unit square, and
// a three-heatmap visualization of a stats.Stats record. PNG encoding
// itself is an external collaborator (spec.md §1 Non-goals) — this package
// only builds the RGBA8 pixel buffers and hands them to image/png.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/opencoff/go-owenhash/sobol"
)

// Resolution is the pixel width/height of one point-image panel.
const Resolution = 256

// DefaultPointCounts is spec.md §6's point_counts default: how many Sobol'
// points are plotted in each of the three horizontally concatenated panels.
var DefaultPointCounts = []int{256, 1024, 4096}

// diskRadius is the point marker radius in pixels (spec.md §6).
const diskRadius = 2

// Scramble2D maps a raw Sobol' 32-bit coordinate to a scrambled one. Render
// callers pass either the reference scrambler or the fast one (spec.md §6's
// --ref flag selects which).
type Scramble2D func(n uint32) uint32

// Identity2D is a Scramble2D that performs no scrambling, for plotting the
// raw Sobol' sequence.
func Identity2D(n uint32) uint32 { return n }

// PointImage renders len(pointCounts) panels of dimX/dimY Sobol'
// points, each panel's x and y coordinates passed through scramble
// independently, and writes the result as a PNG to w.
func PointImage(w io.Writer, pointCounts []int, dimX, dimY int, scramble Scramble2D) error {
	if len(pointCounts) == 0 {
		pointCounts = DefaultPointCounts
	}

	img := image.NewRGBA(image.Rect(0, 0, Resolution*len(pointCounts), Resolution))
	fillWhite(img)

	for panel, count := range pointCounts {
		xOff := panel * Resolution
		for i := uint32(0); i < uint32(count); i++ {
			x := scramble(sobol.Point(dimX, i))
			y := scramble(sobol.Point(dimY, i))
			px := xOff + int(uint64(x)*uint64(Resolution)>>32)
			py := int(uint64(y) * uint64(Resolution) >> 32)
			drawDisk(img, px, py, diskRadius)
		}
	}

	return png.Encode(w, img)
}

func fillWhite(img *image.RGBA) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, white)
		}
	}
}

func drawDisk(img *image.RGBA, cx, cy, radius int) {
	black := color.RGBA{A: 255}
	b := img.Bounds()
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			img.SetRGBA(x, y, black)
		}
	}
}
