// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"cogentcore.org/vegravis/math64"
	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

// DashLength is the length of dashes and the gaps between them,
// in multiples of the stroke width.
const DashLength = 4

// Rasterizer draws strokes into an RGBA image.
type Rasterizer struct {
	image *image.RGBA
	ras   *vector.Rasterizer
}

// NewRasterizer returns a new [Rasterizer] for an image of the given size,
// filled with the [Background] color.
func NewRasterizer(width, height int) *Rasterizer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return &Rasterizer{image: img, ras: vector.NewRasterizer(width, height)}
}

// Image returns the image drawn so far.
func (rs *Rasterizer) Image() *image.RGBA { return rs.image }

// Render draws the given strokes in order.
func (rs *Rasterizer) Render(strokes []Stroke) {
	for i := range strokes {
		rs.RenderStroke(&strokes[i])
	}
}

// RenderStroke draws one stroke. Each segment is filled as a quad,
// and dashed strokes are split into pieces first.
func (rs *Rasterizer) RenderStroke(st *Stroke) {
	if len(st.Points) < 2 || st.Width <= 0 {
		return
	}
	sz := rs.image.Bounds().Size()
	rs.ras.Reset(sz.X, sz.Y)
	rs.ras.DrawOp = draw.Over
	hw := float32(st.Width) / 2
	for i := 1; i < len(st.Points); i++ {
		p0, p1 := point32(st.Points[i-1]), point32(st.Points[i])
		if !st.Dashed {
			rs.segment(p0, p1, hw)
			continue
		}
		dl := float32(st.Width) * DashLength
		ln := dist(p0, p1)
		for d := float32(0); d < ln; d += 2 * dl {
			e := min(d+dl, ln)
			rs.segment(lerp(p0, p1, d/ln), lerp(p0, p1, e/ln), hw)
		}
	}
	rs.ras.Draw(rs.image, rs.image.Bounds(), image.NewUniform(st.Color), image.Point{})
}

// segment adds the quad covering the line from a to b with half width hw.
// All quads have the same winding, so overlaps do not cancel.
func (rs *Rasterizer) segment(a, b [2]float32, hw float32) {
	ln := dist(a, b)
	if ln == 0 {
		return
	}
	nx := -(b[1] - a[1]) / ln * hw
	ny := (b[0] - a[0]) / ln * hw
	rs.ras.MoveTo(a[0]+nx, a[1]+ny)
	rs.ras.LineTo(b[0]+nx, b[1]+ny)
	rs.ras.LineTo(b[0]-nx, b[1]-ny)
	rs.ras.LineTo(a[0]-nx, a[1]-ny)
	rs.ras.ClosePath()
}

func point32(v math64.Vector2) [2]float32 {
	return [2]float32{float32(v.X), float32(v.Y)}
}

func dist(a, b [2]float32) float32 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	return math32.Sqrt(dx*dx + dy*dy)
}

func lerp(a, b [2]float32, t float32) [2]float32 {
	return [2]float32{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

// WritePNG draws the strokes into a new image with the size from
// the options and writes it to w as PNG.
func WritePNG(w io.Writer, strokes []Stroke, o Options) error {
	rs := NewRasterizer(o.Width, o.Height)
	rs.Render(strokes)
	return png.Encode(w, rs.Image())
}
