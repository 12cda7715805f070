// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws generated polylines into SVG and PNG images,
// in the way the interactive visualizer plots them: each polyline is
// a solid stroke, and a dashed connector joins polylines that do not
// continue from where the previous one ended.
package render

import (
	"image/color"
	"math"

	"cogentcore.org/vegravis/config"
	"cogentcore.org/vegravis/generate"
	"cogentcore.org/vegravis/math64"
	"cogentcore.org/vegravis/math64/minmax"
)

// Palette is the cycle of stroke colors used for colorful blocks.
var Palette = []color.RGBA{
	{0xc0, 0x8e, 0xaf, 0xff},
	{0xfb, 0xa4, 0x14, 0xff},
	{0x8c, 0xc2, 0x69, 0xff},
	{0x4f, 0x9d, 0xa6, 0xff},
	{0x9b, 0x5c, 0x5a, 0xff},
	{0x5a, 0x5c, 0x9b, 0xff},
	{0x9b, 0x5a, 0x5c, 0xff},
	{0x5c, 0x9b, 0x5a, 0xff},
	{0x5c, 0x9b, 0x9b, 0xff},
	{0x9b, 0x5c, 0x9b, 0xff},
}

var (
	// ErrorColor is the stroke color when drawing with an error.
	ErrorColor = color.RGBA{0x8b, 0x00, 0x00, 0xff}

	// DashColor is the color of connectors between polylines.
	DashColor = color.RGBA{0x90, 0xee, 0x90, 0xff}

	// ErrorDashColor is the color of connectors when drawing with an error.
	ErrorDashColor = color.RGBA{0xff, 0xa0, 0xa0, 0xff}

	// Background is the image background color.
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Options are the drawing options.
type Options struct {

	// ShowInterDash draws a dashed connector between polylines that do not join.
	ShowInterDash bool

	// ColorfulBlocks cycles the [Palette] color for each polyline.
	ColorfulBlocks bool

	// LCDCoords flips the y axis, so that y grows downward.
	LCDCoords bool

	// HasError draws everything in error colors, for showing the
	// last good drawing while the source has a parse error.
	HasError bool

	// Transform is the view transform applied to all points.
	Transform math64.Matrix3

	// Width and Height are the image size in pixels.
	Width, Height int

	// Margin is the blank border around the drawing, in pixels.
	Margin float64

	// StrokeWidth is the polyline stroke width, in pixels.
	StrokeWidth float64
}

// NewOptions returns the drawing options for the given settings.
func NewOptions(s *config.Settings) Options {
	return Options{
		ShowInterDash:  s.ShowInterDash,
		ColorfulBlocks: s.ColorfulBlocks,
		LCDCoords:      s.LCDCoords,
		Transform:      s.ViewTransform(),
		Width:          s.Width,
		Height:         s.Height,
		Margin:         s.Margin,
		StrokeWidth:    s.StrokeWidth,
	}
}

// Stroke is one polyline to draw, in image coordinates.
type Stroke struct {
	Points []math64.Vector2
	Color  color.RGBA
	Width  float64
	Dashed bool
}

// view returns the full view transform, including the LCD flip.
func (o *Options) view() math64.Matrix3 {
	if !o.LCDCoords {
		return o.Transform
	}
	return o.Transform.Mul(math64.Scale2D(1, -1))
}

// fit returns the transform from view space into image pixels that
// fits the box within the margins, keeping the aspect ratio, with the
// y axis pointing up.
func (o *Options) fit(box minmax.Box2) math64.Matrix3 {
	w := float64(o.Width) - 2*o.Margin
	h := float64(o.Height) - 2*o.Margin
	scale := 1.0
	bw, bh := box.X.Range(), box.Y.Range()
	switch {
	case bw > 0 && bh > 0:
		scale = min(w/bw, h/bh)
	case bw > 0:
		scale = w / bw
	case bh > 0:
		scale = h / bh
	}
	cx, cy := box.X.Midpoint(), box.Y.Midpoint()
	return math64.Translate2D(float64(o.Width)/2, float64(o.Height)/2).
		Mul(math64.Scale2D(scale, -scale)).
		Mul(math64.Translate2D(-cx, -cy))
}

// Build returns the strokes for the given polylines, in drawing order:
// each connector comes right before the polyline it leads to.
func Build(lines []generate.Polyline, o Options) []Stroke {
	view := o.view()
	box := minmax.NewBox2()
	vl := make([][]math64.Vector2, len(lines))
	for i, ln := range lines {
		vl[i] = make([]math64.Vector2, 0, len(ln))
		for _, p := range ln {
			vp := view.MulVector2AsPoint(p)
			// a perspective transform can send points to w = 0
			if !finite(vp) {
				continue
			}
			vl[i] = append(vl[i], vp)
			box.FitPoint(vp.X, vp.Y)
		}
	}
	if !box.IsValid() {
		return nil
	}
	fit := o.fit(box)
	for _, ln := range vl {
		for j, p := range ln {
			ln[j] = fit.MulVector2AsPoint(p)
		}
	}

	var strokes []Stroke
	var last math64.Vector2
	hasLast := false
	ci := 0
	for _, ln := range vl {
		if len(ln) == 0 {
			continue
		}
		if o.ShowInterDash && hasLast && last != ln[0] {
			dc := DashColor
			if o.HasError {
				dc = ErrorDashColor
			}
			strokes = append(strokes, Stroke{Points: []math64.Vector2{last, ln[0]}, Color: dc, Width: o.StrokeWidth / 2, Dashed: true})
		}
		last, hasLast = ln[len(ln)-1], true
		st := Stroke{Points: ln, Color: Palette[ci], Width: o.StrokeWidth}
		if o.HasError {
			st.Color = ErrorColor
			st.Width = o.StrokeWidth * 2.5
		}
		strokes = append(strokes, st)
		if o.ColorfulBlocks {
			ci = (ci + 1) % len(Palette)
		}
	}
	return strokes
}

func finite(v math64.Vector2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
