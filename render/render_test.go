// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/png"
	"io"
	"math"
	"strings"
	"testing"

	"cogentcore.org/vegravis/config"
	"cogentcore.org/vegravis/generate"
	"cogentcore.org/vegravis/math64"
	"cogentcore.org/vegravis/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tdparse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

func testOptions() Options {
	return Options{
		ShowInterDash:  true,
		ColorfulBlocks: true,
		Transform:      math64.Identity3(),
		Width:          120,
		Height:         120,
		Margin:         10,
		StrokeWidth:    2,
	}
}

func line(pts ...float64) generate.Polyline {
	var pl generate.Polyline
	for i := 0; i+1 < len(pts); i += 2 {
		pl = append(pl, math64.Vec2(pts[i], pts[i+1]))
	}
	return pl
}

func TestNewOptions(t *testing.T) {
	s := config.New()
	o := NewOptions(s)
	assert.Equal(t, s.Width, o.Width)
	assert.Equal(t, s.Height, o.Height)
	assert.Equal(t, s.ShowInterDash, o.ShowInterDash)
	assert.Equal(t, math64.Identity3(), o.Transform)
}

func TestBuildFit(t *testing.T) {
	st := Build([]generate.Polyline{line(0, 0), line(0, 0, 10, 10)}, testOptions())
	require.Len(t, st, 2)
	assert.Equal(t, []math64.Vector2{{X: 10, Y: 110}}, st[0].Points)
	assert.Equal(t, []math64.Vector2{{X: 10, Y: 110}, {X: 110, Y: 10}}, st[1].Points)
	assert.Equal(t, Palette[0], st[0].Color)
	assert.Equal(t, Palette[1], st[1].Color)
	assert.Equal(t, 2.0, st[1].Width)
}

func TestBuildDash(t *testing.T) {
	lines := []generate.Polyline{line(0, 0), line(5, 0, 10, 10)}
	st := Build(lines, testOptions())
	require.Len(t, st, 3)
	assert.True(t, st[1].Dashed)
	assert.Equal(t, DashColor, st[1].Color)
	assert.Equal(t, []math64.Vector2{{X: 10, Y: 110}, {X: 60, Y: 110}}, st[1].Points)

	o := testOptions()
	o.ShowInterDash = false
	assert.Len(t, Build(lines, o), 2)
}

func TestBuildMonochrome(t *testing.T) {
	o := testOptions()
	o.ColorfulBlocks = false
	st := Build([]generate.Polyline{line(0, 0, 1, 0), line(0, 1, 1, 1)}, o)
	for _, s := range st {
		if !s.Dashed {
			assert.Equal(t, Palette[0], s.Color)
		}
	}
}

func TestBuildError(t *testing.T) {
	o := testOptions()
	o.HasError = true
	st := Build([]generate.Polyline{line(0, 0), line(5, 0, 10, 10)}, o)
	require.Len(t, st, 3)
	assert.Equal(t, ErrorDashColor, st[1].Color)
	assert.Equal(t, ErrorColor, st[2].Color)
	assert.Equal(t, 5.0, st[2].Width)
}

func TestBuildLCD(t *testing.T) {
	o := testOptions()
	o.LCDCoords = true
	st := Build([]generate.Polyline{line(0, 0, 10, 10)}, o)
	require.Len(t, st, 1)
	assert.Equal(t, []math64.Vector2{{X: 10, Y: 10}, {X: 110, Y: 110}}, st[0].Points)
}

func TestBuildTransform(t *testing.T) {
	o := testOptions()
	o.Transform = math64.Scale2D(-1, 1)
	st := Build([]generate.Polyline{line(0, 0, 10, 10)}, o)
	require.Len(t, st, 1)
	assert.Equal(t, []math64.Vector2{{X: 110, Y: 110}, {X: 10, Y: 10}}, st[0].Points)
}

func TestBuildEmpty(t *testing.T) {
	assert.Nil(t, Build(nil, testOptions()))
	assert.Nil(t, Build([]generate.Polyline{{}}, testOptions()))
	assert.Nil(t, Build([]generate.Polyline{line(math.NaN(), 0)}, testOptions()))
}

func TestBuildNonFinite(t *testing.T) {
	st := Build([]generate.Polyline{line(math.Inf(1), 0, 0, 0, 10, 0), line(math.NaN(), math.NaN())}, testOptions())
	require.Len(t, st, 1)
	assert.Equal(t, []math64.Vector2{{X: 10, Y: 60}, {X: 110, Y: 60}}, st[0].Points)

	// the origin lands on w = 0 under this world transform
	prog, err := parse.Parse("MOVE 1,1 LINE 2,2 PUSH_WORLD_TRANS 1,0,0,0,1,0,1,0,0")
	require.NoError(t, err)
	o := testOptions()
	var b bytes.Buffer
	require.NoError(t, WriteSVG(&b, Build(generate.Generate(prog, generate.Full(prog)), o), o))
	assert.NotContains(t, b.String(), "NaN")
	assert.NotContains(t, b.String(), "Inf")
	assert.NotContains(t, b.String(), "stroke-dasharray")
	assert.Equal(t, 1, strings.Count(b.String(), "<polyline"))
}

func TestWriteSVG(t *testing.T) {
	st := Build([]generate.Polyline{line(0, 0), line(5, 0, 10, 0)}, testOptions())
	var b bytes.Buffer
	require.NoError(t, WriteSVG(&b, st, testOptions()))
	s := b.String()
	assert.True(t, strings.HasPrefix(s, "<svg "))
	assert.Equal(t, 2, strings.Count(s, "<polyline"))
	assert.Contains(t, s, `points="60,60 110,60" fill="none" stroke="#fba414" stroke-width="2"/>`)
	assert.Contains(t, s, `stroke-dasharray="4 4"`)
	assert.True(t, strings.HasSuffix(s, "</svg>\n"))
}

// svgCounts returns the number of each start tag and attribute name in the document.
func svgCounts(t *testing.T, b []byte) map[string]int {
	counts := map[string]int{}
	l := xml.NewLexer(tdparse.NewInputBytes(b))
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			require.ErrorIs(t, l.Err(), io.EOF)
			return counts
		case xml.StartTagToken, xml.AttributeToken:
			counts[string(l.Text())]++
		}
	}
}

func TestSVGWellFormed(t *testing.T) {
	prog, err := parse.Parse("MOVE 0,0, LINE 10,10, MOVE 20,0, QUAD 25,10, 30,0, MOVE 40,0, CUBI 45,10, 50,-10, 55,0,")
	require.NoError(t, err)
	o := testOptions()
	var b bytes.Buffer
	require.NoError(t, WriteSVG(&b, Build(generate.Generate(prog, generate.Full(prog)), o), o))
	counts := svgCounts(t, b.Bytes())
	assert.Equal(t, 1, counts["svg"])
	assert.Equal(t, 1, counts["rect"])
	assert.Equal(t, 5, counts["polyline"])
	assert.Equal(t, 2, counts["stroke-dasharray"])
}

func TestRasterize(t *testing.T) {
	o := testOptions()
	st := Build([]generate.Polyline{line(0, 0, 10, 0)}, o)
	rs := NewRasterizer(o.Width, o.Height)
	rs.Render(st)
	img := rs.Image()
	for _, pt := range [][2]int{{60, 60}, {20, 59}} {
		c := img.RGBAAt(pt[0], pt[1])
		assert.InDelta(t, Palette[0].R, c.R, 2)
		assert.InDelta(t, Palette[0].G, c.G, 2)
		assert.InDelta(t, Palette[0].B, c.B, 2)
	}
	assert.Equal(t, Background, img.RGBAAt(60, 30))
	assert.Equal(t, Background, img.RGBAAt(5, 60))
}

func TestWritePNG(t *testing.T) {
	prog, err := parse.Parse("MOVE 0,0, LINE 10,10, QUAD 20,0, 30,10, MOVE 0,20, CUBI 10,30, 20,10, 30,20,")
	require.NoError(t, err)
	o := testOptions()
	var b bytes.Buffer
	require.NoError(t, WritePNG(&b, Build(generate.Generate(prog, generate.Full(prog)), o), o))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}
