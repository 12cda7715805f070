// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// WriteSVG writes the strokes to w as an SVG document with the
// size from the options.
func WriteSVG(w io.Writer, strokes []Stroke, o Options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", o.Width, o.Height, o.Width, o.Height)
	fmt.Fprintf(bw, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", hexColor(Background))
	for _, st := range strokes {
		if len(st.Points) < 2 {
			continue
		}
		bw.WriteString("<polyline points=\"")
		for i, p := range st.Points {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(num(p.X))
			bw.WriteByte(',')
			bw.WriteString(num(p.Y))
		}
		fmt.Fprintf(bw, "\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"", hexColor(st.Color), num(st.Width))
		if st.Dashed {
			d := num(st.Width * DashLength)
			fmt.Fprintf(bw, " stroke-dasharray=\"%s %s\"", d, d)
		}
		bw.WriteString("/>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
