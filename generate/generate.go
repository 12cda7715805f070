// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generate interprets a [commands.Program] into polylines,
// applying the local and world transform stacks.
package generate

import (
	"log/slog"

	"cogentcore.org/vegravis/commands"
	"cogentcore.org/vegravis/math64"
)

// Polyline is one connected stroke.
type Polyline []math64.Vector2

// Range is a half-open range [Start, End) of command indexes.
type Range struct {
	Start int
	End   int
}

// Full returns the range of all commands in the program.
func Full(prog *commands.Program) Range {
	return Range{0, prog.Len()}
}

// Contains returns true if the index is within the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Generate runs the program and returns its polylines, in draw order.
// The first polyline is always the single origin point, so the first
// stroke can be connected to a fixed anchor.
//
// Every command is evaluated, so the cursor and transforms are always
// correct, but only commands within rng contribute points. A move
// starts a new polyline; lines and curves extend the current one,
// dropping their first point when it is exactly the current end point.
// The final world transform is applied to every point at the end.
func Generate(prog *commands.Program, rng Range) []Polyline {
	ctx := NewContext()
	lines := []Polyline{{math64.Vec2(0, 0)}}
	var cur Polyline
	n := prog.Len()
	for i := 0; i < n; i++ {
		pts := ctx.Eval(prog.Commands[i])
		if len(pts) == 0 || !rng.Contains(i) {
			continue
		}
		if !ctx.Grouping {
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = Polyline{}
		} else if len(cur) > 0 && cur[len(cur)-1] == pts[0] {
			pts = pts[1:]
		}
		cur = append(cur, pts...)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	if ctx.World != math64.Identity3() {
		for _, ln := range lines {
			for j, p := range ln {
				ln[j] = ctx.World.MulVector2AsPoint(p)
			}
		}
	}
	slog.Debug("generated polylines", "commands", n, "start", rng.Start, "end", rng.End, "polylines", len(lines))
	return lines
}

// Points returns the total number of points in the polylines.
func Points(lines []Polyline) int {
	n := 0
	for _, ln := range lines {
		n += len(ln)
	}
	return n
}
