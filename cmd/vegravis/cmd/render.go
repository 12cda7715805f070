// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/vegravis/config"
	"cogentcore.org/vegravis/generate"
	"cogentcore.org/vegravis/render"
)

// Job renders a drawing program file into an image file.
type Job struct {

	// Settings are the parse and drawing settings.
	Settings *config.Settings

	// Source is the drawing program file.
	Source string

	// Output is the image file, ending in .svg or .png.
	Output string

	// Progress limits drawing to the first Progress commands,
	// or all commands if it is negative.
	Progress int

	// last is the geometry of the last successful run.
	last []generate.Polyline
}

// Range returns the range of commands to draw, out of n.
func (j *Job) Range(n int) generate.Range {
	if j.Progress < 0 || j.Progress > n {
		return generate.Range{Start: 0, End: n}
	}
	return generate.Range{Start: 0, End: j.Progress}
}

// Run parses, generates and writes the image. When the source
// does not parse but a previous run succeeded, the previous geometry
// is written in error colors and the parse error is still returned.
func (j *Job) Run() error {
	prog, err := ParseFile(j.Settings, j.Source)
	if err != nil {
		if j.last != nil {
			if werr := j.write(j.last, true); werr != nil {
				slog.Error("writing last good drawing", "output", j.Output, "error", werr)
			}
		}
		return err
	}
	lines := generate.Generate(prog, j.Range(prog.Len()))
	j.last = lines
	slog.Info("rendered", "source", j.Source, "output", j.Output, "commands", prog.Len(), "points", generate.Points(lines))
	return j.write(lines, false)
}

func (j *Job) write(lines []generate.Polyline, hasError bool) error {
	o := render.NewOptions(j.Settings)
	o.HasError = hasError
	strokes := render.Build(lines, o)
	ext := strings.ToLower(filepath.Ext(j.Output))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("render: unsupported output format %q, use .svg or .png", ext)
	}
	f, err := os.Create(j.Output)
	if err != nil {
		return err
	}
	if ext == ".svg" {
		err = render.WriteSVG(f, strokes, o)
	} else {
		err = render.WritePNG(f, strokes, o)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
