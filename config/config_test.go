// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/vegravis/math64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.True(t, s.ShowInterDash)
	assert.True(t, s.ColorfulBlocks)
	assert.False(t, s.LCDCoords)
	assert.False(t, s.StrictCommas)
	assert.Equal(t, 800, s.Width)
	assert.Equal(t, 20.0, s.Margin)
	assert.Equal(t, "monokai", s.HighlightStyle)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, s.Transform)
	assert.Equal(t, math64.Identity3(), s.ViewTransform())
	assert.NoError(t, s.Validate())
}

func TestSetFromDefaults(t *testing.T) {
	assert.Error(t, SetFromDefaults(Settings{}))
	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	type odd struct {
		M map[string]int `default:"x"`
	}
	assert.Error(t, SetFromDefaults(&odd{}))
}

func TestSetFromDefaultsSlices(t *testing.T) {
	type lists struct {
		F []float64 `default:"1,2 3"`
		S []string  `default:"a 'b c' d,e"`
	}
	l := &lists{}
	require.NoError(t, SetFromDefaults(l))
	assert.Equal(t, []float64{1, 2, 3}, l.F)
	assert.Equal(t, []string{"a", "b c", "d", "e"}, l.S)

	type unquoted struct {
		S []string `default:"'open"`
	}
	assert.Error(t, SetFromDefaults(&unquoted{}))
}

func TestClone(t *testing.T) {
	s := New()
	c := s.Clone()
	assert.Equal(t, s, c)
	c.Transform[0] = 5
	c.Width = 10
	assert.Equal(t, 1.0, s.Transform[0])
	assert.Equal(t, 800, s.Width)
}

func TestDecodeTOML(t *testing.T) {
	s := New()
	err := s.Decode([]byte("lcd_coords = true\nwidth = 300\ntransform = [2.0, 0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0, 1.0]\n"), false)
	require.NoError(t, err)
	assert.True(t, s.LCDCoords)
	assert.Equal(t, 300, s.Width)
	assert.Equal(t, 800, s.Height)
	assert.Equal(t, math64.Scale2D(2, 2), s.ViewTransform())
}

func TestDecodeYAML(t *testing.T) {
	s := New()
	err := s.Decode([]byte("show_inter_dash: false\nstroke_width: 4.5\nlog_level: debug\n"), true)
	require.NoError(t, err)
	assert.False(t, s.ShowInterDash)
	assert.Equal(t, 4.5, s.StrokeWidth)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.ColorfulBlocks)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"settings.toml", "settings.yaml"} {
		fn := filepath.Join(dir, name)
		s := New()
		s.Width = 640
		s.CaseSensitive = true
		require.NoError(t, s.Save(fn))
		o, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, s, o, name)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("width = \"wide\"\n"), 0666))
	_, err = Open(fn)
	assert.Error(t, err)

	fn = filepath.Join(dir, "small.toml")
	require.NoError(t, os.WriteFile(fn, []byte("width = 10\nheight = 10\n"), 0666))
	_, err = Open(fn)
	assert.ErrorContains(t, err, "margin")
}

func TestValidate(t *testing.T) {
	s := New()
	s.Transform = []float64{1, 2}
	assert.Error(t, s.Validate())
	assert.Equal(t, math64.Identity3(), s.ViewTransform())
	s = New()
	s.Height = 0
	assert.Error(t, s.Validate())
}
