// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings for the vegravis tools,
// loaded from a TOML or YAML file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/vegravis/math64"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file used when none is given.
const DefaultPath = "~/.vegravis.toml"

// Settings are the options for parsing and rendering.
type Settings struct {

	// whether command names must match case exactly
	CaseSensitive bool `toml:"case_sensitive" yaml:"case_sensitive"`

	// whether a comma is required after the command name and every
	// argument, instead of also accepting whitespace
	StrictCommas bool `toml:"strict_commas" yaml:"strict_commas"`

	// whether to draw a dashed connector between polylines that do not join
	ShowInterDash bool `toml:"show_inter_dash" yaml:"show_inter_dash" default:"true"`

	// whether to cycle the palette color for each polyline
	ColorfulBlocks bool `toml:"colorful_blocks" yaml:"colorful_blocks" default:"true"`

	// whether to flip the y axis so that y grows downward, as on a screen
	LCDCoords bool `toml:"lcd_coords" yaml:"lcd_coords"`

	// the view transform applied to all points when rendering,
	// as 9 row-major matrix values
	Transform []float64 `toml:"transform" yaml:"transform" default:"1 0 0 0 1 0 0 0 1"`

	// output image width in pixels
	Width int `toml:"width" yaml:"width" default:"800"`

	// output image height in pixels
	Height int `toml:"height" yaml:"height" default:"800"`

	// margin around the drawing, in pixels
	Margin float64 `toml:"margin" yaml:"margin" default:"20"`

	// stroke width of polylines, in pixels
	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width" default:"2"`

	// chroma style used by the highlight command
	HighlightStyle string `toml:"highlight_style" yaml:"highlight_style" default:"monokai"`

	// log level: debug, info, warn or error
	LogLevel string `toml:"log_level" yaml:"log_level" default:"info"`
}

// New returns new settings with all defaults applied.
func New() *Settings {
	s := &Settings{}
	if err := SetFromDefaults(s); err != nil {
		panic(err) // the default tags are static
	}
	return s
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := &Settings{}
	if err := copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("config: cloning settings: %v", err))
	}
	return c
}

// ViewTransform returns the view transform as a matrix,
// or the identity if it does not have 9 values.
func (s *Settings) ViewTransform() math64.Matrix3 {
	if len(s.Transform) != 9 {
		return math64.Identity3()
	}
	return math64.Matrix3FromSlice(s.Transform)
}

// Validate returns an error for settings that cannot be used.
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("config: image size must be positive, got %dx%d", s.Width, s.Height)
	}
	if len(s.Transform) != 0 && len(s.Transform) != 9 {
		return fmt.Errorf("config: transform needs 9 values, got %d", len(s.Transform))
	}
	if 2*s.Margin >= float64(min(s.Width, s.Height)) {
		return fmt.Errorf("config: margin %g leaves no room to draw", s.Margin)
	}
	return nil
}

// isYAML returns true if the file extension selects YAML over TOML.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Open reads settings from the given file on top of the defaults.
// An empty path means [DefaultPath], which need not exist.
func Open(path string) (*Settings, error) {
	s := New()
	optional := path == ""
	if optional {
		path = DefaultPath
	}
	fn, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := s.Decode(b, isYAML(fn)); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	return s, s.Validate()
}

// Decode decodes TOML, or YAML if yml is set, into the settings.
func (s *Settings) Decode(b []byte, yml bool) error {
	if yml {
		return yaml.Unmarshal(b, s)
	}
	return toml.Unmarshal(b, s)
}

// Encode encodes the settings as TOML, or YAML if yml is set.
func (s *Settings) Encode(yml bool) ([]byte, error) {
	if yml {
		return yaml.Marshal(s)
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the settings to the given file, as YAML or TOML
// depending on its extension.
func (s *Settings) Save(path string) error {
	fn, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	b, err := s.Encode(isYAML(fn))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(fn, b, 0666)
}
