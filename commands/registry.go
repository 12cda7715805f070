// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"slices"
	"strings"

	"github.com/adrg/strutil/metrics"
)

// MaxSuggestDistance is the exclusive upper bound on the edit
// distance for a name to be suggested for an unknown command.
const MaxSuggestDistance = 3

// Registry resolves command names to descriptors.
type Registry struct {

	// CaseSensitive turns off case folding of command names.
	CaseSensitive bool

	formats []*Descriptor
	names   map[string]*Descriptor
}

// NewRegistry returns a case-insensitive registry over the given descriptors.
func NewRegistry(formats []*Descriptor) *Registry {
	r := &Registry{formats: formats, names: map[string]*Descriptor{}}
	for _, d := range formats {
		for _, nm := range d.Names {
			r.names[nm] = d
		}
	}
	return r
}

// Default is the registry of all known commands.
var Default = NewRegistry(Formats())

// Formats returns the descriptors of the registry, in table order.
func (r *Registry) Formats() []*Descriptor {
	return r.formats
}

func (r *Registry) fold(name string) string {
	if r.CaseSensitive {
		return name
	}
	return strings.ToUpper(name)
}

// Match resolves the name to a descriptor. If there is no exact match,
// it returns a nil descriptor along with the closest known name when
// its edit distance is below [MaxSuggestDistance], and an empty
// suggestion otherwise.
func (r *Registry) Match(name string) (*Descriptor, string) {
	name = r.fold(name)
	if d, ok := r.names[name]; ok {
		return d, ""
	}
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = true
	best, bestDist := "", -1
	for _, d := range r.formats {
		for _, nm := range d.Names {
			dist := lev.Distance(name, nm)
			if bestDist < 0 || dist < bestDist {
				best, bestDist = nm, dist
			}
		}
	}
	if bestDist < 0 || bestDist >= MaxSuggestDistance {
		return nil, ""
	}
	return nil, best
}

// Keywords returns the sorted set of all command names and aliases,
// for syntax highlighting.
func (r *Registry) Keywords() []string {
	var kw []string
	for _, d := range r.formats {
		kw = append(kw, d.Names...)
	}
	slices.Sort(kw)
	return slices.Compact(kw)
}
