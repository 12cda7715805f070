// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samples provides embedded example drawing programs.
package samples

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Ext is the file extension of drawing programs.
const Ext = ".vec"

//go:embed *.vec
var files embed.FS

// Names returns the sorted names of the samples, without extension.
func Names() []string {
	ents, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}
	var nms []string
	for _, e := range ents {
		if path.Ext(e.Name()) == Ext {
			nms = append(nms, strings.TrimSuffix(e.Name(), Ext))
		}
	}
	slices.Sort(nms)
	return nms
}

// Get returns the source of the sample with the given name.
func Get(name string) (string, error) {
	b, err := files.ReadFile(strings.TrimSuffix(name, Ext) + Ext)
	if err != nil {
		return "", fmt.Errorf("samples: no sample named %q", name)
	}
	return string(b), nil
}
