// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/vegravis/config"
)

// Check parses the given file and reports the number of commands to w.
func Check(w io.Writer, s *config.Settings, path string) error {
	prog, err := ParseFile(s, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %d commands\n", path, prog.Len())
	return err
}
