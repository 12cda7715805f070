// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := errors.New("broken")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "broken")
	assert.Contains(t, buf.String(), "TestLog")
}

func TestWrap(t *testing.T) {
	base := errors.New("base")
	err := fmt.Errorf("outer: %w", base)
	var ne *strconv.NumError
	_, perr := strconv.Atoi("z")
	joined := Join(err, perr)
	assert.ErrorIs(t, joined, base)
	assert.True(t, As(joined, &ne))
	assert.Equal(t, "z", ne.Num)
	assert.False(t, As(err, &ne))
}
