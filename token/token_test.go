// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorNext(t *testing.T) {
	var cr Cursor
	for _, r := range "ab\ncd" {
		cr = cr.Next(r)
	}
	assert.Equal(t, Cursor{Row: 1, Col: 2, Pos: 5}, cr)
	assert.Equal(t, "(2, 2)", cr.String())
}

func TestSpan(t *testing.T) {
	sp := Span{St: Cursor{Pos: 3}, Ed: Cursor{Pos: 3}}
	assert.True(t, sp.IsNil())
	sp.Ed.Pos = 7
	assert.False(t, sp.IsNil())
	assert.Equal(t, 4, sp.Len())
}

func TestTokensString(t *testing.T) {
	assert.Equal(t, "Ident", Ident.String())
	assert.Equal(t, "Comma", Comma.String())
	assert.Equal(t, "Tokens(9)", Tokens(9).String())

	tk := Token{Token: Number, Number: 1.5, Span: Span{St: Cursor{Row: 0, Col: 4, Pos: 4}}}
	assert.Equal(t, "Number(1.5) at (1, 4)", tk.String())
}
