// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormats(t *testing.T) {
	argc := map[string]int{
		"MOVE": 2, "LINE": 2, "QUAD": 4, "CUBI": 6, "CUBIC": 6, "END": 0, "CLOSE": 0,
		"PUSH_TRANS": 9, "POP_TRANS": 0, "PUSH_SCALE": 2, "SCALE": 2,
		"PUSH_ROTATE": 1, "ROTATE": 1, "PUSH_SKEW": 2, "SKEW": 2,
		"PUSH_TRANSLATE": 2, "TRANSLATE": 2,
		"PUSH_WORLD_TRANS": 9, "POP_WORLD_TRANS": 0, "PUSH_WORLD_SCALE": 2, "WORLD_SCALE": 2,
		"PUSH_WORLD_ROTATE": 1, "WORLD_ROTATE": 1, "PUSH_WORLD_SKEW": 2, "WORLD_SKEW": 2,
		"PUSH_WORLD_TRANSLATE": 2, "WORLD_TRANSLATE": 2,
	}
	n := 0
	for i, d := range Formats() {
		assert.Equal(t, Kinds(i), d.Kind)
		for _, nm := range d.Names {
			want, ok := argc[nm]
			if assert.True(t, ok, nm) {
				assert.Equal(t, want, d.Argc, nm)
			}
			n++
		}
	}
	assert.Equal(t, len(argc), n)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, "CUBI", Cubic.String())
	assert.Equal(t, "PUSH_WORLD_SKEW", PushWorldSkew.String())
	assert.True(t, PopWorldTrans.IsWorld())
	assert.False(t, PopTrans.IsWorld())
	assert.True(t, PopWorldTrans.IsPop())
	assert.True(t, PushRotate.IsTransform())
	assert.False(t, End.IsTransform())
	assert.Equal(t, PushSkew, PushWorldSkew.Local())
	assert.Equal(t, PopTrans, PopWorldTrans.Local())
	assert.Equal(t, Line, Line.Local())
}

func TestMatch(t *testing.T) {
	d, sug := Default.Match("line")
	if assert.NotNil(t, d) {
		assert.Equal(t, Line, d.Kind)
	}
	assert.Equal(t, "", sug)

	d, _ = Default.Match("Cubic")
	if assert.NotNil(t, d) {
		assert.Equal(t, Cubic, d.Kind)
	}

	d, sug = Default.Match("LIEN")
	assert.Nil(t, d)
	assert.Equal(t, "LINE", sug)

	d, sug = Default.Match("scael")
	assert.Nil(t, d)
	assert.Equal(t, "SCALE", sug)

	d, sug = Default.Match("XYZZY")
	assert.Nil(t, d)
	assert.Equal(t, "", sug)
}

func TestMatchCaseSensitive(t *testing.T) {
	r := NewRegistry(Formats())
	r.CaseSensitive = true
	d, _ := r.Match("MOVE")
	assert.NotNil(t, d)
	d, sug := r.Match("move")
	assert.Nil(t, d)
	assert.Equal(t, "", sug)
	d, sug = r.Match("MOVe")
	assert.Nil(t, d)
	assert.Equal(t, "MOVE", sug)
}

func TestMatchDistance(t *testing.T) {
	r := NewRegistry([]*Descriptor{{Kind: Move, Names: []string{"ALPHA"}, Argc: 2}})
	d, sug := r.Match("ALP")
	assert.Nil(t, d)
	assert.Equal(t, "ALPHA", sug)

	d, sug = r.Match("AL")
	assert.Nil(t, d)
	assert.Equal(t, "", sug)
}

func TestMatchTie(t *testing.T) {
	beta := &Descriptor{Kind: Move, Names: []string{"BETA"}, Argc: 2}
	beto := &Descriptor{Kind: Line, Names: []string{"BETO"}, Argc: 2}
	_, sug := NewRegistry([]*Descriptor{beta, beto}).Match("BETX")
	assert.Equal(t, "BETA", sug)
	_, sug = NewRegistry([]*Descriptor{beto, beta}).Match("BETX")
	assert.Equal(t, "BETO", sug)
}

func TestKeywords(t *testing.T) {
	kw := Default.Keywords()
	assert.Len(t, kw, 27)
	assert.Equal(t, "CLOSE", kw[0])
	assert.IsNonDecreasing(t, kw)
	assert.Contains(t, kw, "WORLD_TRANSLATE")
}

func TestNew(t *testing.T) {
	c := New(Lookup(Line), 10, -2.5)
	assert.Equal(t, "LINE, 10, -2.5,", c.String())
	assert.Equal(t, "END,", New(Lookup(End)).String())
	assert.Panics(t, func() { New(Lookup(Quad), 1, 2) })

	var p Program
	assert.Equal(t, 0, p.Len())
	p.Add(New(Lookup(Move), 0, 0))
	p.Add(c)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "MOVE, 0, 0,\nLINE, 10, -2.5,\n", p.String())

	var np *Program
	assert.Equal(t, 0, np.Len())
}
