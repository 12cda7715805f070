// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import "fmt"

// Cursor is a position within the source. Row and Col are 0-based
// display coordinates, and Pos is the absolute rune offset.
// Errors display the row 1-based and the column 0-based.
type Cursor struct {
	Row int
	Col int
	Pos int
}

// String satisfies the fmt.Stringer interface
func (cr Cursor) String() string {
	return fmt.Sprintf("(%d, %d)", cr.Row+1, cr.Col)
}

// Next returns the cursor advanced past rune r.
func (cr Cursor) Next(r rune) Cursor {
	cr.Pos++
	if r == '\n' {
		cr.Row++
		cr.Col = 0
		return cr
	}
	cr.Col++
	return cr
}

// IsLess returns true if receiver position is less than given comparison
func (cr Cursor) IsLess(cmp Cursor) bool {
	return cr.Pos < cmp.Pos
}

// Span is a half-open region [St, Ed) within the source.
type Span struct {
	St Cursor
	Ed Cursor
}

// IsNil checks if the span is empty, because the start is after or equal to the end
func (sp Span) IsNil() bool {
	return !sp.St.IsLess(sp.Ed)
}

// Len returns the number of runes in the span.
func (sp Span) Len() int {
	return sp.Ed.Pos - sp.St.Pos
}
