// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"fmt"

	"cogentcore.org/vegravis/commands"
	"cogentcore.org/vegravis/math64"
)

// Context is the mutable state of one interpreter run.
// It is created fresh for every [Generate] call and never shared.
type Context struct {

	// Grouping is whether the last emitted points extend the current
	// polyline (true), or started a new one (false).
	Grouping bool

	// Cursor is the current pen position, after the local transform.
	Cursor math64.Vector2

	// LocalStack is the stack of local transforms, applied to
	// command control points before curve flattening.
	LocalStack []math64.Matrix3

	// Local is always the composed product of LocalStack.
	Local math64.Matrix3

	// WorldStack is the stack of world transforms, applied to all
	// generated points after flattening.
	WorldStack []math64.Matrix3

	// World is always the composed product of WorldStack.
	World math64.Matrix3
}

// NewContext returns a new context at the origin with identity transforms.
func NewContext() *Context {
	return &Context{Local: math64.Identity3(), World: math64.Identity3()}
}

// Push pushes the matrix onto the world or local stack,
// recomputing the corresponding composed transform.
func (ctx *Context) Push(world bool, m math64.Matrix3) {
	if world {
		ctx.WorldStack = append(ctx.WorldStack, m)
		ctx.World = math64.Compose(ctx.WorldStack)
		return
	}
	ctx.LocalStack = append(ctx.LocalStack, m)
	ctx.Local = math64.Compose(ctx.LocalStack)
}

// Pop pops the world or local stack. Popping an empty stack does nothing.
func (ctx *Context) Pop(world bool) {
	if world {
		if len(ctx.WorldStack) == 0 {
			return
		}
		ctx.WorldStack = ctx.WorldStack[:len(ctx.WorldStack)-1]
		ctx.World = math64.Compose(ctx.WorldStack)
		return
	}
	if len(ctx.LocalStack) == 0 {
		return
	}
	ctx.LocalStack = ctx.LocalStack[:len(ctx.LocalStack)-1]
	ctx.Local = math64.Compose(ctx.LocalStack)
}

// local returns the point (x, y) under the local transform.
func (ctx *Context) local(x, y float64) math64.Vector2 {
	return ctx.Local.MulVector2AsPoint(math64.Vec2(x, y))
}

// Eval evaluates one command against the context, returning
// the points it emits, which may be none.
func (ctx *Context) Eval(cmd commands.Command) []math64.Vector2 {
	a := cmd.Args
	switch cmd.Kind {
	case commands.Move:
		p := ctx.local(a[0], a[1])
		ctx.Cursor = p
		ctx.Grouping = false
		return []math64.Vector2{p}
	case commands.Line:
		p := ctx.local(a[0], a[1])
		pts := []math64.Vector2{ctx.Cursor, p}
		ctx.Cursor = p
		ctx.Grouping = true
		return pts
	case commands.Quad:
		p1 := ctx.local(a[0], a[1])
		p2 := ctx.local(a[2], a[3])
		pts := FlattenQuad(ctx.Cursor, p1, p2)
		ctx.Cursor = p2
		ctx.Grouping = true
		return pts
	case commands.Cubic:
		p1 := ctx.local(a[0], a[1])
		p2 := ctx.local(a[2], a[3])
		p3 := ctx.local(a[4], a[5])
		pts := FlattenCubic(ctx.Cursor, p1, p2, p3)
		ctx.Cursor = p3
		ctx.Grouping = true
		return pts
	case commands.End:
		return nil
	}
	switch k := cmd.Kind; {
	case k.IsPop():
		ctx.Pop(k.IsWorld())
		return nil
	case k.IsTransform():
		ctx.Push(k.IsWorld(), TransformMatrix(k.Local(), a))
		return nil
	}
	panic(fmt.Sprintf("generate: unknown command kind %v", cmd.Kind))
}

// TransformMatrix returns the matrix for a local push transform kind
// with the given arguments.
func TransformMatrix(k commands.Kinds, a []float64) math64.Matrix3 {
	switch k {
	case commands.PushTrans:
		return math64.Matrix3FromSlice(a)
	case commands.PushScale:
		return math64.Scale2D(a[0], a[1])
	case commands.PushRotate:
		return math64.Rotate2D(a[0])
	case commands.PushSkew:
		return math64.Skew2D(a[0], a[1])
	case commands.PushTranslate:
		return math64.Translate2D(a[0], a[1])
	}
	panic(fmt.Sprintf("generate: %v is not a push transform", k))
}
