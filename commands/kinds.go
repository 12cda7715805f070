// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import "fmt"

// Kinds is the closed set of command behaviors.
// The interpreter handles every kind; any other value panics.
type Kinds int32

const (
	Move Kinds = iota
	Line
	Quad
	Cubic
	End

	PushTrans
	PopTrans
	PushScale
	PushRotate
	PushSkew
	PushTranslate

	PushWorldTrans
	PopWorldTrans
	PushWorldScale
	PushWorldRotate
	PushWorldSkew
	PushWorldTranslate

	// KindsN is the number of command kinds.
	KindsN
)

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return formats[k].Names[0]
}

// IsWorld returns true for the transform commands that
// operate on the world stack.
func (k Kinds) IsWorld() bool {
	return k >= PushWorldTrans && k <= PushWorldTranslate
}

// IsTransform returns true for all push and pop transform commands.
func (k Kinds) IsTransform() bool {
	return k >= PushTrans && k <= PushWorldTranslate
}

// IsPop returns true for the pop transform commands.
func (k Kinds) IsPop() bool {
	return k == PopTrans || k == PopWorldTrans
}

// Local returns the local stack equivalent of a world transform kind,
// and the kind itself otherwise.
func (k Kinds) Local() Kinds {
	if k.IsWorld() {
		return k - PushWorldTrans + PushTrans
	}
	return k
}
