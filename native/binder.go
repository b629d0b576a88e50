// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "unsafe"

// ArgKind is the C type of one native argument.
type ArgKind uint8

const (
	// ArgInt32 is a C int.
	ArgInt32 ArgKind = iota

	// ArgPointer is a C void*.
	ArgPointer
)

// Proc is a bound native function returning a C int.
//
// Call follows the libffi convention: each element of args points at the
// value of the corresponding argument, not at the argument itself.
type Proc interface {
	Call(args ...unsafe.Pointer) (int32, error)
}

// Binder resolves a symbol in a named shared library and prepares it for
// calls with the given argument kinds.
type Binder interface {
	Bind(library, symbol string, args []ArgKind) (Proc, error)
}
