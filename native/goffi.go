// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// goffiBinder binds symbols with goffi, a cgo-free FFI. Libraries stay
// loaded for the life of the process.
type goffiBinder struct {
	mu   sync.Mutex
	libs map[string]unsafe.Pointer
}

var defaultBinder = &goffiBinder{libs: make(map[string]unsafe.Pointer)}

// DefaultBinder returns the process-wide goffi binder.
func DefaultBinder() Binder {
	return defaultBinder
}

func (b *goffiBinder) open(library string) (unsafe.Pointer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if h, ok := b.libs[library]; ok {
		return h, nil
	}
	h, err := ffi.LoadLibrary(library)
	if err != nil {
		return nil, err
	}
	b.libs[library] = h
	return h, nil
}

// Bind implements Binder.
func (b *goffiBinder) Bind(library, symbol string, args []ArgKind) (Proc, error) {
	h, err := b.open(library)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", library, err)
	}
	fn, err := ffi.GetSymbol(h, symbol)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, fmt.Errorf("symbol %s is nil", symbol)
	}

	argTypes := make([]*types.TypeDescriptor, len(args))
	for i, a := range args {
		switch a {
		case ArgInt32:
			argTypes[i] = types.SInt32TypeDescriptor
		case ArgPointer:
			argTypes[i] = types.PointerTypeDescriptor
		default:
			return nil, fmt.Errorf("unsupported argument kind %d", a)
		}
	}

	cif := &types.CallInterface{}
	if err := ffi.PrepareCallInterface(cif, types.DefaultCall, types.SInt32TypeDescriptor, argTypes); err != nil {
		return nil, fmt.Errorf("prepare %s: %w", symbol, err)
	}
	return &goffiProc{cif: cif, fn: fn, nargs: len(args)}, nil
}

type goffiProc struct {
	cif   *types.CallInterface
	fn    unsafe.Pointer
	nargs int
}

// Call implements Proc.
func (p *goffiProc) Call(args ...unsafe.Pointer) (int32, error) {
	if len(args) != p.nargs {
		return 0, fmt.Errorf("got %d arguments, want %d", len(args), p.nargs)
	}
	// Integer returns are widened to a full register.
	var ret uint64
	if err := ffi.CallFunction(p.cif, p.fn, unsafe.Pointer(&ret), args); err != nil {
		return 0, err
	}
	return int32(uint32(ret)), nil //nolint:gosec // C int return
}
