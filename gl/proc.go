// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ProcAddrFunc resolves a named entry point through a windowing library.
// glfw.GetProcAddress and sdl.GLGetProcAddress both satisfy it.
type ProcAddrFunc func(name string) unsafe.Pointer

var (
	// ErrProcNotFound reports an entry point absent from both the system
	// OpenGL library and the windowing-library resolver.
	ErrProcNotFound = errors.New("entry point not found")
	// ErrBadSignature reports an entry point whose address could not be
	// bound to its Go signature.
	ErrBadSignature = errors.New("incompatible entry point signature")
)

// ResolveError reports the entry point whose resolution failed and why.
type ResolveError struct {
	Name string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("gl: resolve %s: %v", e.Name, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// loaderState caches the outcome of the first load for the lifetime of the
// process.
type loaderState struct {
	once sync.Once
	f    *Functions
	err  error
}

var globalLoader loaderState

func (l *loaderState) load(open func() (lookuper, error), getProcAddr ProcAddrFunc) (*Functions, error) {
	l.once.Do(func() {
		lib, err := open()
		if err != nil {
			l.err = err
			return
		}
		l.f, l.err = resolve(procSource{lib: lib, getProcAddr: getProcAddr})
	})
	return l.f, l.err
}

// Load opens the system OpenGL library and resolves every entry point,
// returning the process-wide function table. A current context is required.
// The table is populated exactly once; all later calls return the identical
// table and error, regardless of arguments to LoadWith. Entry points stay
// bound until process exit, so contexts created against a different driver
// mid-process are not supported.
func Load() (*Functions, error) {
	return LoadWith(nil)
}

// LoadWith is Load with a fallback resolver consulted for names the system
// library cannot supply, typically the extension loader of the windowing
// library that created the context. Only the resolver passed to the first
// load has any effect.
func LoadWith(getProcAddr ProcAddrFunc) (*Functions, error) {
	return globalLoader.load(systemLib, getProcAddr)
}

func systemLib() (lookuper, error) {
	lib, err := openGLLib()
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// lookuper is the address source consumed by resolve.
type lookuper interface {
	lookup(name string) uintptr
}

// procSource tries the system library first and the windowing-library
// resolver second. Drivers routinely export only the legacy subset from the
// library itself and hand out everything newer through the second path.
type procSource struct {
	lib         lookuper
	getProcAddr ProcAddrFunc
}

func (s procSource) lookup(name string) uintptr {
	if addr := s.lib.lookup(name); addr != 0 {
		return addr
	}
	if s.getProcAddr != nil {
		return uintptr(s.getProcAddr(name))
	}
	return 0
}

// resolve fills a fresh Functions table from src. Entry points beyond the
// baseline profile are allowed to be absent; their failure is recorded and
// reported through Missing. A missing baseline entry point aborts the load.
func resolve(src lookuper) (*Functions, error) {
	f := &Functions{
		procs:   make(map[string]uintptr),
		missing: make(map[string]error),
	}
	for _, p := range f.entryPoints() {
		addr := src.lookup(p.name)
		if addr == 0 {
			err := &ResolveError{Name: p.name, Err: ErrProcNotFound}
			if p.optional {
				f.missing[p.name] = err
				continue
			}
			return nil, err
		}
		if err := bindProc(p.fn, addr); err != nil {
			rerr := &ResolveError{Name: p.name, Err: err}
			if p.optional {
				f.missing[p.name] = rerr
				continue
			}
			return nil, rerr
		}
		f.procs[p.name] = addr
	}
	return f, nil
}

// bindProc points the function slot fn at addr. RegisterFunc panics on
// malformed slots; that is converted to ErrBadSignature so a single broken
// entry point cannot take down the whole load.
func bindProc(fn interface{}, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrBadSignature, r)
		}
	}()
	purego.RegisterFunc(fn, addr)
	return nil
}

// Missing explains why the named entry point is unavailable, or returns nil
// if it resolved. Only entry points beyond the baseline profile can be
// missing from a successfully loaded table.
func (f *Functions) Missing(name string) error {
	return f.missing[name]
}

// missingErr is Missing for tables that never went through resolve, such as
// the zero Functions used in tests.
func (f *Functions) missingErr(name string) error {
	if err := f.missing[name]; err != nil {
		return err
	}
	return &ResolveError{Name: name, Err: ErrProcNotFound}
}

// ProcAddr returns the resolved address of the named entry point, or 0.
func (f *Functions) ProcAddr(name string) uintptr {
	return f.procs[name]
}
