// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows

package gl

import (
	"fmt"
	"runtime"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

// glLib is opengl32.dll together with its wglGetProcAddress, which hands out
// everything the DLL export table predates.
type glLib struct {
	dll            syscall.DLL
	getProcAddress *syscall.Proc
}

func openGLLib() (glLib, error) {
	handle, err := syscall.LoadLibraryEx("opengl32.dll", 0, syscall.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return glLib{}, fmt.Errorf("gl: loading opengl32.dll failed: %v", err)
	}
	lib := glLib{dll: syscall.DLL{Name: "opengl32.dll", Handle: handle}}
	if p, err := lib.dll.FindProc("wglGetProcAddress"); err == nil {
		lib.getProcAddress = p
	}
	return lib, nil
}

func (l glLib) lookup(name string) uintptr {
	if p, err := l.dll.FindProc(name); err == nil {
		return p.Addr()
	}
	if l.getProcAddress == nil {
		return 0
	}
	cname := append([]byte(name), 0)
	addr, _, _ := l.getProcAddress.Call(uintptr(unsafe.Pointer(&cname[0])))
	runtime.KeepAlive(cname)
	// wglGetProcAddress signals failure with a handful of small magic
	// values, not just NULL.
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return 0
	}
	return addr
}
