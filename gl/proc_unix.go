// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd || darwin

package gl

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// glLib is a dynamically loaded system OpenGL library.
type glLib struct {
	handle uintptr
}

// libCandidates returns the library names to try, most specific first.
func libCandidates() []string {
	if runtime.GOOS == "darwin" {
		return []string{"/System/Library/Frameworks/OpenGL.framework/Versions/Current/OpenGL"}
	}
	return []string{"libGL.so.1", "libGL.so", "libGLESv2.so.2"}
}

func openGLLib() (glLib, error) {
	var firstErr error
	for _, name := range libCandidates() {
		h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			return glLib{handle: h}, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return glLib{}, fmt.Errorf("gl: no OpenGL library found: %v", firstErr)
}

func (l glLib) lookup(name string) uintptr {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0
	}
	return addr
}
