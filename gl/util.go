// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"unsafe"
)

// CreateProgram compiles and links a vertex/fragment shader pair, binding
// the given attribute names to locations 0, 1, and so on. The shaders are
// flagged for deletion before the link status is inspected.
func CreateProgram(ctx *Functions, vsSrc, fsSrc string, attribs []string) (Program, error) {
	vs, err := createShader(ctx, VERTEX_SHADER, vsSrc)
	if err != nil {
		return Program{}, err
	}
	fs, err := createShader(ctx, FRAGMENT_SHADER, fsSrc)
	if err != nil {
		ctx.DeleteShader(vs)
		return Program{}, err
	}
	prog := ctx.CreateProgram()
	for i, a := range attribs {
		ctx.BindAttribLocation(prog, Attrib(i), a)
	}
	ctx.AttachShader(prog, vs)
	ctx.AttachShader(prog, fs)
	ctx.LinkProgram(prog)
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)
	if ctx.GetProgrami(prog, LINK_STATUS) == FALSE {
		log := ctx.GetProgramInfoLog(prog)
		ctx.DeleteProgram(prog)
		return Program{}, fmt.Errorf("gl: program link failed: %s", log)
	}
	return prog, nil
}

func createShader(ctx *Functions, typ Enum, src string) (Shader, error) {
	shader := ctx.CreateShader(typ)
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)
	if ctx.GetShaderi(shader, COMPILE_STATUS) == FALSE {
		log := ctx.GetShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return Shader{}, fmt.Errorf("gl: shader compilation failed: %s", log)
	}
	return shader, nil
}

// BytesView returns a byte slice view of s, sharing its backing array.
// Useful for uploading typed vertex data through BufferData.
func BytesView[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var e E
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(e)))
}

// cstr returns s as a NUL-terminated byte slice.
func cstr(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*byte)(unsafe.Add(ptr, n)) != 0; n++ {
	}
	return string(unsafe.Slice(p, n))
}

// goStringBytes interprets b up to its first NUL, if any.
func goStringBytes(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
