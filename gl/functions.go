// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Functions is the table of resolved OpenGL entry points. One slot exists per
// entry point; slots are populated exactly once by Load and never change for
// the lifetime of the process. A Functions must only be used from the thread
// its context is current on.
//
// Methods backed by entry points the current context does not provide panic
// when called, except where noted; consult Missing before using functionality
// beyond the baseline profile.
type Functions struct {
	// CheckUploads makes buffer and texture upload methods assert that no
	// error is pending after the native call, at the cost of a pipeline
	// stall per upload.
	CheckUploads bool

	procs   map[string]uintptr
	missing map[string]error

	// Scratch space for single-value queries.
	uints  [4]uint32
	ints   [4]int32
	floats [4]float32

	activeTexture                func(texture uint32)
	attachShader                 func(program, shader uint32)
	beginQuery                   func(target, id uint32)
	bindAttribLocation           func(program, index uint32, name *byte)
	bindBuffer                   func(target, buffer uint32)
	bindBufferBase               func(target, index, buffer uint32)
	bindFramebuffer              func(target, framebuffer uint32)
	bindRenderbuffer             func(target, renderbuffer uint32)
	bindTexture                  func(target, texture uint32)
	bindVertexArray              func(array uint32)
	blendColor                   func(red, green, blue, alpha float32)
	blendEquation                func(mode uint32)
	blendEquationSeparate        func(modeRGB, modeAlpha uint32)
	blendFunc                    func(sfactor, dfactor uint32)
	blendFuncSeparate            func(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	blitFramebuffer              func(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter uint32)
	bufferData                   func(target uint32, size int, data unsafe.Pointer, usage uint32)
	bufferSubData                func(target uint32, offset, size int, data unsafe.Pointer)
	checkFramebufferStatus       func(target uint32) uint32
	clear                        func(mask uint32)
	clearColor                   func(red, green, blue, alpha float32)
	clearDepth                   func(depth float64)
	clearDepthf                  func(depth float32)
	clearStencil                 func(s int32)
	clientWaitSync               func(sync uintptr, flags uint32, timeout uint64) uint32
	colorMask                    func(red, green, blue, alpha bool)
	compileShader                func(shader uint32)
	compressedTexImage2D         func(target uint32, level int32, internalformat uint32, width, height, border int32, imageSize int32, data unsafe.Pointer)
	copyTexImage2D               func(target uint32, level int32, internalformat uint32, x, y, width, height, border int32)
	copyTexSubImage2D            func(target uint32, level, xoffset, yoffset, x, y, width, height int32)
	createProgram                func() uint32
	createShader                 func(xtype uint32) uint32
	cullFace                     func(mode uint32)
	debugMessageCallback         func(callback uintptr, userParam unsafe.Pointer)
	debugMessageControl          func(source, xtype, severity uint32, count int32, ids *uint32, enabled bool)
	debugMessageInsert           func(source, xtype, id, severity uint32, length int32, buf *byte)
	deleteBuffers                func(n int32, buffers *uint32)
	deleteFramebuffers           func(n int32, framebuffers *uint32)
	deleteProgram                func(program uint32)
	deleteQueries                func(n int32, ids *uint32)
	deleteRenderbuffers          func(n int32, renderbuffers *uint32)
	deleteShader                 func(shader uint32)
	deleteSync                   func(sync uintptr)
	deleteTextures               func(n int32, textures *uint32)
	deleteVertexArrays           func(n int32, arrays *uint32)
	depthFunc                    func(xfunc uint32)
	depthMask                    func(flag bool)
	depthRange                   func(near, far float64)
	depthRangef                  func(near, far float32)
	detachShader                 func(program, shader uint32)
	disable                      func(cap uint32)
	disableVertexAttribArray     func(index uint32)
	drawArrays                   func(mode uint32, first, count int32)
	drawArraysInstanced          func(mode uint32, first, count, instancecount int32)
	drawElements                 func(mode uint32, count int32, xtype uint32, indices uintptr)
	drawElementsBaseVertex       func(mode uint32, count int32, xtype uint32, indices uintptr, basevertex int32)
	drawElementsInstanced        func(mode uint32, count int32, xtype uint32, indices uintptr, instancecount int32)
	enable                       func(cap uint32)
	enableVertexAttribArray      func(index uint32)
	endQuery                     func(target uint32)
	fenceSync                    func(condition, flags uint32) uintptr
	finish                       func()
	flush                        func()
	framebufferRenderbuffer      func(target, attachment, renderbuffertarget, renderbuffer uint32)
	framebufferTexture2D         func(target, attachment, textarget, texture uint32, level int32)
	frontFace                    func(mode uint32)
	genBuffers                   func(n int32, buffers *uint32)
	genFramebuffers              func(n int32, framebuffers *uint32)
	genQueries                   func(n int32, ids *uint32)
	genRenderbuffers             func(n int32, renderbuffers *uint32)
	genTextures                  func(n int32, textures *uint32)
	genVertexArrays              func(n int32, arrays *uint32)
	generateMipmap               func(target uint32)
	getAttribLocation            func(program uint32, name *byte) int32
	getError                     func() uint32
	getFloatv                    func(pname uint32, data *float32)
	getInteger64v                func(pname uint32, data *int64)
	getIntegerv                  func(pname uint32, data *int32)
	getProgramInfoLog            func(program uint32, bufSize int32, length *int32, infoLog *byte)
	getProgramiv                 func(program, pname uint32, params *int32)
	getQueryObjectuiv            func(id, pname uint32, params *uint32)
	getShaderInfoLog             func(shader uint32, bufSize int32, length *int32, infoLog *byte)
	getShaderiv                  func(shader, pname uint32, params *int32)
	getString                    func(name uint32) *byte
	getStringi                   func(name, index uint32) *byte
	getUniformBlockIndex         func(program uint32, uniformBlockName *byte) uint32
	getUniformLocation           func(program uint32, name *byte) int32
	hint                         func(target, mode uint32)
	invalidateFramebuffer        func(target uint32, numAttachments int32, attachments *uint32)
	isEnabled                    func(cap uint32) bool
	lineWidth                    func(width float32)
	linkProgram                  func(program uint32)
	mapBufferRange               func(target uint32, offset, length int, access uint32) unsafe.Pointer
	objectLabel                  func(identifier, name uint32, length int32, label *byte)
	pixelStorei                  func(pname uint32, param int32)
	polygonMode                  func(face, mode uint32)
	polygonOffset                func(factor, units float32)
	readBuffer                   func(src uint32)
	readPixels                   func(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	renderbufferStorage          func(target, internalformat uint32, width, height int32)
	renderbufferStorageMultisample func(target uint32, samples int32, internalformat uint32, width, height int32)
	sampleCoverage               func(value float32, invert bool)
	scissor                      func(x, y, width, height int32)
	shaderSource                 func(shader uint32, count int32, xstring **byte, length *int32)
	stencilFunc                  func(xfunc uint32, ref int32, mask uint32)
	stencilFuncSeparate          func(face, xfunc uint32, ref int32, mask uint32)
	stencilMask                  func(mask uint32)
	stencilMaskSeparate          func(face, mask uint32)
	stencilOp                    func(fail, zfail, zpass uint32)
	stencilOpSeparate            func(face, sfail, dpfail, dppass uint32)
	texImage2D                   func(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)
	texImage3D                   func(target uint32, level, internalformat, width, height, depth, border int32, format, xtype uint32, pixels unsafe.Pointer)
	texParameterf                func(target, pname uint32, param float32)
	texParameteri                func(target, pname uint32, param int32)
	texStorage2D                 func(target uint32, levels int32, internalformat uint32, width, height int32)
	texSubImage2D                func(target uint32, level, xoffset, yoffset, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	texSubImage3D                func(target uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, xtype uint32, pixels unsafe.Pointer)
	uniform1f                    func(location int32, v0 float32)
	uniform1fv                   func(location int32, count int32, value *float32)
	uniform1i                    func(location, v0 int32)
	uniform2f                    func(location int32, v0, v1 float32)
	uniform2fv                   func(location int32, count int32, value *float32)
	uniform3f                    func(location int32, v0, v1, v2 float32)
	uniform3fv                   func(location int32, count int32, value *float32)
	uniform4f                    func(location int32, v0, v1, v2, v3 float32)
	uniform4fv                   func(location int32, count int32, value *float32)
	uniformBlockBinding          func(program, uniformBlockIndex, uniformBlockBinding uint32)
	uniformMatrix2fv             func(location int32, count int32, transpose bool, value *float32)
	uniformMatrix3fv             func(location int32, count int32, transpose bool, value *float32)
	uniformMatrix4fv             func(location int32, count int32, transpose bool, value *float32)
	unmapBuffer                  func(target uint32) bool
	useProgram                   func(program uint32)
	vertexAttribDivisor          func(index, divisor uint32)
	vertexAttribPointer          func(index uint32, size int32, xtype uint32, normalized bool, stride int32, pointer uintptr)
	viewport                     func(x, y, width, height int32)
}

func (f *Functions) ActiveTexture(texture Enum) {
	f.activeTexture(uint32(texture))
}

func (f *Functions) AttachShader(p Program, s Shader) {
	f.attachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BeginQuery(target Enum, query Query) {
	f.beginQuery(uint32(target), uint32(query.V))
}

func (f *Functions) BindAttribLocation(p Program, a Attrib, name string) {
	cname := cstr(name)
	f.bindAttribLocation(uint32(p.V), uint32(a), &cname[0])
	runtime.KeepAlive(cname)
}

func (f *Functions) BindBuffer(target Enum, b Buffer) {
	f.bindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindBufferBase(target Enum, index int, b Buffer) {
	f.bindBufferBase(uint32(target), uint32(index), uint32(b.V))
}

func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	f.bindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) BindRenderbuffer(target Enum, rb Renderbuffer) {
	f.bindRenderbuffer(uint32(target), uint32(rb.V))
}

func (f *Functions) BindTexture(target Enum, t Texture) {
	f.bindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BindVertexArray(a VertexArray) {
	f.bindVertexArray(uint32(a.V))
}

func (f *Functions) BlendColor(red, green, blue, alpha float32) {
	f.blendColor(red, green, blue, alpha)
}

func (f *Functions) BlendEquation(mode Enum) {
	f.blendEquation(uint32(mode))
}

func (f *Functions) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	f.blendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (f *Functions) BlendFunc(sfactor, dfactor Enum) {
	f.blendFunc(uint32(sfactor), uint32(dfactor))
}

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	f.blendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (f *Functions) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum) {
	f.blitFramebuffer(int32(sx0), int32(sy0), int32(sx1), int32(sy1), int32(dx0), int32(dy0), int32(dx1), int32(dy1), uint32(mask), uint32(filter))
}

// BufferData creates the data store of the bound buffer. The src slice is
// pinned only for the duration of the native call; pass nil to allocate an
// uninitialized store of the given size.
func (f *Functions) BufferData(target Enum, size int, src []byte, usage Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
		size = len(src)
	}
	f.bufferData(uint32(target), size, p, uint32(usage))
	runtime.KeepAlive(src)
	f.checkUpload("glBufferData")
}

func (f *Functions) BufferSubData(target Enum, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	f.bufferSubData(uint32(target), offset, len(src), unsafe.Pointer(&src[0]))
	runtime.KeepAlive(src)
	f.checkUpload("glBufferSubData")
}

func (f *Functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(f.checkFramebufferStatus(uint32(target)))
}

func (f *Functions) Clear(mask Enum) {
	f.clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.clearColor(red, green, blue, alpha)
}

// ClearDepthf uses glClearDepthf where the context provides it and falls back
// to the double-precision desktop variant otherwise.
func (f *Functions) ClearDepthf(d float32) {
	if f.clearDepthf != nil {
		f.clearDepthf(d)
		return
	}
	f.clearDepth(float64(d))
}

func (f *Functions) ClearStencil(s int) {
	f.clearStencil(int32(s))
}

func (f *Functions) ClientWaitSync(s Sync, flags Enum, timeoutNs uint64) Enum {
	return Enum(f.clientWaitSync(s.V, uint32(flags), timeoutNs))
}

func (f *Functions) ColorMask(red, green, blue, alpha bool) {
	f.colorMask(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s Shader) {
	f.compileShader(uint32(s.V))
}

func (f *Functions) CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.compressedTexImage2D(uint32(target), int32(level), uint32(internalFormat), int32(width), int32(height), 0, int32(len(data)), p)
	runtime.KeepAlive(data)
	f.checkUpload("glCompressedTexImage2D")
}

func (f *Functions) CopyTexImage2D(target Enum, level int, internalFormat Enum, x, y, width, height int) {
	f.copyTexImage2D(uint32(target), int32(level), uint32(internalFormat), int32(x), int32(y), int32(width), int32(height), 0)
}

func (f *Functions) CopyTexSubImage2D(target Enum, level, xoffset, yoffset, x, y, width, height int) {
	f.copyTexSubImage2D(uint32(target), int32(level), int32(xoffset), int32(yoffset), int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) CreateBuffer() Buffer {
	f.genBuffers(1, &f.uints[0])
	return Buffer{uint(f.uints[0])}
}

func (f *Functions) CreateFramebuffer() Framebuffer {
	f.genFramebuffers(1, &f.uints[0])
	return Framebuffer{uint(f.uints[0])}
}

func (f *Functions) CreateProgram() Program {
	return Program{uint(f.createProgram())}
}

func (f *Functions) CreateQuery() Query {
	f.genQueries(1, &f.uints[0])
	return Query{uint(f.uints[0])}
}

func (f *Functions) CreateRenderbuffer() Renderbuffer {
	f.genRenderbuffers(1, &f.uints[0])
	return Renderbuffer{uint(f.uints[0])}
}

func (f *Functions) CreateShader(ty Enum) Shader {
	return Shader{uint(f.createShader(uint32(ty)))}
}

func (f *Functions) CreateTexture() Texture {
	f.genTextures(1, &f.uints[0])
	return Texture{uint(f.uints[0])}
}

func (f *Functions) CreateVertexArray() VertexArray {
	f.genVertexArrays(1, &f.uints[0])
	return VertexArray{uint(f.uints[0])}
}

func (f *Functions) CullFace(mode Enum) {
	f.cullFace(uint32(mode))
}

func (f *Functions) DeleteBuffer(v Buffer) {
	f.uints[0] = uint32(v.V)
	f.deleteBuffers(1, &f.uints[0])
}

func (f *Functions) DeleteFramebuffer(v Framebuffer) {
	f.uints[0] = uint32(v.V)
	f.deleteFramebuffers(1, &f.uints[0])
}

func (f *Functions) DeleteProgram(p Program) {
	f.deleteProgram(uint32(p.V))
}

func (f *Functions) DeleteQuery(query Query) {
	f.uints[0] = uint32(query.V)
	f.deleteQueries(1, &f.uints[0])
}

func (f *Functions) DeleteRenderbuffer(v Renderbuffer) {
	f.uints[0] = uint32(v.V)
	f.deleteRenderbuffers(1, &f.uints[0])
}

func (f *Functions) DeleteShader(s Shader) {
	f.deleteShader(uint32(s.V))
}

func (f *Functions) DeleteSync(s Sync) {
	f.deleteSync(s.V)
}

func (f *Functions) DeleteTexture(v Texture) {
	f.uints[0] = uint32(v.V)
	f.deleteTextures(1, &f.uints[0])
}

func (f *Functions) DeleteVertexArray(a VertexArray) {
	f.uints[0] = uint32(a.V)
	f.deleteVertexArrays(1, &f.uints[0])
}

func (f *Functions) DepthFunc(v Enum) {
	f.depthFunc(uint32(v))
}

func (f *Functions) DepthMask(mask bool) {
	f.depthMask(mask)
}

// DepthRangef prefers glDepthRangef and falls back to the desktop double
// variant, mirroring ClearDepthf.
func (f *Functions) DepthRangef(near, far float32) {
	if f.depthRangef != nil {
		f.depthRangef(near, far)
		return
	}
	f.depthRange(float64(near), float64(far))
}

func (f *Functions) DetachShader(p Program, s Shader) {
	f.detachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) Disable(cap Enum) {
	f.disable(uint32(cap))
}

func (f *Functions) DisableVertexAttribArray(a Attrib) {
	f.disableVertexAttribArray(uint32(a))
}

func (f *Functions) DrawArrays(mode Enum, first, count int) {
	f.drawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawArraysInstanced(mode Enum, first, count, instances int) {
	f.drawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
}

func (f *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	f.drawElements(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}

func (f *Functions) DrawElementsBaseVertex(mode Enum, count int, ty Enum, offset, base int) {
	f.drawElementsBaseVertex(uint32(mode), int32(count), uint32(ty), uintptr(offset), int32(base))
}

func (f *Functions) DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instances int) {
	f.drawElementsInstanced(uint32(mode), int32(count), uint32(ty), uintptr(offset), int32(instances))
}

func (f *Functions) Enable(cap Enum) {
	f.enable(uint32(cap))
}

func (f *Functions) EnableVertexAttribArray(a Attrib) {
	f.enableVertexAttribArray(uint32(a))
}

func (f *Functions) EndQuery(target Enum) {
	f.endQuery(uint32(target))
}

func (f *Functions) FenceSync() Sync {
	return Sync{f.fenceSync(SYNC_GPU_COMMANDS_COMPLETE, 0)}
}

func (f *Functions) Finish() {
	f.finish()
}

func (f *Functions) Flush() {
	f.flush()
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, renderbuffer Renderbuffer) {
	f.framebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(renderbuffer.V))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	f.framebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (f *Functions) FrontFace(mode Enum) {
	f.frontFace(uint32(mode))
}

func (f *Functions) GenerateMipmap(target Enum) {
	f.generateMipmap(uint32(target))
}

func (f *Functions) GetAttribLocation(p Program, name string) int {
	cname := cstr(name)
	loc := f.getAttribLocation(uint32(p.V), &cname[0])
	runtime.KeepAlive(cname)
	return int(loc)
}

func (f *Functions) GetError() Enum {
	return Enum(f.getError())
}

func (f *Functions) GetFloat(pname Enum) float32 {
	f.getFloatv(uint32(pname), &f.floats[0])
	return f.floats[0]
}

func (f *Functions) GetFloat4(pname Enum) [4]float32 {
	f.getFloatv(uint32(pname), &f.floats[0])
	return f.floats
}

func (f *Functions) GetInteger(pname Enum) int {
	f.ints[0] = 0
	f.getIntegerv(uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetInteger4(pname Enum) [4]int {
	f.getIntegerv(uint32(pname), &f.ints[0])
	var r [4]int
	for i, v := range f.ints {
		r[i] = int(v)
	}
	return r
}

func (f *Functions) GetInteger64(pname Enum) int64 {
	var v int64
	f.getInteger64v(uint32(pname), &v)
	return v
}

func (f *Functions) GetProgrami(p Program, pname Enum) int {
	f.getProgramiv(uint32(p.V), uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.getProgramInfoLog(uint32(p.V), int32(len(buf)), nil, &buf[0])
	return goStringBytes(buf)
}

func (f *Functions) GetQueryObjectuiv(query Query, pname Enum) uint {
	f.getQueryObjectuiv(uint32(query.V), uint32(pname), &f.uints[0])
	return uint(f.uints[0])
}

func (f *Functions) GetShaderi(s Shader, pname Enum) int {
	f.getShaderiv(uint32(s.V), uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.getShaderInfoLog(uint32(s.V), int32(len(buf)), nil, &buf[0])
	return goStringBytes(buf)
}

func (f *Functions) GetString(pname Enum) string {
	return goString(f.getString(uint32(pname)))
}

// GetStringi returns the indexed string for pname, or "" when the context
// predates indexed queries.
func (f *Functions) GetStringi(pname Enum, index int) string {
	if f.getStringi == nil {
		return ""
	}
	return goString(f.getStringi(uint32(pname), uint32(index)))
}

func (f *Functions) GetUniformBlockIndex(p Program, name string) uint {
	cname := cstr(name)
	idx := f.getUniformBlockIndex(uint32(p.V), &cname[0])
	runtime.KeepAlive(cname)
	return uint(idx)
}

func (f *Functions) GetUniformLocation(p Program, name string) Uniform {
	cname := cstr(name)
	loc := f.getUniformLocation(uint32(p.V), &cname[0])
	runtime.KeepAlive(cname)
	return Uniform{int(loc)}
}

func (f *Functions) Hint(target, mode Enum) {
	f.hint(uint32(target), uint32(mode))
}

// InvalidateFramebuffer is a hint; it is silently ignored on contexts
// without glInvalidateFramebuffer.
func (f *Functions) InvalidateFramebuffer(target, attachment Enum) {
	if f.invalidateFramebuffer == nil {
		return
	}
	f.uints[0] = uint32(attachment)
	f.invalidateFramebuffer(uint32(target), 1, &f.uints[0])
}

func (f *Functions) IsEnabled(cap Enum) bool {
	return f.isEnabled(uint32(cap))
}

func (f *Functions) LineWidth(width float32) {
	f.lineWidth(width)
}

func (f *Functions) LinkProgram(p Program) {
	f.linkProgram(uint32(p.V))
}

// MapBufferRange exposes the mapped range as a byte slice valid until
// UnmapBuffer. It returns nil when mapping fails or the context lacks
// glMapBufferRange.
func (f *Functions) MapBufferRange(target Enum, offset, length int, access Enum) []byte {
	if f.mapBufferRange == nil {
		return nil
	}
	p := f.mapBufferRange(uint32(target), offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (f *Functions) ObjectLabel(identifier Enum, name uint, label string) {
	if f.objectLabel == nil {
		return
	}
	clabel := cstr(label)
	f.objectLabel(uint32(identifier), uint32(name), int32(len(label)), &clabel[0])
	runtime.KeepAlive(clabel)
}

func (f *Functions) PixelStorei(pname Enum, param int32) {
	f.pixelStorei(uint32(pname), param)
}

// PolygonMode is desktop-only; it is ignored on ES contexts.
func (f *Functions) PolygonMode(face, mode Enum) {
	if f.polygonMode == nil {
		return
	}
	f.polygonMode(uint32(face), uint32(mode))
}

func (f *Functions) PolygonOffset(factor, units float32) {
	f.polygonOffset(factor, units)
}

func (f *Functions) ReadBuffer(src Enum) {
	f.readBuffer(uint32(src))
}

func (f *Functions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.readPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
}

func (f *Functions) RenderbufferStorage(target, internalformat Enum, width, height int) {
	f.renderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

func (f *Functions) RenderbufferStorageMultisample(target Enum, samples int, internalformat Enum, width, height int) {
	f.renderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalformat), int32(width), int32(height))
}

func (f *Functions) SampleCoverage(value float32, invert bool) {
	f.sampleCoverage(value, invert)
}

func (f *Functions) Scissor(x, y, width, height int32) {
	f.scissor(x, y, width, height)
}

func (f *Functions) ShaderSource(s Shader, src string) {
	csrc := cstr(src)
	ptr := &csrc[0]
	length := int32(len(src))
	f.shaderSource(uint32(s.V), 1, &ptr, &length)
	runtime.KeepAlive(csrc)
}

func (f *Functions) StencilFunc(fn Enum, ref int, mask uint) {
	f.stencilFunc(uint32(fn), int32(ref), uint32(mask))
}

func (f *Functions) StencilFuncSeparate(face, fn Enum, ref int, mask uint) {
	f.stencilFuncSeparate(uint32(face), uint32(fn), int32(ref), uint32(mask))
}

func (f *Functions) StencilMask(mask uint) {
	f.stencilMask(uint32(mask))
}

func (f *Functions) StencilMaskSeparate(face Enum, mask uint) {
	f.stencilMaskSeparate(uint32(face), uint32(mask))
}

func (f *Functions) StencilOp(fail, zfail, zpass Enum) {
	f.stencilOp(uint32(fail), uint32(zfail), uint32(zpass))
}

func (f *Functions) StencilOpSeparate(face, sfail, dpfail, dppass Enum) {
	f.stencilOpSeparate(uint32(face), uint32(sfail), uint32(dpfail), uint32(dppass))
}

// TexImage2D uploads pixel data to the bound texture. The data slice is
// pinned only for the duration of the native call; nil allocates texture
// storage without supplying data.
func (f *Functions) TexImage2D(target Enum, level int, internalFormat int, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.texImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
	f.checkUpload("glTexImage2D")
}

func (f *Functions) TexImage3D(target Enum, level int, internalFormat int, width, height, depth int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.texImage3D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), int32(depth), 0, uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
	f.checkUpload("glTexImage3D")
}

func (f *Functions) TexParameterf(target, pname Enum, param float32) {
	f.texParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) TexParameteri(target, pname Enum, param int) {
	f.texParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int) {
	f.texStorage2D(uint32(target), int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.texSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
	f.checkUpload("glTexSubImage2D")
}

func (f *Functions) TexSubImage3D(target Enum, level int, x, y, z, width, height, depth int, format, ty Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	f.texSubImage3D(uint32(target), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(ty), p)
	runtime.KeepAlive(data)
	f.checkUpload("glTexSubImage3D")
}

func (f *Functions) Uniform1f(dst Uniform, v float32) {
	f.uniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform1fv(dst Uniform, v []float32) {
	f.uniform1fv(int32(dst.V), int32(len(v)), &v[0])
	runtime.KeepAlive(v)
}

func (f *Functions) Uniform1i(dst Uniform, v int) {
	f.uniform1i(int32(dst.V), int32(v))
}

func (f *Functions) Uniform2f(dst Uniform, v0, v1 float32) {
	f.uniform2f(int32(dst.V), v0, v1)
}

func (f *Functions) Uniform2fv(dst Uniform, v []float32) {
	f.uniform2fv(int32(dst.V), int32(len(v)/2), &v[0])
	runtime.KeepAlive(v)
}

func (f *Functions) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	f.uniform3f(int32(dst.V), v0, v1, v2)
}

func (f *Functions) Uniform3fv(dst Uniform, v []float32) {
	f.uniform3fv(int32(dst.V), int32(len(v)/3), &v[0])
	runtime.KeepAlive(v)
}

func (f *Functions) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	f.uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *Functions) Uniform4fv(dst Uniform, v []float32) {
	f.uniform4fv(int32(dst.V), int32(len(v)/4), &v[0])
	runtime.KeepAlive(v)
}

func (f *Functions) UniformBlockBinding(p Program, index uint, binding uint) {
	f.uniformBlockBinding(uint32(p.V), uint32(index), uint32(binding))
}

func (f *Functions) UniformMatrix2fv(dst Uniform, mat []float32) {
	f.uniformMatrix2fv(int32(dst.V), int32(len(mat)/4), false, &mat[0])
	runtime.KeepAlive(mat)
}

func (f *Functions) UniformMatrix3fv(dst Uniform, mat []float32) {
	f.uniformMatrix3fv(int32(dst.V), int32(len(mat)/9), false, &mat[0])
	runtime.KeepAlive(mat)
}

func (f *Functions) UniformMatrix4fv(dst Uniform, mat []float32) {
	f.uniformMatrix4fv(int32(dst.V), int32(len(mat)/16), false, &mat[0])
	runtime.KeepAlive(mat)
}

func (f *Functions) UnmapBuffer(target Enum) bool {
	return f.unmapBuffer(uint32(target))
}

func (f *Functions) UseProgram(p Program) {
	f.useProgram(uint32(p.V))
}

func (f *Functions) VertexAttribDivisor(a Attrib, divisor int) {
	f.vertexAttribDivisor(uint32(a), uint32(divisor))
}

func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.vertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.viewport(int32(x), int32(y), int32(width), int32(height))
}

// DebugProc receives messages generated by a debug context. It runs
// synchronously on the thread issuing the offending call.
type DebugProc func(source, gtype Enum, id uint, severity Enum, message string)

var (
	debugCBOnce sync.Once
	debugCBPtr  uintptr
	debugProc   DebugProc
)

// debugTrampoline bridges the native GLDEBUGPROC invocation to the installed
// DebugProc. All parameters arrive as machine words.
func debugTrampoline(source, gtype, id, severity, length, message, _ uintptr) uintptr {
	h := debugProc
	if h == nil {
		return 0
	}
	var text string
	if p := (*byte)(unsafe.Pointer(message)); p != nil {
		if l := int32(length); l > 0 {
			text = string(unsafe.Slice(p, l))
		} else {
			text = goString(p)
		}
	}
	h(Enum(source), Enum(gtype), uint(id), Enum(severity), text)
	return 0
}

// DebugMessageCallback installs cb as the process-wide debug handler. Only a
// single native callback is ever registered; later calls replace the handler.
// It reports ErrProcNotFound when the context lacks KHR_debug.
func (f *Functions) DebugMessageCallback(cb DebugProc) error {
	if f.debugMessageCallback == nil {
		return f.missingErr("glDebugMessageCallback")
	}
	debugCBOnce.Do(func() {
		debugCBPtr = purego.NewCallback(debugTrampoline)
	})
	debugProc = cb
	f.debugMessageCallback(debugCBPtr, nil)
	return nil
}

// DebugMessageControl toggles delivery of an entire source/type/severity
// class. DONT_CARE matches everything for a given dimension.
func (f *Functions) DebugMessageControl(source, gtype, severity Enum, enabled bool) error {
	if f.debugMessageControl == nil {
		return f.missingErr("glDebugMessageControl")
	}
	f.debugMessageControl(uint32(source), uint32(gtype), uint32(severity), 0, nil, enabled)
	return nil
}

// DebugMessageInsert injects a message into the debug stream.
func (f *Functions) DebugMessageInsert(source, gtype Enum, id uint, severity Enum, msg string) error {
	if f.debugMessageInsert == nil {
		return f.missingErr("glDebugMessageInsert")
	}
	cmsg := cstr(msg)
	f.debugMessageInsert(uint32(source), uint32(gtype), uint32(id), uint32(severity), int32(len(msg)), &cmsg[0])
	runtime.KeepAlive(cmsg)
	return nil
}

func (f *Functions) checkUpload(op string) {
	if !f.CheckUploads {
		return
	}
	if err := f.CheckError(op); err != nil {
		panic(err)
	}
}
