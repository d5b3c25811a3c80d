// SPDX-License-Identifier: Unlicense OR MIT

// Package sdl is an SDL2 alternative to the GLFW backend in package window.
// The surface is reduced to what the tools in this module need: create a
// window with a context, swap, poll, destroy.
package sdl

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-gfx/glbind/gl"
)

// Option alters the configuration of a new window.
type Option func(*options)

type options struct {
	title         string
	width, height int
	major, minor  int
	es            bool
	hidden        bool
	samples       int
	debug         bool
}

// Title sets the window title.
func Title(t string) Option {
	return func(o *options) { o.title = t }
}

// Size sets the initial window size in screen coordinates.
func Size(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// ContextVersion requests a specific context version. The default is 3.3.
func ContextVersion(major, minor int) Option {
	return func(o *options) {
		o.major = major
		o.minor = minor
	}
}

// ES requests an OpenGL ES context.
func ES() Option {
	return func(o *options) { o.es = true }
}

// Hidden creates the window without showing it.
func Hidden() Option {
	return func(o *options) { o.hidden = true }
}

// Samples requests multisampling for the default framebuffer.
func Samples(n int) Option {
	return func(o *options) { o.samples = n }
}

// DebugContext requests a debug context.
func DebugContext() Option {
	return func(o *options) { o.debug = true }
}

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		initErr = sdl.Init(sdl.INIT_VIDEO)
	})
	return initErr
}

// Window owns an SDL window, its GL context and the function table loaded
// against it.
type Window struct {
	win  *sdl.Window
	ctx  sdl.GLContext
	f    *gl.Functions
	caps gl.Caps
}

// Create opens a window, makes its context current and resolves the
// bindings. The calling goroutine must be locked to an OS thread.
func Create(opts ...Option) (*Window, error) {
	o := options{
		title:  "OpenGL",
		width:  800,
		height: 600,
		major:  3,
		minor:  3,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ensureInit(); err != nil {
		return nil, fmt.Errorf("sdl: init failed: %w", err)
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, o.major)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, o.minor)
	if o.es {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES)
	} else if o.major > 3 || (o.major == 3 && o.minor >= 2) {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	}
	if o.samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, o.samples)
	}
	if o.debug {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_DEBUG_FLAG)
	}
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI)
	if o.hidden {
		flags |= sdl.WINDOW_HIDDEN
	}
	win, err := sdl.CreateWindow(o.title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(o.width), int32(o.height), flags)
	if err != nil {
		return nil, fmt.Errorf("sdl: creating %dx%d window failed: %w", o.width, o.height, err)
	}
	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("sdl: creating GL context failed: %w", err)
	}
	sdl.GLSetSwapInterval(1)
	f, err := gl.LoadWith(sdl.GLGetProcAddress)
	if err != nil {
		sdl.GLDeleteContext(ctx)
		win.Destroy()
		return nil, err
	}
	return &Window{win: win, ctx: ctx, f: f, caps: gl.QueryCaps(f)}, nil
}

// Functions returns the table loaded against the window's context.
func (w *Window) Functions() *gl.Functions { return w.f }

// Caps returns the capabilities probed at creation.
func (w *Window) Caps() gl.Caps { return w.caps }

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.win.GLSwap() }

// Size returns the window size in screen coordinates.
func (w *Window) Size() (width, height int) {
	ww, wh := w.win.GetSize()
	return int(ww), int(wh)
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	ww, wh := w.win.GLGetDrawableSize()
	return int(ww), int(wh)
}

// Poll drains pending events and reports whether the window should stay
// open.
func (w *Window) Poll() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}

// Destroy drops the context and the window.
func (w *Window) Destroy() {
	sdl.GLDeleteContext(w.ctx)
	w.win.Destroy()
}

// Terminate shuts SDL down. No window may be used afterwards.
func Terminate() { sdl.Quit() }
