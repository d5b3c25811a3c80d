// SPDX-License-Identifier: Unlicense OR MIT

// Package window creates GLFW windows with OpenGL contexts and loads the
// bindings against them. The goroutine calling Create must be locked to its
// OS thread for the lifetime of the window.
package window

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-gfx/glbind/gl"
)

// Option alters the configuration of a new window.
type Option func(*options)

type options struct {
	title         string
	width, height int
	major, minor  int
	es            bool
	compat        bool
	resizable     bool
	hidden        bool
	samples       int
	srgb          bool
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

// CoreProfile requests a desktop core profile context. This is the default.
func CoreProfile() Option {
	return func(o *options) {
		o.es = false
		o.compat = false
	}
}

// Compat requests a desktop compatibility profile context.
func Compat() Option {
	return func(o *options) {
		o.es = false
		o.compat = true
	}
}

// ES requests an OpenGL ES context.
func ES() Option {
	return func(o *options) { o.es = true }
}

// Resizable controls whether the user can resize the window.
func Resizable(v bool) Option {
	return func(o *options) { o.resizable = v }
}

// Hidden creates the window without showing it. Useful for probing a
// context or rendering offscreen.
func Hidden() Option {
	return func(o *options) { o.hidden = true }
}

// Samples requests multisampling for the default framebuffer.
func Samples(n int) Option {
	return func(o *options) { o.samples = n }
}

// SRGB requests an sRGB-capable default framebuffer.
func SRGB() Option {
	return func(o *options) { o.srgb = true }
}

// DebugContext requests a debug context, enabling KHR_debug output with
// driver-side validation.
func DebugContext() Option {
	return func(o *options) { o.debug = true }
}

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		initErr = glfw.Init()
	})
	return initErr
}

// Window owns a GLFW window, its GL context and the function table loaded
// against it.
type Window struct {
	win  *glfw.Window
	f    *gl.Functions
	caps gl.Caps
}

// Create opens a window, makes its context current and resolves the
// bindings. The calling goroutine must be locked to an OS thread.
func Create(opts ...Option) (*Window, error) {
	o := options{
		title:     "OpenGL",
		width:     800,
		height:    600,
		major:     3,
		minor:     3,
		resizable: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ensureInit(); err != nil {
		return nil, fmt.Errorf("window: glfw init failed: %w", err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, o.major)
	glfw.WindowHint(glfw.ContextVersionMinor, o.minor)
	switch {
	case o.es:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	case o.major > 3 || (o.major == 3 && o.minor >= 2):
		// Profiles exist from 3.2 on; macOS requires core plus forward
		// compatibility for anything modern.
		if o.compat {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
		} else {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
	}
	glfw.WindowHint(glfw.Resizable, hintBool(o.resizable))
	glfw.WindowHint(glfw.Visible, hintBool(!o.hidden))
	if o.samples > 0 {
		glfw.WindowHint(glfw.Samples, o.samples)
	}
	if o.srgb {
		glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	}
	if o.debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	win, err := glfw.CreateWindow(o.width, o.height, o.title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("window: creating %dx%d window failed: %w", o.width, o.height, err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	f, err := gl.LoadWith(glfw.GetProcAddress)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	return &Window{win: win, f: f, caps: gl.QueryCaps(f)}, nil
}

func hintBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// Functions returns the table loaded against the window's context.
func (w *Window) Functions() *gl.Functions { return w.f }

// Caps returns the capabilities probed at creation.
func (w *Window) Caps() gl.Caps { return w.caps }

func (w *Window) ShouldClose() bool     { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// Size returns the window size in screen coordinates.
func (w *Window) Size() (width, height int) { return w.win.GetSize() }

// FramebufferSize returns the default framebuffer size in pixels, which
// differs from Size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) { return w.win.GetFramebufferSize() }

// SetKeyCallback forwards key events to cb.
func (w *Window) SetKeyCallback(cb glfw.KeyCallback) { w.win.SetKeyCallback(cb) }

// Raw exposes the underlying GLFW window for everything not wrapped here.
func (w *Window) Raw() *glfw.Window { return w.win }

// Destroy drops the window and its context. The function table stays valid
// only while another context from the same driver is current.
func (w *Window) Destroy() { w.win.Destroy() }

// Poll processes pending window system events.
func Poll() { glfw.PollEvents() }

// Terminate shuts the window system down. No window may be used afterwards.
func Terminate() { glfw.Terminate() }
