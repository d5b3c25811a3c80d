// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gl provides bindings to the OpenGL and OpenGL ES entry points of
the system driver, resolved dynamically at run time without cgo.

Call Load, or LoadWith when a windowing library supplies extension
addresses, with a context current on the calling thread:

	glfw.MakeContextCurrent(win)
	f, err := gl.LoadWith(glfw.GetProcAddress)
	if err != nil {
		return err
	}
	f.ClearColor(0, 0, 0, 1)
	f.Clear(gl.COLOR_BUFFER_BIT)

Resolution happens once per process; every later call returns the same
table. Entry points newer than the OpenGL 2.0/ES 2.0 baseline may be
absent on old contexts, in which case Missing explains why. QueryCaps
summarizes the context version, profile, limits and extensions.

A Functions must only be used from the thread its context is current on.
*/
package gl
