// SPDX-License-Identifier: Unlicense OR MIT

// A spinning triangle. Pressing S saves a screenshot next to the binary,
// pressing Escape quits. Run with -debug to create a debug context and log
// driver messages.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-gfx/glbind/gl"
	"github.com/go-gfx/glbind/gldebug"
	"github.com/go-gfx/glbind/pixmap"
	"github.com/go-gfx/glbind/window"
)

var debug = flag.Bool("debug", false, "create a debug context and log driver messages")

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

const vsSrc = `#version 330 core
in vec2 pos;
in vec3 color;
uniform mat4 mvp;
out vec3 vColor;
void main() {
	gl_Position = mvp * vec4(pos, 0.0, 1.0);
	vColor = color;
}
`

const fsSrc = `#version 330 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}
`

// x, y, r, g, b per vertex.
var vertices = []float32{
	0.0, 0.6, 1, 0, 0,
	-0.6, -0.4, 0, 1, 0,
	0.6, -0.4, 0, 0, 1,
}

func main() {
	flag.Parse()

	opts := []window.Option{
		window.Title("triangle"),
		window.Size(800, 600),
		window.ContextVersion(3, 3),
	}
	if *debug {
		opts = append(opts, window.DebugContext())
	}
	win, err := window.Create(opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Terminate()
	defer win.Destroy()

	f := win.Functions()
	log.Printf("%s on %s", win.Caps().Version, win.Caps().Renderer)
	if *debug {
		if err := gldebug.Install(f); err != nil {
			log.Printf("debug output unavailable: %v", err)
		}
	}

	prog, err := gl.CreateProgram(f, vsSrc, fsSrc, []string{"pos", "color"})
	if err != nil {
		log.Fatal(err)
	}
	mvp := f.GetUniformLocation(prog, "mvp")

	vao := f.CreateVertexArray()
	f.BindVertexArray(vao)
	vbo := f.CreateBuffer()
	f.BindBuffer(gl.ARRAY_BUFFER, vbo)
	f.BufferData(gl.ARRAY_BUFFER, 0, gl.BytesView(vertices), gl.STATIC_DRAW)
	f.VertexAttribPointer(0, 2, gl.FLOAT, false, 5*4, 0)
	f.EnableVertexAttribArray(0)
	f.VertexAttribPointer(1, 3, gl.FLOAT, false, 5*4, 2*4)
	f.EnableVertexAttribArray(1)

	var screenshot bool
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			win.SetShouldClose(true)
		case glfw.KeyS:
			screenshot = true
		}
	})

	start := time.Now()
	for !win.ShouldClose() {
		window.Poll()
		w, h := win.FramebufferSize()
		f.Viewport(0, 0, w, h)
		f.ClearColor(0.1, 0.1, 0.12, 1)
		f.Clear(gl.COLOR_BUFFER_BIT)

		angle := float32(time.Since(start).Seconds())
		proj := mgl32.Perspective(mgl32.DegToRad(45), float32(w)/float32(h), 0.1, 10)
		view := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
		model := mgl32.HomogRotate3DZ(angle)
		m := proj.Mul4(view).Mul4(model)

		f.UseProgram(prog)
		f.UniformMatrix4fv(mvp, m[:])
		f.BindVertexArray(vao)
		f.DrawArrays(gl.TRIANGLES, 0, 3)

		if screenshot {
			screenshot = false
			if err := save(f, w, h); err != nil {
				log.Printf("screenshot failed: %v", err)
			}
		}
		win.SwapBuffers()
	}
}

// save reads the back buffer and writes it as a PNG. GL rows come back
// bottom-to-top, so the encoder flips them.
func save(f *gl.Functions, w, h int) error {
	p := pixmap.New(w, h, pixmap.RGBA8888)
	f.PixelStorei(gl.PACK_ALIGNMENT, 1)
	f.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, p.Bytes())
	if err := f.CheckError("ReadPixels"); err != nil {
		return err
	}
	name := time.Now().Format("triangle-20060102-150405.png")
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	enc := pixmap.Encoder{FlipY: true}
	if err := enc.Encode(out, p); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Printf("saved %s", name)
	return nil
}
