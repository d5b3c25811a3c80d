// SPDX-License-Identifier: Unlicense OR MIT

// Command glinfo opens a hidden 1x1 context and reports what the driver
// offers: version, vendor, limits and the extension list.
//
// Usage:
//
//	glinfo [-sdl] [-es] [-compat] [-version M.m] [-ext] [-json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/go-gfx/glbind/gl"
	"github.com/go-gfx/glbind/window"
	sdlwin "github.com/go-gfx/glbind/window/sdl"
)

var (
	useSDL     = flag.Bool("sdl", false, "use the SDL2 backend instead of GLFW")
	useES      = flag.Bool("es", false, "request an OpenGL ES context")
	compat     = flag.Bool("compat", false, "request a compatibility profile context")
	reqVersion = flag.String("version", "", "request context version M.m instead of the default 3.3")
	withExts   = flag.Bool("ext", false, "list extensions")
	asJSON     = flag.Bool("json", false, "emit machine-readable JSON")
)

func init() {
	// GL contexts are thread-affine.
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glinfo: ")
	flag.Parse()

	major, minor := 3, 3
	if *reqVersion != "" {
		var err error
		major, minor, err = parseVersionFlag(*reqVersion)
		if err != nil {
			log.Fatal(err)
		}
	}

	caps, cleanup, err := probe(major, minor)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if *asJSON {
		emitJSON(caps)
		return
	}
	emitText(caps)
}

func parseVersionFlag(s string) (major, minor int, err error) {
	mj, mn, ok := strings.Cut(s, ".")
	if ok {
		major, err = strconv.Atoi(mj)
		if err == nil {
			minor, err = strconv.Atoi(mn)
		}
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("bad -version %q, want M.m", s)
	}
	return major, minor, nil
}

func probe(major, minor int) (gl.Caps, func(), error) {
	if *useSDL {
		opts := []sdlwin.Option{
			sdlwin.Title("glinfo"),
			sdlwin.Size(1, 1),
			sdlwin.Hidden(),
			sdlwin.ContextVersion(major, minor),
		}
		if *useES {
			opts = append(opts, sdlwin.ES())
		}
		w, err := sdlwin.Create(opts...)
		if err != nil {
			return gl.Caps{}, nil, err
		}
		return w.Caps(), func() { w.Destroy(); sdlwin.Terminate() }, nil
	}
	opts := []window.Option{
		window.Title("glinfo"),
		window.Size(1, 1),
		window.Hidden(),
		window.ContextVersion(major, minor),
	}
	switch {
	case *useES:
		opts = append(opts, window.ES())
	case *compat:
		opts = append(opts, window.Compat())
	}
	w, err := window.Create(opts...)
	if err != nil {
		return gl.Caps{}, nil, err
	}
	return w.Caps(), func() { w.Destroy(); window.Terminate() }, nil
}

func emitJSON(caps gl.Caps) {
	out := struct {
		Version      string    `json:"version"`
		ES           bool      `json:"es"`
		GLSL         string    `json:"glsl"`
		Vendor       string    `json:"vendor"`
		Renderer     string    `json:"renderer"`
		CoreProfile  bool      `json:"core_profile"`
		DebugContext bool      `json:"debug_context"`
		Limits       gl.Limits `json:"limits"`
		Extensions   []string  `json:"extensions,omitempty"`
	}{
		Version:      caps.Version.String(),
		ES:           caps.Version.IsES,
		GLSL:         caps.GLSL,
		Vendor:       caps.Vendor,
		Renderer:     caps.Renderer,
		CoreProfile:  caps.CoreProfile,
		DebugContext: caps.DebugContext,
		Limits:       caps.Limits,
	}
	if *withExts {
		out.Extensions = caps.Extensions()
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

func emitText(caps gl.Caps) {
	bold := func(s string) string { return s }
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bold = func(s string) string { return "\x1b[1m" + s + "\x1b[0m" }
	}
	l := caps.Limits
	fmt.Printf("%s %s\n", bold("Version:"), caps.Version)
	fmt.Printf("%s %s\n", bold("GLSL:"), caps.GLSL)
	fmt.Printf("%s %s\n", bold("Vendor:"), caps.Vendor)
	fmt.Printf("%s %s\n", bold("Renderer:"), caps.Renderer)
	fmt.Printf("%s core=%v debug=%v\n", bold("Profile:"), caps.CoreProfile, caps.DebugContext)
	fmt.Println(bold("Limits:"))
	fmt.Printf("  max texture size:        %s px (a full RGBA mip 0 is %s)\n",
		humanize.Comma(int64(l.MaxTextureSize)),
		humanize.IBytes(uint64(l.MaxTextureSize)*uint64(l.MaxTextureSize)*4))
	fmt.Printf("  max cube map size:       %s px\n", humanize.Comma(int64(l.MaxCubeMapTextureSize)))
	fmt.Printf("  max renderbuffer size:   %s px\n", humanize.Comma(int64(l.MaxRenderbufferSize)))
	fmt.Printf("  texture units:           %d fragment, %d combined\n", l.MaxTextureUnits, l.MaxCombinedTextureUnits)
	fmt.Printf("  vertex attribs:          %d\n", l.MaxVertexAttribs)
	if l.MaxColorAttachments > 0 {
		fmt.Printf("  color attachments:       %d\n", l.MaxColorAttachments)
		fmt.Printf("  max samples:             %d\n", l.MaxSamples)
		fmt.Printf("  array texture layers:    %d\n", l.MaxArrayTextureLayers)
	}
	if l.MaxUniformBlockSize > 0 {
		fmt.Printf("  uniform block size:      %s\n", humanize.IBytes(uint64(l.MaxUniformBlockSize)))
	}
	if *withExts {
		exts := caps.Extensions()
		fmt.Printf("%s %d\n", bold("Extensions:"), len(exts))
		for _, e := range exts {
			fmt.Printf("  %s\n", e)
		}
	}
}
