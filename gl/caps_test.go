// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func cptr(s string) *byte {
	b := cstr(s)
	return &b[0]
}

// stubCaps wires the query slots QueryCaps touches. indexed non-nil
// installs glGetStringi serving the given extension list.
func stubCaps(f *Functions, strs map[Enum]string, ints map[Enum]int32, indexed []string) {
	f.getError = func() uint32 { return NO_ERROR }
	f.getString = func(name uint32) *byte {
		return cptr(strs[Enum(name)])
	}
	f.getIntegerv = func(pname uint32, data *int32) {
		*data = ints[Enum(pname)]
	}
	if indexed != nil {
		f.getStringi = func(name, index uint32) *byte {
			if Enum(name) != EXTENSIONS || int(index) >= len(indexed) {
				return nil
			}
			return cptr(indexed[index])
		}
	}
}

func TestQueryCapsCore(t *testing.T) {
	var f Functions
	exts := []string{"GL_KHR_debug", "GL_ARB_direct_state_access", "GL_ARB_buffer_storage"}
	stubCaps(&f,
		map[Enum]string{
			VERSION:                  "4.6.0 NVIDIA 535.113.01",
			SHADING_LANGUAGE_VERSION: "4.60 NVIDIA",
			VENDOR:                   "NVIDIA Corporation",
			RENDERER:                 "NVIDIA GeForce RTX 3060/PCIe/SSE2",
		},
		map[Enum]int32{
			CONTEXT_FLAGS:                    CONTEXT_FLAG_DEBUG_BIT,
			CONTEXT_PROFILE_MASK:             CONTEXT_CORE_PROFILE_BIT,
			NUM_EXTENSIONS:                   int32(len(exts)),
			MAX_TEXTURE_SIZE:                 16384,
			MAX_CUBE_MAP_TEXTURE_SIZE:        16384,
			MAX_TEXTURE_IMAGE_UNITS:          32,
			MAX_COMBINED_TEXTURE_IMAGE_UNITS: 192,
			MAX_VERTEX_ATTRIBS:               16,
			MAX_RENDERBUFFER_SIZE:            16384,
			MAX_COLOR_ATTACHMENTS:            8,
			MAX_SAMPLES:                      32,
			MAX_ARRAY_TEXTURE_LAYERS:         2048,
			MAX_UNIFORM_BLOCK_SIZE:           65536,
		},
		exts)
	c := QueryCaps(&f)
	if want := (Version{Major: 4, Minor: 6}); c.Version != want {
		t.Errorf("Version = %v, want %v", c.Version, want)
	}
	if !c.DebugContext {
		t.Error("DebugContext not detected")
	}
	if !c.CoreProfile {
		t.Error("CoreProfile not detected")
	}
	if c.Vendor != "NVIDIA Corporation" || c.GLSL != "4.60 NVIDIA" {
		t.Errorf("Vendor/GLSL = %q/%q", c.Vendor, c.GLSL)
	}
	if c.Limits.MaxTextureSize != 16384 || c.Limits.MaxSamples != 32 || c.Limits.MaxUniformBlockSize != 65536 {
		t.Errorf("Limits = %+v", c.Limits)
	}
	if !c.Supported("GL_KHR_debug") {
		t.Error("GL_KHR_debug not reported as supported")
	}
	if c.Supported("GL_EXT_no_such_thing") {
		t.Error("absent extension reported as supported")
	}
	got := c.Extensions()
	want := []string{"GL_ARB_buffer_storage", "GL_ARB_direct_state_access", "GL_KHR_debug"}
	if len(got) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Extensions() = %v, want sorted %v", got, want)
		}
	}
	// The returned slice is a copy.
	got[0] = "clobbered"
	if !c.Supported("GL_ARB_buffer_storage") {
		t.Error("mutating the Extensions copy changed the caps")
	}
}

func TestQueryCapsLegacy(t *testing.T) {
	var f Functions
	stubCaps(&f,
		map[Enum]string{
			VERSION:    "2.1 ATI-4.14.1",
			EXTENSIONS: "GL_EXT_framebuffer_object GL_ARB_vertex_buffer_object",
		},
		map[Enum]int32{
			MAX_TEXTURE_SIZE: 8192,
		},
		nil)
	c := QueryCaps(&f)
	if want := (Version{Major: 2, Minor: 1}); c.Version != want {
		t.Errorf("Version = %v, want %v", c.Version, want)
	}
	if c.DebugContext || c.CoreProfile {
		t.Error("legacy context misdetected as debug or core")
	}
	if !c.Supported("GL_ARB_vertex_buffer_object") || !c.Supported("GL_EXT_framebuffer_object") {
		t.Errorf("extensions lost in the legacy path: %v", c.Extensions())
	}
	if c.Limits.MaxColorAttachments != 0 {
		t.Error("queried a limit the context predates")
	}
}

func TestQueryCapsES(t *testing.T) {
	var f Functions
	exts := []string{"GL_OES_texture_float"}
	stubCaps(&f,
		map[Enum]string{VERSION: "OpenGL ES 3.2 Mesa 23.1.9"},
		map[Enum]int32{NUM_EXTENSIONS: 1},
		exts)
	c := QueryCaps(&f)
	if want := (Version{Major: 3, Minor: 2, IsES: true}); c.Version != want {
		t.Errorf("Version = %v, want %v", c.Version, want)
	}
	if c.CoreProfile {
		t.Error("CoreProfile set on an ES context")
	}
	if !c.Supported("GL_OES_texture_float") {
		t.Error("indexed ES extension lost")
	}
}

func TestQueryCapsFallbackVersion(t *testing.T) {
	var buf bytes.Buffer
	old := Logger
	Logger = log.New(&buf, "", 0)
	defer func() { Logger = old }()

	var f Functions
	stubCaps(&f,
		map[Enum]string{VERSION: "driver of mystery"},
		map[Enum]int32{},
		nil)
	c := QueryCaps(&f)
	if c.Version != fallbackVersion {
		t.Errorf("Version = %v, want fallback %v", c.Version, fallbackVersion)
	}
	logged := buf.String()
	if !strings.Contains(logged, "driver of mystery") {
		t.Errorf("fallback not logged: %q", logged)
	}
}
