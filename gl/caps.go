// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"log"
	"strings"

	"golang.org/x/exp/slices"
)

// Logger receives warnings from the capability probe.
var Logger = log.Default()

// fallbackVersion is assumed when the VERSION string cannot be parsed.
// Deliberately modern, so version-gated features stay reachable; the parse
// failure itself is logged rather than masked.
var fallbackVersion = Version{Major: 4, Minor: 0}

// Limits holds implementation-defined values, snapshotted once by QueryCaps.
// Values gated on a version the context predates stay zero.
type Limits struct {
	MaxTextureSize          int
	MaxCubeMapTextureSize   int
	MaxTextureUnits         int
	MaxCombinedTextureUnits int
	MaxVertexAttribs        int
	MaxRenderbufferSize     int
	MaxColorAttachments     int
	MaxSamples              int
	MaxArrayTextureLayers   int
	MaxUniformBlockSize     int
}

// Caps describes the context a function table was resolved against. It is
// filled once by QueryCaps and read-only afterwards; it carries no locking.
type Caps struct {
	Version  Version
	GLSL     string
	Vendor   string
	Renderer string
	// DebugContext is set when the context was created with the debug
	// flag, making KHR_debug output cheap to enable.
	DebugContext bool
	// CoreProfile is set on desktop core profile contexts.
	CoreProfile bool
	Limits      Limits

	exts []string
}

// QueryCaps probes the current context through f. It must run on the thread
// the context is current on.
func QueryCaps(f *Functions) Caps {
	verStr := f.GetString(VERSION)
	ver, err := ParseVersion(verStr)
	if err != nil {
		ver = fallbackVersion
		Logger.Printf("gl: unparseable VERSION string %q, assuming %v", verStr, ver)
	}
	c := Caps{
		Version:  ver,
		GLSL:     f.GetString(SHADING_LANGUAGE_VERSION),
		Vendor:   f.GetString(VENDOR),
		Renderer: f.GetString(RENDERER),
	}
	if ver.AtLeastGL(3, 0) || ver.AtLeastES(3, 2) {
		c.DebugContext = f.GetInteger(CONTEXT_FLAGS)&CONTEXT_FLAG_DEBUG_BIT != 0
	}
	if ver.AtLeastGL(3, 2) {
		c.CoreProfile = f.GetInteger(CONTEXT_PROFILE_MASK)&CONTEXT_CORE_PROFILE_BIT != 0
	}
	c.Limits = queryLimits(f, ver)
	c.exts = queryExtensions(f)
	slices.Sort(c.exts)
	return c
}

// Supported reports whether the context advertises the named extension, for
// example "GL_KHR_debug".
func (c Caps) Supported(name string) bool {
	_, ok := slices.BinarySearch(c.exts, name)
	return ok
}

// Extensions returns the sorted extension list.
func (c Caps) Extensions() []string {
	return slices.Clone(c.exts)
}

func queryLimits(f *Functions, ver Version) Limits {
	l := Limits{
		MaxTextureSize:          f.GetInteger(MAX_TEXTURE_SIZE),
		MaxCubeMapTextureSize:   f.GetInteger(MAX_CUBE_MAP_TEXTURE_SIZE),
		MaxTextureUnits:         f.GetInteger(MAX_TEXTURE_IMAGE_UNITS),
		MaxCombinedTextureUnits: f.GetInteger(MAX_COMBINED_TEXTURE_IMAGE_UNITS),
		MaxVertexAttribs:        f.GetInteger(MAX_VERTEX_ATTRIBS),
		MaxRenderbufferSize:     f.GetInteger(MAX_RENDERBUFFER_SIZE),
	}
	if ver.AtLeast(3, 0) {
		l.MaxColorAttachments = f.GetInteger(MAX_COLOR_ATTACHMENTS)
		l.MaxSamples = f.GetInteger(MAX_SAMPLES)
		l.MaxArrayTextureLayers = f.GetInteger(MAX_ARRAY_TEXTURE_LAYERS)
	}
	if ver.AtLeastGL(3, 1) || ver.AtLeastES(3, 0) {
		l.MaxUniformBlockSize = f.GetInteger(MAX_UNIFORM_BLOCK_SIZE)
	}
	return l
}

// queryExtensions prefers the indexed query. Legacy contexts, and old
// drivers that export glGetStringi yet reject NUM_EXTENSIONS, fall back to
// the single space-separated EXTENSIONS string.
func queryExtensions(f *Functions) []string {
	if f.getStringi != nil {
		n := f.GetInteger(NUM_EXTENSIONS)
		if f.GetError() == NO_ERROR && n > 0 {
			exts := make([]string, 0, n)
			for i := 0; i < n; i++ {
				exts = append(exts, f.GetStringi(EXTENSIONS, i))
			}
			return exts
		}
	}
	return strings.Fields(f.GetString(EXTENSIONS))
}
