// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version identifies an OpenGL or OpenGL ES version.
type Version struct {
	Major int
	Minor int
	IsES  bool
}

// AtLeast reports whether v is at least major.minor within its own flavor.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// AtLeastGL reports whether v is a desktop context of at least major.minor.
func (v Version) AtLeastGL(major, minor int) bool {
	return !v.IsES && v.AtLeast(major, minor)
}

// AtLeastES reports whether v is an ES context of at least major.minor.
func (v Version) AtLeastES(major, minor int) bool {
	return v.IsES && v.AtLeast(major, minor)
}

func (v Version) String() string {
	if v.IsES {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

var versionRe = regexp.MustCompile(`^(OpenGL ES|OpenGL|WebGL)? *(\d+)\.(\d+)`)

// ParseVersion extracts the context version from a VERSION string. Desktop
// strings lead with the bare number ("4.6.0 NVIDIA 535.113"), ES strings
// carry an "OpenGL ES" prefix, and a WebGL version maps to the ES version
// one major higher.
func ParseVersion(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Version{}, fmt.Errorf("gl: unrecognized version string %q", s)
	}
	major, _ := strconv.Atoi(m[2])
	minor, _ := strconv.Atoi(m[3])
	v := Version{Major: major, Minor: minor}
	switch m[1] {
	case "OpenGL ES":
		v.IsES = true
	case "WebGL":
		v.IsES = true
		v.Major++
	}
	return v, nil
}
