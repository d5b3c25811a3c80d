// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    Version
		wantErr bool
	}{
		{raw: "4.6.0 NVIDIA 535.113.01", want: Version{Major: 4, Minor: 6}},
		{raw: "4.6 (Core Profile) Mesa 23.1.9", want: Version{Major: 4, Minor: 6}},
		{raw: "OpenGL 4.6.0", want: Version{Major: 4, Minor: 6}},
		{raw: "4.1 Metal - 88", want: Version{Major: 4, Minor: 1}},
		{raw: "2.1 ATI-4.14.1", want: Version{Major: 2, Minor: 1}},
		{raw: "OpenGL ES 3.2 Mesa 23.1.9", want: Version{Major: 3, Minor: 2, IsES: true}},
		{raw: "OpenGL ES 2.0 (ANGLE 2.1.0)", want: Version{Major: 2, Minor: 0, IsES: true}},
		{raw: "WebGL 1.0 (OpenGL ES 2.0 Chromium)", want: Version{Major: 2, Minor: 0, IsES: true}},
		{raw: "WebGL 2.0", want: Version{Major: 3, Minor: 0, IsES: true}},
		{raw: " 3.3.0 ", want: Version{Major: 3, Minor: 3}},
		{raw: "OpenGL ES-CM 1.1", wantErr: true},
		{raw: "Mesa 23.1.9", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, test := range tests {
		got, err := ParseVersion(test.raw)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseVersion(%q) = %v, want error", test.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q) failed: %v", test.raw, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", test.raw, got, test.want)
		}
	}
}

func TestVersionAtLeast(t *testing.T) {
	gl33 := Version{Major: 3, Minor: 3}
	es30 := Version{Major: 3, Minor: 0, IsES: true}
	tests := []struct {
		v            Version
		major, minor int
		atLeast      bool
		atLeastGL    bool
		atLeastES    bool
	}{
		{gl33, 3, 3, true, true, false},
		{gl33, 3, 4, false, false, false},
		{gl33, 2, 0, true, true, false},
		{gl33, 4, 0, false, false, false},
		{es30, 3, 0, true, false, true},
		{es30, 2, 0, true, false, true},
		{es30, 3, 1, false, false, false},
	}
	for _, test := range tests {
		if got := test.v.AtLeast(test.major, test.minor); got != test.atLeast {
			t.Errorf("%v.AtLeast(%d, %d) = %v, want %v", test.v, test.major, test.minor, got, test.atLeast)
		}
		if got := test.v.AtLeastGL(test.major, test.minor); got != test.atLeastGL {
			t.Errorf("%v.AtLeastGL(%d, %d) = %v, want %v", test.v, test.major, test.minor, got, test.atLeastGL)
		}
		if got := test.v.AtLeastES(test.major, test.minor); got != test.atLeastES {
			t.Errorf("%v.AtLeastES(%d, %d) = %v, want %v", test.v, test.major, test.minor, got, test.atLeastES)
		}
	}
}

func TestVersionString(t *testing.T) {
	if got := (Version{Major: 4, Minor: 6}).String(); got != "OpenGL 4.6" {
		t.Errorf("String() = %q", got)
	}
	if got := (Version{Major: 3, Minor: 1, IsES: true}).String(); got != "OpenGL ES 3.1" {
		t.Errorf("String() = %q", got)
	}
}
