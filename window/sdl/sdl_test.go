// SPDX-License-Identifier: Unlicense OR MIT

package sdl

import "testing"

func TestOptions(t *testing.T) {
	o := options{title: "OpenGL", width: 800, height: 600, major: 3, minor: 3}
	for _, opt := range []Option{
		Title("probe"),
		Size(1, 2),
		ContextVersion(3, 2),
		ES(),
		Hidden(),
		Samples(8),
		DebugContext(),
	} {
		opt(&o)
	}
	want := options{
		title: "probe", width: 1, height: 2,
		major: 3, minor: 2,
		es: true, hidden: true, samples: 8, debug: true,
	}
	if o != want {
		t.Errorf("options = %+v, want %+v", o, want)
	}
}
