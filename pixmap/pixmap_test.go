// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestFormatSizes(t *testing.T) {
	tests := []struct {
		format Format
		code   int
		bpp    int
	}{
		{Alpha, 1, 1},
		{RGB888, 3, 3},
		{RGBA8888, 4, 4},
		{RGB565, 5, 2},
		{RGBA4444, 6, 2},
	}
	for _, test := range tests {
		if int(test.format) != test.code {
			t.Errorf("%v code = %d, want %d", test.format, int(test.format), test.code)
		}
		if got := test.format.BytesPerPixel(); got != test.bpp {
			t.Errorf("%v bytes per pixel = %d, want %d", test.format, got, test.bpp)
		}
	}
	p := New(7, 3, RGB888)
	if p.Stride() != 21 || len(p.Bytes()) != 63 {
		t.Errorf("stride/len = %d/%d, want 21/63", p.Stride(), len(p.Bytes()))
	}
}

func TestSetPixelAtPerFormat(t *testing.T) {
	tests := []struct {
		format Format
		in     color.NRGBA
		want   color.NRGBA
	}{
		{RGBA8888, color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 4}},
		{RGB888, color.NRGBA{9, 8, 7, 200}, color.NRGBA{9, 8, 7, 255}},
		{Alpha, color.NRGBA{9, 8, 7, 200}, color.NRGBA{0, 0, 0, 200}},
		{RGB565, color.NRGBA{255, 0, 0, 255}, color.NRGBA{255, 0, 0, 255}},
		// 0x84/0x41 survive 5- and 6-bit quantization exactly.
		{RGB565, color.NRGBA{0x84, 0x41, 0x84, 255}, color.NRGBA{0x84, 0x41, 0x84, 255}},
		// Multiples of 0x11 survive 4-bit quantization exactly.
		{RGBA4444, color.NRGBA{0x11, 0x22, 0x33, 0x44}, color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{RGBA4444, color.NRGBA{255, 255, 255, 255}, color.NRGBA{255, 255, 255, 255}},
	}
	for _, test := range tests {
		p := New(2, 2, test.format)
		p.Set(1, 0, test.in)
		if got := p.PixelAt(1, 0); got != test.want {
			t.Errorf("%v: PixelAt = %v, want %v", test.format, got, test.want)
		}
		// Quantization is idempotent.
		p.Set(1, 1, p.PixelAt(1, 0))
		if got := p.PixelAt(1, 1); got != test.want {
			t.Errorf("%v: requantized PixelAt = %v, want %v", test.format, got, test.want)
		}
	}
}

func TestPacking16Bit(t *testing.T) {
	p := New(1, 1, RGB565)
	p.Set(0, 0, color.NRGBA{R: 255, A: 255})
	// Pure red packs to 0xf800, stored little-endian.
	if got := p.Bytes(); got[0] != 0x00 || got[1] != 0xf8 {
		t.Errorf("RGB565 red = % x, want 00 f8", got)
	}
	q := New(1, 1, RGBA4444)
	q.Set(0, 0, color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0x00})
	// 0xf0f0 little-endian.
	if got := q.Bytes(); got[0] != 0xf0 || got[1] != 0xf0 {
		t.Errorf("RGBA4444 magenta = % x, want f0 f0", got)
	}
}

func TestBounds(t *testing.T) {
	p := New(4, 3, RGBA8888)
	if p.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds = %v", p.Bounds())
	}
	p.Set(-1, 0, color.NRGBA{R: 255, A: 255})
	p.Set(4, 2, color.NRGBA{R: 255, A: 255})
	for _, b := range p.Bytes() {
		if b != 0 {
			t.Fatal("out-of-bounds Set modified the buffer")
		}
	}
	if got := p.PixelAt(9, 9); got != (color.NRGBA{}) {
		t.Errorf("out-of-bounds PixelAt = %v, want zero", got)
	}
}

func TestSetColorSetPixel(t *testing.T) {
	p := New(2, 1, RGBA8888)
	p.SetPixel(0, 0)
	if got := p.PixelAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("default draw color = %v, want opaque black", got)
	}
	p.SetColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	p.SetPixel(1, 0)
	if got := p.PixelAt(1, 0); got != (color.NRGBA{10, 20, 30, 40}) {
		t.Errorf("SetPixel drew %v", got)
	}
}

func TestFill(t *testing.T) {
	for _, format := range []Format{Alpha, RGB888, RGBA8888, RGB565, RGBA4444} {
		p := New(3, 3, format)
		p.Fill(color.NRGBA{R: 0x84, G: 0x41, B: 0x84, A: 0xff})
		want := p.PixelAt(0, 0)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if got := p.PixelAt(x, y); got != want {
					t.Fatalf("%v: pixel (%d,%d) = %v, want %v", format, x, y, got, want)
				}
			}
		}
	}
}

func TestFlipV(t *testing.T) {
	p := New(2, 3, RGBA8888)
	rows := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			p.Set(x, y, c)
		}
	}
	orig := append([]byte(nil), p.Bytes()...)
	p.FlipV()
	for y, c := range rows {
		if got := p.PixelAt(0, 2-y); got != c {
			t.Errorf("flipped row %d = %v, want %v", 2-y, got, c)
		}
	}
	p.FlipV()
	if !bytes.Equal(p.Bytes(), orig) {
		t.Error("double flip is not the identity")
	}
}

func TestConvert(t *testing.T) {
	p := New(2, 1, RGBA8888)
	p.Set(0, 0, color.NRGBA{0x11, 0x22, 0x33, 0x44})
	p.Set(1, 0, color.NRGBA{255, 255, 255, 255})
	q := p.Convert(RGBA4444)
	if q.Format() != RGBA4444 || q.Width() != 2 || q.Height() != 1 {
		t.Fatalf("Convert produced %v %dx%d", q.Format(), q.Width(), q.Height())
	}
	if got := q.PixelAt(0, 0); got != (color.NRGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("converted pixel = %v", got)
	}
	// Same-format conversion copies rather than aliases.
	r := p.Convert(RGBA8888)
	r.Set(0, 0, color.NRGBA{})
	if p.PixelAt(0, 0) == (color.NRGBA{}) {
		t.Error("Convert to the same format aliased the storage")
	}
}
