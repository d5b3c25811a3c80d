// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) % 256),
				A: uint8(255 - x),
			})
		}
	}
	return img
}

func TestFromToImage(t *testing.T) {
	img := gradientImage(16, 9)
	p := FromImage(img)
	if p.Width() != 16 || p.Height() != 9 || p.Format() != RGBA8888 {
		t.Fatalf("FromImage produced %v %dx%d", p.Format(), p.Width(), p.Height())
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			if got, want := p.PixelAt(x, y), img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	back := p.ToImage()
	if !bytes.Equal(back.Pix, img.Pix) {
		t.Error("ToImage does not reproduce the source image")
	}
}

func TestFromImageSubimage(t *testing.T) {
	img := gradientImage(8, 8)
	sub := img.SubImage(image.Rect(2, 3, 7, 6)).(*image.NRGBA)
	p := FromImage(sub)
	if p.Width() != 5 || p.Height() != 3 {
		t.Fatalf("FromImage(sub) = %dx%d, want 5x3", p.Width(), p.Height())
	}
	if got, want := p.PixelAt(0, 0), img.NRGBAAt(2, 3); got != want {
		t.Errorf("subimage origin = %v, want %v", got, want)
	}
}

func TestDrawPixmapNearestUpscale(t *testing.T) {
	src := New(2, 2, RGBA8888)
	quads := [4]color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, A: 255},
	}
	src.Set(0, 0, quads[0])
	src.Set(1, 0, quads[1])
	src.Set(0, 1, quads[2])
	src.Set(1, 1, quads[3])

	dst := New(4, 4, RGBA8888)
	dst.DrawPixmap(src, src.Bounds(), dst.Bounds(), Nearest)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := quads[(y/2)*2+x/2]
			if got := dst.PixelAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawPixmapRespectsDstRect(t *testing.T) {
	src := New(1, 1, RGBA8888)
	src.Fill(color.NRGBA{R: 255, A: 255})
	dst := New(4, 4, RGBA8888)
	dst.DrawPixmap(src, src.Bounds(), image.Rect(1, 1, 3, 3), Nearest)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			got := dst.PixelAt(x, y)
			if inside && got != (color.NRGBA{R: 255, A: 255}) {
				t.Errorf("pixel (%d,%d) = %v inside the blit", x, y, got)
			}
			if !inside && got != (color.NRGBA{}) {
				t.Errorf("pixel (%d,%d) = %v outside the blit", x, y, got)
			}
		}
	}
}

func TestDrawPixmapBilinear(t *testing.T) {
	src := New(2, 1, RGBA8888)
	src.Set(0, 0, color.NRGBA{A: 255})
	src.Set(1, 0, color.NRGBA{R: 255, A: 255})
	dst := New(8, 1, RGBA8888)
	dst.DrawPixmap(src, src.Bounds(), dst.Bounds(), Bilinear)
	// The interpolated row must be monotonic in red.
	prev := -1
	for x := 0; x < 8; x++ {
		r := int(dst.PixelAt(x, 0).R)
		if r < prev {
			t.Fatalf("red not monotonic at %d: %d < %d", x, r, prev)
		}
		prev = r
	}
	if dst.PixelAt(0, 0).R == dst.PixelAt(7, 0).R {
		t.Error("bilinear scale produced a flat row")
	}
}

func TestDrawImage(t *testing.T) {
	img := gradientImage(4, 4)
	dst := New(4, 4, RGBA8888)
	dst.DrawImage(img, img.Bounds(), dst.Bounds(), Nearest)
	// The source is not fully opaque, so compare against an Over composite
	// onto transparent black, which for straight copies equals the source
	// where alpha is 255.
	if got, want := dst.PixelAt(0, 0), img.NRGBAAt(0, 0); got != want {
		t.Errorf("pixel (0,0) = %v, want %v", got, want)
	}
}
