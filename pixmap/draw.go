// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Filter selects the sampling used by DrawPixmap.
type Filter int

const (
	Nearest Filter = iota
	Bilinear
)

func (f Filter) interpolator() xdraw.Interpolator {
	if f == Bilinear {
		return xdraw.ApproxBiLinear
	}
	return xdraw.NearestNeighbor
}

// DrawPixmap blits srcRect of src onto dstRect of p, scaling when the
// rectangles differ in size. Source alpha is composited over the
// destination.
func (p *Pixmap) DrawPixmap(src *Pixmap, srcRect, dstRect image.Rectangle, filter Filter) {
	filter.interpolator().Scale(p, dstRect, src, srcRect, xdraw.Over, nil)
}

// DrawImage is DrawPixmap for an arbitrary image source.
func (p *Pixmap) DrawImage(src image.Image, srcRect, dstRect image.Rectangle, filter Filter) {
	filter.interpolator().Scale(p, dstRect, src, srcRect, xdraw.Over, nil)
}

// FromImage copies img into a new RGBA8888 pixmap.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	p := New(b.Dx(), b.Dy(), RGBA8888)
	if src, ok := img.(*image.NRGBA); ok {
		stride := p.Stride()
		for y := 0; y < p.height; y++ {
			o := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(p.pix[y*stride:(y+1)*stride], src.Pix[o:o+stride])
		}
		return p
	}
	xdraw.Draw(p, p.Bounds(), img, b.Min, xdraw.Src)
	return p
}

// ToImage copies the pixmap into an NRGBA image, converting non-RGBA8888
// formats.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	if p.format == RGBA8888 {
		copy(img.Pix, p.pix)
		return img
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			img.SetNRGBA(x, y, p.PixelAt(x, y))
		}
	}
	return img
}

// Convert returns a copy of p in the given format, quantizing as needed. A
// copy is returned even when the format already matches.
func (p *Pixmap) Convert(format Format) *Pixmap {
	dst := New(p.width, p.height, format)
	if format == p.format {
		copy(dst.pix, p.pix)
		return dst
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			dst.set(x, y, p.PixelAt(x, y))
		}
	}
	return dst
}
