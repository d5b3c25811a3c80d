// SPDX-License-Identifier: Unlicense OR MIT

// Package pixmap provides CPU-side pixel buffers in the formats OpenGL
// textures are uploaded from, plus PNG and CIM codecs for them.
package pixmap

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gfx/glbind/gl"
)

// Format is a pixel layout. The numeric values are the CIM format codes and
// must not be renumbered.
type Format int

const (
	Alpha    Format = 1
	RGB888   Format = 3
	RGBA8888 Format = 4
	RGB565   Format = 5
	RGBA4444 Format = 6
)

func (f Format) valid() bool {
	switch f {
	case Alpha, RGB888, RGBA8888, RGB565, RGBA4444:
		return true
	}
	return false
}

// BytesPerPixel returns the storage size of one pixel.
func (f Format) BytesPerPixel() int {
	switch f {
	case Alpha:
		return 1
	case RGB565, RGBA4444:
		return 2
	case RGB888:
		return 3
	case RGBA8888:
		return 4
	}
	panic(fmt.Sprintf("pixmap: invalid format %d", int(f)))
}

// GLFormat returns the pixel format and type for texture uploads of this
// layout.
func (f Format) GLFormat() (format, ty gl.Enum) {
	switch f {
	case Alpha:
		return gl.ALPHA, gl.UNSIGNED_BYTE
	case RGB888:
		return gl.RGB, gl.UNSIGNED_BYTE
	case RGBA8888:
		return gl.RGBA, gl.UNSIGNED_BYTE
	case RGB565:
		return gl.RGB, gl.UNSIGNED_SHORT_5_6_5
	case RGBA4444:
		return gl.RGBA, gl.UNSIGNED_SHORT_4_4_4_4
	}
	panic(fmt.Sprintf("pixmap: invalid format %d", int(f)))
}

func (f Format) String() string {
	switch f {
	case Alpha:
		return "Alpha"
	case RGB888:
		return "RGB888"
	case RGBA8888:
		return "RGBA8888"
	case RGB565:
		return "RGB565"
	case RGBA4444:
		return "RGBA4444"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Pixmap is a pixel buffer in CPU memory. Colors are straight alpha; 16-bit
// formats are packed little-endian, matching both GL uploads and the buffers
// found inside CIM files written on little-endian machines.
type Pixmap struct {
	width  int
	height int
	format Format

	// drawColor is the color used by SetPixel, as set by SetColor.
	drawColor color.NRGBA

	pix []byte
}

// New allocates a zeroed pixmap. It panics on an invalid format or negative
// dimensions.
func New(width, height int, format Format) *Pixmap {
	if !format.valid() {
		panic(fmt.Sprintf("pixmap: invalid format %d", int(format)))
	}
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixmap: negative dimensions %dx%d", width, height))
	}
	return &Pixmap{
		width:     width,
		height:    height,
		format:    format,
		drawColor: color.NRGBA{A: 0xff},
		pix:       make([]byte, width*height*format.BytesPerPixel()),
	}
}

func (p *Pixmap) Width() int     { return p.width }
func (p *Pixmap) Height() int    { return p.height }
func (p *Pixmap) Format() Format { return p.format }

// Bytes returns the backing pixel storage. The slice aliases the pixmap.
func (p *Pixmap) Bytes() []byte { return p.pix }

// Stride returns the length of one row in bytes.
func (p *Pixmap) Stride() int { return p.width * p.format.BytesPerPixel() }

func (p *Pixmap) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

func (p *Pixmap) ColorModel() color.Model {
	if p.format == Alpha {
		return color.AlphaModel
	}
	return color.NRGBAModel
}

// At decodes the pixel at (x, y). Out-of-bounds coordinates read as zero.
func (p *Pixmap) At(x, y int) color.Color {
	if p.format == Alpha {
		if !(image.Point{x, y}.In(p.Bounds())) {
			return color.Alpha{}
		}
		return color.Alpha{A: p.pix[y*p.width+x]}
	}
	return p.PixelAt(x, y)
}

// PixelAt decodes the pixel at (x, y) as straight-alpha NRGBA. Alpha-only
// pixmaps decode with zero color channels.
func (p *Pixmap) PixelAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * p.format.BytesPerPixel()
	s := p.pix[i:]
	switch p.format {
	case Alpha:
		return color.NRGBA{A: s[0]}
	case RGB888:
		return color.NRGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
	case RGBA8888:
		return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
	case RGB565:
		v := binary.LittleEndian.Uint16(s)
		return color.NRGBA{
			R: expand5(uint8(v >> 11)),
			G: expand6(uint8(v >> 5 & 0x3f)),
			B: expand5(uint8(v & 0x1f)),
			A: 0xff,
		}
	case RGBA4444:
		v := binary.LittleEndian.Uint16(s)
		return color.NRGBA{
			R: expand4(uint8(v >> 12)),
			G: expand4(uint8(v >> 8 & 0xf)),
			B: expand4(uint8(v >> 4 & 0xf)),
			A: expand4(uint8(v & 0xf)),
		}
	}
	return color.NRGBA{}
}

// Set encodes c into the pixel at (x, y), quantizing to the pixmap format.
// Out-of-bounds coordinates are ignored. Set makes Pixmap a draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return
	}
	p.set(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

func (p *Pixmap) set(x, y int, c color.NRGBA) {
	i := (y*p.width + x) * p.format.BytesPerPixel()
	s := p.pix[i:]
	switch p.format {
	case Alpha:
		s[0] = c.A
	case RGB888:
		s[0], s[1], s[2] = c.R, c.G, c.B
	case RGBA8888:
		s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
	case RGB565:
		v := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
		binary.LittleEndian.PutUint16(s, v)
	case RGBA4444:
		v := uint16(c.R>>4)<<12 | uint16(c.G>>4)<<8 | uint16(c.B>>4)<<4 | uint16(c.A>>4)
		binary.LittleEndian.PutUint16(s, v)
	}
}

// SetColor sets the color used by SetPixel.
func (p *Pixmap) SetColor(c color.Color) {
	p.drawColor = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetPixel draws a single pixel in the current color.
func (p *Pixmap) SetPixel(x, y int) {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return
	}
	p.set(x, y, p.drawColor)
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c color.Color) {
	if p.width == 0 || p.height == 0 {
		return
	}
	p.set(0, 0, color.NRGBAModel.Convert(c).(color.NRGBA))
	// Double the filled prefix until the buffer is covered.
	for n := p.format.BytesPerPixel(); n < len(p.pix); n *= 2 {
		copy(p.pix[n:], p.pix[:n])
	}
}

// FlipV mirrors the pixmap vertically in place. GL reads pixels bottom-up;
// image formats store them top-down.
func (p *Pixmap) FlipV() {
	stride := p.Stride()
	if stride == 0 {
		return
	}
	tmp := make([]byte, stride)
	for y := 0; y < p.height/2; y++ {
		top := p.pix[y*stride : (y+1)*stride]
		bot := p.pix[(p.height-1-y)*stride : (p.height-y)*stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

func expand4(v uint8) uint8 { return v<<4 | v }
func expand5(v uint8) uint8 { return v<<3 | v>>2 }
func expand6(v uint8) uint8 { return v<<2 | v>>4 }
