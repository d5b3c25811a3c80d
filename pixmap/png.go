// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image/png"
	"io"
)

// CompressionLevel selects the zlib effort for the PNG encoder. The values
// mirror image/png so the zero value means default compression.
type CompressionLevel int

const (
	DefaultCompression CompressionLevel = 0
	NoCompression      CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	BestCompression    CompressionLevel = -3
)

func (l CompressionLevel) zlibLevel() int {
	switch l {
	case NoCompression:
		return zlib.NoCompression
	case BestSpeed:
		return zlib.BestSpeed
	case BestCompression:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

// Encoder writes pixmaps as 8-bit RGBA PNG. Every scanline is filtered with
// the Paeth predictor and the whole image lands in a single IDAT chunk.
type Encoder struct {
	CompressionLevel CompressionLevel
	// FlipY writes rows bottom-to-top, undoing GL readback orientation.
	FlipY bool
}

var pngSig = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodePNG writes p with default settings.
func EncodePNG(w io.Writer, p *Pixmap) error {
	return Encoder{}.Encode(w, p)
}

// Encode writes p to w. Non-RGBA8888 pixmaps are converted first.
func (e Encoder) Encode(w io.Writer, p *Pixmap) error {
	if p.format != RGBA8888 {
		p = p.Convert(RGBA8888)
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(pngSig[:]); err != nil {
		return err
	}
	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:], uint32(p.width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(p.height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // truecolor with alpha
	// Compression, filter and interlace methods stay zero.
	if err := writeChunk(bw, "IHDR", ihdr[:]); err != nil {
		return err
	}
	idat, err := e.compressScanlines(p)
	if err != nil {
		return err
	}
	if err := writeChunk(bw, "IDAT", idat); err != nil {
		return err
	}
	if err := writeChunk(bw, "IEND", nil); err != nil {
		return err
	}
	return bw.Flush()
}

func (e Encoder) compressScanlines(p *Pixmap) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, e.CompressionLevel.zlibLevel())
	if err != nil {
		return nil, err
	}
	const bpp = 4
	stride := p.Stride()
	prev := make([]byte, stride)
	line := make([]byte, 1+stride)
	line[0] = 4 // Paeth, on every row
	for y := 0; y < p.height; y++ {
		row := y
		if e.FlipY {
			row = p.height - 1 - y
		}
		cur := p.pix[row*stride : (row+1)*stride]
		filterPaeth(line[1:], cur, prev, bpp)
		if _, err := zw.Write(line); err != nil {
			return nil, err
		}
		// Filters reference the raw bytes of the row above, not the
		// filtered ones.
		copy(prev, cur)
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// filterPaeth writes cur minus its Paeth prediction into dst. prev is the
// raw scanline above, zero for the first row.
func filterPaeth(dst, cur, prev []byte, bpp int) {
	for i := range cur {
		var a, c byte
		if i >= bpp {
			a = cur[i-bpp]
			c = prev[i-bpp]
		}
		dst[i] = cur[i] - paeth(a, prev[i], c)
	}
}

// paeth is the predictor from the PNG specification: the neighbor closest
// to the linear estimate a+b-c, with ties broken left, above, upper left.
func paeth(a, b, c byte) byte {
	pp := int(a) + int(b) - int(c)
	pa := abs(pp - int(a))
	pb := abs(pp - int(b))
	pc := abs(pp - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// writeChunk emits one PNG chunk: length, type, data, CRC-32 over type and
// data.
func writeChunk(w io.Writer, typ string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:], uint32(len(data)))
	copy(hdr[4:], typ)
	crc := crc32.NewIEEE()
	crc.Write(hdr[4:8])
	crc.Write(data)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	_, err := w.Write(sum[:])
	return err
}

// DecodePNG reads any PNG the stdlib decoder accepts and converts it to an
// RGBA8888 pixmap.
func DecodePNG(r io.Reader) (*Pixmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}
