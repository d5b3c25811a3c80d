// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// maxCIMPixels bounds decoded dimensions so a corrupt header cannot demand
// an arbitrary allocation.
const maxCIMPixels = 1 << 28

// EncodeCIM writes p in the CIM format: a zlib stream holding big-endian
// int32 width, height and format code followed by the raw pixel bytes.
func EncodeCIM(w io.Writer, p *Pixmap) error {
	zw := zlib.NewWriter(w)
	var hdr [12]byte
	binary.BigEndian.PutUint32(hdr[0:], uint32(p.width))
	binary.BigEndian.PutUint32(hdr[4:], uint32(p.height))
	binary.BigEndian.PutUint32(hdr[8:], uint32(p.format))
	if _, err := zw.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := zw.Write(p.pix); err != nil {
		return err
	}
	return zw.Close()
}

// DecodeCIM reads a CIM stream, validating the header and pixel length.
func DecodeCIM(r io.Reader) (*Pixmap, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("pixmap: cim: %w", err)
	}
	defer zr.Close()
	var hdr [12]byte
	if _, err := io.ReadFull(zr, hdr[:]); err != nil {
		return nil, fmt.Errorf("pixmap: cim: short header: %w", err)
	}
	width := int(int32(binary.BigEndian.Uint32(hdr[0:])))
	height := int(int32(binary.BigEndian.Uint32(hdr[4:])))
	format := Format(int32(binary.BigEndian.Uint32(hdr[8:])))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixmap: cim: invalid dimensions %dx%d", width, height)
	}
	if !format.valid() {
		return nil, fmt.Errorf("pixmap: cim: unknown format code %d", int(format))
	}
	if width > maxCIMPixels/height {
		return nil, fmt.Errorf("pixmap: cim: dimensions %dx%d too large", width, height)
	}
	p := New(width, height, format)
	if _, err := io.ReadFull(zr, p.pix); err != nil {
		return nil, fmt.Errorf("pixmap: cim: truncated pixel data: %w", err)
	}
	var extra [1]byte
	if n, _ := zr.Read(extra[:]); n != 0 {
		return nil, errors.New("pixmap: cim: trailing data after pixels")
	}
	return p, nil
}
