// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image/color"
	"image/png"
	"io"
	"testing"
)

func TestPaethPredictor(t *testing.T) {
	tests := []struct {
		a, b, c, want byte
	}{
		{0, 0, 0, 0},
		{3, 4, 5, 3},     // left wins
		{100, 5, 80, 5},  // above wins
		{10, 20, 15, 15}, // upper-left wins
		{7, 7, 7, 7},
		{255, 0, 255, 0},
	}
	for _, test := range tests {
		if got := paeth(test.a, test.b, test.c); got != test.want {
			t.Errorf("paeth(%d, %d, %d) = %d, want %d", test.a, test.b, test.c, got, test.want)
		}
	}
}

func TestFilterPaethScanline(t *testing.T) {
	cur := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	prev := make([]byte, len(cur))
	dst := make([]byte, len(cur))
	filterPaeth(dst, cur, prev, 4)
	want := []byte{1, 2, 3, 4, 4, 4, 4, 4}
	if !bytes.Equal(dst, want) {
		t.Errorf("filtered = %v, want %v", dst, want)
	}
}

// parseChunks splits a PNG stream into type/data pairs, verifying each CRC.
func parseChunks(t *testing.T, b []byte) map[string][]byte {
	t.Helper()
	if !bytes.HasPrefix(b, pngSig[:]) {
		t.Fatalf("missing PNG signature: % x", b[:8])
	}
	b = b[8:]
	chunks := make(map[string][]byte)
	for len(b) > 0 {
		if len(b) < 12 {
			t.Fatalf("trailing garbage: % x", b)
		}
		n := binary.BigEndian.Uint32(b[0:4])
		typ := string(b[4:8])
		data := b[8 : 8+n]
		crc := binary.BigEndian.Uint32(b[8+n : 12+n])
		h := crc32.NewIEEE()
		h.Write(b[4 : 8+n])
		if h.Sum32() != crc {
			t.Fatalf("chunk %s: bad CRC", typ)
		}
		chunks[typ] = data
		b = b[12+n:]
	}
	return chunks
}

func TestEncodeStructure(t *testing.T) {
	p := New(3, 2, RGBA8888)
	p.Fill(color.NRGBA{R: 10, G: 20, B: 30, A: 200})

	var buf bytes.Buffer
	if err := EncodePNG(&buf, p); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	chunks := parseChunks(t, buf.Bytes())

	ihdr, ok := chunks["IHDR"]
	if !ok || len(ihdr) != 13 {
		t.Fatalf("IHDR = % x", ihdr)
	}
	if w := binary.BigEndian.Uint32(ihdr[0:]); w != 3 {
		t.Errorf("width = %d", w)
	}
	if h := binary.BigEndian.Uint32(ihdr[4:]); h != 2 {
		t.Errorf("height = %d", h)
	}
	// Bit depth 8, color type 6, methods all zero.
	if ihdr[8] != 8 || ihdr[9] != 6 || ihdr[10] != 0 || ihdr[11] != 0 || ihdr[12] != 0 {
		t.Errorf("IHDR tail = % x", ihdr[8:])
	}

	if end, ok := chunks["IEND"]; !ok || len(end) != 0 {
		t.Errorf("IEND = % x", end)
	}

	zr, err := zlib.NewReader(bytes.NewReader(chunks["IDAT"]))
	if err != nil {
		t.Fatalf("IDAT is not a zlib stream: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("IDAT decompression failed: %v", err)
	}
	stride := 1 + 3*4
	if len(raw) != 2*stride {
		t.Fatalf("scanline data = %d bytes, want %d", len(raw), 2*stride)
	}
	for y := 0; y < 2; y++ {
		if ft := raw[y*stride]; ft != 4 {
			t.Errorf("row %d filter type = %d, want 4 (Paeth)", y, ft)
		}
	}
}

func TestEncodeRoundTripStdlib(t *testing.T) {
	p := FromImage(gradientImage(16, 8))
	var buf bytes.Buffer
	if err := EncodePNG(&buf, p); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("stdlib decode rejected our output: %v", err)
	}
	got := FromImage(img)
	if !bytes.Equal(got.Bytes(), p.Bytes()) {
		t.Error("decoded pixels differ from the source")
	}
}

func TestEncodeFlipY(t *testing.T) {
	p := New(1, 2, RGBA8888)
	p.Set(0, 0, color.NRGBA{R: 255, A: 255})
	p.Set(0, 1, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	if err := (Encoder{FlipY: true}).Encode(&buf, p); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got := FromImage(img)
	if got.PixelAt(0, 0) != p.PixelAt(0, 1) || got.PixelAt(0, 1) != p.PixelAt(0, 0) {
		t.Error("FlipY did not reverse the rows")
	}
}

func TestEncodeConvertsFormats(t *testing.T) {
	p := New(2, 2, RGB565)
	p.Fill(color.NRGBA{R: 0x84, G: 0x41, B: 0x84, A: 0xff})
	var buf bytes.Buffer
	if err := EncodePNG(&buf, p); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got, want := FromImage(img).PixelAt(0, 0), p.PixelAt(0, 0); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestEncoderLevels(t *testing.T) {
	p := FromImage(gradientImage(32, 32))
	var sizes []int
	for _, level := range []CompressionLevel{NoCompression, BestSpeed, DefaultCompression, BestCompression} {
		var buf bytes.Buffer
		if err := (Encoder{CompressionLevel: level}).Encode(&buf, p); err != nil {
			t.Fatalf("level %d: encode failed: %v", level, err)
		}
		img, err := png.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("level %d: decode failed: %v", level, err)
		}
		if !bytes.Equal(FromImage(img).Bytes(), p.Bytes()) {
			t.Errorf("level %d: pixels differ", level)
		}
		sizes = append(sizes, buf.Len())
	}
	if sizes[0] <= sizes[3] {
		t.Errorf("store (%d bytes) not larger than best compression (%d bytes)", sizes[0], sizes[3])
	}
}

func TestDecodePNG(t *testing.T) {
	img := gradientImage(5, 4)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("stdlib encode failed: %v", err)
	}
	p, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG failed: %v", err)
	}
	if p.Format() != RGBA8888 || p.Width() != 5 || p.Height() != 4 {
		t.Fatalf("decoded %v %dx%d", p.Format(), p.Width(), p.Height())
	}
	if p.PixelAt(3, 2) != img.NRGBAAt(3, 2) {
		t.Errorf("pixel (3,2) = %v, want %v", p.PixelAt(3, 2), img.NRGBAAt(3, 2))
	}
	if _, err := DecodePNG(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Error("DecodePNG accepted garbage")
	}
}
