// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"bytes"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	p := New(4, 4, RGBA8888)
	p.Fill(color.NRGBA{R: 40, G: 80, B: 120, A: 255})
	p.Set(2, 1, color.NRGBA{R: 255, A: 255})

	pngPath := filepath.Join(dir, "out.png")
	if err := WritePNGFile(pngPath, p); err != nil {
		t.Fatalf("WritePNGFile: %v", err)
	}
	got, err := ReadPNGFile(pngPath)
	if err != nil {
		t.Fatalf("ReadPNGFile: %v", err)
	}
	if !bytes.Equal(got.Bytes(), p.Bytes()) {
		t.Error("PNG file round trip changed pixels")
	}

	cimPath := filepath.Join(dir, "out.cim")
	if err := WriteCIMFile(cimPath, p); err != nil {
		t.Fatalf("WriteCIMFile: %v", err)
	}
	got, err = ReadCIMFile(cimPath)
	if err != nil {
		t.Fatalf("ReadCIMFile: %v", err)
	}
	if got.Format() != RGBA8888 || !bytes.Equal(got.Bytes(), p.Bytes()) {
		t.Error("CIM file round trip changed pixels")
	}
}

func TestFileErrorsNamePath(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.png")
	if _, err := ReadPNGFile(missing); err == nil || !strings.Contains(err.Error(), "nope.png") {
		t.Errorf("ReadPNGFile error = %v, want the path named", err)
	}
	badDir := filepath.Join(dir, "not", "a", "dir", "x.cim")
	if err := WriteCIMFile(badDir, New(1, 1, Alpha)); err == nil || !strings.Contains(err.Error(), "x.cim") {
		t.Errorf("WriteCIMFile error = %v, want the path named", err)
	}

	// A PNG that is really a CIM must fail decode, naming the file.
	cimPath := filepath.Join(dir, "masquerade.png")
	if err := WriteCIMFile(cimPath, New(1, 1, Alpha)); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPNGFile(cimPath); err == nil || !strings.Contains(err.Error(), "masquerade.png") {
		t.Errorf("ReadPNGFile on a CIM = %v, want decode failure naming the path", err)
	}
}
