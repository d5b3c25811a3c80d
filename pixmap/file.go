// SPDX-License-Identifier: Unlicense OR MIT

package pixmap

import (
	"fmt"
	"io"
	"os"
)

// WritePNGFile encodes p to the named PNG file.
func WritePNGFile(path string, p *Pixmap) error {
	return writeFile(path, p, EncodePNG)
}

// WriteCIMFile encodes p to the named CIM file.
func WriteCIMFile(path string, p *Pixmap) error {
	return writeFile(path, p, EncodeCIM)
}

func writeFile(path string, p *Pixmap, encode func(w io.Writer, p *Pixmap) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pixmap: create %s: %w", path, err)
	}
	if err := encode(f, p); err != nil {
		f.Close()
		return fmt.Errorf("pixmap: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pixmap: write %s: %w", path, err)
	}
	return nil
}

// ReadPNGFile decodes the named PNG file into an RGBA8888 pixmap.
func ReadPNGFile(path string) (*Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pixmap: open %s: %w", path, err)
	}
	defer f.Close()
	p, err := DecodePNG(f)
	if err != nil {
		return nil, fmt.Errorf("pixmap: decode %s: %w", path, err)
	}
	return p, nil
}

// ReadCIMFile decodes the named CIM file.
func ReadCIMFile(path string) (*Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pixmap: open %s: %w", path, err)
	}
	defer f.Close()
	p, err := DecodeCIM(f)
	if err != nil {
		return nil, fmt.Errorf("pixmap: decode %s: %w", path, err)
	}
	return p, nil
}
