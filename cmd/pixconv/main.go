// SPDX-License-Identifier: Unlicense OR MIT

// Command pixconv converts between image formats using this module's
// codecs. PNG, JPEG, GIF and CIM files are read; PNG and CIM are written,
// the output format picked from the destination extension.
//
// Usage:
//
//	pixconv [-resize WxH] [-flip] [-level N] -in src.png -out dst.cim
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/go-gfx/glbind/pixmap"
)

var (
	in     = flag.String("in", "", "source file (png, jpeg, gif or cim)")
	out    = flag.String("out", "", "destination file (png or cim)")
	resize = flag.String("resize", "", "resize to WxH before encoding")
	flip   = flag.Bool("flip", false, "flip vertically")
	level  = flag.Int("level", 0, "png compression level: 0 default, 1 fastest, 9 best")
	quiet  = flag.Bool("q", false, "suppress the size report")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pixconv: ")
	flag.Parse()
	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	p, err := read(*in)
	if err != nil {
		log.Fatal(err)
	}
	if *resize != "" {
		w, h, err := parseSize(*resize)
		if err != nil {
			log.Fatal(err)
		}
		p = pixmap.FromImage(imaging.Resize(p, w, h, imaging.Lanczos))
	}
	if *flip {
		p.FlipV()
	}
	if err := write(*out, p); err != nil {
		log.Fatal(err)
	}
	if !*quiet {
		report(*in, *out, p)
	}
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad -resize %q, want WxH", s)
	}
	return w, h, nil
}

func read(path string) (*pixmap.Pixmap, error) {
	if strings.EqualFold(filepath.Ext(path), ".cim") {
		return pixmap.ReadCIMFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return pixmap.FromImage(img), nil
}

func write(path string, p *pixmap.Pixmap) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cim":
		return pixmap.WriteCIMFile(path, p)
	case ".png":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		enc := pixmap.Encoder{CompressionLevel: pngLevel(*level)}
		if err := enc.Encode(f, p); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported output extension %q, want .png or .cim", ext)
	}
}

func pngLevel(n int) pixmap.CompressionLevel {
	switch {
	case n == 0:
		return pixmap.DefaultCompression
	case n <= 3:
		return pixmap.BestSpeed
	case n >= 7:
		return pixmap.BestCompression
	default:
		return pixmap.DefaultCompression
	}
}

func report(in, out string, p *pixmap.Pixmap) {
	inSize := fileSize(in)
	outSize := fileSize(out)
	arrow := "->"
	if term.IsTerminal(int(os.Stdout.Fd())) {
		arrow = "\x1b[32m->\x1b[0m"
	}
	fmt.Printf("%s (%s) %s %s (%s), %dx%d %v\n",
		in, humanize.IBytes(uint64(inSize)), arrow,
		out, humanize.IBytes(uint64(outSize)),
		p.Width(), p.Height(), p.Format())
}

func fileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}
