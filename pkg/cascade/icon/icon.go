// Package icon resolves icon references to SVG sources and rasterizes them
// for presentation adapters that draw bitmaps.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrUnknownIcon indicates a name with no registered source.
var ErrUnknownIcon = errors.New("unknown icon")

// Registry maps icon names to SVG documents. The zero value is empty and
// ready to use; Default comes preloaded with the built-in icons.
type Registry struct {
	mu      sync.RWMutex
	sources map[string][]byte
}

// Default holds the built-in icons.
var Default = NewRegistry(builtin)

// NewRegistry returns a registry holding a copy of sources.
func NewRegistry(sources map[string]string) *Registry {
	r := &Registry{}
	for name, svg := range sources {
		r.Register(name, []byte(svg))
	}
	return r
}

// Register adds or replaces the SVG source for name.
func (r *Registry) Register(name string, svg []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sources == nil {
		r.sources = make(map[string][]byte)
	}
	r.sources[name] = append([]byte(nil), svg...)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sources[name]
	return ok
}

// Source returns the SVG document registered for name.
func (r *Registry) Source(name string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	svg, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return svg, nil
}

// Rasterize draws the icon registered for name into a size×size image.
// A non-nil tint replaces the color of every drawn pixel.
func (r *Registry) Rasterize(name string, size int, tint color.Color) (*image.RGBA, error) {
	svg, err := r.Source(name)
	if err != nil {
		return nil, err
	}
	return Rasterize(svg, size, tint)
}

// Rasterize draws an SVG document into a size×size image.
func Rasterize(svg []byte, size int, tint color.Color) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}

	ic, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	ic.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	ic.Draw(raster, 1.0)

	if tint != nil {
		recolor(img, tint)
	}
	return img, nil
}

// recolor keeps the coverage of every pixel and replaces its color with
// tint, scaled by the tint's own alpha.
func recolor(img *image.RGBA, tint color.Color) {
	tr, tg, tb, ta := tint.RGBA()
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		if a == 0 {
			continue
		}
		// Pix is premultiplied; coverage a scales the premultiplied tint.
		img.Pix[i+0] = uint8(tr * a / 0xFFFF)
		img.Pix[i+1] = uint8(tg * a / 0xFFFF)
		img.Pix[i+2] = uint8(tb * a / 0xFFFF)
		img.Pix[i+3] = uint8(ta * a / 0xFFFF)
	}
}
