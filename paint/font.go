// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is used when TextStyle.Font is empty or unparsable.
const DefaultFont = "16px sans-serif"

// Family is a generic font family.
type Family uint8

const (
	SansSerif Family = iota
	Monospace
)

// FontSpec is a parsed CSS font shorthand.
type FontSpec struct {
	Family Family
	Bold   bool
	Italic bool
	Size   float64 // logical pixels
}

// ParseFont parses a CSS font shorthand such as "bold 14px monospace" or
// "italic 12pt Go". Size is required; weight and style are optional and come
// before it; everything after the size is the family list, of which only the
// first entry is considered. Families that look monospaced map to Go Mono,
// everything else to Go.
func ParseFont(s string) (FontSpec, error) {
	var spec FontSpec
	fields := strings.Fields(s)
	sizeAt := -1
	for i, f := range fields {
		size, ok := parseFontSize(f)
		if !ok {
			switch strings.ToLower(f) {
			case "bold", "bolder", "600", "700", "800", "900":
				spec.Bold = true
			case "italic", "oblique":
				spec.Italic = true
			}
			continue
		}
		spec.Size = size
		sizeAt = i
		break
	}
	if sizeAt < 0 {
		return FontSpec{}, fmt.Errorf("paint: font %q has no size", s)
	}

	family := strings.Join(fields[sizeAt+1:], " ")
	if i := strings.IndexByte(family, ','); i >= 0 {
		family = family[:i]
	}
	family = strings.ToLower(strings.Trim(strings.TrimSpace(family), `"'`))
	if isMonospace(family) {
		spec.Family = Monospace
	}
	return spec, nil
}

// parseFontSize accepts "14px", "12pt" and "1.5em" (relative to 16px).
func parseFontSize(f string) (float64, bool) {
	// "14px/1.2" carries a line height we do not use.
	if i := strings.IndexByte(f, '/'); i >= 0 {
		f = f[:i]
	}
	units := []struct {
		suffix string
		scale  float64
	}{
		{"px", 1},
		{"pt", 4.0 / 3.0},
		{"em", 16},
		{"rem", 16},
	}
	for _, u := range units {
		if !strings.HasSuffix(f, u.suffix) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, u.suffix), 64)
		if err != nil || v <= 0 {
			return 0, false
		}
		return v * u.scale, true
	}
	return 0, false
}

func isMonospace(family string) bool {
	switch family {
	case "monospace", "mono", "go mono", "courier", "courier new", "menlo", "consolas", "monaco":
		return true
	}
	return strings.Contains(family, "mono")
}

// faceCapacity bounds the number of cached faces. Faces are keyed by device
// size, which changes with every new pixel ratio.
const faceCapacity = 256

// fontCache holds one FontSource per TTF and an LRU of faces keyed by spec
// and device size.
type fontCache struct {
	mu      sync.Mutex
	sources map[fontKey]*text.FontSource
	faces   *lru.Cache[faceKey, text.Face]
}

type fontKey struct {
	family Family
	bold   bool
	italic bool
}

type faceKey struct {
	fontKey
	size float64
}

func newFontCache() *fontCache {
	faces, err := lru.New[faceKey, text.Face](faceCapacity)
	if err != nil {
		panic("paint: face cache: " + err.Error())
	}
	return &fontCache{
		sources: make(map[fontKey]*text.FontSource),
		faces:   faces,
	}
}

var fonts = newFontCache()

func ttfFor(k fontKey) []byte {
	switch {
	case k.family == Monospace && k.bold && k.italic:
		return gomonobolditalic.TTF
	case k.family == Monospace && k.bold:
		return gomonobold.TTF
	case k.family == Monospace && k.italic:
		return gomonoitalic.TTF
	case k.family == Monospace:
		return gomono.TTF
	case k.bold && k.italic:
		return gobolditalic.TTF
	case k.bold:
		return gobold.TTF
	case k.italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// face returns a face for spec rasterized at spec.Size*scale device pixels.
func (c *fontCache) face(spec FontSpec, scale float64) (text.Face, error) {
	fk := fontKey{family: spec.Family, bold: spec.Bold, italic: spec.Italic}
	key := faceKey{fontKey: fk, size: spec.Size * scale}

	if f, ok := c.faces.Get(key); ok {
		return f, nil
	}
	src, err := c.source(fk)
	if err != nil {
		return nil, err
	}
	f := src.Face(key.size)
	if prev, ok, _ := c.faces.PeekOrAdd(key, f); ok {
		return prev, nil
	}
	return f, nil
}

func (c *fontCache) source(fk fontKey) (*text.FontSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if src, ok := c.sources[fk]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(ttfFor(fk))
	if err != nil {
		return nil, fmt.Errorf("paint: load font: %w", err)
	}
	c.sources[fk] = src
	return src, nil
}

// Face returns the Go font face matching spec at the given device scale.
// Faces are cached and shared; they must not be closed by the caller.
func Face(spec FontSpec, scale float64) (text.Face, error) {
	return fonts.face(spec, scale)
}

// UseComplexShaping switches gg's text shaping between its builtin shaper
// and the HarfBuzz port from go-text/typesetting (ligatures, kerning,
// bidirectional and complex scripts). It affects every context in the
// process.
func UseComplexShaping(enabled bool) {
	if enabled {
		text.SetShaper(text.NewGoTextShaper())
		return
	}
	text.SetShaper(nil)
}
