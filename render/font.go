// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	cover "github.com/gogpu/gg-cover"
)

// ErrUnknownFont is returned when neither a family nor the fallback family
// can be resolved.
var ErrUnknownFont = errors.New("render: unknown font family")

// FontResolver maps a font family to a loaded font source.
type FontResolver interface {
	ResolveFont(family string) (*text.FontSource, error)
}

// Built-in families of NewFontSet.
const (
	FamilyGo       = "Go"
	FamilyGoBold   = "Go Bold"
	FamilyGoItalic = "Go Italic"
	FamilyGoMono   = "Go Mono"
)

// FontSet is a FontResolver over registered font files. Sources are parsed
// on first use. Family names are matched case-insensitively.
//
// FontSet is safe for concurrent use.
type FontSet struct {
	mu       sync.Mutex
	data     map[string][]byte
	sources  map[string]*text.FontSource
	fallback string
}

// NewFontSet returns a set holding the Go fonts, falling back to FamilyGo.
func NewFontSet() *FontSet {
	s := &FontSet{
		data:     make(map[string][]byte),
		sources:  make(map[string]*text.FontSource),
		fallback: fontKey(FamilyGo),
	}
	s.Register(FamilyGo, goregular.TTF)
	s.Register(FamilyGoBold, gobold.TTF)
	s.Register(FamilyGoItalic, goitalic.TTF)
	s.Register(FamilyGoMono, gomono.TTF)
	return s
}

func fontKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// Register adds or replaces the TTF/OTF data of family.
func (s *FontSet) Register(family string, data []byte) {
	k := fontKey(family)
	s.mu.Lock()
	defer s.mu.Unlock()
	if src, ok := s.sources[k]; ok {
		_ = src.Close()
		delete(s.sources, k)
	}
	s.data[k] = data
}

// SetFallback sets the family used for unknown families.
func (s *FontSet) SetFallback(family string) {
	s.mu.Lock()
	s.fallback = fontKey(family)
	s.mu.Unlock()
}

// Families returns the registered family keys.
func (s *FontSet) Families() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.data))
	for k := range s.data {
		out = append(out, k)
	}
	return out
}

// ResolveFont implements FontResolver. Unknown families resolve to the
// fallback with a warning; an empty family resolves to it silently.
func (s *FontSet) ResolveFont(family string) (*text.FontSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := fontKey(family)
	if _, ok := s.data[k]; !ok {
		if k != "" {
			cover.Logger().Warn("render: unknown font family, using fallback",
				"family", family, "fallback", s.fallback)
		}
		k = s.fallback
	}
	if src, ok := s.sources[k]; ok {
		return src, nil
	}
	data, ok := s.data[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, family)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("render: parse font %q: %w", k, err)
	}
	s.sources[k] = src
	return src, nil
}

// Close releases every parsed source.
func (s *FontSet) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for k, src := range s.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(s.sources, k)
	}
	return errors.Join(errs...)
}
