// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guifont

import (
	"bytes"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/guifont/atlas"
	"github.com/gogpu/guifont/rasterizer"
	"github.com/gogpu/guifont/render"
)

// loadTestFont returns a Font with Go Regular loaded.
func loadTestFont(t *testing.T, opts ...Option) *Font {
	t.Helper()
	f, err := New(opts...)
	require.NoError(t, err)
	require.NoError(t, f.LoadFromMemory(goregular.TTF))
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// newFakeFont returns a Font backed by fakeLoader.
func newFakeFont(t *testing.T, opts ...Option) (*Font, *fakeLoader) {
	t.Helper()
	l := newFakeLoader()
	f, err := New(append([]Option{WithCustomLoader(l)}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, f.LoadFromMemory(fakeFontData))
	return f, l
}

func atlasAlpha(f *Font, x, y int) byte {
	return f.Atlas().Pix()[(y*f.TextureSize()+x)*4+3]
}

func TestNewOptions(t *testing.T) {
	f, err := New()
	require.NoError(t, err)
	assert.True(t, f.IsSmooth())
	assert.Equal(t, atlas.DefaultSize, f.TextureSize())
	assert.Zero(t, f.GlyphCount())

	f, err = New(WithSmooth(false), WithInitialTextureSize(256), WithLoader("freetype"))
	require.NoError(t, err)
	assert.False(t, f.IsSmooth())
	assert.Equal(t, 256, f.TextureSize())

	_, err = New(WithInitialTextureSize(100))
	var cfgErr *atlas.ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = New(WithLoader("nope"))
	assert.ErrorIs(t, err, rasterizer.ErrUnknownLoader)
}

func TestLoadFromMemoryEmptyThenReload(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	assert.ErrorIs(t, f.LoadFromMemory(nil), ErrEmptyFontData)
	assert.False(t, f.HasGlyph('A'))
	assert.Equal(t, Glyph{}, f.Glyph('A', 16, false, 0))
	assert.Zero(t, f.GlyphCount(), "glyphs without a handle are not cached")
	assert.Zero(t, f.LineSpacing(16))
	assert.Zero(t, f.UnderlineThickness(16))

	require.NoError(t, f.LoadFromMemory(goregular.TTF))
	assert.True(t, f.HasGlyph('A'))
	g := f.Glyph('A', 16, false, 0)
	assert.False(t, g.TextureRect.Empty())
	assert.Positive(t, f.LineSpacing(16))
}

func TestLoadFromMemoryInvalid(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	err = f.LoadFromMemory([]byte("not a font at all"))
	assert.ErrorIs(t, err, ErrInvalidFont)
	assert.Equal(t, Glyph{}, f.Glyph('A', 16, false, 0))

	require.NoError(t, f.LoadFromMemory(goregular.TTF))
	assert.True(t, f.HasGlyph('A'))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o600))

	f, err := New()
	require.NoError(t, err)
	require.NoError(t, f.LoadFromFile(path))
	assert.True(t, f.HasGlyph('g'))

	assert.Error(t, f.LoadFromFile(filepath.Join(t.TempDir(), "missing.ttf")))
	assert.False(t, f.HasGlyph('g'), "a failed load resets the font")
}

func TestReloadResetsState(t *testing.T) {
	f, l := newFakeFont(t)
	f.Glyph('A', 16, false, 0)
	f.Glyph('W', 16, false, 0)
	f.UnderlinePosition(16)
	_, err := f.Texture(16)
	require.NoError(t, err)
	require.Equal(t, 512, f.TextureSize())
	old := l.handles

	require.NoError(t, f.LoadFromMemory(fakeFontData))
	for _, h := range old {
		assert.True(t, h.closed, "handle for size %d must be closed", h.size)
	}
	assert.Zero(t, f.GlyphCount())
	assert.Equal(t, atlas.DefaultSize, f.TextureSize())
	assert.Empty(t, f.Atlas().Rows())
	assert.Equal(t, atlas.FirstRowTop, f.Atlas().NextRowTop())
	assert.False(t, f.TextureUpToDate())

	g := f.Glyph('A', 16, false, 0)
	assert.Equal(t, IntRect{Left: 2, Top: 5, Width: 10, Height: 12}, g.TextureRect)
}

func TestGlyphABC(t *testing.T) {
	f := loadTestFont(t)

	var rects []IntRect
	for i, r := range []rune{'A', 'B', 'C'} {
		g := f.Glyph(r, 16, false, 0)
		require.False(t, g.TextureRect.Empty(), "glyph %q", r)
		if i == 0 {
			assert.False(t, f.TextureUpToDate(), "first pack makes the texture stale")
		}
		assert.Positive(t, g.Advance)
		assert.Negative(t, g.Bounds.Top)
		assert.Equal(t, float32(g.TextureRect.Width), g.Bounds.Width)
		assert.Equal(t, float32(g.TextureRect.Height), g.Bounds.Height)
		rects = append(rects, g.TextureRect)
	}
	assert.Equal(t, 128, f.TextureSize())

	for i, r := range rects {
		padded := r.Inset(-glyphPadding)
		assert.GreaterOrEqual(t, padded.Left, 0)
		assert.GreaterOrEqual(t, padded.Top, atlas.FirstRowTop)
		assert.LessOrEqual(t, padded.Right(), 128)
		assert.LessOrEqual(t, padded.Bottom(), 128)
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, padded.Overlaps(rects[j].Inset(-glyphPadding)), "rects %v and %v", r, rects[j])
		}
	}

	tex, err := f.Texture(16)
	require.NoError(t, err)
	assert.True(t, f.TextureUpToDate())
	st, ok := tex.(*render.SoftwareTexture)
	require.True(t, ok)
	assert.Equal(t, 1, st.Uploads())
	assert.Equal(t, f.Atlas().Pix(), st.Pixels())

	for _, r := range rects {
		ink := false
		for y := r.Top; y < r.Bottom() && !ink; y++ {
			for x := r.Left; x < r.Right(); x++ {
				if !st.IsTransparentPixel(x, y) {
					ink = true
					break
				}
			}
		}
		assert.True(t, ink, "texture must contain the glyph at %v", r)
	}
}

func TestGlyphCacheIdempotent(t *testing.T) {
	f, l := newFakeFont(t)

	first := f.Glyph('A', 16, false, 0)
	h := l.handle(16)
	require.NotNil(t, h)
	renders := h.renders
	version := f.Atlas().Version()

	second := f.Glyph('A', 16, false, 0)
	assert.Equal(t, first, second)
	assert.Equal(t, renders, h.renders)
	assert.Equal(t, version, f.Atlas().Version())
	assert.Equal(t, 1, f.GlyphCount())
}

func TestGlyphPlacement(t *testing.T) {
	f, _ := newFakeFont(t)

	g := f.Glyph('A', 16, false, 0)
	assert.Equal(t, float32(10), g.Advance)
	assert.Equal(t, FloatRect{Left: 0, Top: -12, Width: 10, Height: 12}, g.Bounds)
	// 14×16 allocated in a new row of height 17 at y = 3, shrunk by the padding.
	assert.Equal(t, IntRect{Left: 2, Top: 5, Width: 10, Height: 12}, g.TextureRect)

	assert.Equal(t, byte(0xff), atlasAlpha(f, 2, 5))
	assert.Equal(t, byte(0xff), atlasAlpha(f, 11, 16))
	assert.Equal(t, byte(0), atlasAlpha(f, 1, 5))
	assert.Equal(t, byte(0), atlasAlpha(f, 12, 5))
	assert.Equal(t, byte(0), atlasAlpha(f, 2, 17))

	// 'B' fits the same row.
	b := f.Glyph('B', 16, false, 0)
	assert.Equal(t, IntRect{Left: 16, Top: 5, Width: 8, Height: 12}, b.TextureRect)
}

func TestGlyphNegativeMinX(t *testing.T) {
	f, _ := newFakeFont(t)
	g := f.Glyph('j', 16, false, 0)
	assert.Equal(t, float32(-2), g.Bounds.Left)
	assert.Equal(t, 5, g.TextureRect.Width)
	for x := g.TextureRect.Left; x < g.TextureRect.Right(); x++ {
		assert.Equal(t, byte(0xff), atlasAlpha(f, x, g.TextureRect.Top))
	}
}

func TestGlyphMetricsOnly(t *testing.T) {
	f, _ := newFakeFont(t)
	version := f.Atlas().Version()

	g := f.Glyph(' ', 16, false, 0)
	assert.Equal(t, float32(4), g.Advance)
	assert.True(t, g.TextureRect.Empty())
	assert.Equal(t, version, f.Atlas().Version())
	assert.Empty(t, f.Atlas().Rows())
	assert.Equal(t, 1, f.GlyphCount())
}

func TestGlyphSurfaceTooSmall(t *testing.T) {
	f, l := newFakeFont(t)
	require.NotNil(t, f.handle(16))
	l.handle(16).tiny = true
	version := f.Atlas().Version()

	g := f.Glyph('A', 16, false, 0)
	assert.Equal(t, float32(10), g.Advance)
	assert.Equal(t, float32(-12), g.Bounds.Top)
	assert.True(t, g.TextureRect.Empty())
	assert.Equal(t, version, f.Atlas().Version())
	assert.Equal(t, 1, f.GlyphCount())
}

func TestGlyphSizeAboveKeyRange(t *testing.T) {
	f, l := newFakeFont(t)
	a := f.Glyph('A', 16, false, 0)
	require.False(t, a.TextureRect.Empty())

	// 65552 would alias size 16 in the key.
	assert.Equal(t, Glyph{}, f.Glyph('A', MaxCharacterSize+17, false, 0))
	assert.Nil(t, l.handle(MaxCharacterSize+17))
	assert.Equal(t, 1, f.GlyphCount())

	assert.Equal(t, a, f.Glyph('A', 16, false, 0))
}

func TestGlyphFailuresAreCached(t *testing.T) {
	f, l := newFakeFont(t)

	assert.Equal(t, Glyph{}, f.Glyph('Z', 16, false, 0))
	assert.Equal(t, 1, f.GlyphCount())
	assert.Equal(t, Glyph{}, f.Glyph('Z', 16, false, 0))
	assert.Equal(t, 1, f.GlyphCount())
	assert.Zero(t, l.handle(16).renders)

	// Size 0 never opens a handle and is not cached.
	assert.Equal(t, Glyph{}, f.Glyph('A', 0, false, 0))
	assert.Equal(t, 1, f.GlyphCount())
}

func TestGlyphWideGrowsAtlas(t *testing.T) {
	f, _ := newFakeFont(t)
	a := f.Glyph('A', 16, false, 0)
	require.False(t, a.TextureRect.Empty())
	before := append([]byte(nil), f.Atlas().Pix()...)

	w := f.Glyph('W', 16, false, 0)
	require.False(t, w.TextureRect.Empty())
	// 304 wide needs 512: 304 >= 256.
	assert.Equal(t, 512, f.TextureSize())
	assert.LessOrEqual(t, w.TextureRect.Right()+glyphPadding, 512)

	// The old atlas lands in the top-left quadrant. Only W's own padded
	// rect may differ there.
	written := w.TextureRect.Inset(-glyphPadding).Image()
	pix := f.Atlas().Pix()
	changed := 0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if image.Pt(x, y).In(written) {
				continue
			}
			old := before[(y*128+x)*4 : (y*128+x)*4+4]
			got := pix[(y*512+x)*4 : (y*512+x)*4+4]
			if !bytes.Equal(old, got) {
				changed++
			}
		}
	}
	assert.Zero(t, changed, "pixels outside %v changed", w.TextureRect)
	assert.Equal(t, byte(0xff), atlasAlpha(f, a.TextureRect.Left, a.TextureRect.Top))
}

func TestGlyphMaxTextureSize(t *testing.T) {
	f, _ := newFakeFont(t, WithMaxTextureSize(128))

	w := f.Glyph('W', 16, false, 0)
	assert.True(t, w.TextureRect.Empty())
	assert.Equal(t, float32(300), w.Bounds.Width)
	assert.Equal(t, 128, f.TextureSize())
	assert.Equal(t, 1, f.GlyphCount())

	a := f.Glyph('A', 16, false, 0)
	assert.False(t, a.TextureRect.Empty())
}

func TestGlyphStyleSwitchesAreSkipped(t *testing.T) {
	f, l := newFakeFont(t)

	f.Glyph('A', 16, true, 0)
	h := l.handle(16)
	require.NotNil(t, h)
	assert.Equal(t, 1, h.styleCalls)
	assert.True(t, h.style.Has(rasterizer.StyleBold))

	f.Glyph('B', 16, true, 0)
	f.Kerning('A', 'B', 16, true)
	assert.Equal(t, 1, h.styleCalls)

	f.Glyph('A', 16, false, 0)
	assert.Equal(t, 2, h.styleCalls)

	f.Glyph('A', 16, false, 1.5)
	f.Glyph('B', 16, false, 1.5)
	f.Glyph('g', 16, false, 1.7)
	assert.Equal(t, 1, h.outlineCalls)
	assert.Equal(t, 1, h.outline)

	// Bold, outline and plain variants are distinct cache entries.
	assert.Equal(t, 6, f.GlyphCount())
	assert.Equal(t, float32(11), f.Glyph('A', 16, true, 0).Advance)
}

func TestKerningAndLineSpacing(t *testing.T) {
	f, _ := newFakeFont(t)
	assert.Equal(t, float32(-2), f.Kerning('A', 'V', 16, false))
	assert.Zero(t, f.Kerning('A', 'B', 16, false))
	assert.Zero(t, f.Kerning('A', 'V', 0, false))
	assert.Equal(t, float32(18), f.LineSpacing(16))
	assert.Zero(t, f.LineSpacing(0))
}

func TestHasGlyph(t *testing.T) {
	f, _ := newFakeFont(t)
	assert.True(t, f.HasGlyph('A'))
	assert.False(t, f.HasGlyph('Z'))

	g := loadTestFont(t)
	assert.True(t, g.HasGlyph('é'))
	assert.False(t, g.HasGlyph('\U0001F600'))
}

func TestClose(t *testing.T) {
	f, l := newFakeFont(t)
	cached := f.Glyph('A', 16, false, 0)
	require.NoError(t, f.Close())

	for _, h := range l.handles {
		assert.True(t, h.closed)
	}
	assert.False(t, f.HasGlyph('A'))
	assert.Equal(t, cached, f.Glyph('A', 16, false, 0))
	assert.Equal(t, Glyph{}, f.Glyph('B', 16, false, 0))
}

func TestFontLogsAtlasGrowth(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	f, _ := newFakeFont(t)
	f.Glyph('W', 16, false, 0)
	assert.Contains(t, buf.String(), "atlas grown")
	assert.Contains(t, buf.String(), "to=512")
}
