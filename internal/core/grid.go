package core

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// View is read-only access to cell values by absolute position. Positions
// outside the grid wrap around.
type View[T any] interface {
	At(p image.Point) T
}

// Field stores a toroidal 2D grid of cell values in row-major order. Its
// dimensions are fixed at construction.
type Field[T comparable] struct {
	w, h int
	cur  []T
	nxt  []T
	gen  int
}

// NewField allocates a zero-valued field with the given dimensions.
func NewField[T comparable](w, h int) *Field[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field[T]{w: w, h: h, cur: make([]T, w*h), nxt: make([]T, w*h)}
}

// FieldFromRows builds a field from rows[y][x]. Every row must have the same
// non-zero length.
func FieldFromRows[T comparable](rows [][]T) (*Field[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("[FieldFromRows] seed must have at least one cell")
	}
	f := NewField[T](len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != f.w {
			return nil, errors.Errorf("[FieldFromRows] row %d has %d cells, want %d", y, len(row), f.w)
		}
		copy(f.cur[y*f.w:], row)
	}
	return f, nil
}

// Width returns the number of columns.
func (f *Field[T]) Width() int { return f.w }

// Height returns the number of rows.
func (f *Field[T]) Height() int { return f.h }

// Size returns the grid dimensions.
func (f *Field[T]) Size() Size { return Size{W: f.w, H: f.h} }

// Generation reports how many ticks the field has advanced.
func (f *Field[T]) Generation() int { return f.gen }

// ResetGeneration zeroes the generation counter, typically after reseeding.
func (f *Field[T]) ResetGeneration() { f.gen = 0 }

// Wrap applies toroidal wrapping to the provided coordinates.
func (f *Field[T]) Wrap(x, y int) (int, int) {
	x = (x%f.w + f.w) % f.w
	y = (y%f.h + f.h) % f.h
	return x, y
}

func (f *Field[T]) index(x, y int) int {
	x, y = f.Wrap(x, y)
	return y*f.w + x
}

// Get returns the value at (x, y) after wrapping.
func (f *Field[T]) Get(x, y int) T { return f.cur[f.index(x, y)] }

// Set stores v at (x, y) after wrapping.
func (f *Field[T]) Set(x, y int, v T) { f.cur[f.index(x, y)] = v }

// At implements View.
func (f *Field[T]) At(p image.Point) T { return f.Get(p.X, p.Y) }

// Fill sets every cell to v.
func (f *Field[T]) Fill(v T) {
	for i := range f.cur {
		f.cur[i] = v
	}
}

// Cells returns a row-major copy of the current values.
func (f *Field[T]) Cells() []T {
	return append([]T(nil), f.cur...)
}

// Clone returns an independent copy of the field.
func (f *Field[T]) Clone() *Field[T] {
	return &Field[T]{
		w:   f.w,
		h:   f.h,
		cur: append([]T(nil), f.cur...),
		nxt: make([]T, len(f.cur)),
		gen: f.gen,
	}
}

// Equal reports whether both fields have the same dimensions and values.
func (f *Field[T]) Equal(other *Field[T]) bool {
	if f.w != other.w || f.h != other.h {
		return false
	}
	for i, v := range f.cur {
		if other.cur[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of cells for which match reports true.
func (f *Field[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range f.cur {
		if match(v) {
			n++
		}
	}
	return n
}

// Palette maps a cell value to the colour it is drawn with.
type Palette[T any] func(T) color.RGBA

// Binary returns the palette of a boolean field.
func Binary(on, off color.Color) Palette[bool] {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	onRGBA := color.RGBA{R: uint8(rOn >> 8), G: uint8(gOn >> 8), B: uint8(bOn >> 8), A: uint8(aOn >> 8)}
	offRGBA := color.RGBA{R: uint8(rOff >> 8), G: uint8(gOff >> 8), B: uint8(bOff >> 8), A: uint8(aOff >> 8)}
	return func(v bool) color.RGBA {
		if v {
			return onRGBA
		}
		return offRGBA
	}
}

// Indexed returns a palette that looks values up by their integer value,
// clamping to the last entry.
func Indexed(colors []color.RGBA) Palette[uint8] {
	last := len(colors) - 1
	return func(v uint8) color.RGBA {
		if last < 0 {
			return color.RGBA{}
		}
		idx := int(v)
		if idx > last {
			idx = last
		}
		return colors[idx]
	}
}

// ToBytes projects the field into RGBA pixels, four bytes per cell, scanning
// rows top to bottom and each row left to right.
func (f *Field[T]) ToBytes(p Palette[T]) []byte {
	return f.AppendBytes(make([]byte, 0, 4*len(f.cur)), p)
}

// AppendBytes is ToBytes appending into buf.
func (f *Field[T]) AppendBytes(buf []byte, p Palette[T]) []byte {
	for _, v := range f.cur {
		c := p(v)
		buf = append(buf, c.R, c.G, c.B, c.A)
	}
	return buf
}
