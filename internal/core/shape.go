package core

import (
	"image"

	"github.com/pkg/errors"
)

// Shape maps offsets relative to a cell onto the linear slots of a
// neighborhood buffer and back. Implementations are immutable and may be
// shared by any number of rules.
type Shape interface {
	// Index returns the slot for offset p, or false when p lies outside the
	// neighborhood.
	Index(p image.Point) (int, bool)
	// Offset returns the offset stored in slot i, or false when i is not in
	// [0, Size()).
	Offset(i int) (image.Point, bool)
	// Size reports the number of slots in the neighborhood.
	Size() int
}

// Square is the square neighborhood of side 2r-1 centred on the cell,
// enumerated row-major from the top-left corner. Square(2) is the 3x3 Moore
// neighborhood with the cell itself in slot 4.
type Square int

// NewSquare returns the square neighborhood of radius r.
func NewSquare(r int) (Square, error) {
	if r < 1 {
		return 0, errors.Errorf("[NewSquare] radius must be at least 1, got %d", r)
	}
	return Square(r), nil
}

func (s Square) side() int { return 2*int(s) - 1 }

// Index implements Shape.
func (s Square) Index(p image.Point) (int, bool) {
	ext := int(s) - 1
	if abs(p.X) > ext || abs(p.Y) > ext {
		return 0, false
	}
	return p.X + ext + s.side()*(p.Y+ext), true
}

// Offset implements Shape.
func (s Square) Offset(i int) (image.Point, bool) {
	if i < 0 || i >= s.Size() {
		return image.Point{}, false
	}
	ext := int(s) - 1
	return image.Pt(i%s.side()-ext, i/s.side()-ext), true
}

// Size implements Shape.
func (s Square) Size() int { return s.side() * s.side() }

// Line is a horizontal segment of length 2r-1 centred on the cell. It is the
// neighborhood of one-dimensional automata.
type Line int

// NewLine returns the horizontal neighborhood of radius r.
func NewLine(r int) (Line, error) {
	if r < 1 {
		return 0, errors.Errorf("[NewLine] radius must be at least 1, got %d", r)
	}
	return Line(r), nil
}

// Index implements Shape.
func (l Line) Index(p image.Point) (int, bool) {
	ext := int(l) - 1
	if p.Y != 0 || abs(p.X) > ext {
		return 0, false
	}
	return p.X + ext, true
}

// Offset implements Shape.
func (l Line) Offset(i int) (image.Point, bool) {
	if i < 0 || i >= l.Size() {
		return image.Point{}, false
	}
	return image.Pt(i-(int(l)-1), 0), true
}

// Size implements Shape.
func (l Line) Size() int { return 2*int(l) - 1 }

// offsets resolves every slot of s, failing on the first slot that has no
// offset or whose offset does not map back onto the same slot.
func offsets(s Shape) ([]image.Point, error) {
	n := s.Size()
	if n <= 0 {
		return nil, errors.Errorf("[offsets] shape %T has no slots", s)
	}
	out := make([]image.Point, n)
	for i := range out {
		p, ok := s.Offset(i)
		if !ok {
			return nil, errors.Errorf("[offsets] slot %d of %T has no offset", i, s)
		}
		if j, ok := s.Index(p); !ok || j != i {
			return nil, errors.Errorf("[offsets] slot %d of %T maps to %v which indexes back to %d", i, s, p, j)
		}
		out[i] = p
	}
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
