package core

import (
	"image"

	"github.com/pkg/errors"
)

// ChangeKind tags the effect carried by a Change.
type ChangeKind uint8

const (
	// ChangeSet writes an explicit value.
	ChangeSet ChangeKind = iota
	// ChangeClone copies the pre-tick value found at an absolute position.
	ChangeClone
)

// Change is the effect of a matched rule on the cell being evaluated.
type Change[T any] struct {
	Kind  ChangeKind
	Value T
	From  image.Point
}

// Set returns a Change that writes v.
func Set[T any](v T) Change[T] { return Change[T]{Kind: ChangeSet, Value: v} }

// Clone returns a Change that copies the value held at the absolute position
// from in the source generation.
func Clone[T any](from image.Point) Change[T] { return Change[T]{Kind: ChangeClone, From: from} }

// Resolve returns the value the change produces when read against src.
func (c Change[T]) Resolve(src View[T]) T {
	if c.Kind == ChangeClone {
		return src.At(c.From)
	}
	return c.Value
}

// Rule decides the next value of the cell at pos from the source generation.
// It returns false when it does not apply.
type Rule[T any] interface {
	Match(src View[T], pos image.Point) (Change[T], bool)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc[T any] func(src View[T], pos image.Point) (Change[T], bool)

// Match implements Rule.
func (fn RuleFunc[T]) Match(src View[T], pos image.Point) (Change[T], bool) {
	return fn(src, pos)
}

// Pattern is a declarative rule: it matches when every slot of its shape
// holds the expected value, relative to the evaluated cell.
type Pattern[T comparable] struct {
	shape   Shape
	offsets []image.Point
	want    []T
	result  Change[T]
}

// NewPattern builds a Pattern expecting want[i] at the offset of slot i of
// shape. It fails when want does not cover the shape exactly or when the
// shape's slots do not resolve to offsets.
func NewPattern[T comparable](shape Shape, want []T, result Change[T]) (*Pattern[T], error) {
	if shape == nil {
		return nil, errors.New("[NewPattern] shape is nil")
	}
	if len(want) != shape.Size() {
		return nil, errors.Errorf("[NewPattern] pattern has %d values, shape %T has %d slots", len(want), shape, shape.Size())
	}
	offs, err := offsets(shape)
	if err != nil {
		return nil, errors.Wrap(err, "[NewPattern] malformed shape")
	}
	return &Pattern[T]{
		shape:   shape,
		offsets: offs,
		want:    append([]T(nil), want...),
		result:  result,
	}, nil
}

// MustPattern is NewPattern for static rule tables; it panics on error.
func MustPattern[T comparable](shape Shape, want []T, result Change[T]) *Pattern[T] {
	p, err := NewPattern(shape, want, result)
	if err != nil {
		panic(err)
	}
	return p
}

// Shape returns the neighborhood the pattern is expressed over.
func (p *Pattern[T]) Shape() Shape { return p.shape }

// Result returns the change applied when the pattern matches.
func (p *Pattern[T]) Result() Change[T] { return p.result }

// Expect returns the value expected at offset off, or false when off is
// outside the pattern's shape.
func (p *Pattern[T]) Expect(off image.Point) (T, bool) {
	i, ok := p.shape.Index(off)
	if !ok {
		var zero T
		return zero, false
	}
	return p.want[i], true
}

// Match implements Rule.
func (p *Pattern[T]) Match(src View[T], pos image.Point) (Change[T], bool) {
	for i, off := range p.offsets {
		if src.At(pos.Add(off)) != p.want[i] {
			return Change[T]{}, false
		}
	}
	return p.result, true
}

// RuleContext is an ordered rule set. The first rule that matches a cell
// decides its next value; a cell no rule matches keeps its value.
type RuleContext[T comparable] struct {
	rules []Rule[T]
}

// NewRuleContext returns a context evaluating rules in the given order.
func NewRuleContext[T comparable](rules ...Rule[T]) *RuleContext[T] {
	c := &RuleContext[T]{rules: make([]Rule[T], 0, len(rules))}
	for _, r := range rules {
		c.With(r)
	}
	Logger().Debug("rule context built", "rules", len(c.rules))
	return c
}

// With appends r after the rules already registered. Nil rules are ignored.
// A context must not be extended while a tick is using it.
func (c *RuleContext[T]) With(r Rule[T]) *RuleContext[T] {
	if r != nil {
		c.rules = append(c.rules, r)
	}
	return c
}

// Len returns the number of registered rules.
func (c *RuleContext[T]) Len() int { return len(c.rules) }

// Resolve evaluates the rules at pos against src and returns the value the
// first matching rule produces. It returns false when no rule matches.
func (c *RuleContext[T]) Resolve(src View[T], pos image.Point) (T, bool) {
	for _, r := range c.rules {
		if change, ok := r.Match(src, pos); ok {
			return change.Resolve(src), true
		}
	}
	var zero T
	return zero, false
}

// Matching counts the rules that match pos, ignoring order. A rule table that
// partitions its state space reports exactly one for every neighborhood.
func (c *RuleContext[T]) Matching(src View[T], pos image.Point) int {
	n := 0
	for _, r := range c.rules {
		if _, ok := r.Match(src, pos); ok {
			n++
		}
	}
	return n
}
