// SPDX-License-Identifier: MIT

package array2d

import "cmp"

// ReverseIterator walks the buffer from the last element to the first.
// It wraps a forward Iterator positioned one past the element it refers to,
// so RBegin wraps End and REnd wraps Begin.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// ConstReverseIterator is the read-only form of ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// ReversePosition is implemented by ReverseIterator and ConstReverseIterator,
// so reverse comparison and distance mix both flavours.
type ReversePosition[T any] interface {
	forward() Position[T]
}

func (it ReverseIterator[T]) forward() Position[T]      { return it.base }
func (it ConstReverseIterator[T]) forward() Position[T] { return it.base }

// rdiff is the reverse-walk distance a - b: the forward distance with the
// operands exchanged.
func rdiff[T any](a, b ReversePosition[T]) int { return diff[T](b.forward(), a.forward()) }

// RBegin returns a reverse iterator to the last element.
func (a *Array[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{base: a.End()} }

// REnd returns the reverse iterator one before the first element.
func (a *Array[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{base: a.Begin()} }

// CRBegin returns a read-only reverse iterator to the last element.
func (a *Array[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: a.CEnd()}
}

// CREnd returns the read-only reverse iterator one before the first element.
func (a *Array[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: a.CBegin()}
}

// Base returns the underlying forward iterator (one past the referenced element).
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

// Get dereferences the iterator.
func (it ReverseIterator[T]) Get() T { return it.base.buf[it.base.pos-1] }

// Set writes v at the referenced element.
func (it ReverseIterator[T]) Set(v T) { it.base.buf[it.base.pos-1] = v }

// Ptr returns a pointer to the referenced element.
func (it ReverseIterator[T]) Ptr() *T { return &it.base.buf[it.base.pos-1] }

// At returns the element n steps further along the reverse walk.
func (it ReverseIterator[T]) At(n int) T { return it.base.buf[it.base.pos-1-n] }

// SetAt writes v n steps further along the reverse walk.
func (it ReverseIterator[T]) SetAt(n int, v T) { it.base.buf[it.base.pos-1-n] = v }

// Inc steps towards the front of the buffer.
func (it *ReverseIterator[T]) Inc() *ReverseIterator[T] {
	it.base.pos--
	return it
}

// PostInc steps towards the front and returns the previous position.
func (it *ReverseIterator[T]) PostInc() ReverseIterator[T] {
	old := *it
	it.base.pos--
	return old
}

// Dec steps towards the back of the buffer.
func (it *ReverseIterator[T]) Dec() *ReverseIterator[T] {
	it.base.pos++
	return it
}

// PostDec steps towards the back and returns the previous position.
func (it *ReverseIterator[T]) PostDec() ReverseIterator[T] {
	old := *it
	it.base.pos++
	return old
}

// Advance moves n steps along the reverse walk in place.
func (it *ReverseIterator[T]) Advance(n int) *ReverseIterator[T] {
	it.base.pos -= n
	return it
}

// Retreat moves n steps against the reverse walk in place.
func (it *ReverseIterator[T]) Retreat(n int) *ReverseIterator[T] {
	it.base.pos += n
	return it
}

// Add returns a copy moved n steps along the reverse walk.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Sub(n)}
}

// Sub returns a copy moved n steps against the reverse walk.
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Add(n)}
}

// Diff returns the signed reverse-walk distance it - other.
func (it ReverseIterator[T]) Diff(other ReversePosition[T]) int { return rdiff[T](it, other) }

// Equal reports whether both iterators refer to the same element.
func (it ReverseIterator[T]) Equal(other ReversePosition[T]) bool { return rdiff[T](it, other) == 0 }

// NotEqual is !Equal.
func (it ReverseIterator[T]) NotEqual(other ReversePosition[T]) bool {
	return rdiff[T](it, other) != 0
}

// Less reports whether it comes before other in the reverse walk.
func (it ReverseIterator[T]) Less(other ReversePosition[T]) bool { return rdiff[T](it, other) < 0 }

// LessEqual reports it <= other in reverse-walk order.
func (it ReverseIterator[T]) LessEqual(other ReversePosition[T]) bool {
	return rdiff[T](it, other) <= 0
}

// Greater reports it > other in reverse-walk order.
func (it ReverseIterator[T]) Greater(other ReversePosition[T]) bool {
	return rdiff[T](it, other) > 0
}

// GreaterEqual reports it >= other in reverse-walk order.
func (it ReverseIterator[T]) GreaterEqual(other ReversePosition[T]) bool {
	return rdiff[T](it, other) >= 0
}

// Compare returns -1, 0 or +1 by reverse-walk order.
func (it ReverseIterator[T]) Compare(other ReversePosition[T]) int {
	return cmp.Compare(rdiff[T](it, other), 0)
}

// Const converts to a read-only reverse iterator.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Const()}
}

// Base returns the underlying forward iterator (one past the referenced element).
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.base }

// Get dereferences the iterator.
func (it ConstReverseIterator[T]) Get() T { return it.base.buf[it.base.pos-1] }

// Ptr returns a pointer to the referenced element. Callers must not write through it.
func (it ConstReverseIterator[T]) Ptr() *T { return &it.base.buf[it.base.pos-1] }

// At returns the element n steps further along the reverse walk.
func (it ConstReverseIterator[T]) At(n int) T { return it.base.buf[it.base.pos-1-n] }

// Inc steps towards the front of the buffer.
func (it *ConstReverseIterator[T]) Inc() *ConstReverseIterator[T] {
	it.base.pos--
	return it
}

// PostInc steps towards the front and returns the previous position.
func (it *ConstReverseIterator[T]) PostInc() ConstReverseIterator[T] {
	old := *it
	it.base.pos--
	return old
}

// Dec steps towards the back of the buffer.
func (it *ConstReverseIterator[T]) Dec() *ConstReverseIterator[T] {
	it.base.pos++
	return it
}

// PostDec steps towards the back and returns the previous position.
func (it *ConstReverseIterator[T]) PostDec() ConstReverseIterator[T] {
	old := *it
	it.base.pos++
	return old
}

// Advance moves n steps along the reverse walk in place.
func (it *ConstReverseIterator[T]) Advance(n int) *ConstReverseIterator[T] {
	it.base.pos -= n
	return it
}

// Retreat moves n steps against the reverse walk in place.
func (it *ConstReverseIterator[T]) Retreat(n int) *ConstReverseIterator[T] {
	it.base.pos += n
	return it
}

// Add returns a copy moved n steps along the reverse walk.
func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Sub(n)}
}

// Sub returns a copy moved n steps against the reverse walk.
func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Add(n)}
}

// Diff returns the signed reverse-walk distance it - other.
func (it ConstReverseIterator[T]) Diff(other ReversePosition[T]) int { return rdiff[T](it, other) }

// Equal reports whether both iterators refer to the same element.
func (it ConstReverseIterator[T]) Equal(other ReversePosition[T]) bool {
	return rdiff[T](it, other) == 0
}

// NotEqual is !Equal.
func (it ConstReverseIterator[T]) NotEqual(other ReversePosition[T]) bool {
	return rdiff[T](it, other) != 0
}

// Less reports whether it comes before other in the reverse walk.
func (it ConstReverseIterator[T]) Less(other ReversePosition[T]) bool {
	return rdiff[T](it, other) < 0
}

// LessEqual reports it <= other in reverse-walk order.
func (it ConstReverseIterator[T]) LessEqual(other ReversePosition[T]) bool {
	return rdiff[T](it, other) <= 0
}

// Greater reports it > other in reverse-walk order.
func (it ConstReverseIterator[T]) Greater(other ReversePosition[T]) bool {
	return rdiff[T](it, other) > 0
}

// GreaterEqual reports it >= other in reverse-walk order.
func (it ConstReverseIterator[T]) GreaterEqual(other ReversePosition[T]) bool {
	return rdiff[T](it, other) >= 0
}

// Compare returns -1, 0 or +1 by reverse-walk order.
func (it ConstReverseIterator[T]) Compare(other ReversePosition[T]) int {
	return cmp.Compare(rdiff[T](it, other), 0)
}
