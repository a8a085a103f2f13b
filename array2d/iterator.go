// SPDX-License-Identifier: MIT

// Package array2d - contiguous random-access iterators over the row-major buffer.
//
// Purpose:
//   - A copyable cursor (buffer, position) with the full random-access surface:
//     dereference, step, jump, offset indexing, signed distance, total ordering.
//   - Two flavours: Iterator (read-write) and ConstIterator (read-only). An
//     Iterator converts to a ConstIterator via Const(); the reverse is impossible.
//
// Contract:
//   - position ∈ [0, len(buffer)]; len(buffer) is the one-past-the-end position.
//   - Dereferencing the end position (or any position outside the buffer) panics
//     with Go's index-out-of-range error. That is a caller bug, not an error value.
//   - Comparison and distance are meaningful only between iterators of the same
//     buffer generation; debug builds assert it.
//   - Every reallocating call on the owning Array invalidates its iterators.
//
// Complexity quicksheet:
//   - Every operation is O(1) except Values, which is O(distance).

package array2d

import (
	"cmp"
	"iter"
)

// Position is the read-only view shared by Iterator and ConstIterator so that
// comparison and distance accept either flavour.
type Position[T any] interface {
	buffer() []T
	position() int
}

// Iterator is a read-write random-access cursor into an Array's buffer.
type Iterator[T any] struct {
	buf []T
	pos int
}

// ConstIterator is a read-only random-access cursor into an Array's buffer.
type ConstIterator[T any] struct {
	buf []T
	pos int
}

func (it Iterator[T]) buffer() []T   { return it.buf }
func (it Iterator[T]) position() int { return it.pos }

func (it ConstIterator[T]) buffer() []T   { return it.buf }
func (it ConstIterator[T]) position() int { return it.pos }

// ---------- Array entry points ----------

// Begin returns an iterator to the first element in row-major order.
func (a *Array[T]) Begin() Iterator[T] { return Iterator[T]{buf: a.data, pos: 0} }

// End returns the one-past-the-last iterator.
func (a *Array[T]) End() Iterator[T] { return Iterator[T]{buf: a.data, pos: len(a.data)} }

// CBegin returns a read-only iterator to the first element.
func (a *Array[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{buf: a.data, pos: 0} }

// CEnd returns the read-only one-past-the-last iterator.
func (a *Array[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{buf: a.data, pos: len(a.data)}
}

// RowRange returns the [first, last) iterator pair covering row r. Unchecked.
func (a *Array[T]) RowRange(r int) RowRange[T] {
	assertIndex("row", r, a.rows)
	lo := r * a.cols

	return RowRange[T]{
		first: Iterator[T]{buf: a.data, pos: lo},
		last:  Iterator[T]{buf: a.data, pos: lo + a.cols},
	}
}

// RowRange is the iterator pair delimiting one row.
type RowRange[T any] struct {
	first, last Iterator[T]
}

// Begin returns the iterator to the first element of the row.
func (rr RowRange[T]) Begin() Iterator[T] { return rr.first }

// End returns the iterator one past the last element of the row.
func (rr RowRange[T]) End() Iterator[T] { return rr.last }

// Len returns the number of elements in the row.
func (rr RowRange[T]) Len() int { return rr.last.pos - rr.first.pos }

// Values yields the row's elements in order.
func (rr RowRange[T]) Values() iter.Seq[T] { return Values[T](rr.first, rr.last) }

// ---------- Iterator ----------

// Get dereferences the iterator.
func (it Iterator[T]) Get() T { return it.buf[it.pos] }

// Set writes v at the iterator position.
func (it Iterator[T]) Set(v T) { it.buf[it.pos] = v }

// Ptr returns a pointer to the current element (member access).
func (it Iterator[T]) Ptr() *T { return &it.buf[it.pos] }

// At returns the element n positions away (it[n]).
func (it Iterator[T]) At(n int) T { return it.buf[it.pos+n] }

// SetAt writes v n positions away.
func (it Iterator[T]) SetAt(n int, v T) { it.buf[it.pos+n] = v }

// PtrAt returns a pointer to the element n positions away.
func (it Iterator[T]) PtrAt(n int) *T { return &it.buf[it.pos+n] }

// Index returns the flat row-major position.
func (it Iterator[T]) Index() int { return it.pos }

// Inc advances by one and returns the receiver (pre-increment).
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// PostInc advances by one and returns the previous state (post-increment).
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++

	return old
}

// Dec steps back by one and returns the receiver (pre-decrement).
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// PostDec steps back by one and returns the previous state (post-decrement).
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.pos--

	return old
}

// Advance moves forward by n (negative n moves back) and returns the receiver.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	return it
}

// Retreat moves back by n and returns the receiver.
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	it.pos -= n
	return it
}

// Add returns a copy moved forward by n.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{buf: it.buf, pos: it.pos + n} }

// Sub returns a copy moved back by n.
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{buf: it.buf, pos: it.pos - n} }

// Diff returns the signed distance it - other.
func (it Iterator[T]) Diff(other Position[T]) int { return diff[T](it, other) }

// Equal reports whether both iterators point at the same position.
func (it Iterator[T]) Equal(other Position[T]) bool { return diff[T](it, other) == 0 }

// NotEqual is !Equal.
func (it Iterator[T]) NotEqual(other Position[T]) bool { return diff[T](it, other) != 0 }

// Less reports it < other.
func (it Iterator[T]) Less(other Position[T]) bool { return diff[T](it, other) < 0 }

// LessEqual reports it <= other.
func (it Iterator[T]) LessEqual(other Position[T]) bool { return diff[T](it, other) <= 0 }

// Greater reports it > other.
func (it Iterator[T]) Greater(other Position[T]) bool { return diff[T](it, other) > 0 }

// GreaterEqual reports it >= other.
func (it Iterator[T]) GreaterEqual(other Position[T]) bool { return diff[T](it, other) >= 0 }

// Compare returns -1, 0 or +1 by position.
func (it Iterator[T]) Compare(other Position[T]) int { return cmp.Compare(diff[T](it, other), 0) }

// Const converts to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T](it) }

// ---------- ConstIterator ----------

// Get dereferences the iterator.
func (it ConstIterator[T]) Get() T { return it.buf[it.pos] }

// Ptr returns a pointer to the current element. Callers must not write through it.
func (it ConstIterator[T]) Ptr() *T { return &it.buf[it.pos] }

// At returns the element n positions away.
func (it ConstIterator[T]) At(n int) T { return it.buf[it.pos+n] }

// Index returns the flat row-major position.
func (it ConstIterator[T]) Index() int { return it.pos }

// Inc advances by one and returns the receiver.
func (it *ConstIterator[T]) Inc() *ConstIterator[T] {
	it.pos++
	return it
}

// PostInc advances by one and returns the previous state.
func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *it
	it.pos++

	return old
}

// Dec steps back by one and returns the receiver.
func (it *ConstIterator[T]) Dec() *ConstIterator[T] {
	it.pos--
	return it
}

// PostDec steps back by one and returns the previous state.
func (it *ConstIterator[T]) PostDec() ConstIterator[T] {
	old := *it
	it.pos--

	return old
}

// Advance moves forward by n and returns the receiver.
func (it *ConstIterator[T]) Advance(n int) *ConstIterator[T] {
	it.pos += n
	return it
}

// Retreat moves back by n and returns the receiver.
func (it *ConstIterator[T]) Retreat(n int) *ConstIterator[T] {
	it.pos -= n
	return it
}

// Add returns a copy moved forward by n.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos + n}
}

// Sub returns a copy moved back by n.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos - n}
}

// Diff returns the signed distance it - other.
func (it ConstIterator[T]) Diff(other Position[T]) int { return diff[T](it, other) }

// Equal reports whether both iterators point at the same position.
func (it ConstIterator[T]) Equal(other Position[T]) bool { return diff[T](it, other) == 0 }

// NotEqual is !Equal.
func (it ConstIterator[T]) NotEqual(other Position[T]) bool { return diff[T](it, other) != 0 }

// Less reports it < other.
func (it ConstIterator[T]) Less(other Position[T]) bool { return diff[T](it, other) < 0 }

// LessEqual reports it <= other.
func (it ConstIterator[T]) LessEqual(other Position[T]) bool { return diff[T](it, other) <= 0 }

// Greater reports it > other.
func (it ConstIterator[T]) Greater(other Position[T]) bool { return diff[T](it, other) > 0 }

// GreaterEqual reports it >= other.
func (it ConstIterator[T]) GreaterEqual(other Position[T]) bool { return diff[T](it, other) >= 0 }

// Compare returns -1, 0 or +1 by position.
func (it ConstIterator[T]) Compare(other Position[T]) int {
	return cmp.Compare(diff[T](it, other), 0)
}

// ---------- generic helpers ----------

func diff[T any](a, b Position[T]) int {
	assertSameBuffer(a.buffer(), b.buffer())
	return a.position() - b.position()
}

// AddOffset is the offset-first form of it.Add(n).
func AddOffset[I interface{ Add(int) I }](n int, it I) I { return it.Add(n) }

// Distance returns last - first, the number of steps from first to last.
func Distance[T any](first, last Position[T]) int { return diff(last, first) }

// Values yields the elements in [first, last) in order.
func Values[T any](first, last Position[T]) iter.Seq[T] {
	assertSameBuffer(first.buffer(), last.buffer())
	buf := first.buffer()
	lo, hi := first.position(), last.position()

	return func(yield func(T) bool) {
		for i := lo; i < hi; i++ {
			if !yield(buf[i]) {
				return
			}
		}
	}
}
