// SPDX-License-Identifier: MIT

package array2d_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/dense2d/array2d"
	"github.com/stretchr/testify/require"
)

// TestDistanceEqualsSize: Distance(Begin, End) == Size for several shapes.
func TestDistanceEqualsSize(t *testing.T) {
	for _, s := range [][2]int{{0, 0}, {0, 3}, {3, 0}, {1, 1}, {4, 7}} {
		a := mustNew[int](t, s[0], s[1])
		require.Equal(t, a.Size(), array2d.Distance[int](a.Begin(), a.End()))
		require.Equal(t, a.Size(), array2d.Distance[int](a.CBegin(), a.CEnd()))
		require.Equal(t, a.Size(), a.End().Diff(a.Begin()))
	}
}

// TestIteratorWalk steps forward with Inc and reads/writes through the cursor.
func TestIteratorWalk(t *testing.T) {
	a := sequential(t, 2, 3)
	var got []int
	for it := a.Begin(); it.NotEqual(a.End()); it.Inc() {
		got = append(got, it.Get())
		it.Set(it.Get() * 10)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, a.AsSpan())
}

// TestIteratorArithmetic covers jumps, offsets and post/pre forms.
func TestIteratorArithmetic(t *testing.T) {
	a := sequential(t, 3, 3)
	it := a.Begin()

	old := it.PostInc()
	require.Equal(t, 0, old.Index())
	require.Equal(t, 1, it.Index())

	it.Advance(3)
	require.Equal(t, 5, it.Get())
	it.Retreat(2)
	require.Equal(t, 3, it.Get())

	old = it.PostDec()
	require.Equal(t, 3, old.Get())
	require.Equal(t, 2, it.Get())
	it.Dec()
	require.Equal(t, 1, it.Get())

	j := it.Add(8)
	require.Equal(t, 9, j.Get())
	require.Equal(t, 7, j.Sub(2).Get())
	require.Equal(t, 8, j.Diff(it))
	require.Equal(t, -8, it.Diff(j))

	k := array2d.AddOffset(4, it)
	require.True(t, k.Equal(it.Add(4)))

	require.Equal(t, 4, it.At(3))
	it.SetAt(3, 40)
	require.Equal(t, 40, a.Get(1, 0))
	*it.PtrAt(1) = 20
	require.Equal(t, 20, a.Get(0, 1))
	*it.Ptr() = 100
	require.Equal(t, 100, a.Get(0, 0))
}

// TestIteratorOrdering checks the comparison family across flavours.
func TestIteratorOrdering(t *testing.T) {
	a := sequential(t, 2, 2)
	b, e := a.Begin(), a.End()
	cb := a.CBegin()

	require.True(t, b.Less(e))
	require.True(t, b.LessEqual(b))
	require.True(t, e.Greater(b))
	require.True(t, e.GreaterEqual(e))
	require.False(t, b.Greater(e))
	require.Equal(t, -1, b.Compare(e))
	require.Equal(t, 0, b.Compare(cb))
	require.Equal(t, 1, e.Compare(cb))

	require.True(t, cb.Equal(b))         // read-only vs read-write
	require.True(t, b.Const().Equal(cb)) // one-way conversion
	require.True(t, cb.Less(e))
	require.Equal(t, 4, a.CEnd().Diff(b))
}

// TestConstIterator walks the read-only flavour.
func TestConstIterator(t *testing.T) {
	a := sequential(t, 1, 4)
	var got []int
	for it := a.CBegin(); it.Less(a.CEnd()); it.Inc() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)

	it := a.CEnd()
	it.Dec()
	require.Equal(t, 4, it.Get())
	require.Equal(t, 2, it.Sub(2).Get())
	require.Equal(t, 3, it.At(-1))
	require.Equal(t, 3, it.Index())
	old := it.PostDec()
	require.Equal(t, 4, old.Get())
	it.Advance(1).Retreat(3)
	require.Equal(t, 1, *it.Ptr())
	require.Equal(t, 2, it.PostInc().Add(1).Get())
}

// TestReverseIterators walk the buffer back to front.
func TestReverseIterators(t *testing.T) {
	a := sequential(t, 2, 2)

	var got []int
	for it := a.RBegin(); !it.Equal(a.REnd()); it.Inc() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)

	got = got[:0]
	for it := a.CRBegin(); !it.Equal(a.CREnd()); it.Inc() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)

	rb := a.RBegin()
	require.Equal(t, 4, a.REnd().Diff(rb))
	require.True(t, rb.Less(a.REnd()))
	require.Equal(t, 2, rb.At(2))
	require.Equal(t, 3, rb.Add(1).Get())
	require.Equal(t, 4, rb.Add(2).Sub(2).Get())
	require.True(t, rb.Base().Equal(a.End()))
	require.Equal(t, -1, rb.Compare(a.REnd()))

	rb.Set(40)
	require.Equal(t, 40, a.Get(1, 1))
	*rb.Inc().Ptr() = 30
	require.Equal(t, 30, a.Get(1, 0))
	rb.Dec()
	require.Equal(t, 40, rb.Const().Get())
}

// TestReverseIteratorOrdering covers the full comparison and stepping set,
// including comparisons between read-write and read-only reverse iterators.
func TestReverseIteratorOrdering(t *testing.T) {
	a := sequential(t, 2, 3)
	rb, re := a.RBegin(), a.REnd()
	crb, cre := a.CRBegin(), a.CREnd()

	require.True(t, rb.Equal(crb))
	require.True(t, crb.Equal(rb))
	require.True(t, rb.NotEqual(cre))
	require.True(t, rb.LessEqual(crb))
	require.True(t, rb.Less(cre))
	require.True(t, cre.Greater(rb))
	require.True(t, cre.GreaterEqual(re))
	require.Equal(t, 6, cre.Diff(rb))
	require.Equal(t, -6, rb.Diff(cre))
	require.Equal(t, 1, re.Compare(crb))
	require.Equal(t, 0, crb.Compare(rb))

	it := a.RBegin()
	old := it.PostInc()
	require.Equal(t, 6, old.Get())
	require.Equal(t, 5, it.Get())
	old = it.PostDec()
	require.Equal(t, 5, old.Get())
	require.Equal(t, 6, it.Get())
	it.Advance(4).Retreat(1)
	require.Equal(t, 3, it.Get())
	it.SetAt(1, 20)
	require.Equal(t, 20, a.Get(0, 1))

	cit := a.CRBegin()
	cold := cit.PostInc()
	require.Equal(t, 6, cold.Get())
	require.Equal(t, 5, *cit.Ptr())
	cold = cit.PostDec()
	require.Equal(t, 5, cold.Get())
	cit.Advance(5)
	require.True(t, cit.Equal(a.RBegin().Add(5)))
	cit.Retreat(5)
	require.True(t, cit.Equal(rb))
}

// TestRowRange delimits a single row.
func TestRowRange(t *testing.T) {
	a := sequential(t, 3, 3)
	rr := a.RowRange(1)
	require.Equal(t, 3, rr.Len())
	require.Equal(t, 3, rr.Begin().Index())
	require.Equal(t, 6, rr.End().Index())
	require.Equal(t, []int{4, 5, 6}, slices.Collect(rr.Values()))
	require.Equal(t, 3, array2d.Distance[int](a.Begin(), rr.Begin()))
}

// TestValues yields a half-open range and interoperates with slices.Collect.
func TestValues(t *testing.T) {
	a := sequential(t, 2, 3)
	first := a.Begin().Add(1)
	last := a.End().Sub(1)
	require.Equal(t, []int{2, 3, 4, 5}, slices.Collect(array2d.Values[int](first, last)))
	require.Empty(t, slices.Collect(array2d.Values[int](last, last)))
}

// TestEndDereferencePanics: reading the one-past-the-end position panics.
func TestEndDereferencePanics(t *testing.T) {
	a := sequential(t, 1, 2)
	require.Panics(t, func() { _ = a.End().Get() })
	require.Panics(t, func() { _ = a.REnd().Get() })
}
