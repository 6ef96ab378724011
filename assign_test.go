package dlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	t.Run("Trim", func(t *testing.T) {
		a := Of(1, 2, 3, 4)
		b := Of(9, 8)
		a.Assign(b)
		assertList(t, a, 9, 8)
		assertList(t, b, 9, 8)
	})

	t.Run("Extend", func(t *testing.T) {
		a := Of(1, 2)
		b := Of(9, 8, 7)
		a.Assign(b)
		assertList(t, a, 9, 8, 7)
		assertList(t, b, 9, 8, 7)
	})

	t.Run("SameLength", func(t *testing.T) {
		a := Of(1, 2, 3)
		a.Assign(Of(9, 8, 7))
		assertList(t, a, 9, 8, 7)
	})

	t.Run("FromEmpty", func(t *testing.T) {
		a := Of(1, 2, 3)
		a.Assign(New[int]())
		assertList(t, a)
	})

	t.Run("ToEmpty", func(t *testing.T) {
		a := New[int]()
		a.Assign(Of(1, 2))
		assertList(t, a, 1, 2)
	})

	t.Run("Self", func(t *testing.T) {
		a := Of(1, 2, 3)
		a.Assign(a)
		assertList(t, a, 1, 2, 3)
	})

	t.Run("ReusesNodes", func(t *testing.T) {
		a := Of(1, 2, 3, 4)
		first := a.Begin()
		a.Assign(Of(9, 8))

		// The surviving prefix keeps its nodes, only values change.
		v, err := first.Value()
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})

	t.Run("Isolation", func(t *testing.T) {
		a := New[int]()
		b := Of(1, 2, 3)
		a.Assign(b)

		p, err := b.Front()
		require.NoError(t, err)
		*p = 9
		b.PushBack(4)
		assertList(t, a, 1, 2, 3)
	})
}

func TestMoveAssign(t *testing.T) {
	t.Run("Trim", func(t *testing.T) {
		a := Of(1, 2, 3, 4)
		b := Of(9, 8)
		a.MoveAssign(b)
		assertList(t, a, 9, 8)
		assertList(t, b)
	})

	t.Run("Extend", func(t *testing.T) {
		a := Of(1, 2)
		b := Of(9, 8, 7)
		a.MoveAssign(b)
		assertList(t, a, 9, 8, 7)
		assertList(t, b)
	})

	t.Run("FromEmpty", func(t *testing.T) {
		a := Of(1, 2)
		a.MoveAssign(New[int]())
		assertList(t, a)
	})

	t.Run("Self", func(t *testing.T) {
		a := Of(1, 2)
		a.MoveAssign(a)
		assertList(t, a, 1, 2)
	})
}

func TestAssignValues(t *testing.T) {
	t.Run("Trim", func(t *testing.T) {
		a := Of(1, 2, 3, 4)
		a.AssignValues(9, 8)
		assertList(t, a, 9, 8)
	})

	t.Run("Extend", func(t *testing.T) {
		a := Of(1, 2)
		a.AssignValues(9, 8, 7)
		assertList(t, a, 9, 8, 7)
	})

	t.Run("None", func(t *testing.T) {
		a := Of(1, 2)
		a.AssignValues()
		assertList(t, a)
	})
}
