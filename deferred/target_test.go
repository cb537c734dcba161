package deferred_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/curry_ive_go/deferred"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface{ Area() float64 }

type square float64

func (s square) Area() float64 { return float64(s * s) }

func TestNewTarget_Rejections(t *testing.T) {
	_, err := deferred.NewTarget(42)
	assert.ErrorIs(t, err, deferred.ErrNotFunc)

	_, err = deferred.NewTarget(nil)
	assert.ErrorIs(t, err, deferred.ErrNotFunc)

	var nilFn func(int) int
	_, err = deferred.NewTarget(nilFn)
	assert.ErrorIs(t, err, deferred.ErrNotFunc)

	_, err = deferred.NewTarget(fmt.Sprintf)
	assert.ErrorIs(t, err, deferred.ErrVariadic)

	_, err = deferred.Curry(fmt.Println)
	assert.ErrorIs(t, err, deferred.ErrVariadic)
}

func TestNewTarget_Identity(t *testing.T) {
	a, err := deferred.NewTarget(add3)
	require.NoError(t, err)
	b, err := deferred.NewTarget(add3)
	require.NoError(t, err)
	c, err := deferred.NewTarget(add5)
	require.NoError(t, err)

	assert.Equal(t, 3, a.Arity())
	assert.Equal(t, a.Identity(), b.Identity())
	assert.Equal(t, a.Identity().Key(), b.Identity().Key())
	assert.NotEqual(t, a.Identity().Key(), c.Identity().Key())
	assert.Equal(t, deferred.NameOf(add3), a.Identity().Name)
}

func TestTarget_ResultShapes(t *testing.T) {
	called := false
	noResult := func(a int) { called = true }
	v, err := deferred.Partial(noResult, 1)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.True(t, called)

	pair := func(a, b int) (int, int) { return b, a }
	v, err = deferred.Partial(pair, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []any{2, 1}, v)

	divide := func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	}
	v, err = deferred.Partial(divide, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	_, err = deferred.Partial(divide, 10, 0)
	assert.EqualError(t, err, "division by zero")

	onlyErr := func(a int) error { return nil }
	v, err = deferred.Partial(onlyErr, 1)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTarget_Arguments(t *testing.T) {
	area := func(s shape, scale float64) float64 {
		if s == nil {
			return 0
		}
		return s.Area() * scale
	}

	v, err := deferred.Partial(area, square(3), 2.0)
	require.NoError(t, err)
	assert.Equal(t, 18.0, v)

	v, err = deferred.Partial(area, nil, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = deferred.Partial(area, square(3), "two")
	var typeErr *deferred.ArgumentTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, 2, typeErr.Position)
	assert.ErrorIs(t, err, deferred.ErrArgumentType)
	assert.Contains(t, err.Error(), "2nd argument")

	_, err = deferred.Partial(area, square(3), nil)
	assert.ErrorIs(t, err, deferred.ErrArgumentType)
}

func TestDefine(t *testing.T) {
	join, err := deferred.Define("join", 3, func(args []any) (any, error) {
		return fmt.Sprint(args...), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "join", join.Identity().Name)
	assert.Equal(t, 3, join.Arity())

	v, err := deferred.Feed(asCall(deferred.Curry(join)), "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = deferred.Define("bad", -1, func(args []any) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, deferred.ErrArityMismatch)

	_, err = deferred.Define("nil", 1, nil)
	assert.ErrorIs(t, err, deferred.ErrNotFunc)
}

func TestTarget_Tableize(t *testing.T) {
	calls := 0
	slowSquare := func(n int) int {
		calls++
		return n * n
	}
	target, err := deferred.NewTarget(slowSquare)
	require.NoError(t, err)
	memoized := target.Tableize(8)

	for range 3 {
		v, err := asCall(deferred.Curry(memoized)).Apply(7)
		require.NoError(t, err)
		assert.Equal(t, 49, v)
	}
	assert.Equal(t, 1, calls)

	_, err = asCall(deferred.Curry(target)).Apply(7)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "the plain target is not memoized")
}

func TestTarget_TableizeRemembersNilResults(t *testing.T) {
	calls := 0
	validate := func(n int) error {
		calls++
		return nil
	}
	target, err := deferred.NewTarget(validate)
	require.NoError(t, err)
	memoized := target.Tableize(8)

	for range 2 {
		v, err := deferred.Partial(memoized, 7)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
	assert.Equal(t, 1, calls)

	calls = 0
	touch := func(n int) { calls++ }
	target, err = deferred.NewTarget(touch)
	require.NoError(t, err)
	memoized = target.Tableize(8)

	for range 2 {
		v, err := deferred.Partial(memoized, 7)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
	assert.Equal(t, 1, calls)
}

func TestTarget_Func(t *testing.T) {
	target, err := deferred.NewTarget(add3)
	require.NoError(t, err)

	fn, ok := target.Func().(func(int, int, int) int)
	require.True(t, ok)
	assert.Equal(t, 6, fn(1, 2, 3))

	join := func(args []any) (any, error) { return fmt.Sprint(args...), nil }
	defined, err := deferred.Define("join", 2, join)
	require.NoError(t, err)
	_, ok = defined.Func().(func([]any) (any, error))
	assert.True(t, ok)
}
