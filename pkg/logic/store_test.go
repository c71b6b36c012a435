package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicIs runs fn and asserts it panics with a value wrapping want.
func requirePanicIs(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		assert.True(t, errors.Is(err, want), "panic %v does not wrap %v", err, want)
	}()
	fn()
}

func TestDerefUnboundReturnsSelf(t *testing.T) {
	scope := NewScope()
	v := &Var{Name: "X", Scope: scope}
	assert.Same(t, v, Deref(v))
}

func TestDerefUninitializedVarPanics(t *testing.T) {
	v := &Var{Name: "X"}
	requirePanicIs(t, ErrUninitializedVar, func() {
		Deref(v)
	})
}

func TestDerefFollowsChainToCompound(t *testing.T) {
	scope := NewScope()
	x := &Var{Name: "X", Scope: scope}
	y := &Var{Name: "Y", Scope: scope}
	atom := NewAtom("a")

	Bind(y, atom)
	Bind(x, y)

	assert.Same(t, atom, Deref(x))
}

func TestBindOnDeepestUnboundVariable(t *testing.T) {
	scope := NewScope()
	x := &Var{Name: "X", Scope: scope}
	y := &Var{Name: "Y", Scope: scope}
	z := &Var{Name: "Z", Scope: scope}

	// x -> y -> z, all unbound.
	Bind(x, y)
	Bind(y, z)

	entry := Bind(x, NewAtom("a"))
	require.Equal(t, "Z", entry.Name, "bind must land on the deepest unbound variable, not x")

	assert.Equal(t, "a", Deref(x).(*Compound).Functor)
	assert.Equal(t, "a", Deref(y).(*Compound).Functor)
	assert.Equal(t, "a", Deref(z).(*Compound).Functor)

	// Unbinding the single trail entry restores the whole chain to unbound.
	Unbind(entry)
	assert.Same(t, z, Deref(z))
}

func TestBindAlreadyBoundPanics(t *testing.T) {
	scope := NewScope()
	v := &Var{Name: "X", Scope: scope}
	Bind(v, NewAtom("a"))

	requirePanicIs(t, ErrAlreadyBound, func() {
		Bind(v, NewAtom("b"))
	})
}

func TestUnbindAbsentPanics(t *testing.T) {
	scope := NewScope()
	requirePanicIs(t, ErrUnbindRoot, func() {
		Unbind(TrailEntry{Scope: scope, Name: "X"})
	})
}

func TestUnwindTrailRestoresState(t *testing.T) {
	scope := NewScope()
	x := &Var{Name: "X", Scope: scope}
	y := &Var{Name: "Y", Scope: scope}

	var trail []TrailEntry
	trail = append(trail, Bind(x, NewAtom("a")))
	trail = append(trail, Bind(y, NewAtom("b")))

	require.Equal(t, 2, len(scope.bindings))

	UnwindTrail(trail)

	assert.Empty(t, scope.bindings, "unwinding the full trail must empty the scope")
	assert.Same(t, x, Deref(x))
	assert.Same(t, y, Deref(y))
}
