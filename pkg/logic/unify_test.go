package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trailShapes extracts the bound variable names of a trail, in order, so
// trails from two independent scopes can be compared structurally without
// caring about pointer identity — used for the determinism property.
func trailShapes(trail []TrailEntry) []string {
	out := make([]string, len(trail))
	for i, e := range trail {
		out[i] = e.Name
	}
	return out
}

func TestUnifyTwoAtomsSameFunctor(t *testing.T) {
	trail, ok := Unify(NewAtom("a"), NewAtom("a"))
	assert.True(t, ok)
	assert.Empty(t, trail)
}

func TestUnifyAtomVsDifferentFunctorFails(t *testing.T) {
	_, ok := Unify(NewAtom("a"), NewAtom("b"))
	assert.False(t, ok)
}

func TestUnifyAtomVsSameNameDifferentArityFails(t *testing.T) {
	_, ok := Unify(NewAtom("f"), NewCompound("f", NewAtom("a")))
	assert.False(t, ok, "an atom never unifies with a compound of the same name but nonzero arity")
}

func TestUnifyBindsVariable(t *testing.T) {
	scope := NewScope()
	x := &Var{Name: "X", Scope: scope}

	trail, ok := Unify(x, NewAtom("a"))
	require.True(t, ok)
	require.Len(t, trail, 1)
	assert.Equal(t, "a", Deref(x).(*Compound).Functor)
}

func TestUnifyTwoUnboundVariablesLinkThem(t *testing.T) {
	scope := NewScope()
	x := &Var{Name: "X", Scope: scope}
	y := &Var{Name: "Y", Scope: scope}

	_, ok := Unify(x, y)
	require.True(t, ok)

	Bind(y, NewAtom("a"))
	assert.Equal(t, "a", Deref(x).(*Compound).Functor, "binding one linked variable must be visible through the other")
}

func TestUnifyFailureLeavesStoreUntouched(t *testing.T) {
	scope := NewScope()
	x := &Var{Name: "X", Scope: scope}

	_, ok := Unify(NewCompound("f", x, NewAtom("b")), NewCompound("f", NewAtom("a"), NewAtom("c")))
	require.False(t, ok, "second argument mismatch (b vs c) must fail the whole call")

	assert.Same(t, x, Deref(x), "X must remain unbound: its binding from the first argument pair was rolled back")
	assert.Empty(t, scope.bindings)
}

func TestUnifyDeterminism(t *testing.T) {
	build := func() (Term, Term) {
		scope := NewScope()
		x := &Var{Name: "X", Scope: scope}
		return NewCompound("f", x, NewAtom("b")), NewCompound("f", NewAtom("a"), NewAtom("b"))
	}

	a1, b1 := build()
	trail1, ok1 := Unify(a1, b1)
	a2, b2 := build()
	trail2, ok2 := Unify(a2, b2)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, trailShapes(trail1), trailShapes(trail2))
}

func TestUnifySymmetricModuloBindDirection(t *testing.T) {
	mk := func() (Term, Term, *Var, *Var) {
		scope := NewScope()
		a := &Var{Name: "A", Scope: scope}
		b := &Var{Name: "B", Scope: scope}
		return NewCompound("f", a, NewAtom("b")), NewCompound("f", NewAtom("a"), b), a, b
	}

	t1, t2, a, b := mk()
	_, ok := Unify(t1, t2)
	require.True(t, ok)
	assert.Equal(t, "a", Deref(a).(*Compound).Functor)
	assert.Equal(t, "b", Deref(b).(*Compound).Functor)

	t1r, t2r, ar, br := mk()
	_, ok = Unify(t2r, t1r)
	require.True(t, ok)
	assert.Equal(t, "a", Deref(ar).(*Compound).Functor)
	assert.Equal(t, "b", Deref(br).(*Compound).Functor)
}

func TestUnifyDefinedEqualityRelation(t *testing.T) {
	// =(X,X). then =(f(A,b), f(a,B)) binds A=a, B=b — scenario 2 of the
	// end-to-end tests, exercised here directly at the unifier level.
	scope := NewScope()
	a := &Var{Name: "A", Scope: scope}
	b := &Var{Name: "B", Scope: scope}

	lhs := NewCompound("f", a, NewAtom("b"))
	rhs := NewCompound("f", NewAtom("a"), b)

	_, ok := Unify(lhs, rhs)
	require.True(t, ok)

	got := map[string]Term{"A": Deref(a), "B": Deref(b)}
	want := map[string]Term{"A": NewAtom("a"), "B": NewAtom("b")}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Compound{})); diff != "" {
		t.Errorf("unexpected bindings (-want +got):\n%s", diff)
	}
}
