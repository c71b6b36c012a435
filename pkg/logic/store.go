package logic

import "github.com/pkg/errors"

// TrailEntry names a single binding that was inserted into a Scope: the
// pair (Scope, Name) identifying the mapping to remove on Unbind. The trail
// is an ordered sequence; rewinding removes entries in strict LIFO order
// (invariant 4/5, §3).
type TrailEntry struct {
	Scope *Scope
	Name  string
}

// Deref follows the binding chain from t. If t is not a variable, it is
// returned unchanged. If t is a variable whose scope has no entry for its
// name, t itself is returned (it is unbound). Otherwise the bound term is
// looked up and, if itself a variable, the chain is followed further.
//
// Deref panics with ErrUninitializedVar if it encounters a variable with a
// nil Scope — such a variable is still being assembled and may never be
// dereferenced (invariant 1, §3).
func Deref(t Term) Term {
	v, ok := t.(*Var)
	if !ok {
		return t
	}
	if v.Scope == nil {
		panic(errors.Wrapf(ErrUninitializedVar, "variable %q", v.Name))
	}
	bound, ok := v.Scope.lookup(v.Name)
	if !ok {
		return v
	}
	return Deref(bound)
}

// Bind binds v to t, recording a TrailEntry for later Unbind. Per the
// deepest-unbound-variable invariant (invariant 3, §3), Bind first
// dereferences v to the deepest unbound variable in its chain and binds
// that node, never an intermediate link — this is what keeps chains acyclic
// and makes undoing the topmost trail entry restore the exact prior state.
//
// Bind panics with ErrAlreadyBound if v's chain terminates in a compound
// term (the chain has nothing unbound to bind), and with
// ErrUninitializedVar if it terminates in a variable with a nil scope.
func Bind(v *Var, t Term) TrailEntry {
	root := Deref(v)
	target, ok := root.(*Var)
	if !ok {
		panic(errors.Wrapf(ErrAlreadyBound, "variable %q already bound to %v", v.Name, root))
	}
	if target.Scope == nil {
		panic(errors.Wrapf(ErrUninitializedVar, "variable %q", target.Name))
	}
	target.Scope.bindings[target.Name] = t
	return TrailEntry{Scope: target.Scope, Name: target.Name}
}

// Unbind removes the mapping named by e. It panics with ErrUnbindRoot if
// the mapping is absent, which would mean the trail and the store have
// drifted out of sync (invariant 4, §3).
func Unbind(e TrailEntry) {
	if _, ok := e.Scope.bindings[e.Name]; !ok {
		panic(errors.Wrapf(ErrUnbindRoot, "no binding for %q in %s", e.Name, e.Scope))
	}
	delete(e.Scope.bindings, e.Name)
}

// UnwindTrail removes every entry of trail in reverse (LIFO) order,
// restoring the term store to the state it had before the entries were
// added (invariant 5, §3). It is the shared rewind primitive used by both
// unify's failure path and the resolver's Pop.
func UnwindTrail(trail []TrailEntry) {
	for i := len(trail) - 1; i >= 0; i-- {
		Unbind(trail[i])
	}
}
