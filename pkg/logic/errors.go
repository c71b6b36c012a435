package logic

import "github.com/pkg/errors"

// Engine-internal errors signal that the resolver or a caller violated one
// of the term-store invariants. A correctly driven resolver never triggers
// these; they are programming errors, not ordinary unification failure, and
// the functions that can raise them panic with a wrapped instance rather
// than returning an error value. Callers that sit at a trust boundary (the
// REPL) recover the panic, log it, and abort the process.
var (
	// ErrUninitializedVar is raised by Deref/Bind when a variable's Scope is
	// nil — the variable is still being assembled and may not yet be
	// dereferenced or bound.
	ErrUninitializedVar = errors.New("logic: variable has no scope")

	// ErrAlreadyBound is raised by Bind when the chain from the target
	// variable terminates in a compound term rather than an unbound
	// variable.
	ErrAlreadyBound = errors.New("logic: variable chain already bound to a compound")

	// ErrUnbindRoot is raised by Unbind when the trail entry's (scope, name)
	// pair has no corresponding binding to remove.
	ErrUnbindRoot = errors.New("logic: no binding to unbind")

	// ErrEmptyGoalStep is raised by Take when called on a frame whose
	// pending goal list is empty.
	ErrEmptyGoalStep = errors.New("logic: take called with no pending goal")
)
