// Package logic implements SLD resolution over Horn clauses: term
// representation, destructive unification with an undo trail, a clause
// database, and the depth-first, chronologically backtracking resolver that
// drives them. The package is the core described for a minimal
// logic-programming interpreter — no arithmetic, no cut, no
// negation-as-failure, no occurs check.
package logic

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Term is a node in a rule or goal tree: either a Compound (which also
// serves as an atom when it has no arguments) or a Var. Term is a closed
// interface — Compound and Var are its only implementations — so a type
// switch on Term is always exhaustive.
type Term interface {
	isTerm()
}

// Compound is a functor symbol applied to an ordered list of subterms. A
// Compound with no Args is an atom. Two compounds match at the top level
// iff they share both functor and arity; subterm order is significant.
type Compound struct {
	Functor string
	Args    []Term
}

func (*Compound) isTerm() {}

// NewAtom builds a zero-arity Compound.
func NewAtom(functor string) *Compound {
	return &Compound{Functor: functor}
}

// NewCompound builds a Compound with the given functor and subterms.
func NewCompound(functor string, args ...Term) *Compound {
	return &Compound{Functor: functor, Args: args}
}

// Arity is the number of subterms.
func (c *Compound) Arity() int { return len(c.Args) }

// String renders the term with full parentheses, matching the surface
// syntax a parser would accept back (the round-trip law from the testable
// properties: parse, print, re-parse yields a structurally equal term).
func (c *Compound) String() string {
	if len(c.Args) == 0 {
		return c.Functor
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Functor + "(" + strings.Join(parts, ", ") + ")"
}

// Var is a logic variable: a surface name plus the binding Scope it belongs
// to. Scopes are the mutation locus — all bound-or-not state lives on the
// Scope, never on the Var node itself, so Var is a plain value type safe to
// share across frames without aliasing bugs.
//
// A Var whose Scope is nil is "still being assembled": it has not yet been
// given a Scope, and Deref/Bind on it panics with ErrUninitializedVar.
type Var struct {
	Name  string
	Scope *Scope
}

func (*Var) isTerm() {}

// String renders the term the variable is bound to, or its surface name if
// it is unbound. Two distinct unbound Var nodes with the same Name (in
// different scopes) print identically — String is for display, not identity.
func (v *Var) String() string {
	if bound, ok := v.boundTerm(); ok {
		return fmt.Sprint(bound)
	}
	return v.Name
}

func (v *Var) boundTerm() (Term, bool) {
	if v.Scope == nil {
		return nil, false
	}
	return v.Scope.lookup(v.Name)
}

// Scope is the mutable per-rule-instance mapping from variable names to
// bound terms, owned exclusively by the rule instance (template rule or
// fresh copy) it belongs to. A variable is unbound iff its name is absent
// from the map.
//
// ID is a cosmetic github.com/google/uuid tag used only for logging and
// debug output (§11 of the design) — binding/unbinding identity is always
// the Scope's pointer, never its ID.
type Scope struct {
	ID       uuid.UUID
	bindings map[string]Term
}

// NewScope allocates an empty scope.
func NewScope() *Scope {
	return &Scope{ID: uuid.New(), bindings: make(map[string]Term)}
}

func (s *Scope) lookup(name string) (Term, bool) {
	t, ok := s.bindings[name]
	return t, ok
}

// String is a short debug tag, e.g. "scope-a1b2c3d4".
func (s *Scope) String() string {
	return "scope-" + s.ID.String()[:8]
}
