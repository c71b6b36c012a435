package logic

// Rule is a head term plus an ordered list of body terms. A rule with an
// empty Body is a fact. Rule owns the Scope for the variables textually
// appearing in it — Scope is the mutation locus, never the Var nodes
// themselves (§3).
//
// Template rules, as loaded into a Database, live for the session and are
// never mutated during execution; Copy produces the fresh instance the
// resolver actually unifies against.
type Rule struct {
	Head  Term
	Body  []Term
	Scope *Scope
}

// NewRule constructs a rule whose head and body already share a single
// Scope (as produced by a parser building one clause at a time).
func NewRule(head Term, body []Term, scope *Scope) *Rule {
	return &Rule{Head: head, Body: body, Scope: scope}
}

// Copy produces a fresh instance of the rule: a new Scope, and a structural
// copy of the head and body trees in which every variable node is replaced
// by a freshly allocated one bound to the new scope. Two occurrences of the
// same textual name within the rule map to the same new variable node, so
// repeated X's in foo(X, X) remain one logical variable in the copy;
// distinct names yield distinct nodes (§4.1).
func (r *Rule) Copy() *Rule {
	scope := NewScope()
	fresh := make(map[string]*Var, len(r.Scope.bindings))

	body := make([]Term, len(r.Body))
	for i, g := range r.Body {
		body[i] = copyTerm(g, scope, fresh)
	}
	return &Rule{
		Head:  copyTerm(r.Head, scope, fresh),
		Body:  body,
		Scope: scope,
	}
}

func copyTerm(t Term, scope *Scope, fresh map[string]*Var) Term {
	switch x := t.(type) {
	case *Compound:
		if len(x.Args) == 0 {
			return x
		}
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = copyTerm(a, scope, fresh)
		}
		return &Compound{Functor: x.Functor, Args: args}
	case *Var:
		if nv, ok := fresh[x.Name]; ok {
			return nv
		}
		nv := &Var{Name: x.Name, Scope: scope}
		fresh[x.Name] = nv
		return nv
	default:
		panic("logic: unknown Term implementation")
	}
}

// Database holds rules in insertion order and exposes bookmarked iteration
// so the resolver can resume past a previously tried clause.
type Database struct {
	rules []*Rule
}

// NoBookmark denotes "start at the beginning" for Next, and "no clause
// matched yet" for a frame's ResumeBookmark.
const NoBookmark = -1

// NewDatabase returns an empty clause database.
func NewDatabase() *Database {
	return &Database{}
}

// Add appends a rule to the database.
func (d *Database) Add(r *Rule) {
	d.rules = append(d.rules, r)
}

// Len reports how many rules are loaded.
func (d *Database) Len() int {
	return len(d.rules)
}

// Next returns the rule at bookmark (treating a negative bookmark, i.e.
// NoBookmark, as 0) and a bookmark pointing at the following index. Once
// the index runs past the end it returns (nil, bookmark) forever (§4.3).
func (d *Database) Next(bookmark int) (*Rule, int) {
	idx := bookmark
	if idx < 0 {
		idx = 0
	}
	if idx >= len(d.rules) {
		return nil, idx
	}
	return d.rules[idx], idx + 1
}
