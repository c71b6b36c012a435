package logic

// CollectVars walks terms and returns the distinct variable nodes they
// reference, in first-occurrence order. It is used to recover "which
// variables did the user's query mention" so a caller can read back answer
// bindings by walking exactly those nodes with Deref — the query's Scope
// itself has no notion of "the variables the user typed", only of which
// names are bound.
func CollectVars(terms []Term) []*Var {
	seen := make(map[string]bool)
	var out []*Var
	var walk func(Term)
	walk = func(t Term) {
		switch x := t.(type) {
		case *Var:
			if !seen[x.Name] {
				seen[x.Name] = true
				out = append(out, x)
			}
		case *Compound:
			for _, a := range x.Args {
				walk(a)
			}
		}
	}
	for _, t := range terms {
		walk(t)
	}
	return out
}
