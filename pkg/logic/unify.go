package logic

// Unify attempts syntactic unification of a and b, destructively binding
// variables through Bind and recording every binding made. On success it
// returns the ordered trail of entries; on failure it returns a nil trail
// with the term store left exactly as it found it — every binding made
// during the attempt is unwound before Unify returns (§4.2).
//
// There is no occurs check: unifying X with f(X) succeeds and builds a
// cyclic structure. Avoiding such queries is the caller's responsibility
// (§4.2 point 4, §9).
func Unify(a, b Term) ([]TrailEntry, bool) {
	trail, ok := unify(a, b, nil)
	if ok {
		return trail, true
	}
	UnwindTrail(trail)
	return nil, false
}

func unify(a, b Term, trail []TrailEntry) ([]TrailEntry, bool) {
	da, db := Deref(a), Deref(b)

	av, aIsVar := da.(*Var)
	bv, bIsVar := db.(*Var)

	switch {
	case aIsVar && bIsVar:
		if av == bv {
			// Same variable on both sides after deref — already unified,
			// nothing to bind or record.
			return trail, true
		}
		// Both unbound: bind the first argument's deref to the second's,
		// per the tie-break order in §4.2. The choice is only observable in
		// printing, never in success/failure.
		return append(trail, Bind(av, bv)), true

	case aIsVar:
		return append(trail, Bind(av, db)), true

	case bIsVar:
		return append(trail, Bind(bv, da)), true

	default:
		ca, aOK := da.(*Compound)
		cb, bOK := db.(*Compound)
		if !aOK || !bOK {
			return trail, false
		}
		if ca.Functor != cb.Functor || len(ca.Args) != len(cb.Args) {
			return trail, false
		}
		for i := range ca.Args {
			var ok bool
			trail, ok = unify(ca.Args[i], cb.Args[i], trail)
			if !ok {
				return trail, false
			}
		}
		return trail, true
	}
}
