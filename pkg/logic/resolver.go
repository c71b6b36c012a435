package logic

// Frame is one level of the resolver's execution stack: the chosen clause
// at one point in the search tree. Take never mutates an existing Frame, it
// only builds the next one (§4.4); Advance alone flips the bookkeeping
// field below the first time it returns a frame as an answer.
type Frame struct {
	// Prev is the frame this one was reached from; nil for the root.
	Prev *Frame

	// RuleCopy is the fresh clause instance that produced this frame — for
	// the root frame, the synthetic query clause itself (§12.1).
	RuleCopy *Rule

	// ResumeBookmark is the clause-database index whose head matched to
	// produce this frame; on backtracking the next attempt resumes at
	// ResumeBookmark+1. NoBookmark on the root frame, which has no matched
	// clause.
	ResumeBookmark int

	// Trail is the ordered bindings made by the unification that produced
	// this frame.
	Trail []TrailEntry

	// Goals is the pending goal list at the moment this frame was created;
	// Goals[0] is the goal currently being solved.
	Goals []Term

	// returned is set by Advance the first time it hands this frame back
	// to the caller as an answer. It is what lets Advance tell "an
	// empty-Goals frame reached for the first time" (an answer to return)
	// apart from "an empty-Goals frame the caller is resuming" (pop and
	// keep searching) — both look identical otherwise, since the root
	// frame of an empty-bodied query already has Goals == nil before
	// Advance ever runs. Take never sets or reads it.
	returned bool
}

// NewRootFrame builds the root of a query's execution stack. query is the
// synthetic clause (an empty/placeholder head, e.g. the atom "goal") whose
// body is the query's goal conjunction (§3, §6.2); its Scope holds the
// bindings the caller reads back as the answer substitution. The root frame
// has no matched clause, so ResumeBookmark is NoBookmark and Trail is
// empty.
func NewRootFrame(query *Rule) *Frame {
	return &Frame{RuleCopy: query, ResumeBookmark: NoBookmark, Goals: query.Body}
}

// Take performs one forward step from frame: it tries clauses of db
// starting at resumeHint against frame's first pending goal, and returns
// the new frame built from the first one that unifies. It returns nil if
// every candidate from resumeHint onward fails to unify (the caller should
// backtrack). Take panics with ErrEmptyGoalStep if frame has no pending
// goal — the precondition is that the caller checked Goals is non-empty.
func Take(db *Database, frame *Frame, resumeHint int) *Frame {
	if len(frame.Goals) == 0 {
		panic(ErrEmptyGoalStep)
	}
	goal := frame.Goals[0]
	rest := frame.Goals[1:]

	cursor := resumeHint
	for {
		rule, next := db.Next(cursor)
		if rule == nil {
			return nil
		}
		matchedIndex := next - 1

		candidate := rule.Copy()
		trail, ok := Unify(candidate.Head, goal)
		if !ok {
			cursor = next
			continue
		}

		goals := make([]Term, 0, len(candidate.Body)+len(rest))
		goals = append(goals, candidate.Body...)
		goals = append(goals, rest...)

		return &Frame{
			Prev:           frame,
			RuleCopy:       candidate,
			ResumeBookmark: matchedIndex,
			Trail:          trail,
			Goals:          goals,
		}
	}
}

// Pop rewinds frame — unbinding its trail in reverse order — and returns
// the frame it was reached from, restoring the term store to the state it
// had before frame was entered (§4.4, invariant 5 of §3).
func Pop(frame *Frame) *Frame {
	UnwindTrail(frame.Trail)
	return frame.Prev
}

// Advance drives SLD resolution forward from state until it reaches the
// next frame with an empty goal list (an answer) or exhausts the search
// (returns nil). Re-entering Advance with a previously returned answer
// frame pops that frame and continues the search for the next answer — the
// same function serves both "find the first answer" and "find the next
// one" (§4.4).
func Advance(db *Database, state *Frame) *Frame {
	resume := NoBookmark
	for {
		if state == nil {
			return nil
		}
		if len(state.Goals) == 0 {
			if !state.returned {
				state.returned = true
				return state
			}
			resume = state.ResumeBookmark + 1
			state = Pop(state)
			continue
		}

		next := Take(db, state, resume)
		if next == nil {
			resume = state.ResumeBookmark + 1
			state = Pop(state)
			continue
		}

		state = next
		resume = NoBookmark
		if len(state.Goals) == 0 {
			state.returned = true
			return state
		}
	}
}
