// Package parser translates program and query text into the clause trees
// pkg/logic operates on. It is the "external collaborator" described in
// §6.1/§6.2: specified by the data it produces (rules and a query clause),
// not by any internal algorithm the resolver depends on.
package parser

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/gitrdm/goprolog/pkg/logic"
)

// Parser is a single-pass recursive-descent parser over one token stream.
type Parser struct {
	lex *lexer
	cur token
}

// NewParser tokenizes the first token of src and returns a ready parser.
func NewParser(src string) (*Parser, error) {
	p := &Parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) expect(k tokenKind, what string) (token, error) {
	if p.cur.kind != k {
		return token{}, &ParseError{
			Pos: Position{p.cur.line, p.cur.col},
			Msg: fmt.Sprintf("expected %s, got %q", what, displayToken(p.cur)),
		}
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func displayToken(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return t.text
}

// binder maps a clause's surface variable names to the (single, shared)
// Var node each of them denotes within that one clause, per §4.1: repeated
// occurrences of the same name are the same logical variable; "_" is the
// exception, fresh at every occurrence (§12.3).
type binder struct {
	scope       *logic.Scope
	named       map[string]*logic.Var
	anonCounter *int
}

func newBinder(anonCounter *int) *binder {
	return &binder{scope: logic.NewScope(), named: map[string]*logic.Var{}, anonCounter: anonCounter}
}

func (b *binder) get(name string) *logic.Var {
	if name == "_" {
		*b.anonCounter++
		return &logic.Var{Name: fmt.Sprintf("_G%d", *b.anonCounter), Scope: b.scope}
	}
	if v, ok := b.named[name]; ok {
		return v
	}
	v := &logic.Var{Name: name, Scope: b.scope}
	b.named[name] = v
	return v
}

// ParseProgram parses a whole program: a sequence of rules terminated by
// '.'. Every malformed clause is recorded and parsing resumes at the next
// '.', so a single pass reports every syntax error in the file rather than
// only the first (§10.2 of SPEC_FULL).
func ParseProgram(src string) ([]*logic.Rule, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}

	var rules []*logic.Rule
	var errs *multierror.Error
	anonCounter := 0

	for p.cur.kind != tokEOF {
		rule, err := p.parseRule(&anonCounter)
		if err != nil {
			errs = multierror.Append(errs, err)
			if skipErr := p.recoverToNextClause(); skipErr != nil {
				errs = multierror.Append(errs, skipErr)
				break
			}
			continue
		}
		rules = append(rules, rule)
	}
	return rules, errs.ErrorOrNil()
}

// recoverToNextClause advances past tokens until just after the next '.',
// so one malformed clause doesn't derail the rest of the file.
func (p *Parser) recoverToNextClause() error {
	for p.cur.kind != tokEOF && p.cur.kind != tokDot {
		if err := p.advance(); err != nil {
			return err
		}
	}
	if p.cur.kind == tokDot {
		return p.advance()
	}
	return nil
}

// parseRule parses HEAD. or HEAD :- BODY.
func (p *Parser) parseRule(anonCounter *int) (*logic.Rule, error) {
	b := newBinder(anonCounter)

	head, err := p.parseTerm(b)
	if err != nil {
		return nil, err
	}

	headCompound, ok := head.(*logic.Compound)
	if !ok {
		return nil, &ParseError{Pos: Position{p.cur.line, p.cur.col}, Msg: "a clause head must be a compound term, not a variable"}
	}

	var body []logic.Term
	if p.cur.kind == tokImplies {
		if err := p.advance(); err != nil {
			return nil, err
		}
		body, err = p.parseTermList(b)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(tokDot, "'.'"); err != nil {
		return nil, err
	}

	return logic.NewRule(headCompound, body, b.scope), nil
}

// parseTermList parses a comma-separated list of one or more terms.
func (p *Parser) parseTermList(b *binder) ([]logic.Term, error) {
	var terms []logic.Term
	t, err := p.parseTerm(b)
	if err != nil {
		return nil, err
	}
	terms = append(terms, t)

	for p.cur.kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseTerm(b)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// parseTerm parses a variable or a compound (optionally with arguments).
func (p *Parser) parseTerm(b *binder) (logic.Term, error) {
	switch p.cur.kind {
	case tokVar:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return b.get(name), nil

	case tokAtom:
		functor := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.kind != tokLParen {
			return logic.NewAtom(functor), nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseTermList(b)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return logic.NewCompound(functor, args...), nil

	default:
		return nil, &ParseError{
			Pos: Position{p.cur.line, p.cur.col},
			Msg: fmt.Sprintf("expected a term, got %q", displayToken(p.cur)),
		}
	}
}

// ParseQuery parses query text as the body of a synthetic clause
// `goal :- <query text>.` (§6.2). The returned rule's Scope holds the
// bindings the caller reads back as the answer substitution; its Head is
// the nullary atom "goal" and is never unified against (the query is
// always the root frame, per §12.1 of SPEC_FULL, never a candidate clause
// looked up from a database).
func ParseQuery(src string) (*logic.Rule, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	anonCounter := 0
	b := newBinder(&anonCounter)

	if p.cur.kind == tokDot {
		// An empty body: "." alone is a legal, if degenerate, query per the
		// boundary behavior in §8 ("query with empty body ... yields
		// exactly one answer with no bindings").
		if err := p.advance(); err != nil {
			return nil, err
		}
		return logic.NewRule(logic.NewAtom("goal"), nil, b.scope), nil
	}

	body, err := p.parseTermList(b)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokDot, "'.'"); err != nil {
		return nil, err
	}
	return logic.NewRule(logic.NewAtom("goal"), body, b.scope), nil
}
