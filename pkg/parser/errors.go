package parser

import "fmt"

// ParseError is a user-facing error: a position plus a message. It never
// touches the clause database — the caller is expected to print it and
// return to the prompt (§7).
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
