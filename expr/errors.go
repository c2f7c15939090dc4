package expr

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
	ErrEval  = errors.New("eval error")
)

// ParseError describes why a normalized expression could not be compiled.
//
// Position is a byte offset into the compiled text, or -1 when the engine rejected the text
// without reporting one.
type ParseError struct {
	Message  string
	Position int
	Token    string
}

func (e *ParseError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%v: %s", ErrParse, e.Message)
	}
	if e.Token == "" {
		return fmt.Sprintf("%v at %d: %s", ErrParse, e.Position, e.Message)
	}
	return fmt.Sprintf("%v at %d near %q: %s", ErrParse, e.Position, e.Token, e.Message)
}

func (e *ParseError) Unwrap() error { return ErrParse }

func parseErrorAt(tok token, msg string) *ParseError {
	return &ParseError{Message: msg, Position: tok.pos, Token: tok.text}
}
