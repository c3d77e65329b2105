package lexer

import (
	"fmt"

	"gridscript/internal/diag"
)

// LexError is a single recorded lexical failure. The scanner records at
// most one per scan: the first failure aborts the pass, and the token
// stream keeps exactly the tokens recognized before the failing byte.
type LexError struct {
	Code diag.Code
	// Line and Col are the 1-based position of the byte that triggered
	// the failure.
	Line uint32
	Col  uint32
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Code.Title(), e.Line, e.Col)
}

// fail записывает первую ошибку; позиция — текущий байт курсора.
func (s *Scanner) fail(code diag.Code) {
	s.failAt(code, s.cursor.Off)
}

// failAt записывает первую ошибку с явным оффсетом на текущей строке.
func (s *Scanner) failAt(code diag.Code, off uint32) {
	if s.err != nil {
		return
	}
	s.err = &LexError{
		Code: code,
		Line: s.cursor.Line,
		Col:  off - s.cursor.LineOff + 1,
	}
}
