package diag

import (
	"fmt"
)

// Code is a compact numeric identifier for a diagnostic.
type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические. Набор закрыт: сканер останавливается на первой ошибке
	// и не сообщает ничего за пределами этих четырёх кодов.

	// LexEndOfInput indicates the input ran out mid-token (e.g. inside an
	// unclosed string literal).
	LexEndOfInput Code = 1001
	// LexUnexpectedSymbol indicates an unrecognized byte, a malformed
	// number, or a repeated decimal point.
	LexUnexpectedSymbol Code = 1002
	// LexInvalidEscape indicates an unknown escape letter after '\' inside
	// a string literal.
	LexInvalidEscape Code = 1003
	// LexUnterminatedLine indicates a raw newline inside an unclosed
	// string literal.
	LexUnterminatedLine Code = 1004
)

var codeDescription = map[Code]string{
	UnknownCode:         "unknown error",
	LexEndOfInput:       "end of input",
	LexUnexpectedSymbol: "unexpected symbol",
	LexInvalidEscape:    "invalid escape",
	LexUnterminatedLine: "unterminated line",
}

// ID returns the stable short identifier of the code, e.g. "LEX1001".
func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("LEX%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable name of the code. This is the exact
// text the diagnostic renderer places in the message header.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
