package lexer

import (
	"gridscript/internal/token"
)

// scanIdent сканирует [A-Za-z_][A-Za-z0-9_]* жадно.
// Ключевые слова на этом слое не выделяются — классификация, если она
// вообще нужна, принадлежит парсеру.
func (s *Scanner) scanIdent() token.Token {
	start := s.cursor.Mark()
	s.cursor.Bump()
	for isIdentContinueByte(s.cursor.Peek()) {
		s.cursor.Bump()
	}
	return s.emit(token.Ident, start)
}
