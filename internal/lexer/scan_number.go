package lexer

import (
	"gridscript/internal/diag"
	"gridscript/internal/token"
)

// Десятичные числа: [0-9]+ с не более чем одной '.', дающей FloatLit.
// Значение сканер не вычисляет — сырой текст доступен через Span,
// интерпретация остаётся за парсером/интерпретатором.
// Повторная точка или буква/underscore вплотную после числа — ошибка.
func (s *Scanner) scanNumber() token.Token {
	start := s.cursor.Mark()
	kind := token.IntLit

	// целая часть
	for isDec(s.cursor.Peek()) {
		s.cursor.Bump()
	}

	// дробная часть
	if s.cursor.Peek() == '.' {
		kind = token.FloatLit
		s.cursor.Bump()
		for isDec(s.cursor.Peek()) {
			s.cursor.Bump()
		}
	}

	switch b := s.cursor.Peek(); {
	case b == '.':
		// вторая точка: "1.2.3"
		s.fail(diag.LexUnexpectedSymbol)
		return token.Token{}
	case isIdentStartByte(b):
		// число и идентификатор не могут идти слитно: "42abc"
		s.fail(diag.LexUnexpectedSymbol)
		return token.Token{}
	}

	return s.emit(kind, start)
}
