package lexer

import (
	"gridscript/internal/diag"
	"gridscript/internal/token"
)

// "..." с фиксированной escape-таблицей (\a \b \e \f \n \r \t \v \\ \' \" \?).
// Декодированные байты аккумулируются в Token.Literal; span по-прежнему
// покрывает сырую форму "..." вместе с backslash-ами.
func (s *Scanner) scanString() token.Token {
	start := s.cursor.Mark()
	s.cursor.Bump() // opening '"'
	var buf []byte
	for !s.cursor.EOF() {
		b := s.cursor.Peek()
		switch {
		case b == '"':
			s.cursor.Bump()
			tok := s.emit(token.StringLit, start)
			tok.Literal = string(buf)
			return tok

		case b == '\n':
			// сырой перевод строки внутри литерала; не съедаем его,
			// чтобы ошибка указывала на сам '\n'
			s.fail(diag.LexUnterminatedLine)
			return token.Token{}

		case b == '\\':
			s.cursor.Bump()
			if s.cursor.EOF() {
				continue // упрёмся в конец ввода ниже
			}
			dec, ok := decodeEscape(s.cursor.Peek())
			if !ok {
				// неизвестный escape: ошибка указывает на байт после '\'
				s.fail(diag.LexInvalidEscape)
				return token.Token{}
			}
			s.cursor.Bump()
			buf = append(buf, dec)

		default:
			buf = append(buf, b)
			s.cursor.Bump()
		}
	}
	// EOF без закрывающей кавычки
	s.fail(diag.LexEndOfInput)
	return token.Token{}
}

// decodeEscape отображает байт после '\' через фиксированную таблицу.
// Любое расширение таблицы — версионируемое изменение лексики, а не
// тихая правка.
func decodeEscape(b byte) (byte, bool) {
	switch b {
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'e':
		return 0x1B, true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '?':
		return 0x3F, true
	}
	return 0, false
}
