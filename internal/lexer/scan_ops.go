package lexer

import (
	"gridscript/internal/diag"
	"gridscript/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Ни один префикс оператора не является сам по себе ошибкой (одиночный '<'
// валиден), поэтому это чистый maximal munch без отката.
func (s *Scanner) scanOperatorOrPunct() token.Token {
	start := s.cursor.Mark()

	// сдвиги, сравнения, инкремент/декремент, составные присваивания
	switch {
	case s.try3('<', '<', '='):
		return s.emit(token.ShlAssign, start)
	case s.try3('>', '>', '='):
		return s.emit(token.ShrAssign, start)
	case s.try2('<', '<'):
		return s.emit(token.Shl, start)
	case s.try2('>', '>'):
		return s.emit(token.Shr, start)
	case s.try2('<', '='):
		return s.emit(token.LtEq, start)
	case s.try2('>', '='):
		return s.emit(token.GtEq, start)
	case s.try2('+', '+'):
		return s.emit(token.PlusPlus, start)
	case s.try2('-', '-'):
		return s.emit(token.MinusMinus, start)
	case s.try2('+', '='):
		return s.emit(token.PlusAssign, start)
	case s.try2('-', '='):
		return s.emit(token.MinusAssign, start)
	case s.try2('*', '='):
		return s.emit(token.StarAssign, start)
	case s.try2('/', '='):
		return s.emit(token.SlashAssign, start)
	case s.try2('%', '='):
		return s.emit(token.PercentAssign, start)
	case s.try2('&', '='):
		return s.emit(token.AmpAssign, start)
	case s.try2('|', '='):
		return s.emit(token.PipeAssign, start)
	case s.try2('^', '='):
		return s.emit(token.CaretAssign, start)
	case s.try2('=', '='):
		return s.emit(token.EqEq, start)
	case s.try2('!', '='):
		return s.emit(token.BangEq, start)
	}

	// односимвольные
	ch := s.cursor.Bump()
	switch ch {
	case '+':
		return s.emit(token.Plus, start)
	case '-':
		return s.emit(token.Minus, start)
	case '*':
		return s.emit(token.Star, start)
	case '/':
		return s.emit(token.Slash, start)
	case '%':
		return s.emit(token.Percent, start)
	case '=':
		return s.emit(token.Assign, start)
	case '!':
		return s.emit(token.Bang, start)
	case '<':
		return s.emit(token.Lt, start)
	case '>':
		return s.emit(token.Gt, start)
	case '&':
		return s.emit(token.Amp, start)
	case '|':
		return s.emit(token.Pipe, start)
	case '^':
		return s.emit(token.Caret, start)
	case '\\':
		return s.emit(token.Backslash, start)
	case '(':
		return s.emit(token.LParen, start)
	case ')':
		return s.emit(token.RParen, start)
	case '[':
		return s.emit(token.LBracket, start)
	case ']':
		return s.emit(token.RBracket, start)
	case '{':
		return s.emit(token.LBrace, start)
	case '}':
		return s.emit(token.RBrace, start)
	case '.':
		return s.emit(token.Dot, start)
	case ',':
		return s.emit(token.Comma, start)
	case ';':
		return s.emit(token.Semicolon, start)
	case ':':
		return s.emit(token.Colon, start)
	default:
		// неизвестный символ
		s.failAt(diag.LexUnexpectedSymbol, uint32(start))
		return token.Token{}
	}
}
