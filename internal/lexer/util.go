package lexer

// ===== Классификаторы =====

// ASCII-only: байт вне распознаваемых классов — лексическая ошибка.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// ===== Матчеры последовательностей операторов (жадность) =====

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (s *Scanner) try3(a, b, c byte) bool {
	b0, b1, b2, ok := s.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	s.cursor.Bump()
	s.cursor.Bump()
	s.cursor.Bump()
	return true
}

func (s *Scanner) try2(a, b byte) bool {
	b0, b1, ok := s.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	s.cursor.Bump()
	s.cursor.Bump()
	return true
}
