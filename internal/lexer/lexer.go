package lexer

import (
	"gridscript/internal/source"
	"gridscript/internal/token"
)

// Scanner walks a source buffer left to right, one byte of lookahead,
// and classifies runs of bytes into tokens. One Scanner serves exactly
// one scan: construct a fresh instance per buffer and never share it
// across goroutines. The source buffer itself is read-only.
type Scanner struct {
	file   *source.File
	cursor Cursor
	err    *LexError
}

// New creates a scanner over file.
func New(file *source.File) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next возвращает следующий **значимый** токен.
// После конца файла всегда возвращает EOF. Первая лексическая ошибка
// останавливает сканирование: Next возвращает ok=false, детали в Err().
func (s *Scanner) Next() (token.Token, bool) {
	if s.err != nil {
		return token.Token{}, false
	}

	// 1) пробелы, табы, \r и \n не порождают токенов
	s.skipBlanks()

	// 2) конец ввода → EOF-токен
	if s.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Line: s.cursor.Line,
			Span: s.emptySpan(),
		}, true
	}

	// 3) диспетчеризация по категории байта
	ch := s.cursor.Peek()
	var tok token.Token

	switch {
	case isDec(ch):
		// цифра → scanNumber()
		tok = s.scanNumber()

	case isIdentStartByte(ch):
		// буква или underscore → scanIdent()
		tok = s.scanIdent()

	case ch == '"':
		// " → scanString()
		tok = s.scanString()

	default:
		// иначе → scanOperatorOrPunct() (включая скобки, запятые и т.д.)
		tok = s.scanOperatorOrPunct()
	}

	if s.err != nil {
		return token.Token{}, false
	}
	return tok, true
}

// Err returns the recorded failure, or nil while the scan is healthy.
func (s *Scanner) Err() *LexError {
	return s.err
}

// Scan tokenizes file in a single pass. On success the returned sequence
// ends with the sentinel EOF token and the error is nil. On the first
// lexical failure the scan aborts: the sequence holds exactly the tokens
// recognized before the failing byte, no sentinel is appended, and the
// failure is returned. Every call owns a freshly allocated result.
func Scan(file *source.File) ([]token.Token, *LexError) {
	s := New(file)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens, s.Err()
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (s *Scanner) skipBlanks() {
	for {
		switch s.cursor.Peek() {
		case ' ', '\t', '\r':
			s.cursor.Bump()
		case '\n':
			// Bump сам инкрементирует счётчик строк
			s.cursor.Bump()
		default:
			return
		}
	}
}

// emit собирает токен от метки до текущей позиции.
func (s *Scanner) emit(k token.Kind, start Mark) token.Token {
	return token.Token{
		Kind: k,
		Line: s.cursor.Line,
		Span: s.cursor.SpanFrom(start),
	}
}

func (s *Scanner) emptySpan() source.Span {
	return source.Span{File: s.file.ID, Start: s.cursor.Off, End: s.cursor.Off}
}
