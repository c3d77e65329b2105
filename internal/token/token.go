package token

import (
	"gridscript/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	// Line is the 1-based line number where the token starts.
	Line uint32
	// Span covers the raw lexeme in the source buffer.
	Span source.Span
	// Literal holds the escape-decoded value of a string literal.
	// Meaningful only when Kind == StringLit; every other token carries
	// its text via Span alone.
	Literal string
}

// Lexeme returns the raw source text covered by the token's span.
func (t Token) Lexeme(content []byte) string {
	return string(content[t.Span.Start:t.Span.End])
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, PlusAssign, MinusAssign, StarAssign,
		SlashAssign, PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign,
		PlusPlus, MinusMinus, EqEq, Bang, BangEq, Lt, LtEq, Gt, GtEq, Shl, Shr, Amp, Pipe,
		Caret, Backslash, LParen, RParen, LBrace, RBrace, LBracket, RBracket, Dot, Comma,
		Semicolon, Colon:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
