// Package token defines lexical token kinds for the gridscript scanner.
// Invariants:
//   - Token.Span records the true first-byte offset of the lexeme
//     (Start..End, end exclusive) into the original source buffer.
//   - For every non-string token, slicing the source at Span reproduces
//     the matched lexeme exactly.
//   - StringLit tokens additionally carry the escape-decoded text in
//     Token.Literal; the span still covers the raw quoted form.
//   - Keywords are identifiers at this layer. They are recognized by the
//     parser, not the scanner.
package token
