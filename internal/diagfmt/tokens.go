package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"gridscript/internal/source"
	"gridscript/internal/token"
)

// TokenOutput is the serialisable view of a token used by JSON output
// and by the driver's disk cache.
type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Lexeme  string      `json:"lexeme,omitempty" msgpack:"lexeme"`
	Literal string      `json:"literal,omitempty" msgpack:"literal"`
	Line    uint32      `json:"line" msgpack:"line"`
	Span    source.Span `json:"span" msgpack:"span"`
}

// ToOutputs converts a token slice into its serialisable form.
func ToOutputs(tokens []token.Token, file *source.File) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Lexeme:  tok.Lexeme(file.Content),
			Literal: tok.Literal,
			Line:    tok.Line,
			Span:    tok.Span,
		})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String()); err != nil {
			return err
		}

		if lexeme := tok.Lexeme(file.Content); lexeme != "" {
			if _, err := fmt.Fprintf(w, " %q", lexeme); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, " at %d:%d-%d", tok.Line, tok.Span.Start, tok.Span.End); err != nil {
			return err
		}

		if tok.Kind == token.StringLit {
			if _, err := fmt.Fprintf(w, " literal: %q", tok.Literal); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, file *source.File) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ToOutputs(tokens, file))
}
