package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gridscript/internal/lexer"
	"gridscript/internal/source"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	caretColor  = color.New(color.FgRed, color.Bold)
)

// ErrNoDiagnostic is returned when there is no recorded failure to render.
var ErrNoDiagnostic = errors.New("diagfmt: no lexical error to render")

// RenderLexError форматирует записанную лексическую ошибку:
//
//	<error kind> at <line>:<column>
//	<номер строки, выровненный вправо до 5>| <строка источника дословно>
//	<6+column пробелов>^
//
// Каретка встаёт ровно под сбойным байтом с учётом префикса "<num>| ".
// Формат стабилен: потребители сверяют его дословно.
func RenderLexError(w io.Writer, lexErr *lexer.LexError, file *source.File, opts PrettyOpts) error {
	if lexErr == nil {
		return ErrNoDiagnostic
	}

	header := fmt.Sprintf("%s at %d:%d", lexErr.Code.Title(), lexErr.Line, lexErr.Col)
	srcLine := file.GetLine(lexErr.Line)
	caret := strings.Repeat(" ", int(6+lexErr.Col)) + "^"

	if opts.Color {
		if _, err := headerColor.Fprintln(w, header); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%5d| %s\n", lexErr.Line, srcLine); err != nil {
			return err
		}
		_, err := caretColor.Fprintln(w, caret)
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n%5d| %s\n%s\n", header, lexErr.Line, srcLine, caret)
	return err
}
