package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridscript/internal/diagfmt"
	"gridscript/internal/lexer"
	"gridscript/internal/source"
)

// demoSource — фиксированный образец скрипта мобов для витрины сканера.
const demoSource = `mob "slime" {
	hp = 10; speed = 1.5;
	on_hit {
		hp -= 2;
		if hp <= 0 { despawn(); }
	}
}`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Tokenize a built-in sample script",
	Long:  `Demo feeds a fixed sample script to the scanner and prints each token, or the rendered diagnostic on failure`,
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual("demo.grs", []byte(demoSource)))

	tokens, lexErr := lexer.Scan(file)
	if lexErr != nil {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		if rerr := diagfmt.RenderLexError(os.Stderr, lexErr, file, opts); rerr != nil {
			return rerr
		}
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("demo script failed to scan: %s", lexErr)
	}

	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, file)
}
