package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridscript/internal/diagfmt"
	"gridscript/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.grs",
	Short: "Tokenize a gridscript source file",
	Long:  `Tokenize breaks down a gridscript source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("cache-dir", "", "serve clean scans from a token cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
	}

	var result *driver.TokenizeResult
	if cacheDir != "" {
		cache, cacheErr := driver.NewTokenCache(cacheDir)
		if cacheErr != nil {
			return cacheErr
		}
		result, _, err = driver.TokenizeCached(filePath, cache)
	} else {
		result, err = driver.Tokenize(filePath)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Лексическая ошибка: рендерим диагностику в stderr и выходим ненулевым кодом
	if result.LexErr != nil {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		if rerr := diagfmt.RenderLexError(os.Stderr, result.LexErr, result.File, opts); rerr != nil {
			return rerr
		}
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%s: %s", filePath, result.LexErr)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.File)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.File)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
