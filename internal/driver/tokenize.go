package driver

import (
	"gridscript/internal/lexer"
	"gridscript/internal/source"
	"gridscript/internal/token"
)

// TokenizeResult carries everything a caller needs to print the token
// stream or render the diagnostic: the file set resolves positions, the
// file exposes the raw buffer for lexeme slicing.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	LexErr  *lexer.LexError
}

// Tokenize загружает файл и сканирует его целиком.
// Лексическая ошибка не является ошибкой I/O: она возвращается в
// результате, а error отведён под проблемы загрузки.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	tokens, lexErr := lexer.Scan(file)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		LexErr:  lexErr,
	}, nil
}

// TokenizeCached works like Tokenize but consults the disk cache first.
// Only clean scans are served from or stored to the cache; a failing
// scan is always re-run so the diagnostic stays fresh. The second return
// value reports a cache hit.
func TokenizeCached(path string, cache *TokenCache) (*TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)

	if cache != nil {
		if tokens, ok := cache.Load(file); ok {
			return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens}, true, nil
		}
	}

	tokens, lexErr := lexer.Scan(file)
	if cache != nil && lexErr == nil {
		// ошибки записи в кэш не фатальны для токенизации
		_ = cache.Store(file, tokens)
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		LexErr:  lexErr,
	}, false, nil
}
