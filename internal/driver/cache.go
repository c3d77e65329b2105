package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"gridscript/internal/source"
	"gridscript/internal/token"
)

// Current schema version - increment when cachedToken format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит токен-стримы чистых сканов на диске, по sha256
// содержимого файла. Перезапуск игры не обязан пересканировать
// неизменённые скрипты уровней.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedToken is the flattened on-disk form of one token.
type cachedToken struct {
	Kind    uint8  `msgpack:"k"`
	Line    uint32 `msgpack:"l"`
	Start   uint32 `msgpack:"s"`
	End     uint32 `msgpack:"e"`
	Literal string `msgpack:"v"`
}

// cachePayload is the msgpack envelope written per file.
type cachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16        `msgpack:"schema"`
	Hash   [32]byte      `msgpack:"hash"`
	Tokens []cachedToken `msgpack:"tokens"`
}

// NewTokenCache creates a cache rooted at dir, creating it if needed.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) path(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".tok")
}

// Store writes the token stream for file. Call it only for clean scans;
// failed scans must not be cached.
func (c *TokenCache) Store(file *source.File, tokens []token.Token) error {
	payload := cachePayload{
		Schema: tokenCacheSchemaVersion,
		Hash:   file.Hash,
		Tokens: make([]cachedToken, 0, len(tokens)),
	}
	for _, tok := range tokens {
		payload.Tokens = append(payload.Tokens, cachedToken{
			Kind:    uint8(tok.Kind),
			Line:    tok.Line,
			Start:   tok.Span.Start,
			End:     tok.Span.End,
			Literal: tok.Literal,
		})
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("token cache: encode: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// атомарная запись: tmp + rename
	tmp, err := os.CreateTemp(c.dir, "tok-*")
	if err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("token cache: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("token cache: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path(file.Hash)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("token cache: rename: %w", err)
	}
	return nil
}

// Load returns the cached token stream for file, if present and valid.
// Any schema or hash mismatch, or a decode error, is treated as a miss —
// the caller falls back to a fresh scan.
func (c *TokenCache) Load(file *source.File) ([]token.Token, bool) {
	c.mu.RLock()
	data, err := os.ReadFile(c.path(file.Hash))
	c.mu.RUnlock()
	if err != nil {
		return nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Hash != file.Hash {
		return nil, false
	}

	tokens := make([]token.Token, 0, len(payload.Tokens))
	for _, ct := range payload.Tokens {
		tokens = append(tokens, token.Token{
			Kind:    token.Kind(ct.Kind),
			Line:    ct.Line,
			Span:    source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Literal: ct.Literal,
		})
	}
	return tokens, true
}
