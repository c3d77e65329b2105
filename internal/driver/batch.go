package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gridscript/internal/lexer"
	"gridscript/internal/source"
	"gridscript/internal/token"
)

// BatchResult is the outcome of scanning one script in a batch.
type BatchResult struct {
	Path    string
	FileID  source.FileID
	Tokens  []token.Token
	LexErr  *lexer.LexError
	LoadErr error
}

// Failed reports whether the script could not be loaded or scanned.
func (r BatchResult) Failed() bool {
	return r.LoadErr != nil || r.LexErr != nil
}

// TokenizeAll сканирует набор скриптов параллельно. Файлы загружаются в
// fileSet заранее (он не рассчитан на конкурентные Add), сканы идут в
// errgroup: каждый скан владеет собственным сканером и собственным
// выходным буфером, общий только read-only буфер источника.
// Результаты возвращаются в порядке paths.
func TokenizeAll(ctx context.Context, fileSet *source.FileSet, paths []string, jobs int) ([]BatchResult, error) {
	results := make([]BatchResult, len(paths))

	for i, path := range paths {
		results[i].Path = path
		fileID, err := fileSet.Load(path)
		if err != nil {
			results[i].LoadErr = err
			continue
		}
		results[i].FileID = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := range results {
		if results[i].LoadErr != nil {
			continue
		}
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// индекс i уникален для горутины, мьютекс не нужен
			file := fileSet.Get(results[i].FileID)
			results[i].Tokens, results[i].LexErr = lexer.Scan(file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
