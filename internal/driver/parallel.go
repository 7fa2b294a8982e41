package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tsdecl/internal/ast"
	"tsdecl/internal/diag"
	"tsdecl/internal/diagfmt"
	"tsdecl/internal/lexer"
	"tsdecl/internal/parser"
	"tsdecl/internal/source"
	"tsdecl/internal/token"
)

// TokenizeDirResult holds the tokenization outcome of one file.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult holds the parse outcome of one file.
type ParseDirResult struct {
	Path     string
	FileID   source.FileID
	Decls    []ast.Decl
	Output   []diagfmt.DeclOutput
	Bag      *diag.Bag
	CacheHit bool
}

// listDeclFiles returns the sorted list of *.d.ts files under dir.
func listDeclFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".d.ts") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sorted for a deterministic result order.
	sort.Strings(files)
	return files, nil
}

// loadAll preloads every file into the set, recording load failures for
// the workers to turn into diagnostics.
func loadAll(fileSet *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileIDs, loadErrors
}

func ioLoadDiag(bag *diag.Bag, err error) {
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
		Primary:  source.Span{},
	})
}

// TokenizeDir tokenizes every *.d.ts file under dir in parallel. Results
// come back indexed by the sorted file order regardless of completion
// order; per-file failures land in the file's bag, not in the error.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listDeclFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	fileIDs, loadErrors := loadAll(fileSet, files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns its result index, so no mutex is needed.
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				ioLoadDiag(bag, loadErr)
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			tokens, _ := lexer.Tokenize(file, lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir parses every *.d.ts file under dir in parallel, consulting the
// optional disk cache per file.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *DiskCache) (*source.FileSet, []ParseDirResult, error) {
	files, err := listDeclFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	fileIDs, loadErrors := loadAll(fileSet, files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				ioLoadDiag(bag, loadErr)
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			result := ParseDirResult{Path: path, FileID: fileID, Bag: bag}

			if cache != nil {
				var payload DeclPayload
				if hit, cacheErr := cache.Get(file.Hash, &payload); cacheErr == nil && hit &&
					payload.Schema == declCacheSchemaVersion {
					result.Output = payload.Decls
					result.CacheHit = true
					results[i] = result
					return nil
				}
			}

			decls, parseErr := parser.ParseFile(file, parser.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})
			if parseErr == nil {
				result.Decls = decls
				result.Output = diagfmt.BuildDeclOutputs(decls)
				if cache != nil {
					_ = cache.Put(file.Hash, &DeclPayload{
						Schema: declCacheSchemaVersion,
						Path:   file.Path,
						Decls:  result.Output,
					})
				}
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
