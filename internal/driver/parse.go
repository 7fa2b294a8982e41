package driver

import (
	"tsdecl/internal/ast"
	"tsdecl/internal/diag"
	"tsdecl/internal/diagfmt"
	"tsdecl/internal/parser"
	"tsdecl/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Decls   []ast.Decl
	Output  []diagfmt.DeclOutput
	Bag     *diag.Bag
	// CacheHit is set when Output came from the disk cache; Decls is nil
	// in that case.
	CacheHit bool
}

// ParseOptions configures Parse.
type ParseOptions struct {
	MaxDiagnostics int
	// Cache, when non-nil, is consulted by content hash before parsing
	// and updated after a successful parse.
	Cache *DiskCache
}

// Parse loads a file and parses it into declarations. As with Tokenize,
// a parse error still yields a result with the populated bag.
func Parse(path string, opts ParseOptions) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	res := &ParseResult{FileSet: fs, File: file, Bag: bag}

	if opts.Cache != nil {
		var payload DeclPayload
		hit, cacheErr := opts.Cache.Get(file.Hash, &payload)
		if cacheErr == nil && hit && payload.Schema == declCacheSchemaVersion {
			res.Output = payload.Decls
			res.CacheHit = true
			return res, nil
		}
		// A cache read failure falls through to a normal parse.
	}

	decls, err := parser.ParseFile(file, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	if err != nil {
		return res, err
	}
	res.Decls = decls
	res.Output = diagfmt.BuildDeclOutputs(decls)

	if opts.Cache != nil {
		payload := DeclPayload{
			Schema: declCacheSchemaVersion,
			Path:   file.Path,
			Decls:  res.Output,
		}
		// Best effort: a failed write never fails the parse.
		_ = opts.Cache.Put(file.Hash, &payload)
	}
	return res, nil
}
