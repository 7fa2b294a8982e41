package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single declaration file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// LineCol resolves a byte offset into a 1-based line and column.
func (f *File) LineCol(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Line resolves a byte offset into a 1-based line number.
func (f *File) Line(off uint32) uint32 {
	return toLineCol(f.LineIdx, off).Line
}

// Snippet returns the source text covered by the span.
func (f *File) Snippet(sp Span) string {
	if sp.Start > sp.End || int(sp.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[sp.Start:sp.End])
}
