package models

// DefinitionKind classifies an extracted definition.
type DefinitionKind string

const (
	KindFunction DefinitionKind = "function"
	KindClass    DefinitionKind = "class"
)

func (k DefinitionKind) String() string { return string(k) }

// Snippet is the extracted source text of a single named definition.
// Content is always a contiguous slice of the original file's lines,
// 1-indexed and inclusive of both StartLine and EndLine.
type Snippet struct {
	File      string         `json:"file" toon:"file"`
	Symbol    string         `json:"symbol" toon:"symbol"`
	Kind      DefinitionKind `json:"kind" toon:"kind"`
	StartLine int            `json:"start_line" toon:"start_line"`
	EndLine   int            `json:"end_line" toon:"end_line"`
	Content   []string       `json:"content" toon:"content"`

	// Dependencies lists every in-file defined name or import that occurs
	// as a substring of a content line, in scan order. Duplicates are
	// preserved: a name matching on three lines appears three times.
	Dependencies []string `json:"dependencies,omitempty" toon:"dependencies,omitempty"`
}

// WithDependencies returns a copy of the snippet with the dependency list
// attached. The receiver is not mutated.
func (s Snippet) WithDependencies(deps []string) Snippet {
	out := s
	out.Dependencies = deps
	return out
}

// SymbolTable holds every name declared or imported anywhere in a file.
// Defined is sorted; Imports keeps first-occurrence document order after
// deduplication.
type SymbolTable struct {
	Defined []string `json:"defined" toon:"defined"`
	Imports []string `json:"imports" toon:"imports"`
}

// Extraction is the full result of one pipeline run: the snippet plus the
// symbol table it was scanned against.
type Extraction struct {
	Snippet Snippet     `json:"snippet" toon:"snippet"`
	Symbols SymbolTable `json:"symbols" toon:"symbols"`
}
