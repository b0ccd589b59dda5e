// Package extract implements the symbol-extraction pipeline: parse a
// source file, locate a named function or class, slice its lines out of
// the original text, and scan them for other in-file names.
package extract

import (
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/carvekit/carve/pkg/models"
	"github.com/carvekit/carve/pkg/parser"
	"github.com/carvekit/carve/pkg/source"
)

var (
	// ErrTargetNotFound is returned when no function or class with the
	// requested name exists in the file.
	ErrTargetNotFound = errors.New("target not found")

	// ErrSyntax is returned when the source text cannot be parsed.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupportedLanguage is returned for file extensions with no
	// registered grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Extractor runs the pipeline. It owns a single tree-sitter parser and is
// not safe for concurrent use.
type Extractor struct {
	parser *parser.Parser
}

// New creates a new extractor.
func New() *Extractor {
	return &Extractor{parser: parser.New()}
}

// Close releases parser resources.
func (e *Extractor) Close() {
	e.parser.Close()
}

// ExtractFile extracts symbol from the file at path on the local
// filesystem.
func (e *Extractor) ExtractFile(path, symbol string) (*models.Extraction, error) {
	return e.Extract(source.NewFilesystem(), path, symbol)
}

// Extract reads path from src, locates the first function or class
// definition named symbol (pre-order, outermost first: when duplicate
// names exist at different scopes, the one that starts earliest in the
// file wins), and returns its lines together with the scanned dependency
// list. A single parse feeds both the locator and the symbol collector.
func (e *Extractor) Extract(src source.ContentSource, path, symbol string) (*models.Extraction, error) {
	result, err := e.parse(src, path)
	if err != nil {
		return nil, err
	}
	defer result.Tree.Close()

	def, err := locate(result, symbol)
	if err != nil {
		return nil, err
	}

	snippet := models.Snippet{
		File:      path,
		Symbol:    def.Name,
		Kind:      models.DefinitionKind(def.Kind),
		StartLine: def.StartLine,
		EndLine:   def.EndLine,
		Content:   sliceLines(result.Source, def.StartLine, def.EndLine),
	}

	table := collectSymbols(result)
	snippet = snippet.WithDependencies(ScanDependencies(snippet.Content, table))

	return &models.Extraction{Snippet: snippet, Symbols: *table}, nil
}

// Symbols reads path from src and returns every defined name and import
// in the file, without extracting anything.
func (e *Extractor) Symbols(src source.ContentSource, path string) (*models.SymbolTable, error) {
	result, err := e.parse(src, path)
	if err != nil {
		return nil, err
	}
	defer result.Tree.Close()

	return collectSymbols(result), nil
}

// parse reads and parses path, rejecting unknown extensions and source
// text the grammar cannot make sense of.
func (e *Extractor) parse(src source.ContentSource, path string) (*parser.ParseResult, error) {
	data, err := src.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lang := parser.DetectLanguage(path)
	if lang == parser.LangUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}

	result, err := e.parser.Parse(data, lang, path)
	if err != nil {
		return nil, err
	}

	if result.Tree.RootNode().HasError() {
		result.Tree.Close()
		return nil, fmt.Errorf("%w in %s", ErrSyntax, path)
	}

	return result, nil
}

// locate walks the tree in pre-order and returns the first definition
// whose declared name equals symbol exactly. Matching is case-sensitive
// with no partial matches; a variable with the same name never matches.
func locate(result *parser.ParseResult, symbol string) (parser.Definition, error) {
	var (
		found bool
		def   parser.Definition
	)

	parser.Walk(result.Tree.RootNode(), func(node *sitter.Node) bool {
		if found {
			return false
		}
		d, ok := parser.DefinitionAt(node, result.Source, result.Language)
		if ok && d.Name == symbol {
			def = d
			found = true
			return false
		}
		return true
	})

	if !found {
		return parser.Definition{}, fmt.Errorf("%w: no function or class named %q in %s",
			ErrTargetNotFound, symbol, result.Path)
	}
	return def, nil
}

// sliceLines returns the 1-indexed, inclusive span of lines from the raw
// source, line endings stripped.
func sliceLines(src []byte, startLine, endLine int) []string {
	lines := strings.Split(string(src), "\n")
	if startLine < 1 {
		startLine = 1
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}

	out := make([]string, 0, endLine-startLine+1)
	for _, line := range lines[startLine-1 : endLine] {
		out = append(out, strings.TrimRight(line, "\r"))
	}
	return out
}
