package extract

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/carvekit/carve/pkg/models"
	"github.com/carvekit/carve/pkg/parser"
)

// collectSymbols walks the whole tree once and gathers every function and
// class name declared anywhere in the file, regardless of nesting, plus
// every import name. Defined names are deduplicated and sorted; import
// names are deduplicated keeping first-occurrence document order.
func collectSymbols(result *parser.ParseResult) *models.SymbolTable {
	definedSet := make(map[string]struct{})
	importSet := make(map[string]struct{})
	var imports []string

	parser.Walk(result.Tree.RootNode(), func(node *sitter.Node) bool {
		if d, ok := parser.DefinitionAt(node, result.Source, result.Language); ok {
			definedSet[d.Name] = struct{}{}
		}

		for _, name := range parser.ImportNames(node, result.Source, result.Language) {
			if _, seen := importSet[name]; seen {
				continue
			}
			importSet[name] = struct{}{}
			imports = append(imports, name)
		}
		return true
	})

	defined := make([]string, 0, len(definedSet))
	for name := range definedSet {
		defined = append(defined, name)
	}
	sort.Strings(defined)

	return &models.SymbolTable{Defined: defined, Imports: imports}
}
