package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carvekit/carve/pkg/models"
)

func TestScanDependencies(t *testing.T) {
	table := &models.SymbolTable{
		Defined: []string{"helper", "main"},
		Imports: []string{"os"},
	}

	content := []string{
		"def main():",
		"    helper(os.sep)",
	}

	deps := ScanDependencies(content, table)
	assert.Equal(t, []string{"main", "helper", "os"}, deps)
}

func TestScanDependenciesDefinedBeforeImports(t *testing.T) {
	table := &models.SymbolTable{
		Defined: []string{"zeta"},
		Imports: []string{"alpha"},
	}

	// Defined names are reported first on each line even when an import
	// name would sort earlier.
	deps := ScanDependencies([]string{"zeta(alpha)"}, table)
	assert.Equal(t, []string{"zeta", "alpha"}, deps)
}

func TestScanDependenciesDuplicatesPreserved(t *testing.T) {
	table := &models.SymbolTable{Defined: []string{"x"}}

	deps := ScanDependencies([]string{"x = x", "return x"}, table)
	assert.Equal(t, []string{"x", "x"}, deps)
}

func TestScanDependenciesSubstringMatch(t *testing.T) {
	// Containment is textual: "a" occurs inside "cat".
	table := &models.SymbolTable{Defined: []string{"a"}}

	deps := ScanDependencies([]string{"cat = 1"}, table)
	assert.Equal(t, []string{"a"}, deps)
}

func TestScanDependenciesEmpty(t *testing.T) {
	table := &models.SymbolTable{}
	assert.Empty(t, ScanDependencies([]string{"anything"}, table))
	assert.Empty(t, ScanDependencies(nil, &models.SymbolTable{Defined: []string{"x"}}))
}

func TestScanDependenciesIdempotent(t *testing.T) {
	table := &models.SymbolTable{
		Defined: []string{"f", "g"},
		Imports: []string{"json"},
	}
	content := []string{"f(g(json.dumps))"}

	first := ScanDependencies(content, table)
	second := ScanDependencies(content, table)
	assert.Equal(t, first, second)
}
