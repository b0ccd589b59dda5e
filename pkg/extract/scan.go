package extract

import (
	"strings"

	"github.com/carvekit/carve/pkg/models"
)

// ScanDependencies reports which symbol-table names textually occur inside
// the content lines. For every line, defined names are checked first (in
// their sorted order), then import names; each containment appends the
// name, so a name matching on several lines appears several times and the
// list is never deduplicated.
//
// The check is plain substring containment, not a token match: a defined
// name "a" is reported for a line containing only "cat". That false
// positive is part of the contract; callers wanting real reference
// analysis are in the wrong package.
func ScanDependencies(content []string, table *models.SymbolTable) []string {
	var deps []string
	for _, line := range content {
		for _, name := range table.Defined {
			if strings.Contains(line, name) {
				deps = append(deps, name)
			}
		}
		for _, name := range table.Imports {
			if strings.Contains(line, name) {
				deps = append(deps, name)
			}
		}
	}
	return deps
}
