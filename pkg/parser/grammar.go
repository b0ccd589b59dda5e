package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Definition describes a named function or class declaration with its
// 1-indexed, inclusive line span.
type Definition struct {
	Name      string
	Kind      string // "function" or "class"
	StartLine int
	EndLine   int
}

// DefinitionAt returns the definition declared by node, if node is a
// function or class declaration for the given language.
func DefinitionAt(node *sitter.Node, source []byte, lang Language) (Definition, bool) {
	kind, ok := definitionKind(node.Type(), lang)
	if !ok {
		return Definition{}, false
	}

	name := definitionName(node, source, lang)
	if name == "" {
		return Definition{}, false
	}

	return Definition{
		Name:      name,
		Kind:      kind,
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
	}, true
}

// definitionKind maps a tree-sitter node type to a definition kind.
func definitionKind(nodeType string, lang Language) (string, bool) {
	switch lang {
	case LangPython:
		switch nodeType {
		case "function_definition":
			return "function", true
		case "class_definition":
			return "class", true
		}
	case LangGo:
		switch nodeType {
		case "function_declaration", "method_declaration":
			return "function", true
		case "type_declaration":
			return "class", true
		}
	case LangJavaScript, LangTypeScript:
		switch nodeType {
		case "function_declaration", "generator_function_declaration", "method_definition":
			return "function", true
		case "class_declaration":
			return "class", true
		}
	case LangRuby:
		switch nodeType {
		case "method", "singleton_method":
			return "function", true
		case "class", "module":
			return "class", true
		}
	case LangJava:
		switch nodeType {
		case "method_declaration", "constructor_declaration":
			return "function", true
		case "class_declaration", "interface_declaration":
			return "class", true
		}
	}
	return "", false
}

// definitionName extracts the declared name from a definition node.
func definitionName(node *sitter.Node, source []byte, lang Language) string {
	if lang == LangGo && node.Type() == "type_declaration" {
		// The name lives on the inner type_spec.
		for i := range int(node.NamedChildCount()) {
			child := node.NamedChild(i)
			if child.Type() == "type_spec" {
				return GetNodeText(child.ChildByFieldName("name"), source)
			}
		}
		return ""
	}

	return GetNodeText(node.ChildByFieldName("name"), source)
}

// isImportNode reports whether node is an import statement for lang.
func isImportNode(node *sitter.Node, lang Language) bool {
	switch lang {
	case LangPython:
		t := node.Type()
		return t == "import_statement" || t == "import_from_statement"
	case LangGo:
		return node.Type() == "import_spec"
	case LangJavaScript, LangTypeScript:
		return node.Type() == "import_statement"
	case LangRuby:
		return node.Type() == "call"
	case LangJava:
		return node.Type() == "import_declaration"
	}
	return false
}

// ImportNames returns the fully-qualified import names declared by node,
// or nil if node is not an import statement. Python follows the reference
// behavior: `import X` yields "X" (dotted text as written), and
// `from M import X` yields "M.X", with leading relative-import dots
// stripped so that `from . import X` yields a bare "X".
func ImportNames(node *sitter.Node, source []byte, lang Language) []string {
	if !isImportNode(node, lang) {
		return nil
	}

	switch lang {
	case LangPython:
		return pythonImportNames(node, source)
	case LangGo:
		return []string{trimQuotes(GetNodeText(node.ChildByFieldName("path"), source))}
	case LangJavaScript, LangTypeScript:
		mod := trimQuotes(GetNodeText(node.ChildByFieldName("source"), source))
		if mod == "" {
			return nil
		}
		return []string{mod}
	case LangRuby:
		return rubyRequireNames(node, source)
	case LangJava:
		for i := range int(node.NamedChildCount()) {
			child := node.NamedChild(i)
			if child.Type() == "scoped_identifier" || child.Type() == "identifier" {
				return []string{GetNodeText(child, source)}
			}
		}
	}
	return nil
}

// pythonImportNames assembles import names for import_statement and
// import_from_statement nodes.
func pythonImportNames(node *sitter.Node, source []byte) []string {
	var names []string

	if node.Type() == "import_statement" {
		for i := range int(node.NamedChildCount()) {
			child := node.NamedChild(i)
			switch child.Type() {
			case "dotted_name":
				names = append(names, GetNodeText(child, source))
			case "aliased_import":
				// `import X as Y` contributes "X", never the alias.
				if n := child.ChildByFieldName("name"); n != nil {
					names = append(names, GetNodeText(n, source))
				}
			}
		}
		return names
	}

	// import_from_statement
	moduleNode := node.ChildByFieldName("module_name")
	module := strings.TrimLeft(GetNodeText(moduleNode, source), ".")

	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		if moduleNode != nil && child.StartByte() == moduleNode.StartByte() && child.EndByte() == moduleNode.EndByte() {
			continue
		}

		var name string
		switch child.Type() {
		case "dotted_name":
			name = GetNodeText(child, source)
		case "aliased_import":
			name = GetNodeText(child.ChildByFieldName("name"), source)
		case "wildcard_import":
			name = "*"
		default:
			continue
		}
		if name == "" {
			continue
		}

		if module == "" {
			names = append(names, name)
		} else {
			names = append(names, module+"."+name)
		}
	}
	return names
}

// rubyRequireNames treats `require "x"` and `require_relative "x"` calls
// as imports.
func rubyRequireNames(node *sitter.Node, source []byte) []string {
	method := GetNodeText(node.ChildByFieldName("method"), source)
	if method != "require" && method != "require_relative" {
		return nil
	}

	args := node.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return nil
	}

	arg := trimQuotes(GetNodeText(args.NamedChild(0), source))
	if arg == "" {
		return nil
	}
	return []string{arg}
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		switch {
		case s[0] == '"' && s[len(s)-1] == '"',
			s[0] == '\'' && s[len(s)-1] == '\'',
			s[0] == '`' && s[len(s)-1] == '`':
			return s[1 : len(s)-1]
		}
	}
	return s
}
