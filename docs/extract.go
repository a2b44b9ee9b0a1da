package docs

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// Structure holds a named type's documentation: records, enums, objects,
// and interfaces all land here.
type Structure struct {
	Description string

	// Members holds struct field or enum constant descriptions.
	Members map[string]string

	// Methods holds receiver or interface method documentation.
	Methods map[string]Function
}

// Documentation is everything extracted from one source unit.
type Documentation struct {
	Functions  map[string]Function
	Structures map[string]Structure
}

// Extract collects doc comments from Go source. Undocumented declarations
// are omitted entirely; methods and enum constants only attach to types
// that are themselves documented.
func Extract(filename, source string) (*Documentation, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	doc := &Documentation{
		Functions:  make(map[string]Function),
		Structures: make(map[string]Structure),
	}
	methods := make(map[string]map[string]Function)
	enumMembers := make(map[string]map[string]string)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Doc == nil {
				continue
			}
			fn := ParseFunction(strings.TrimSpace(d.Doc.Text()))
			if d.Recv != nil && len(d.Recv.List) > 0 {
				recv := receiverTypeName(d.Recv.List[0].Type)
				if recv == "" {
					continue
				}
				if methods[recv] == nil {
					methods[recv] = make(map[string]Function)
				}
				methods[recv][d.Name.Name] = fn
			} else {
				doc.Functions[d.Name.Name] = fn
			}

		case *ast.GenDecl:
			switch d.Tok {
			case token.TYPE:
				extractTypes(d, doc)
			case token.CONST:
				extractConsts(d, enumMembers)
			}
		}
	}

	for name, ms := range methods {
		s, ok := doc.Structures[name]
		if !ok {
			continue
		}
		for mname, fn := range ms {
			s.Methods[mname] = fn
		}
		doc.Structures[name] = s
	}

	for name, members := range enumMembers {
		s, ok := doc.Structures[name]
		if !ok {
			continue
		}
		for mname, text := range members {
			s.Members[mname] = text
		}
		doc.Structures[name] = s
	}

	return doc, nil
}

// ExtractFile reads and extracts a single Go source file.
func ExtractFile(path string) (*Documentation, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Extract(path, string(source))
}

// ExtractDir extracts every non-test Go file in a directory and merges the
// results. Later files win on name collisions, which cannot happen for
// compilable input anyway.
func ExtractDir(dir string) (*Documentation, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	merged := &Documentation{
		Functions:  make(map[string]Function),
		Structures: make(map[string]Structure),
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		doc, err := ExtractFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		for k, v := range doc.Functions {
			merged.Functions[k] = v
		}
		for k, v := range doc.Structures {
			merged.Structures[k] = v
		}
	}
	return merged, nil
}

func extractTypes(d *ast.GenDecl, doc *Documentation) {
	for _, spec := range d.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}
		group := ts.Doc
		if group == nil && len(d.Specs) == 1 {
			group = d.Doc
		}
		if group == nil {
			continue
		}

		s := Structure{
			Description: strings.TrimSpace(group.Text()),
			Members:     make(map[string]string),
			Methods:     make(map[string]Function),
		}

		switch t := ts.Type.(type) {
		case *ast.StructType:
			for _, field := range t.Fields.List {
				fieldDoc := field.Doc
				if fieldDoc == nil {
					fieldDoc = field.Comment
				}
				if fieldDoc == nil {
					continue
				}
				for _, name := range field.Names {
					s.Members[name.Name] = strings.TrimSpace(fieldDoc.Text())
				}
			}
		case *ast.InterfaceType:
			for _, m := range t.Methods.List {
				if m.Doc == nil || len(m.Names) == 0 {
					continue
				}
				s.Methods[m.Names[0].Name] = ParseFunction(strings.TrimSpace(m.Doc.Text()))
			}
		}

		doc.Structures[ts.Name.Name] = s
	}
}

// extractConsts records documented constants against their declared type,
// so iota-style enums contribute their variants as members. Specs without
// an explicit type inherit it from the previous spec in the block, matching
// the language's own inheritance rule.
func extractConsts(d *ast.GenDecl, enumMembers map[string]map[string]string) {
	currentType := ""
	for _, spec := range d.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if vs.Type != nil {
			if id, isIdent := vs.Type.(*ast.Ident); isIdent {
				currentType = id.Name
			} else {
				currentType = ""
			}
		} else if len(vs.Values) > 0 {
			// an explicit value without a type breaks the inheritance chain
			currentType = ""
		}

		group := vs.Doc
		if group == nil {
			group = vs.Comment
		}
		if group == nil || currentType == "" {
			continue
		}
		if enumMembers[currentType] == nil {
			enumMembers[currentType] = make(map[string]string)
		}
		for _, name := range vs.Names {
			enumMembers[currentType][name.Name] = strings.TrimSpace(group.Text())
		}
	}
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	}
	return ""
}
