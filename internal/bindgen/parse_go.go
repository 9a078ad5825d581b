package bindgen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
)

const (
	directiveLibrary = "//dynbind:library"
	directiveABI     = "//dynbind:abi"
)

// ParseGoSource reads body-less function declarations from Go source:
//
//	//go:build ignore
//
//	package hidpi
//
//	//dynbind:library USER32
//	func IsProcessDPIAware() BOOL
//
//	//dynbind:library SHCORE
//	//dynbind:abi system
//	func GetProcessDpiAwareness(hProcess HANDLE, value *PROCESS_DPI_AWARENESS) HRESULT
//
// Types are written with the generator's native type names. Functions with
// a body are ignored, so the file may keep helpers next to the declarations.
func ParseGoSource(filename string, src []byte) (Batch, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return Batch{}, &Error{Kind: KindParse, Pos: filename, Cause: err}
	}

	batch := Batch{
		Package: file.Name.Name,
		Source:  filepath.Base(filename),
	}
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body != nil {
			continue
		}
		batch.Functions = append(batch.Functions, goDeclaration(fset, fd))
	}
	return batch, nil
}

func goDeclaration(fset *token.FileSet, fd *ast.FuncDecl) FunctionDeclaration {
	fn := FunctionDeclaration{
		Name: fd.Name.Name,
		ABI:  ABISystem,
		Pos:  fset.Position(fd.Pos()).String(),
	}
	if fd.Doc != nil {
		for _, c := range fd.Doc.List {
			if rest, ok := strings.CutPrefix(c.Text, directiveLibrary); ok {
				fn.Libraries = append(fn.Libraries, strings.Fields(rest)...)
			}
			if rest, ok := strings.CutPrefix(c.Text, directiveABI); ok {
				fn.ABI = ABI(strings.TrimSpace(rest))
			}
		}
	}
	// Receivers and type parameters have no native counterpart; an
	// unrepresentable type name makes validation reject the declaration.
	if fd.Recv != nil || fd.Type.TypeParams != nil {
		fn.Result = "(method or generic function)"
		return fn
	}

	for _, field := range fd.Type.Params.List {
		typ := field.Type
		if ell, ok := typ.(*ast.Ellipsis); ok {
			fn.Variadic = true
			typ = ell.Elt
		}
		name := types.ExprString(typ)
		if len(field.Names) == 0 {
			fn.Params = append(fn.Params, Param{Type: name})
			continue
		}
		for _, id := range field.Names {
			fn.Params = append(fn.Params, Param{Name: id.Name, Type: name})
		}
	}

	if res := fd.Type.Results; res != nil {
		var names []string
		for _, field := range res.List {
			n := max(len(field.Names), 1)
			for range n {
				names = append(names, types.ExprString(field.Type))
			}
		}
		if len(names) == 1 {
			fn.Result = names[0]
		} else {
			fn.Result = "(" + strings.Join(names, ", ") + ")"
		}
	}
	return fn
}
