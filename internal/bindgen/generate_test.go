package bindgen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func decl(name, lib string, result string, params ...Param) FunctionDeclaration {
	fn := FunctionDeclaration{Name: name, Result: result, Params: params, ABI: ABISystem, Pos: "decls.go:1"}
	if lib != "" {
		fn.Libraries = []string{lib}
	}
	return fn
}

func dpiBatch() Batch {
	return Batch{
		Package: "hidpi",
		Source:  "dpi_decls.go",
		Functions: []FunctionDeclaration{
			decl("IsProcessDPIAware", "USER32", "BOOL"),
			decl("GetProcessDpiAwareness", "SHCORE", "HRESULT",
				Param{Name: "hProcess", Type: "HANDLE"},
				Param{Name: "value", Type: "*PROCESS_DPI_AWARENESS"}),
			decl("SetThreadDpiAwarenessContext", "USER32", "DPI_AWARENESS_CONTEXT",
				Param{Name: "dpiContext", Type: "DPI_AWARENESS_CONTEXT"}),
		},
	}
}

func hasKind(err error, kind Kind) bool {
	for _, e := range multierr.Errors(err) {
		if ge, ok := e.(*Error); ok && ge.Kind == kind {
			return true
		}
	}
	return false
}

func TestGenerateDynamic(t *testing.T) {
	out, err := Generate(dpiBatch(), Options{})
	require.NoError(t, err)

	src := string(out.Dynamic)
	assert.True(t, strings.HasPrefix(src, "// Code generated by dynbindgen from dpi_decls.go. DO NOT EDIT.\n"))
	assert.Contains(t, src, "// Declarations digest: "+out.Digest)
	assert.Contains(t, src, "package hidpi\n")
	assert.Contains(t, src, `import "github.com/crgimenes/dynbind"`)

	assert.Equal(t, 1, strings.Count(src, `dynbind.Default().Library("user32.dll")`))
	assert.Equal(t, 1, strings.Count(src, `dynbind.Default().Library("shcore.dll")`))
	assert.Regexp(t, `libUser32\s+= dynbind.Default\(\).Library\("user32.dll"\)`, src)

	assert.Regexp(t, `procIsProcessDPIAware\s+= dynbind.NewBinding\[func\(\) int32\]\(libUser32, "IsProcessDPIAware"\)`, src)
	assert.Regexp(t, `procGetProcessDpiAwareness\s+= dynbind.NewBinding\[func\(hProcess uintptr, value \*int32\) int32\]\(libShcore, "GetProcessDpiAwareness"\)`, src)
	assert.Regexp(t, `procSetThreadDpiAwarenessContext\s+= dynbind.NewBinding\[func\(dpiContext uintptr\) uintptr\]\(libUser32, "SetThreadDpiAwarenessContext"\)`, src)

	assert.Equal(t, []string{"user32.dll", "shcore.dll"}, out.Libraries)
	assert.Equal(t, []string{
		"procIsProcessDPIAware",
		"procGetProcessDpiAwareness",
		"procSetThreadDpiAwarenessContext",
	}, out.Bindings)
}

func TestGenerateStatic(t *testing.T) {
	out, err := Generate(dpiBatch(), Options{})
	require.NoError(t, err)

	src := string(out.Static)
	assert.Contains(t, src, "//go:build windows && cgo && dynbind_static\n")
	assert.Contains(t, src, "#cgo LDFLAGS: -luser32 -lshcore\n")
	assert.Contains(t, src, "int32_t __stdcall IsProcessDPIAware(void);")
	assert.Contains(t, src, "int32_t __stdcall GetProcessDpiAwareness(uintptr_t, int32_t*);")
	assert.Contains(t, src, `import "unsafe"`)
	assert.Contains(t, src, "func linkedIsProcessDPIAware() int32 {\n\treturn int32(C.IsProcessDPIAware())\n}")
	assert.Contains(t, src, "func linkedGetProcessDpiAwareness(hProcess uintptr, value *int32) int32 {\n"+
		"\treturn int32(C.GetProcessDpiAwareness(C.uintptr_t(hProcess), (*C.int32_t)(unsafe.Pointer(value))))\n}")
}

func TestGenerateStaticCABIAndVoid(t *testing.T) {
	batch := Batch{
		Package: "libc",
		Source:  "libc.hcl",
		Functions: []FunctionDeclaration{
			{Name: "srand", Libraries: []string{"LIBC"}, ABI: ABIC, Params: []Param{{Name: "seed", Type: "UINT"}}},
		},
	}
	out, err := Generate(batch, Options{
		Libraries: map[string]LibrarySpec{"LIBC": {Name: "libc.so.6", Link: "c"}},
		StaticTag: "linkstatic",
	})
	require.NoError(t, err)

	src := string(out.Static)
	assert.Contains(t, src, "//go:build cgo && linkstatic\n")
	assert.Contains(t, src, "void srand(uint32_t);")
	assert.Contains(t, src, "func linkedsrand(seed uint32) {\n\tC.srand(C.uint32_t(seed))\n}")
	assert.NotContains(t, src, "unsafe")
	assert.Regexp(t, `procsrand\s+= dynbind.NewBinding\[func\(seed uint32\)\]\(libLibc, "srand"\)`, string(out.Dynamic))
}

func TestGenerateSharesEntryAcrossTagsForSameLibrary(t *testing.T) {
	batch := Batch{
		Package: "win",
		Functions: []FunctionDeclaration{
			decl("A", "USER32", "BOOL"),
			decl("B", "WIN32U", "BOOL"),
		},
	}
	libs := map[string]LibrarySpec{
		"USER32": {Name: "user32.dll", Link: "user32"},
		"WIN32U": {Name: "user32.dll", Link: "user32"},
	}
	out, err := Generate(batch, Options{Libraries: libs, Prefix: "dyn"})
	require.NoError(t, err)

	src := string(out.Dynamic)
	assert.Equal(t, 1, strings.Count(src, "Library("))
	assert.Equal(t, []string{"user32.dll"}, out.Libraries)
	assert.Regexp(t, `dynB\s+= dynbind.NewBinding\[func\(\) int32\]\(libUser32, "B"\)`, src)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(dpiBatch(), Options{})
	require.NoError(t, err)
	b, err := Generate(dpiBatch(), Options{})
	require.NoError(t, err)

	assert.Equal(t, a.Dynamic, b.Dynamic)
	assert.Equal(t, a.Static, b.Static)
	assert.Equal(t, a.Digest, b.Digest)

	changed := dpiBatch()
	changed.Functions[0].Result = "INT"
	c, err := Generate(changed, Options{})
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, c.Digest)
}

func TestGenerateEmptyBatch(t *testing.T) {
	out, err := Generate(Batch{Package: "empty"}, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out.Dynamic), "package empty")
	assert.NotContains(t, string(out.Dynamic), "import")
	assert.Empty(t, out.Bindings)
}

func TestGenerateRejectsBatch(t *testing.T) {
	many := make([]Param, maxParams+1)
	for i := range many {
		many[i] = Param{Type: "UINT"}
	}

	tests := []struct {
		name string
		fn   FunctionDeclaration
		kind Kind
	}{
		{"zero tags", decl("NoTag", "", "BOOL"), KindMissingLibrary},
		{"two tags", FunctionDeclaration{Name: "Two", Libraries: []string{"USER32", "SHCORE"}, ABI: ABISystem}, KindMultipleLibraries},
		{"unknown tag", decl("Unknown", "NTDLL", "BOOL"), KindUnknownLibrary},
		{"unsupported param", decl("Rect", "USER32", "BOOL", Param{Name: "r", Type: "RECT"}), KindUnsupportedType},
		{"void param", decl("Void", "USER32", "BOOL", Param{Name: "v", Type: "VOID"}), KindUnsupportedType},
		{"double pointer", decl("PP", "USER32", "BOOL", Param{Name: "p", Type: "**UINT"}), KindUnsupportedType},
		{"multiple results", decl("Multi", "USER32", "(BOOL, BOOL)"), KindUnsupportedType},
		{"variadic", FunctionDeclaration{Name: "Var", Libraries: []string{"USER32"}, ABI: ABIC, Variadic: true}, KindUnsupportedSignature},
		{"too many params", decl("Many", "USER32", "BOOL", many...), KindUnsupportedSignature},
		{"bad abi", FunctionDeclaration{Name: "Fast", Libraries: []string{"USER32"}, ABI: "fastcall"}, KindInvalid},
		{"bad name", decl("not-ident", "USER32", "BOOL"), KindInvalid},
		{"bad param name", decl("BadParam", "USER32", "BOOL", Param{Name: "1x", Type: "UINT"}), KindInvalid},
		{"duplicate param", decl("Dup", "USER32", "BOOL", Param{Name: "a", Type: "UINT"}, Param{Name: "a", Type: "UINT"}), KindInvalid},
		{"param takes a generated name", decl("Gen", "USER32", "BOOL", Param{Name: "p1", Type: "UINT"}, Param{Type: "UINT"}), KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := dpiBatch()
			batch.Functions = append(batch.Functions, tt.fn)

			out, err := Generate(batch, Options{})
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, hasKind(err, tt.kind), "want %s in %v", tt.kind, err)
			assert.ErrorIs(t, err, &Error{Kind: tt.kind})
		})
	}
}

func TestGenerateReportsEveryProblem(t *testing.T) {
	batch := Batch{
		Package: "hidpi",
		Functions: []FunctionDeclaration{
			decl("A", "", "BOOL"),
			decl("B", "NTDLL", "BOOL"),
			decl("A", "USER32", "BOOL"),
		},
	}
	out, err := Generate(batch, Options{})
	require.Error(t, err)
	assert.Nil(t, out)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)
	assert.True(t, hasKind(err, KindMissingLibrary))
	assert.True(t, hasKind(err, KindUnknownLibrary))
	assert.True(t, hasKind(err, KindDuplicateFunction))
	assert.Contains(t, err.Error(), "decls.go:1")
}

func TestGenerateRejectsBadPackage(t *testing.T) {
	_, err := Generate(Batch{Package: "my-pkg"}, Options{})
	assert.True(t, hasKind(err, KindInvalid))
}

func TestGenerateFromParsedSource(t *testing.T) {
	batch, err := ParseGoSource("dpi_decls.go", []byte(goDecls))
	require.NoError(t, err)

	out, err := Generate(batch, Options{})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, hasKind(err, KindMultipleLibraries))
	assert.True(t, hasKind(err, KindMissingLibrary))
	assert.True(t, hasKind(err, KindUnsupportedSignature))
}

// runtimeStub declares the part of the dynbind API generated files use.
const runtimeStub = `package dynbind

type Library struct{}

type Registry struct{}

func Default() *Registry { return nil }

func (*Registry) Library(name string) *Library { return nil }

type Binding[F any] struct{}

func NewBinding[F any](lib *Library, symbol string) *Binding[F] { return nil }
`

type runtimeImporter struct {
	fset *token.FileSet
}

func (i runtimeImporter) Import(path string) (*types.Package, error) {
	switch path {
	case "unsafe":
		return types.Unsafe, nil
	case RuntimeImport:
		f, err := parser.ParseFile(i.fset, "dynbind.go", runtimeStub, 0)
		if err != nil {
			return nil, err
		}
		return (&types.Config{}).Check(RuntimeImport, i.fset, []*ast.File{f}, nil)
	}
	return nil, fmt.Errorf("unexpected import %q", path)
}

// typeCheck checks a generated file on its own. Calls into package C are
// accepted unchecked, the rest must be valid Go.
func typeCheck(name string, src []byte) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return err
	}
	conf := types.Config{Importer: runtimeImporter{fset: fset}, FakeImportC: true}
	_, err = conf.Check("generated", fset, []*ast.File{f}, nil)
	return err
}

func TestGeneratedSourceTypeChecks(t *testing.T) {
	libc := map[string]LibrarySpec{"LIBC": {Name: "libc.so.6", Link: "c"}}

	tests := []struct {
		name  string
		batch Batch
		opts  Options
	}{
		{"dpi", dpiBatch(), Options{}},
		{"c abi and void", Batch{Package: "libc", Functions: []FunctionDeclaration{
			{Name: "srand", Libraries: []string{"LIBC"}, ABI: ABIC, Params: []Param{{Name: "seed", Type: "UINT"}}},
		}}, Options{Libraries: libc}},
		{"pointer result", Batch{Package: "win", Functions: []FunctionDeclaration{
			decl("Counter", "KERNEL32", "*DWORD", Param{Type: "*DOUBLE"}),
		}}, Options{}},
		{"params named after types", Batch{Package: "win", Functions: []FunctionDeclaration{
			decl("F", "USER32", "INT",
				Param{Name: "int32", Type: "INT"},
				Param{Name: "uintptr", Type: "HWND"},
				Param{Name: "float64", Type: "DOUBLE"},
				Param{Name: "C", Type: "UINT"},
				Param{Name: "_", Type: "UINT"},
				Param{Type: "*FLOAT"}),
		}}, Options{}},
		{"prefix matches library var", Batch{Package: "win", Functions: []FunctionDeclaration{
			decl("User32", "USER32", "BOOL"),
			decl("Shcore", "SHCORE", "BOOL"),
		}}, Options{Prefix: "lib"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Generate(tt.batch, tt.opts)
			require.NoError(t, err)
			assert.NoError(t, typeCheck("dynamic.go", out.Dynamic), "%s", out.Dynamic)
			assert.NoError(t, typeCheck("static.go", out.Static), "%s", out.Static)
		})
	}
}

func TestGenerateRenamesShadowingParams(t *testing.T) {
	batch := Batch{Package: "win", Functions: []FunctionDeclaration{
		decl("F", "USER32", "INT", Param{Name: "int32", Type: "INT"}),
	}}
	out, err := Generate(batch, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out.Static), "func linkedF(p0 int32) int32 {\n\treturn int32(C.F(C.int32_t(p0)))\n}")
}

func TestGenerateLibraryVarYieldsToBinding(t *testing.T) {
	batch := Batch{Package: "win", Functions: []FunctionDeclaration{decl("User32", "USER32", "BOOL")}}
	out, err := Generate(batch, Options{Prefix: "lib"})
	require.NoError(t, err)

	src := string(out.Dynamic)
	assert.Regexp(t, `libUser322\s+= dynbind.Default\(\).Library\("user32.dll"\)`, src)
	assert.Regexp(t, `libUser32\s+= dynbind.NewBinding\[func\(\) int32\]\(libUser322, "User32"\)`, src)
}

func TestGenerateRejectsCollidingPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		fns    []FunctionDeclaration
	}{
		{"static wrapper prefix", "linked", []FunctionDeclaration{decl("A", "USER32", "BOOL")}},
		{"not an identifier", "my-", []FunctionDeclaration{decl("A", "USER32", "BOOL")}},
		{"binding spells a wrapper", "lin", []FunctionDeclaration{
			decl("A", "USER32", "BOOL"),
			decl("kedA", "USER32", "BOOL"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Generate(Batch{Package: "win", Functions: tt.fns}, Options{Prefix: tt.prefix})
			assert.Nil(t, out)
			assert.True(t, hasKind(err, KindInvalid), "want %s in %v", KindInvalid, err)
		})
	}
}

func TestGenerateRejectsDuplicateParamsFromSource(t *testing.T) {
	batch, err := ParseGoSource("decls.go", []byte(`package win

//dynbind:library USER32
func F(a, a UINT) BOOL
`))
	require.NoError(t, err)

	_, err = Generate(batch, Options{})
	require.Error(t, err)
	assert.True(t, hasKind(err, KindInvalid))
	assert.Contains(t, err.Error(), `parameters 0 and 1 are both named "a"`)
}
