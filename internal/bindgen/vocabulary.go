package bindgen

import (
	"fmt"
	"strings"
)

// LibrarySpec describes the library behind a tag: the name handed to the OS
// loader at run time and the linker name used by the static file.
type LibrarySpec struct {
	Name string
	Link string
}

// DefaultLibraries is the tag table known to the generator.
var DefaultLibraries = map[string]LibrarySpec{
	"USER32":   {Name: "user32.dll", Link: "user32"},
	"SHCORE":   {Name: "shcore.dll", Link: "shcore"},
	"KERNEL32": {Name: "kernel32.dll", Link: "kernel32"},
	"GDI32":    {Name: "gdi32.dll", Link: "gdi32"},
}

// maxParams is the largest argument count purego can pass.
const maxParams = 15

type scalar struct {
	goType string
	cType  string
}

var scalars = map[string]scalar{
	"BOOL":                  {"int32", "int32_t"},
	"INT":                   {"int32", "int32_t"},
	"UINT":                  {"uint32", "uint32_t"},
	"DWORD":                 {"uint32", "uint32_t"},
	"LONG":                  {"int32", "int32_t"},
	"HRESULT":               {"int32", "int32_t"},
	"HANDLE":                {"uintptr", "uintptr_t"},
	"HWND":                  {"uintptr", "uintptr_t"},
	"HMONITOR":              {"uintptr", "uintptr_t"},
	"HINSTANCE":             {"uintptr", "uintptr_t"},
	"UINT_PTR":              {"uintptr", "uintptr_t"},
	"DPI_AWARENESS":         {"int32", "int32_t"},
	"DPI_AWARENESS_CONTEXT": {"uintptr", "uintptr_t"},
	"DPI_HOSTING_BEHAVIOR":  {"int32", "int32_t"},
	"PROCESS_DPI_AWARENESS": {"int32", "int32_t"},
	"FLOAT":                 {"float32", "float"},
	"DOUBLE":                {"float64", "double"},
}

// nativeType is a declared type mapped to its Go and C spellings. The zero
// value is the empty result.
type nativeType struct {
	Go      string
	C       string
	Pointer bool
}

// Void reports whether t is the empty result.
func (t nativeType) Void() bool {
	return t.Go == ""
}

// resolveType maps a declared type name to Go and C. VOID and the empty
// string are accepted only as results; a single level of pointer is allowed
// on scalar types.
func resolveType(name string, result bool) (nativeType, error) {
	if name == "" || name == "VOID" {
		if result {
			return nativeType{}, nil
		}
		return nativeType{}, fmt.Errorf("VOID is only valid as a result")
	}
	if elem, ok := strings.CutPrefix(name, "*"); ok {
		s, ok := scalars[elem]
		if !ok {
			return nativeType{}, fmt.Errorf("cannot point to %q", elem)
		}
		return nativeType{Go: "*" + s.goType, C: s.cType + "*", Pointer: true}, nil
	}
	s, ok := scalars[name]
	if !ok {
		return nativeType{}, fmt.Errorf("%q is not a supported type", name)
	}
	return nativeType{Go: s.goType, C: s.cType}, nil
}
