package bindgen

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/tools/imports"
)

// RuntimeImport is the import path of the dynbind runtime package.
const RuntimeImport = "github.com/crgimenes/dynbind"

// linkedPrefix names the static wrappers. Binding vars share the package
// with them, so it cannot be used as the binding prefix.
const linkedPrefix = "linked"

// Options tunes generation. The zero value uses DefaultLibraries, the
// "proc" binding prefix and the "dynbind_static" build tag.
type Options struct {
	// Libraries replaces the tag table. Tags are matched exactly.
	Libraries map[string]LibrarySpec
	// Prefix is prepended to every function name to form its binding var.
	Prefix string
	// StaticTag is the build constraint guarding the static file.
	StaticTag string
}

func (o Options) withDefaults() Options {
	if o.Libraries == nil {
		o.Libraries = DefaultLibraries
	}
	if o.Prefix == "" {
		o.Prefix = "proc"
	}
	if o.StaticTag == "" {
		o.StaticTag = "dynbind_static"
	}
	return o
}

// Output is the result of a successful generation.
type Output struct {
	// Dynamic declares the lazy bindings.
	Dynamic []byte
	// Static declares cgo-linked wrappers named linked<Name>.
	Static []byte
	// Digest is the hex blake2b-256 of the canonical batch.
	Digest string
	// Libraries lists the distinct library names in first-use order.
	Libraries []string
	// Bindings lists the generated binding var names in declaration order.
	Bindings []string
}

type libraryModel struct {
	Var  string
	Name string
	Link string
}

type paramModel struct {
	Name string
	Type nativeType
}

type functionModel struct {
	Name   string
	Var    string
	Linked string
	LibVar string
	ABI    ABI
	Params []paramModel
	Result nativeType
}

// FuncType is the Go func type of the binding.
func (f functionModel) FuncType() string {
	var b strings.Builder
	b.WriteString("func(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte(' ')
		b.WriteString(p.Type.Go)
	}
	b.WriteByte(')')
	if !f.Result.Void() {
		b.WriteByte(' ')
		b.WriteString(f.Result.Go)
	}
	return b.String()
}

// Prototype is the C prototype used by the static file.
func (f functionModel) Prototype() string {
	var b strings.Builder
	if f.Result.Void() {
		b.WriteString("void")
	} else {
		b.WriteString(f.Result.C)
	}
	if f.ABI == ABISystem {
		b.WriteString(" __stdcall")
	}
	b.WriteByte(' ')
	b.WriteString(f.Name)
	b.WriteByte('(')
	if len(f.Params) == 0 {
		b.WriteString("void")
	}
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type.C)
	}
	b.WriteString(");")
	return b.String()
}

// Signature is the Go func type of the binding.
func (f functionModel) Signature() string {
	return strings.TrimPrefix(f.FuncType(), "func")
}

// Body is the statement the static wrapper runs: the cgo call with every
// argument and the result converted between Go and C types.
func (f functionModel) Body() string {
	args := make([]string, len(f.Params))
	for i, p := range f.Params {
		if p.Type.Pointer {
			elem := strings.TrimSuffix(p.Type.C, "*")
			args[i] = fmt.Sprintf("(*C.%s)(unsafe.Pointer(%s))", elem, p.Name)
		} else {
			args[i] = fmt.Sprintf("C.%s(%s)", p.Type.C, p.Name)
		}
	}
	call := fmt.Sprintf("C.%s(%s)", f.Name, strings.Join(args, ", "))
	switch {
	case f.Result.Void():
		return call
	case f.Result.Pointer:
		return fmt.Sprintf("return (%s)(unsafe.Pointer(%s))", f.Result.Go, call)
	default:
		return fmt.Sprintf("return %s(%s)", f.Result.Go, call)
	}
}

type fileModel struct {
	Source    string
	Digest    string
	Package   string
	Import    string
	BuildTag  string
	LDFlags   string
	Unsafe    bool
	Libraries []libraryModel
	Functions []functionModel
}

// Generate validates batch and renders both files. If any declaration is
// invalid the returned error lists every problem and no output is produced.
func Generate(batch Batch, opts Options) (*Output, error) {
	opts = opts.withDefaults()
	if err := validateBatch(batch, opts); err != nil {
		return nil, err
	}

	model := buildModel(batch, opts)
	dynamic, err := render(dynamicTemplate, model, "dynamic")
	if err != nil {
		return nil, err
	}
	static, err := render(staticTemplate, model, "static")
	if err != nil {
		return nil, err
	}

	out := &Output{
		Dynamic: dynamic,
		Static:  static,
		Digest:  model.Digest,
	}
	for _, lib := range model.Libraries {
		out.Libraries = append(out.Libraries, lib.Name)
	}
	for _, fn := range model.Functions {
		out.Bindings = append(out.Bindings, fn.Var)
	}
	return out, nil
}

// buildModel groups functions by library name, so two tags for the same
// library, or many functions with one tag, share one registry entry.
func buildModel(batch Batch, opts Options) fileModel {
	m := fileModel{
		Source:  batch.Source,
		Digest:  digest(batch, opts),
		Package: batch.Package,
		Import:  RuntimeImport,
	}

	libVars := make(map[string]string)
	// Binding vars keep their names; library vars give way to them.
	usedVars := make(map[string]bool, len(batch.Functions))
	for _, fn := range batch.Functions {
		usedVars[opts.Prefix+fn.Name] = true
	}
	hasSystem := false
	var links []string
	for _, fn := range batch.Functions {
		spec := opts.Libraries[fn.Libraries[0]]
		libVar, ok := libVars[spec.Name]
		if !ok {
			libVar = uniqueName("lib"+exportName(fn.Libraries[0]), usedVars)
			libVars[spec.Name] = libVar
			m.Libraries = append(m.Libraries, libraryModel{Var: libVar, Name: spec.Name, Link: spec.Link})
			links = append(links, "-l"+spec.Link)
		}

		f := functionModel{
			Name:   fn.Name,
			Var:    opts.Prefix + fn.Name,
			Linked: linkedPrefix + fn.Name,
			LibVar: libVar,
			ABI:    fn.ABI,
		}
		f.Result, _ = resolveType(fn.Result, true)
		if f.Result.Pointer {
			m.Unsafe = true
		}
		for i, p := range fn.Params {
			t, _ := resolveType(p.Type, false)
			f.Params = append(f.Params, paramModel{Name: paramName(p.Name, i), Type: t})
			if t.Pointer {
				m.Unsafe = true
			}
		}
		if fn.ABI == ABISystem {
			hasSystem = true
		}
		m.Functions = append(m.Functions, f)
	}

	m.LDFlags = strings.Join(links, " ")
	m.BuildTag = "cgo && " + opts.StaticTag
	if hasSystem {
		m.BuildTag = "windows && " + m.BuildTag
	}
	return m
}

// digest hashes a canonical rendering of the batch and the tag table
// entries it uses, so any change that affects output changes the digest.
func digest(batch Batch, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\nprefix %s\ntag %s\n", batch.Package, opts.Prefix, opts.StaticTag)
	for _, fn := range batch.Functions {
		spec := opts.Libraries[fn.Libraries[0]]
		fmt.Fprintf(&b, "%s %s %s %s %s(", fn.Name, spec.Name, spec.Link, fn.ABI, fn.Result)
		for _, p := range fn.Params {
			fmt.Fprintf(&b, "%s %s,", p.Name, p.Type)
		}
		b.WriteString(")\n")
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func render(tmpl *template.Template, m fileModel, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("render %s file: %w", name, err)
	}
	src, err := imports.Process(name+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s file: %w", name, err)
	}
	return src, nil
}

var dynamicTemplate = template.Must(template.New("dynamic").Parse(`// Code generated by dynbindgen from {{.Source}}. DO NOT EDIT.
// Declarations digest: {{.Digest}}

package {{.Package}}
{{- if .Functions}}

import "{{.Import}}"

var (
{{- range .Libraries}}
	{{.Var}} = dynbind.Default().Library({{printf "%q" .Name}})
{{- end}}
)

var (
{{- range .Functions}}
	{{.Var}} = dynbind.NewBinding[{{.FuncType}}]({{.LibVar}}, {{printf "%q" .Name}})
{{- end}}
)
{{- end}}
`))

var staticTemplate = template.Must(template.New("static").Parse(`// Code generated by dynbindgen from {{.Source}}. DO NOT EDIT.
// Declarations digest: {{.Digest}}

//go:build {{.BuildTag}}

package {{.Package}}

/*
{{- if .LDFlags}}
#cgo LDFLAGS: {{.LDFlags}}
{{- end}}
#include <stdint.h>
{{range .Functions}}
{{.Prototype}}
{{- end}}
*/
import "C"
{{- if .Unsafe}}

import "unsafe"
{{- end}}
{{range .Functions}}
func {{.Linked}}{{.Signature}} {
	{{.Body}}
}
{{end}}`))
