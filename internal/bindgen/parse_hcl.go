package bindgen

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level structure of an HCL declaration file.
type hclFile struct {
	Package   string         `hcl:"package,optional"`
	Functions []*hclFunction `hcl:"function,block"`
}

// hclFunction is a `function "Name" { ... }` block. Library is kept as an
// expression so that a missing attribute, a single tag and a list of tags
// can all be told apart.
type hclFunction struct {
	Name    string         `hcl:"name,label"`
	Library hcl.Expression `hcl:"library,optional"`
	ABI     string         `hcl:"abi,optional"`
	Result  string         `hcl:"result,optional"`
	Params  []*hclParam    `hcl:"param,block"`
}

type hclParam struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
}

// ParseHCL reads function blocks from an HCL file:
//
//	package = "hidpi"
//
//	function "GetProcessDpiAwareness" {
//	  library = SHCORE
//	  param "hProcess" { type = "HANDLE" }
//	  param "value" { type = "*PROCESS_DPI_AWARENESS" }
//	  result = "HRESULT"
//	}
//
// Library tags may be written bare or quoted.
func ParseHCL(filename string, src []byte) (Batch, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Batch{}, &Error{Kind: KindParse, Pos: filename, Cause: diags}
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Batch{}, &Error{Kind: KindParse, Pos: filename, Cause: diags}
	}

	batch := Batch{
		Package: parsed.Package,
		Source:  filepath.Base(filename),
	}
	for _, f := range parsed.Functions {
		rng := f.Library.Range()
		fn := FunctionDeclaration{
			Name:   f.Name,
			ABI:    ABI(f.ABI),
			Result: f.Result,
			Pos:    fmt.Sprintf("%s:%d:%d", rng.Filename, rng.Start.Line, rng.Start.Column),
		}
		if fn.ABI == "" {
			fn.ABI = ABISystem
		}
		tags, err := libraryTags(f.Library, tagEvalContext(f.Library))
		if err != nil {
			return Batch{}, &Error{Kind: KindParse, Function: f.Name, Pos: fn.Pos, Cause: err}
		}
		fn.Libraries = tags
		for _, p := range f.Params {
			fn.Params = append(fn.Params, Param{Name: p.Name, Type: p.Type})
		}
		batch.Functions = append(batch.Functions, fn)
	}
	return batch, nil
}

// tagEvalContext binds each bare name in expr to a string of itself, so
// `library = USER32` reads like the quoted tag. Whether a tag is known is
// decided by Generate against its tag table, not here.
func tagEvalContext(expr hcl.Expression) *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, tr := range expr.Variables() {
		name := tr.RootName()
		vars[name] = cty.StringVal(name)
	}
	return &hcl.EvalContext{Variables: vars}
}

// libraryTags flattens the library attribute: null yields no tags, a string
// one tag, a list or tuple of strings one tag per element.
func libraryTags(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	v, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return []string{v.AsString()}, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		var tags []string
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()
			if el.IsNull() || el.Type() != cty.String {
				return nil, fmt.Errorf("library tags must be strings, got %s", el.Type().FriendlyName())
			}
			tags = append(tags, el.AsString())
		}
		return tags, nil
	default:
		return nil, fmt.Errorf("library must be a tag or a list of tags, got %s", ty.FriendlyName())
	}
}
