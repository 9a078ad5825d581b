package bindgen

// ABI is the calling convention of a declared function.
type ABI string

const (
	// ABISystem is the platform API convention (stdcall on 32-bit Windows).
	ABISystem ABI = "system"
	// ABIC is the C convention.
	ABIC ABI = "c"
)

// Param is one declared parameter. Name may be empty.
type Param struct {
	Name string `validate:"omitempty,goident"`
	Type string
}

// FunctionDeclaration is one native function as written in the input.
// Libraries holds every library tag found on the declaration; exactly one is
// required, but front-ends keep them all so validation can report it.
type FunctionDeclaration struct {
	Name      string `validate:"goident"`
	Libraries []string
	Params    []Param `validate:"dive"`
	Variadic  bool
	// Result is the result type; empty means no result.
	Result string
	ABI    ABI `validate:"oneof=system c"`
	// Pos locates the declaration in its source, for error messages.
	Pos string
}

// Batch is an ordered set of declarations destined for one Go package.
type Batch struct {
	Package   string `validate:"goident"`
	Source    string
	Functions []FunctionDeclaration
}
