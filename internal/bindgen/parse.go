package bindgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// ParseFile reads a declaration file, choosing the front-end by extension:
// .go for directive-annotated Go source, .hcl for HCL.
func ParseFile(path string) (Batch, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("read declarations: %w", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".go":
		return ParseGoSource(path, src)
	case ".hcl":
		return ParseHCL(path, src)
	default:
		return Batch{}, &Error{Kind: KindParse, Pos: path, Detail: fmt.Sprintf("unknown declaration format %q", ext)}
	}
}
