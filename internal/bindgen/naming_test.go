package bindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"GetUser", "get_user"},
		{"GetUserByID", "get_user_by_id"},
		{"ID", "id"},
		{"HTMLParser", "html_parser"},
		{"Simple", "simple"},
		{"A", "a"},
		{"getUser", "get_user"},
		{"DpiDecls", "dpi_decls"},
		{"dpi_decls", "dpi_decls"},
		{"IsProcessDPIAware", "is_process_dpi_aware"},
		{"", ""},
		{"ABC", "abc"},
		{"ABCDef", "abc_def"},
		{"XMLHTTPRequest", "xmlhttp_request"},
		{"a", "a"},
		{"aB", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := camelToSnake(tt.input)
			if got != tt.want {
				t.Errorf("camelToSnake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputNames(t *testing.T) {
	tests := []struct {
		source      string
		wantDynamic string
		wantStatic  string
	}{
		{"dpi_decls.go", "zdpi_dynbind.go", "zdpi_dynbind_static.go"},
		{"hidpi/DpiDecls.hcl", "zdpi_dynbind.go", "zdpi_dynbind_static.go"},
		{"user32.hcl", "zuser32_dynbind.go", "zuser32_dynbind_static.go"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			dynamic, static := OutputNames(tt.source)
			assert.Equal(t, tt.wantDynamic, dynamic)
			assert.Equal(t, tt.wantStatic, static)
		})
	}
}

func TestExportName(t *testing.T) {
	assert.Equal(t, "User32", exportName("USER32"))
	assert.Equal(t, "Shcore", exportName("SHCORE"))
	assert.Equal(t, "MyLib", exportName("MY_LIB"))
	assert.Equal(t, "Libc", exportName("libc"))
}

func TestParamName(t *testing.T) {
	assert.Equal(t, "hWnd", paramName("hWnd", 0))
	assert.Equal(t, "p1", paramName("", 1))
	assert.Equal(t, "p2", paramName("C", 2))
	assert.Equal(t, "p0", paramName("unsafe", 0))
	assert.Equal(t, "p3", paramName("int32", 3))
	assert.Equal(t, "p1", paramName("uintptr", 1))
	assert.Equal(t, "p0", paramName("_", 0))
}
