package bindgen

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// OutputNames derives the generated file names from a declaration file
// name: "dpi_decls.go" and "DpiDecls.hcl" both give "zdpi_dynbind.go" and
// "zdpi_dynbind_static.go".
func OutputNames(source string) (dynamic, static string) {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = camelToSnake(base)
	base = strings.TrimSuffix(base, "_decls")
	return "z" + base + "_dynbind.go", "z" + base + "_dynbind_static.go"
}

// camelToSnake converts a CamelCase name to snake_case.
// Example: "GetUserByID" -> "get_user_by_id"
func camelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Insert underscore before uppercase runs, but not at the start.
			if i > 0 {
				prev := runes[i-1]
				// Keep acronyms together ("ID") but split where a run ends
				// in a new word ("HTMLParser" -> "html_parser").
				if unicode.IsLower(prev) {
					b.WriteRune('_')
				} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) && prev != '_' {
					b.WriteRune('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// exportName turns a library tag into a Go name fragment: "USER32" ->
// "User32", "MY_LIB" -> "MyLib".
func exportName(tag string) string {
	var b strings.Builder
	for part := range strings.SplitSeq(tag, "_") {
		if part == "" {
			continue
		}
		part = strings.ToLower(part)
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func uniqueName(base string, used map[string]bool) string {
	name := base
	for i := 2; used[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	used[name] = true
	return name
}

// reservedParams are identifiers the generated files refer to inside a
// function body. A parameter with one of these names would shadow it.
var reservedParams = func() map[string]bool {
	m := map[string]bool{"": true, "_": true, "C": true, "unsafe": true, "dynbind": true}
	for _, s := range scalars {
		m[s.goType] = true
	}
	return m
}()

// paramName keeps the declared name unless it is missing or would shadow a
// package or type the generated files use.
func paramName(name string, i int) string {
	if reservedParams[name] {
		return fmt.Sprintf("p%d", i)
	}
	return name
}
