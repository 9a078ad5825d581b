package hidpi

//go:generate go run github.com/crgimenes/dynbind/cmd/dynbindgen -in dpi_decls.go
