package dynbind

import "errors"

// Reasons a binding ended up Unavailable. Resolve never reports them; they
// are exposed through Binding.Err for logging and diagnostics only.
var (
	ErrLibraryUnavailable   = errors.New("dynbind: library unavailable")
	ErrSymbolNotFound       = errors.New("dynbind: symbol not found")
	ErrUnsupportedSignature = errors.New("dynbind: unsupported function signature")
	ErrUnsupportedPlatform  = errors.New("dynbind: dynamic loading not supported on this platform")
)
