//go:build darwin || freebsd || linux

package dynbind

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// systemLoader resolves libraries through dlopen, so the dynamic linker's
// own search rules (LD_LIBRARY_PATH, rpath, DYLD_* and friends) apply.
type systemLoader struct{}

func (systemLoader) Open(name string) (Handle, error) {
	h, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("dynbind: failed to load %s: %w", name, err)
	}
	if h == 0 {
		return 0, fmt.Errorf("dynbind: %s: %w", name, ErrLibraryUnavailable)
	}
	return Handle(h), nil
}

func (systemLoader) Lookup(lib Handle, name string) (uintptr, error) {
	ptr, err := purego.Dlsym(uintptr(lib), name)
	if err != nil {
		return 0, fmt.Errorf("dynbind: failed to load symbol %s: %w", name, err)
	}
	return ptr, nil
}
