package dynbind

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// systemLoader uses LoadLibrary with the name unchanged, leaving the DLL
// search order entirely to the Windows loader.
type systemLoader struct{}

func (systemLoader) Open(name string) (Handle, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, fmt.Errorf("dynbind: failed to load %s: %w", name, err)
	}
	return Handle(h), nil
}

func (systemLoader) Lookup(lib Handle, name string) (uintptr, error) {
	ptr, err := windows.GetProcAddress(windows.Handle(lib), name)
	if err != nil {
		return 0, fmt.Errorf("dynbind: failed to load symbol %s: %w", name, err)
	}
	return ptr, nil
}
