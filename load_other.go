//go:build !darwin && !freebsd && !linux && !windows

package dynbind

type systemLoader struct{}

func (systemLoader) Open(string) (Handle, error) {
	return 0, ErrUnsupportedPlatform
}

func (systemLoader) Lookup(Handle, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func bindFunc(any, uintptr) error {
	return ErrUnsupportedPlatform
}
