//go:build darwin || freebsd || linux || windows

package dynbind

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// bindFunc points fptr, a pointer to a func variable, at the native code
// found at addr. This is the only place an address becomes callable: the
// Go signature is trusted to match the native one and is never checked
// against it. A signature purego cannot marshal is reported as
// ErrUnsupportedSignature instead of crashing the caller.
func bindFunc(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnsupportedSignature, r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
