package dynbind

import "reflect"

func reflectPointer(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
