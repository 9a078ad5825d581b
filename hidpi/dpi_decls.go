//go:build ignore

package hidpi

//dynbind:library USER32
func IsProcessDPIAware() BOOL

//dynbind:library USER32
func SetProcessDPIAware() BOOL

//dynbind:library SHCORE
func GetProcessDpiAwareness(hProcess HANDLE, value *PROCESS_DPI_AWARENESS) HRESULT

//dynbind:library SHCORE
func SetProcessDpiAwareness(value PROCESS_DPI_AWARENESS) HRESULT

// Windows 10 1803.
//
//dynbind:library USER32
func GetDpiAwarenessContextForProcess(hProcess HANDLE) DPI_AWARENESS_CONTEXT

//dynbind:library USER32
func GetThreadDpiAwarenessContext() DPI_AWARENESS_CONTEXT

//dynbind:library USER32
func SetThreadDpiAwarenessContext(dpiContext DPI_AWARENESS_CONTEXT) DPI_AWARENESS_CONTEXT

//dynbind:library USER32
func GetAwarenessFromDpiAwarenessContext(value DPI_AWARENESS_CONTEXT) DPI_AWARENESS

//dynbind:library USER32
func AreDpiAwarenessContextsEqual(dpiContextA, dpiContextB DPI_AWARENESS_CONTEXT) BOOL

//dynbind:library USER32
func GetThreadDpiHostingBehavior() DPI_HOSTING_BEHAVIOR

//dynbind:library USER32
func SetThreadDpiHostingBehavior(value DPI_HOSTING_BEHAVIOR) DPI_HOSTING_BEHAVIOR

//dynbind:library USER32
func GetDpiForSystem() UINT

//dynbind:library USER32
func GetDpiForWindow(hwnd HWND) UINT
