// Package hidpi reports and adjusts DPI awareness on Windows through
// optional user32 and shcore entry points.
//
// Every entry point is bound lazily with dynbind, so the package loads on
// any Windows release and degrades tier by tier when newer functions are
// missing. On other platforms all bindings are unavailable and queries
// return the baseline answers.
package hidpi
