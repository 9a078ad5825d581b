// Package bindgen turns a batch of annotated native function declarations
// into Go source.
//
// Declarations come from either a Go file of body-less functions carrying
// //dynbind:library directives (ParseGoSource) or an HCL file of function
// blocks (ParseHCL). Generate validates the whole batch first and, only if
// every declaration is sound, emits two files:
//
//   - a dynamic file with one dynbind.Binding per function, where functions
//     that name the same library share a single registry entry;
//   - a static cgo file with C prototypes and thin wrappers, for callers that
//     accept a load-time dependency on the library.
//
// Any problem in any declaration fails the batch and nothing is emitted.
package bindgen
