// Package internalcheck holds repository policy tests for the cipher
// packages.
//
// The tests load the library packages with golang.org/x/tools/go/packages
// and walk their syntax trees to enforce two rules:
//
//   - cipher packages never panic: invalid keys are reported as errors, so
//     a panic in a transform is a bug by definition
//   - cipher packages never print: they are pure transforms with no I/O;
//     output belongs to the CLI and HTTP surfaces
//
// The package contains no production code.
package internalcheck
