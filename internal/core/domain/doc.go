// Package domain defines the core entities for cleanpaste.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: the immutable input text for one invocation
//   - TransformConfig: the independent options selecting pipeline stages
//   - TransformResult: the transformed text plus size metrics
//   - AppSettings: the persisted user preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
