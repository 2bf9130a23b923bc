// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Stage: One text transformation step
//   - StagePipeline: An ordered chain of stages
//   - StageFactory: Builds the pipeline for a TransformConfig
//   - ConfigStore: Settings persistence (TOML file or memory)
//   - TextExtractor: Converts one input format (HTML, Markdown) to plain text
//   - ExtractorRegistry: Selects an extractor by format, extension or content
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Clipboard: System clipboard. Without it, copy actions report a warning.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or stage package
package driven
