// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentIO: Opens PDFs, counts pages, copies page subsets, merges
//     documents. Backed by pdfcpu in production and by a plain-text fake
//     in tests.
//
//   - ConfigStore: Persists the configurable output names and prefixes.
//     Backed by a TOML file.
//
//   - RecipeStore: Loads assembly recipes. Backed by TOML files.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
