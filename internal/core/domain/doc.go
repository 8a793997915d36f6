// Package domain defines the core entities of a topic modelling run.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: raw text supplied by a collaborator plus its cleaned form
//   - StopwordSet: words dropped during cleaning
//   - Vocabulary: ordered terms with stable column indices
//   - DocumentTermMatrix / DocumentTopicMatrix: dense row-major matrices
//   - TopicReport: top words per topic and the average topic distribution
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
