// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Pipeline Interfaces
//
// These must be provided for a topic modelling run:
//
//   - TextCleaner: Normalises raw text into a token stream
//   - CorpusVectoriser: Builds the vocabulary and document-term matrix
//   - TopicModel: Fits LDA and produces a FittedModel
//   - TopicModelRegistry: Selects a TopicModel by estimator name
//
// # Collaborator Interfaces
//
//   - Normaliser / NormaliserRegistry: Decode uploaded files into documents
//   - PostProcessor / PostProcessorPipeline: Reshape ingested documents
//   - StopwordSource: Built-in and user-supplied stopword lists
//   - ChartRenderer: Draws the average topic distribution
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, estimator, or normaliser package
package driven
