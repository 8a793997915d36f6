// Package estimators provides the registry of TopicModel implementations.
//
// Estimators are selected by name at run time. Each subpackage implements
// driven.TopicModel:
//
//   - variational: online variational Bayes LDA (github.com/e-gun/nlp)
//   - gibbs: collapsed Gibbs sampling LDA over gonum matrices
package estimators
