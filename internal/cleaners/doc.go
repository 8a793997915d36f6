// Package cleaners contains TextCleaner implementations.
//
// Each subpackage implements the driven.TextCleaner interface.
// Cleaners are pure functions of their input and are safe for concurrent use.
//
// # Available Cleaners
//
//   - regex: collapses non-word runs, lowercases and drops stopwords
package cleaners
