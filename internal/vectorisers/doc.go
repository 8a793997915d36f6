// Package vectorisers contains CorpusVectoriser implementations.
//
// # Available Vectorisers
//
//   - count: raw term counts over a whitespace-tokenised corpus
package vectorisers
