// Package normalisers turns uploaded files into documents. Each
// sub-package implements driven.Normaliser for one family of formats;
// the Registry here dispatches a file to the best normaliser for its
// MIME type.
//
// Normalisers are registered with the Registry at startup.
package normalisers
