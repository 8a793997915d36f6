// Package html provides a Normaliser for HTML pages. Tags, scripts and
// styles are removed and entities decoded, leaving the visible text.
package html
