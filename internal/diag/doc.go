// Package diag defines the diagnostic codes shared by the gridscript
// front end.
//
// The scanner records at most one lexical failure per scan and aborts on
// it, so this package deliberately carries no multi-diagnostic machinery
// (bags, severities, resynchronization): the data model is one Code plus a
// position, owned by the scanner. If multi-error tooling is ever desired,
// that is an architectural change to the scanner contract, not an
// extension of this package.
//
// Rendering lives in internal/diagfmt; this package is data only.
package diag
