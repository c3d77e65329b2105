package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color tints the header and caret. The byte layout of the rendered
	// text stays identical either way — downstream tooling matches the
	// plain form exactly.
	Color bool
}
