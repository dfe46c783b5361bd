package annotation

// Normalized is the result of peeling every wrapper layer off a descriptor.
type Normalized struct {
	// Base is the fully unwrapped descriptor.
	Base Type

	// Metadata accumulates Annotated metadata from the outermost layer
	// inward.
	Metadata []any

	// Wrappers records every wrapper kind encountered.
	Wrappers WrapperSet
}

// Unwrap peels wrapper layers off t until a non-wrapper descriptor remains,
// collecting metadata outermost-first and recording each wrapper kind seen.
// Nested wrappers all peel; a Required layer around an Annotated layer yields
// the innermost base with both kinds recorded. Non-wrapped descriptors return
// verbatim with empty metadata and wrappers. Unwrap never modifies its input
// and is idempotent on its own Base.
func Unwrap(t Type) Normalized {
	n := Normalized{Base: t}
	for {
		kind, ok := IsWrapper(n.Base.origin)
		if !ok {
			return n
		}
		inner, ok := n.Base.Carried()
		if !ok {
			// Wrapper without a carried type; nothing left to peel.
			return n
		}
		n.Wrappers = n.Wrappers.Add(kind)
		n.Metadata = append(n.Metadata, n.Base.meta...)
		n.Base = inner
	}
}
