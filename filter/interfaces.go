package filter

// Filter decides whether a movie or show, flattened into an Item, is kept.
type Filter interface {
	Evaluate(item Item) bool
}

// CompiledFilter is a Filter built from an expression.
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the evaluation error reported.
	Match(item Item) (bool, error)

	// Expression is the source text the filter was compiled from.
	Expression() string
}

// Compiler turns expressions into filters.
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler is a Compiler that reuses filters for repeated expressions.
type CachingCompiler interface {
	Compiler
	Clear()
	Size() int
}
