package profile

// DefaultMaxDecompositions caps how many gana decompositions a profile
// retains; enumeration cost grows exponentially with line length.
const DefaultMaxDecompositions = 50

// Options configures Analyze.
type Options struct {
	// MaxDecompositions bounds the retained decompositions; values
	// below 1 fall back to the default.
	MaxDecompositions int
	// SkipDecompositions disables enumeration altogether.
	SkipDecompositions bool
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{MaxDecompositions: DefaultMaxDecompositions}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDecompositions sets the retention cap.
func WithMaxDecompositions(n int) Option {
	return func(o *Options) { o.MaxDecompositions = n }
}

// WithoutDecompositions skips gana enumeration, keeping Analyze cheap
// for paragraph-sized inputs.
func WithoutDecompositions() Option {
	return func(o *Options) { o.SkipDecompositions = true }
}
