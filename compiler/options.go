package compiler

import "github.com/katalvlaran/vecc/library"

// Options holds the pipeline toggles a caller can disable, all on by
// default (the --no-elim/--no-reduce/--no-mangle CLI flags negate them).
type Options struct {
	reduce    bool
	eliminate bool
	mangle    bool
	libRoot   string
	libParser library.Parser
}

// Option configures a Compile call.
type Option func(*Options)

// defaultOptions returns every pass enabled and no library search path.
func defaultOptions() Options {
	return Options{reduce: true, eliminate: true, mangle: true}
}

// WithNoReduce disables the constant-propagation/folding pass.
func WithNoReduce() Option {
	return func(o *Options) { o.reduce = false }
}

// WithNoElim disables the dead-code elimination pass.
func WithNoElim() Option {
	return func(o *Options) { o.eliminate = false }
}

// WithNoMangle disables the identifier-mangling pass.
func WithNoMangle() Option {
	return func(o *Options) { o.mangle = false }
}

// WithLibraryPath configures the filesystem root and Src parser package
// library.Loader uses to resolve `using` statements. The parser is the
// caller's — the Src grammar parser is an external collaborator that
// package expand and package library never implement themselves. A
// program containing `using` with no library path configured fails with
// expand.ErrNoLibraryLoader.
func WithLibraryPath(root string, parser library.Parser) Option {
	return func(o *Options) {
		o.libRoot = root
		o.libParser = parser
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
