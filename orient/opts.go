package orient

// Opts configures a single orientation-selection run.
type Opts struct {
	// K is the k-mer length of the downstream index. Adjacent unitigs overlap
	// by K-1 bases, so boundary signatures have length K-1. Must be >= 2.
	K int

	// MaxPasses caps the number of full passes the optimizer makes over the
	// unitigs. Every accepted flip strictly decreases the dummy count, so the
	// cap is a structural guard only; runs converge long before it.
	MaxPasses int

	// PedanticChecks recomputes the dummy count from scratch after every pass
	// and panics if it diverges from the incrementally maintained value. For
	// tests and debugging only.
	PedanticChecks bool
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	K:         31, // -k
	MaxPasses: 50, // -max-passes
}
