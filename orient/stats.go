package orient

// Stats represents high-level statistics of one orientation-selection run.
type Stats struct {
	// InitialDummies is the dummy count of the all-Forward assignment.
	InitialDummies int
	// FinalDummies is the dummy count of the returned assignment.
	FinalDummies int
	// Flips is the total number of orientation flips applied.
	Flips int
	// Passes is the number of full passes executed over the unitigs.
	Passes int
	// Converged reports whether the run reached a local optimum (a full pass
	// applying zero flips) before the pass cap.
	Converged bool
}
