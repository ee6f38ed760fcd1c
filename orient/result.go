package orient

// Result is the outcome of one orientation-selection run.
type Result struct {
	// Orientations[i] is the chosen strand for the i-th input unitig.
	Orientations []Orientation
	// Stats summarizes the run for reporting.
	Stats Stats
}

// Sequences materializes the final sequences in input order: the stored
// sequence for Forward unitigs, its reverse complement for Reverse ones. The
// inputs are never mutated.
func (r *Result) Sequences(unitigs []Unitig) []string {
	seqs := make([]string, len(unitigs))
	for i, u := range unitigs {
		seqs[i] = Sequence(u, r.Orientations[i])
	}
	return seqs
}

// Sequence returns the sequence of u as emitted under orientation o. The
// reverse complement is computed at emission time.
func Sequence(u Unitig, o Orientation) string {
	if o == Reverse {
		return reverseComplement(u.Seq)
	}
	return u.Seq
}
