// Package orient chooses, for each unitig of a genome assembly, the strand
// (forward or reverse complement) to emit so that as many unitigs as possible
// begin with a (k-1)-mer that some other unitig ends with. Every unitig whose
// leading (k-1)-mer has no such predecessor forces a downstream BWT-style
// k-mer index to synthesize padding ("dummy") entries, so minimizing their
// number shrinks the index.
package orient

import "fmt"

// Unitig is one input sequence. ID is the stable input-order index assigned
// by the caller. Seq must be uppercase ACGT and at least Opts.K bases long;
// it is never mutated.
type Unitig struct {
	ID  int
	Seq string
}

// Orientation is the per-unitig choice of strand for output.
type Orientation uint8

const (
	// Forward emits the sequence as stored. It is the initial state of every
	// unitig.
	Forward Orientation = iota
	// Reverse emits the reverse complement of the stored sequence.
	Reverse
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Forward {
		return Reverse
	}
	return Forward
}

func (o Orientation) String() string {
	if o == Forward {
		return "forward"
	}
	return "reverse"
}

// UnitigTooShortError reports a unitig shorter than the k-mer length. A
// unitig must span at least one full k-mer.
type UnitigTooShortError struct {
	ID     int
	Length int
	K      int
}

func (e *UnitigTooShortError) Error() string {
	return fmt.Sprintf("unitig %d: length %d is shorter than k=%d", e.ID, e.Length, e.K)
}

// InvalidBaseError reports a sequence byte outside {A,C,G,T}. Ambiguity-code
// normalization is the caller's job.
type InvalidBaseError struct {
	ID   int
	Pos  int
	Base byte
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("unitig %d: invalid base %q at position %d", e.ID, e.Base, e.Pos)
}

// validateUnitigs checks every input before any optimization state is built,
// so a failure leaves no partial state behind.
func validateUnitigs(unitigs []Unitig, k int) error {
	for _, u := range unitigs {
		if len(u.Seq) < k {
			return &UnitigTooShortError{ID: u.ID, Length: len(u.Seq), K: k}
		}
		for i := 0; i < len(u.Seq); i++ {
			if !validBase[u.Seq[i]] {
				return &InvalidBaseError{ID: u.ID, Pos: i, Base: u.Seq[i]}
			}
		}
	}
	return nil
}
