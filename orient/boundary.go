package orient

// boundarySet holds the four (k-1)-mers a unitig can expose at its ends: the
// prefix and suffix of each orientation. The reverse orientation's prefix is
// the reverse complement of the forward suffix, and its suffix is the reverse
// complement of the forward prefix. Derived once per unitig; the forward
// signatures share the unitig's backing array.
type boundarySet struct {
	fwdPrefix, fwdSuffix string
	revPrefix, revSuffix string
}

// newBoundarySet derives the boundary signatures of seq for k.
//
// REQUIRES: len(seq) >= k.
func newBoundarySet(seq string, k int) boundarySet {
	fwdPrefix := seq[:k-1]
	fwdSuffix := seq[len(seq)-(k-1):]
	return boundarySet{
		fwdPrefix: fwdPrefix,
		fwdSuffix: fwdSuffix,
		revPrefix: reverseComplement(fwdSuffix),
		revSuffix: reverseComplement(fwdPrefix),
	}
}

// prefix returns the (k-1)-mer the unitig requires as a predecessor under o.
func (b boundarySet) prefix(o Orientation) string {
	if o == Forward {
		return b.fwdPrefix
	}
	return b.revPrefix
}

// suffix returns the (k-1)-mer the unitig provides to successors under o.
func (b boundarySet) suffix(o Orientation) string {
	if o == Forward {
		return b.fwdSuffix
	}
	return b.revSuffix
}

// signatures lists all (k-1)-mers a flip of this unitig can touch. The four
// entries are not necessarily distinct (palindromic boundaries).
func (b boundarySet) signatures() [4]string {
	return [4]string{b.fwdPrefix, b.fwdSuffix, b.revPrefix, b.revSuffix}
}
