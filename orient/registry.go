package orient

// bucket tracks the live contributions of all unitigs to one boundary
// (k-1)-mer under the current orientation assignment.
type bucket struct {
	// suf is the number of unitigs whose current suffix is this (k-1)-mer,
	// i.e. that currently provide it to successors.
	suf int
	// pre is the number of unitigs whose current prefix is this (k-1)-mer,
	// i.e. that currently require it as a predecessor.
	pre int
	// loop is the number of unitigs whose current prefix AND suffix are both
	// this (k-1)-mer. Tracked so that a unitig's own suffix can be excluded
	// when testing whether its prefix is satisfied, using counts alone.
	loop int
}

// overlapRegistry maintains reference-counted suffix-provider and
// prefix-dependent buckets, keyed by boundary (k-1)-mer, for the live
// orientation assignment. A registry is owned by a single optimizer run; it
// is not safe for concurrent use.
type overlapRegistry struct {
	buckets map[string]*bucket
}

func newOverlapRegistry(bounds []boundarySet, oris []Orientation) *overlapRegistry {
	r := &overlapRegistry{buckets: make(map[string]*bucket, 2*len(bounds))}
	for i := range bounds {
		r.add(bounds[i], oris[i])
	}
	return r
}

func (r *overlapRegistry) get(km1 string) *bucket {
	b := r.buckets[km1]
	if b == nil {
		b = &bucket{}
		r.buckets[km1] = b
	}
	return b
}

// suffixCount returns the number of unitigs currently exposing km1 as their
// suffix. O(1); 0 if the signature was never seen.
func (r *overlapRegistry) suffixCount(km1 string) int {
	if b := r.buckets[km1]; b != nil {
		return b.suf
	}
	return 0
}

// prefixCount returns the number of unitigs currently requiring km1 as their
// predecessor. O(1); 0 if the signature was never seen.
func (r *overlapRegistry) prefixCount(km1 string) int {
	if b := r.buckets[km1]; b != nil {
		return b.pre
	}
	return 0
}

// add registers the contributions of a unitig with boundaries b under
// orientation o.
func (r *overlapRegistry) add(b boundarySet, o Orientation) {
	p, s := b.prefix(o), b.suffix(o)
	r.get(p).pre++
	r.get(s).suf++
	if p == s {
		r.get(p).loop++
	}
}

// remove drops the contributions previously registered by add(b, o).
func (r *overlapRegistry) remove(b boundarySet, o Orientation) {
	p, s := b.prefix(o), b.suffix(o)
	r.get(p).pre--
	r.get(s).suf--
	if p == s {
		r.get(p).loop--
	}
}

// applyFlip moves a unitig's contributions from orientation o to its flip.
// Both ends are updated before the registry is read again, so counts always
// reflect the live assignment exactly.
func (r *overlapRegistry) applyFlip(b boundarySet, o Orientation) {
	r.remove(b, o)
	r.add(b, o.Flip())
}

// dummiesAt returns the number of unitigs whose current prefix is km1 and has
// no external suffix provider. A unitig whose suffix equals its own prefix (a
// self-loop) does not count as its own provider: with suf == 1 the sole
// provider of a self-loop is the unitig itself, so it is still a dummy.
func (r *overlapRegistry) dummiesAt(km1 string) int {
	b := r.buckets[km1]
	if b == nil {
		return 0
	}
	switch b.suf {
	case 0:
		return b.pre
	case 1:
		return b.loop
	}
	return 0
}

// totalDummies recomputes the global dummy count from the live buckets. Used
// once at initialization and by the pedantic per-pass verification; steady
// state maintains the count incrementally.
func (r *overlapRegistry) totalDummies() int {
	n := 0
	for _, b := range r.buckets {
		switch b.suf {
		case 0:
			n += b.pre
		case 1:
			n += b.loop
		}
	}
	return n
}
