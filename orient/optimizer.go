package orient

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// optimizer owns all mutable state for one run: the orientation assignment,
// the overlap registry, and the incrementally maintained dummy count. Nothing
// is shared between runs, so independent runs may execute in parallel.
type optimizer struct {
	opts    Opts
	bounds  []boundarySet
	oris    []Orientation
	reg     *overlapRegistry
	dummies int
	stats   Stats
}

// PickOrientations selects an orientation for every unitig, greedily flipping
// single unitigs while a flip strictly reduces the number of unitigs whose
// leading (k-1)-mer has no predecessor among the other unitigs' trailing
// (k-1)-mers. The result depends only on the input sequences and opts:
// passes visit unitigs in input order and a tie never flips.
//
// Validation failures (a sequence shorter than opts.K, a base outside ACGT)
// are returned before any optimization state is built. After validation the
// run cannot fail; if the pass cap is hit first, the best assignment found is
// returned with Stats.Converged == false.
func PickOrientations(unitigs []Unitig, opts Opts) (Result, error) {
	if opts.K < 2 {
		return Result{}, fmt.Errorf("orient: k must be at least 2, got %d", opts.K)
	}
	if err := validateUnitigs(unitigs, opts.K); err != nil {
		return Result{}, err
	}
	o := newOptimizer(unitigs, opts)
	o.run()
	return Result{Orientations: o.oris, Stats: o.stats}, nil
}

func newOptimizer(unitigs []Unitig, opts Opts) *optimizer {
	bounds := make([]boundarySet, len(unitigs))
	for i, u := range unitigs {
		bounds[i] = newBoundarySet(u.Seq, opts.K)
	}
	oris := make([]Orientation, len(unitigs)) // all Forward
	o := &optimizer{
		opts:   opts,
		bounds: bounds,
		oris:   oris,
		reg:    newOverlapRegistry(bounds, oris),
	}
	o.dummies = o.reg.totalDummies()
	o.stats.InitialDummies = o.dummies
	return o
}

// affectedDummies sums the dummy contributions of every bucket a flip of this
// unitig can change: the prefix and suffix under both orientations, at most
// four distinct (k-1)-mers. Duplicates (palindromic or self-loop boundaries)
// are counted once.
func (o *optimizer) affectedDummies(b boundarySet) int {
	sigs := b.signatures()
	n := 0
	for i, km1 := range sigs {
		dup := false
		for _, prev := range sigs[:i] {
			if prev == km1 {
				dup = true
				break
			}
		}
		if !dup {
			n += o.reg.dummiesAt(km1)
		}
	}
	return n
}

// tryFlip trial-applies the flip of unitig i and keeps it only if it strictly
// reduces the global dummy count. A flip touches no buckets outside
// bounds[i].signatures(), so comparing the dummy contributions of those
// buckets before and after gives the exact global delta in O(1).
func (o *optimizer) tryFlip(i int) bool {
	b := o.bounds[i]
	before := o.affectedDummies(b)
	o.reg.applyFlip(b, o.oris[i])
	after := o.affectedDummies(b)
	if after >= before { // never flip on a tie
		o.reg.applyFlip(b, o.oris[i].Flip())
		return false
	}
	o.oris[i] = o.oris[i].Flip()
	o.dummies += after - before
	return true
}

func (o *optimizer) run() {
	for o.stats.Passes < o.opts.MaxPasses {
		o.stats.Passes++
		flips := 0
		for i := range o.bounds {
			if o.tryFlip(i) {
				flips++
			}
		}
		o.stats.Flips += flips
		if o.opts.PedanticChecks {
			if got := o.reg.totalDummies(); got != o.dummies {
				log.Panicf("orient: dummy count diverged after pass %d: incremental %d, recomputed %d",
					o.stats.Passes, o.dummies, got)
			}
		}
		if flips == 0 {
			o.stats.Converged = true
			break
		}
	}
	o.stats.FinalDummies = o.dummies
}
