package orient

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestRegistryCounts(t *testing.T) {
	bounds := []boundarySet{
		newBoundarySet("AACGT", 3), // prefix AA, suffix GT
		newBoundarySet("GTTTA", 3), // prefix GT, suffix TA
	}
	oris := make([]Orientation, len(bounds))
	r := newOverlapRegistry(bounds, oris)

	expect.EQ(t, r.suffixCount("GT"), 1)
	expect.EQ(t, r.prefixCount("GT"), 1)
	expect.EQ(t, r.suffixCount("TA"), 1)
	expect.EQ(t, r.prefixCount("AA"), 1)
	expect.EQ(t, r.suffixCount("CC"), 0)
	expect.EQ(t, r.prefixCount("CC"), 0)
	// Unitig 0 provides GT to unitig 1; only unitig 0's own prefix AA is
	// unmatched.
	expect.EQ(t, r.totalDummies(), 1)
}

func TestRegistryApplyFlip(t *testing.T) {
	bounds := []boundarySet{
		newBoundarySet("AACGT", 3),
		newBoundarySet("GTTTA", 3),
	}
	oris := make([]Orientation, len(bounds))
	r := newOverlapRegistry(bounds, oris)

	// Flip unitig 0 to Reverse: prefix becomes AC, suffix TT, and unitig 1
	// loses its GT provider.
	r.applyFlip(bounds[0], Forward)
	expect.EQ(t, r.suffixCount("GT"), 0)
	expect.EQ(t, r.suffixCount("TT"), 1)
	expect.EQ(t, r.prefixCount("AC"), 1)
	expect.EQ(t, r.prefixCount("AA"), 0)
	expect.EQ(t, r.totalDummies(), 2)

	// Flipping back restores the exact initial state.
	r.applyFlip(bounds[0], Reverse)
	expect.EQ(t, r.suffixCount("GT"), 1)
	expect.EQ(t, r.prefixCount("AA"), 1)
	expect.EQ(t, r.totalDummies(), 1)
}

func TestRegistrySelfExclusion(t *testing.T) {
	// AAAA with k=3 exposes AA at both ends. Its own suffix must not satisfy
	// its own prefix.
	bounds := []boundarySet{newBoundarySet("AAAA", 3)}
	r := newOverlapRegistry(bounds, []Orientation{Forward})
	expect.EQ(t, r.suffixCount("AA"), 1)
	expect.EQ(t, r.prefixCount("AA"), 1)
	expect.EQ(t, r.totalDummies(), 1)
}

func TestRegistrySelfLoopWithPartner(t *testing.T) {
	bounds := []boundarySet{
		newBoundarySet("AAAA", 3), // self-loop at AA
		newBoundarySet("CCAA", 3), // prefix CC, suffix AA
	}
	r := newOverlapRegistry(bounds, make([]Orientation, len(bounds)))
	// AAAA's prefix now has an external provider; only CCAA's prefix CC is
	// unmatched.
	expect.EQ(t, r.suffixCount("AA"), 2)
	expect.EQ(t, r.totalDummies(), 1)
}
