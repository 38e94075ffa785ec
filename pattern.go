package seqpat

// spanAgg is the running [min, max] witness for one span-constrained
// attribute at one end-pointer position.
type spanAgg struct{ min, max int }

// medAgg is the running (signed counter, tie-break min, tie-break max)
// triple for one median-constrained attribute at one end-pointer position.
type medAgg struct{ counter, tieMin, tieMax int }

// patternRecord is one node of the DFS pattern search: an item sequence,
// its per-sequence end-pointer cohorts, and the per-constraint running
// aggregates parallel to those cohorts. Mirrors pattern.hpp's Pattern.
type patternRecord struct {
	items   []int
	freq    int
	actFreq int

	// cond is true until this cohort (the most recently opened one) has
	// recorded its first feasible witness; act_freq increments exactly
	// once per cohort, the transition from cond=true to cond=false.
	cond bool

	// seqID holds the 0-based sequence indices visiting this pattern, in
	// insertion (cohort-open) order.
	seqID []int

	// cohort[i] is the end-pointer list for the i-th cohort, parallel to
	// seqID[i]. Appended to as Find_items walks children; never shrinks.
	cohort [][]*mddNode

	// spn[i][j][k] is the running span aggregate for the j-th span-bearing
	// attribute (index into the owning paramBlock's totSpn), at pointer
	// position k within cohort i.
	spn [][][]spanAgg

	// avr[i][j][k] is the running average numerator for the j-th
	// average-bearing attribute (index into totAvr), at pointer k.
	avr [][][]int

	// lmed[i][j][k] / umed[i][j][k] are the running median aggregates for
	// the j-th lower-/upper-median attribute (index into lmedi/umedi).
	lmed [][][]medAgg
	umed [][][]medAgg
}

func newPatternRecord(item int) *patternRecord {
	return &patternRecord{items: []int{item}}
}

// update opens a new cohort for seq, mirroring Pattern::Update. Appends
// fresh empty per-constraint rows, marks the cohort witness-free, and
// increments freq.
func (p *patternRecord) update(seq int, pb *paramBlock) {
	p.seqID = append(p.seqID, seq)
	p.cohort = append(p.cohort, nil)
	if len(pb.totSpn) > 0 {
		p.spn = append(p.spn, make([][]spanAgg, len(pb.totSpn)))
	}
	if len(pb.totAvr) > 0 {
		p.avr = append(p.avr, make([][]int, len(pb.totAvr)))
	}
	if len(pb.lmedi) > 0 {
		p.lmed = append(p.lmed, make([][]medAgg, len(pb.lmedi)))
	}
	if len(pb.umedi) > 0 {
		p.umed = append(p.umed, make([][]medAgg, len(pb.umedi)))
	}
	p.cond = true
	p.freq++
}

// lastCohort is the index of the most recently opened cohort.
func (p *patternRecord) lastCohort() int { return len(p.seqID) - 1 }
