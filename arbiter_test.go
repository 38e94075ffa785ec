package seqpat

import "testing"

func TestCheckCons_NoConstraintsAlwaysFeasible(t *testing.T) {
	pb := &paramBlock{}
	patt := &patternRecord{items: []int{1}}
	if got := checkCons(pb, patt, 0, 0, []attrSummary{}); got != 1 {
		t.Errorf("checkCons with no constraints = %d, want 1", got)
	}
}

func TestCheckCons_UpperSpanAttrZeroPrunesEntireScan(t *testing.T) {
	pb := &paramBlock{
		uspni:  []int{0},
		uspn:   []int{5},
		spnPos: map[int]int{0: 0},
	}
	patt := &patternRecord{
		items: []int{1},
		spn:   [][][]spanAgg{{{{min: 0, max: 0}}}},
	}
	childAttr := []attrSummary{newAttrSummary(attrLayout{}, 10)}
	if got := checkCons(pb, patt, 0, 0, childAttr); got != -1 {
		t.Errorf("checkCons = %d, want -1 (antimonotone prune)", got)
	}
}

func TestCheckCons_UpperSpanOtherAttrSkipsChildOnly(t *testing.T) {
	pb := &paramBlock{
		uspni:  []int{1},
		uspn:   []int{5},
		spnPos: map[int]int{1: 0},
	}
	patt := &patternRecord{
		items: []int{1},
		spn:   [][][]spanAgg{{{{min: 0, max: 3}}}},
	}
	childAttr := []attrSummary{nil, newAttrSummary(attrLayout{}, 10)}
	if got := checkCons(pb, patt, 0, 0, childAttr); got != 0 {
		t.Errorf("checkCons = %d, want 0 (span 10 exceeds limit 5)", got)
	}
}

func TestCheckCons_LowerAverageCandidate(t *testing.T) {
	layout := attrLayout{numAvr: 1}
	pb := &paramBlock{
		lavri:   []int{0},
		lavr:    []int{4},
		avrPos:  map[int]int{0: 0},
		layouts: []attrLayout{layout},
	}
	patt := &patternRecord{
		items: []int{1},
		avr:   [][][]int{{{1}}},
	}
	child := attrSummary{1, 20, 4} // v=1, sumLower witness=20, cntLower witness=4
	if got := checkCons(pb, patt, 0, 0, []attrSummary{child}); got != 2 {
		t.Errorf("checkCons = %d, want 2 (candidate: actual avg below limit but witness still reachable)", got)
	}
}

func TestCheckCons_LowerAverageInfeasible(t *testing.T) {
	layout := attrLayout{numAvr: 1}
	pb := &paramBlock{
		lavri:   []int{0},
		lavr:    []int{4},
		avrPos:  map[int]int{0: 0},
		layouts: []attrLayout{layout},
	}
	patt := &patternRecord{
		items: []int{1},
		avr:   [][][]int{{{1}}},
	}
	child := attrSummary{1, 1, 1} // no favorable witness: best case still below limit
	if got := checkCons(pb, patt, 0, 0, []attrSummary{child}); got != 0 {
		t.Errorf("checkCons = %d, want 0 (even the witness can't reach the lower-average limit)", got)
	}
}

func TestActualSpan(t *testing.T) {
	agg := spanAgg{min: 5, max: 10}
	if got := actualSpan(3, agg); got != 7 {
		t.Errorf("actualSpan(3, [5,10]) = %d, want 7", got)
	}
	if got := actualSpan(15, agg); got != 10 {
		t.Errorf("actualSpan(15, [5,10]) = %d, want 10", got)
	}
	if got := actualSpan(7, agg); got != 5 {
		t.Errorf("actualSpan(7, [5,10]) = %d, want 5", got)
	}
}
