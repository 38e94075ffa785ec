package seqpat

// attrLayout fixes the slot geometry of one attribute's summary block. A
// lower-span constraint contributes a min/max pair (2 slots); average
// constraints contribute a sum/count pair per side that is active; median
// constraints contribute a (counter, tie-min, tie-max) triple per side that
// is active. numMinMax is always 0 or 2: it is 2 only when a lower-span
// limit is active, since upper-span checks use the pattern's running
// aggregate and the child's own value instead of node-level min/max slots.
type attrLayout struct {
	numMinMax int
	numAvr    int
	numMed    int
}

func (l attrLayout) size() int { return 1 + l.numMinMax + 2*l.numAvr + 3*l.numMed }

func (l attrLayout) sumUpperIdx() int { return l.numMinMax + 1 }
func (l attrLayout) sumLowerIdx() int { return l.numMinMax + l.numAvr }
func (l attrLayout) cntUpperIdx() int { return l.numMinMax + l.numAvr + 1 }
func (l attrLayout) cntLowerIdx() int { return l.numMinMax + 2*l.numAvr }

func (l attrLayout) medianBase() int           { return l.numMinMax + 2*l.numAvr }
func (l attrLayout) medCounterIdx(g int) int   { return l.medianBase() + g*3 + 1 }
func (l attrLayout) medTieMinIdx(g int) int    { return l.medianBase() + g*3 + 2 }
func (l attrLayout) medTieMaxIdx(g int) int    { return l.medianBase() + g*3 + 3 }
func (l attrLayout) lowerMedGroup() int        { return 0 }
func (l attrLayout) upperMedGroup() int        { return l.numMed - 1 }

// attrSummary is one attribute's fixed-width summary block:
// [v, minSpan*, maxSpan*, sumUpper, sumLower, cntUpper, cntLower,
//  (medCounter, medTieMin, medTieMax) x numMed].
type attrSummary []int

func newAttrSummary(l attrLayout, value int) attrSummary {
	s := make(attrSummary, l.size())
	for i := range s {
		s[i] = value
	}
	for ii := 0; ii < l.numAvr; ii++ {
		s[1+l.numMinMax+l.numAvr+ii] = 1
	}
	return s
}

func (s attrSummary) v() int { return s[0] }

// initLowerMedianSeed sets up the counter/tie-break slots for the lower
// median group on a freshly opened node, per the seed value's side of the
// limit. Mirrors node_mdd.cpp's lmedi initialization loop.
func (s attrSummary) initLowerMedianSeed(l attrLayout, value, limit, minAttr, maxAttr int) {
	g := l.lowerMedGroup()
	if value < limit {
		s[l.medCounterIdx(g)] = 0
		s[l.medTieMaxIdx(g)] = maxAttr + 1
	} else {
		s[l.medCounterIdx(g)] = 0
		s[l.medTieMinIdx(g)] = minAttr - 1
	}
}

// initUpperMedianSeed is the umedi analog of initLowerMedianSeed.
func (s attrSummary) initUpperMedianSeed(l attrLayout, value, limit, minAttr, maxAttr int) {
	g := l.upperMedGroup()
	if value > limit {
		s[l.medCounterIdx(g)] = 0
		s[l.medTieMinIdx(g)] = minAttr - 1
	} else {
		s[l.medCounterIdx(g)] = 0
		s[l.medTieMaxIdx(g)] = maxAttr + 1
	}
}

// updateMinMax folds child's span bounds into parent. Used for lower-span
// constraints, the only kind that allocates the min/max slots.
func updateMinMax(parent, child attrSummary) {
	if child[1] < parent[1] {
		parent[1] = child[1]
	}
	if child[2] > parent[2] {
		parent[2] = child[2]
	}
}

// updateSumUpper maintains at parent the extremal (sum, count) witness that
// maximizes feasibility of an upper-average bound of limit, folding in
// child's own extremal witness. Mirrors node_mdd.cpp's Update_sum(ub=true).
func updateSumUpper(parent, child attrSummary, l attrLayout, limit int) {
	sumIdx, cntIdx := l.sumUpperIdx(), l.cntUpperIdx()
	lhs := limit*(1+child[cntIdx]) - (parent.v() + child[sumIdx])
	rhs := limit*parent[cntIdx] - parent[sumIdx]
	if lhs > rhs {
		parent[sumIdx] = parent.v() + child[sumIdx]
		parent[cntIdx] = 1 + child[cntIdx]
	}
}

// updateSumLower is the symmetric, minimizing counterpart for a
// lower-average bound. Mirrors Update_sum(ub=false).
func updateSumLower(parent, child attrSummary, l attrLayout, limit int) {
	sumIdx, cntIdx := l.sumLowerIdx(), l.cntLowerIdx()
	lhs := limit*(1+child[cntIdx]) - (parent.v() + child[sumIdx])
	rhs := limit*parent[cntIdx] - parent[sumIdx]
	if lhs < rhs {
		parent[sumIdx] = parent.v() + child[sumIdx]
		parent[cntIdx] = 1 + child[cntIdx]
	}
}

// updateMedianUpper folds child's upper-median witness into parent.
// Mirrors node_mdd.cpp's Update_med(ub=true).
func updateMedianUpper(parent, child attrSummary, l attrLayout, limit, minAttr, maxAttr int) {
	g := l.upperMedGroup()
	cIdx, mnIdx, mxIdx := l.medCounterIdx(g), l.medTieMinIdx(g), l.medTieMaxIdx(g)

	var t1, t2, t3 int
	if child.v() <= limit {
		t1, t2, t3 = 1, child.v(), maxAttr+1
	} else {
		t1, t2, t3 = -1, minAttr-1, child.v()
	}

	childC := child[cIdx] + t1
	switch {
	case childC > parent[cIdx]:
		parent[cIdx] = childC
		parent[mnIdx] = maxInt(t2, child[mnIdx])
		parent[mxIdx] = minInt(t3, child[mxIdx])
	case childC == parent[cIdx]:
		fnod2 := maxInt(t2, child[mnIdx])
		fnod3 := minInt(t3, child[mxIdx])
		avrf := 0.5 * float64(parent[mxIdx]+parent[mnIdx])
		avrt := 0.5 * float64(fnod3+fnod2)
		switch {
		case avrt <= float64(limit) && avrf > float64(limit):
			parent[mxIdx], parent[mnIdx] = fnod3, fnod2
		case avrt <= float64(limit) && avrf <= float64(limit) && fnod3 < parent[mxIdx]:
			parent[mxIdx], parent[mnIdx] = fnod3, fnod2
		case avrt > float64(limit) && avrf > float64(limit) && fnod2 < parent[mnIdx]:
			parent[mxIdx], parent[mnIdx] = fnod3, fnod2
		}
	}
}

// updateMedianLower is the lower-median counterpart. Mirrors
// Update_med(ub=false).
func updateMedianLower(parent, child attrSummary, l attrLayout, limit, minAttr, maxAttr int) {
	g := l.lowerMedGroup()
	cIdx, mnIdx, mxIdx := l.medCounterIdx(g), l.medTieMinIdx(g), l.medTieMaxIdx(g)

	var t1, t2, t3 int
	if child.v() >= limit {
		t1, t2, t3 = 1, minAttr-1, child.v()
	} else {
		t1, t2, t3 = -1, child.v(), maxAttr+1
	}

	childC := child[cIdx] + t1
	switch {
	case childC > parent[cIdx]:
		parent[cIdx] = childC
		parent[mnIdx] = maxInt(t2, child[mnIdx])
		parent[mxIdx] = minInt(t3, child[mxIdx])
	case childC == parent[cIdx]:
		fnod2 := maxInt(t2, child[mnIdx])
		fnod3 := minInt(t3, child[mxIdx])
		avrf := 0.5 * float64(parent[mxIdx]+parent[mnIdx])
		avrt := 0.5 * float64(fnod3+fnod2)
		switch {
		case avrt >= float64(limit) && avrf < float64(limit):
			parent[mxIdx], parent[mnIdx] = fnod3, fnod2
		case avrt >= float64(limit) && avrf >= float64(limit) && fnod2 > parent[mnIdx]:
			parent[mxIdx], parent[mnIdx] = fnod3, fnod2
		case avrt < float64(limit) && avrf < float64(limit) && fnod3 > parent[mxIdx]:
			parent[mxIdx], parent[mnIdx] = fnod3, fnod2
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
