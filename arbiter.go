package seqpat

// checkCons is the constraint arbiter (C5): given the parent pattern's
// running aggregates at cohort iter, position parPos, and a candidate
// child's attribute summary row, decide whether extending with child is
// feasible, infeasible, extensible, or an anti-monotone dead end.
// Evaluates upper-span, lower-span, upper-average, lower-average,
// lower-median, upper-median in that order; the first -1 propagates
// immediately, any 0 short-circuits to 0, otherwise the code is 2 if any
// check marked "candidate", else 1. Mirrors freq_miner.cpp's Check_cons.
func checkCons(pb *paramBlock, patt *patternRecord, iter, parPos int, childAttr []attrSummary) int {
	satis := 1

	for attPos, a := range pb.uspni {
		limit := pb.uspn[attPos]
		agg := patt.spn[iter][pb.spnPos[a]][parPos]
		cv := childAttr[a].v()
		if a == 0 {
			if cv-agg.min > limit {
				return -1
			}
			continue
		}
		actSpan := actualSpan(cv, agg)
		if actSpan > limit {
			return 0
		}
	}

	for attPos, a := range pb.lspni {
		limit := pb.lspn[attPos]
		agg := patt.spn[iter][pb.spnPos[a]][parPos]
		cv := childAttr[a].v()
		if a == 0 {
			if cv-agg.min < limit {
				if childAttr[a][2]-agg.min < limit {
					return 0
				}
				satis = 2
			}
			continue
		}
		actSpan := actualSpan(cv, agg)
		if actSpan < limit {
			hig := maxInt(agg.max, childAttr[a][2])
			low := minInt(agg.min, childAttr[a][1])
			if hig-low < limit {
				return 0
			}
			satis = 2
		}
	}

	for attPos, a := range pb.uavri {
		limit := pb.uavr[attPos]
		layout := pb.layouts[a]
		prevSum := patt.avr[iter][pb.avrPos[a]][parPos]
		actAvg := float64(prevSum+childAttr[a].v()) / float64(len(patt.items)+1)
		if actAvg <= float64(limit) {
			continue
		}
		satis = 2
		lbNumerator := prevSum + childAttr[a][layout.sumUpperIdx()]
		lbDenom := len(patt.items) + childAttr[a][layout.cntUpperIdx()]
		if float64(lbNumerator)/float64(lbDenom) > float64(limit) {
			return 0
		}
	}

	for attPos, a := range pb.lavri {
		limit := pb.lavr[attPos]
		layout := pb.layouts[a]
		prevSum := patt.avr[iter][pb.avrPos[a]][parPos]
		actAvg := float64(prevSum+childAttr[a].v()) / float64(len(patt.items)+1)
		if actAvg >= float64(limit) {
			continue
		}
		satis = 2
		ubNumerator := prevSum + childAttr[a][layout.sumLowerIdx()]
		ubDenom := len(patt.items) + childAttr[a][layout.cntLowerIdx()]
		if float64(ubNumerator)/float64(ubDenom) < float64(limit) {
			return 0
		}
	}

	for i, a := range pb.lmedi {
		limit := pb.lmed[i]
		layout := pb.layouts[a]
		g := layout.lowerMedGroup()
		cIdx, mnIdx, mxIdx := layout.medCounterIdx(g), layout.medTieMinIdx(g), layout.medTieMaxIdx(g)
		prev := patt.lmed[iter][i][parPos]
		cv := childAttr[a].v()

		if cv < limit {
			if prev.counter-1 > 0 {
				continue
			}
			if prev.counter-1 == 0 {
				maxMin := maxInt(prev.tieMin, cv)
				if 0.5*float64(prev.tieMax+maxMin) >= float64(limit) {
					continue
				}
			}
			childC := childAttr[a][cIdx]
			if prev.counter-1+childC < 0 {
				return 0
			} else if prev.counter-1+childC == 0 {
				maxPatt2 := maxInt(prev.tieMin, cv)
				maxMin := maxInt(maxPatt2, childAttr[a][mnIdx])
				minMax := minInt(prev.tieMax, childAttr[a][mxIdx])
				if 0.5*float64(minMax+maxMin) < float64(limit) {
					return 0
				}
			}
			satis = 2
		} else {
			if prev.counter+1 > 0 {
				continue
			}
			if prev.counter+1 == 0 {
				minMax := minInt(prev.tieMax, cv)
				if 0.5*float64(minMax+prev.tieMin) >= float64(limit) {
					continue
				}
			}
			childC := childAttr[a][cIdx]
			if prev.counter+1+childC < 0 {
				return 0
			} else if prev.counter+1+childC == 0 {
				minPatt3 := minInt(prev.tieMax, cv)
				maxMin := maxInt(prev.tieMin, childAttr[a][mnIdx])
				minMax := minInt(minPatt3, childAttr[a][mxIdx])
				if 0.5*float64(minMax+maxMin) < float64(limit) {
					return 0
				}
			}
			satis = 2
		}
	}

	for i, a := range pb.umedi {
		limit := pb.umed[i]
		layout := pb.layouts[a]
		g := layout.upperMedGroup()
		cIdx, mnIdx, mxIdx := layout.medCounterIdx(g), layout.medTieMinIdx(g), layout.medTieMaxIdx(g)
		prev := patt.umed[iter][i][parPos]
		cv := childAttr[a].v()

		if cv > limit {
			if prev.counter-1 > 0 {
				continue
			}
			if prev.counter-1 == 0 {
				minMax := minInt(prev.tieMax, cv)
				if 0.5*float64(minMax+prev.tieMin) <= float64(limit) {
					continue
				}
			}
			childC := childAttr[a][cIdx]
			if prev.counter-1+childC < 0 {
				return 0
			} else if prev.counter-1+childC == 0 {
				minPatt3 := minInt(prev.tieMax, cv)
				maxMin := maxInt(prev.tieMin, childAttr[a][mnIdx])
				minMax := minInt(minPatt3, childAttr[a][mxIdx])
				if 0.5*float64(minMax+maxMin) > float64(limit) {
					return 0
				}
			}
			satis = 2
		} else {
			if prev.counter+1 > 0 {
				continue
			}
			if prev.counter+1 == 0 {
				maxMin := maxInt(prev.tieMin, cv)
				if 0.5*float64(prev.tieMax+maxMin) <= float64(limit) {
					continue
				}
			}
			childC := childAttr[a][cIdx]
			if prev.counter+1+childC < 0 {
				return 0
			} else if prev.counter+1+childC == 0 {
				maxPatt2 := maxInt(prev.tieMin, cv)
				maxMin := maxInt(maxPatt2, childAttr[a][mnIdx])
				minMax := minInt(prev.tieMax, childAttr[a][mxIdx])
				if 0.5*float64(minMax+maxMin) > float64(limit) {
					return 0
				}
			}
			satis = 2
		}
	}

	if satis == 2 {
		return 2
	}
	return 1
}

// actualSpan computes the span a child value would extend the running
// [min, max] aggregate to, without mutating it.
func actualSpan(cv int, agg spanAgg) int {
	switch {
	case cv < agg.min:
		return agg.max - cv
	case cv > agg.max:
		return cv - agg.min
	default:
		return agg.max - agg.min
	}
}
