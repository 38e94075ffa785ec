package seqpat

// findSeqPos binary-searches seqID (ascending, per-sequence insertion
// order) for seq, returning its index or -1. Mirrors freq_miner.cpp's
// find_ID.
func findSeqPos(seqID []int, seq int) int {
	lo, hi := 0, len(seqID)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case seqID[mid] == seq:
			return mid
		case seqID[mid] < seq:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// runDFS drains ctx's DFS queue, extending every pattern whose frequency
// still clears theta and discarding the rest; extendPattern appends the
// emitted patterns to ctx.results. Mirrors freq_miner.cpp's Freq_miner.
func runDFS(ctx *miningContext) {
	for len(ctx.dfs) > 0 {
		n := len(ctx.dfs) - 1
		p := ctx.dfs[n]
		ctx.dfs = ctx.dfs[:n]
		if p == nil {
			continue
		}
		if p.freq >= ctx.pb.theta {
			extendPattern(ctx, p)
		}
	}
}

// extendPattern tries every item as a one-item extension of p, keeping
// those that clear theta, and emits p itself if it has more than one item
// and its actFreq clears theta, whether or not any extension was kept.
// Mirrors freq_miner.cpp's Extend_patt.
func extendPattern(ctx *miningContext, p *patternRecord) {
	pb := ctx.pb

	potPatt := make([]*patternRecord, pb.l)
	itemCount := make([]int, pb.l)
	indic := make([]bool, pb.l)
	for i := range indic {
		indic[i] = true
	}

	for iter := range p.seqID {
		findItems(ctx, p, iter, potPatt, itemCount, indic)
	}

	for item := 1; item <= pb.l; item++ {
		if itemCount[item-1] < pb.theta {
			continue
		}
		ctx.dfs = append(ctx.dfs, potPatt[item-1])
	}

	if len(p.items) > 1 && p.actFreq >= pb.theta {
		ctx.emit(p)
	}
}

// findItems walks cohort iter of p from its last end-pointer backward,
// evaluating every child of every pointer in that cohort as a one-item
// extension candidate. Mirrors freq_miner.cpp's Find_items.
func findItems(ctx *miningContext, p *patternRecord, iter int, potPatt []*patternRecord, itemCount []int, indic []bool) {
	pb := ctx.pb
	seqIdx := p.seqID[iter]
	cohort := p.cohort[iter]

	for parPos := len(cohort) - 1; parPos >= 0; parPos-- {
		fromNode := cohort[parPos]
		idPos := findSeqPos(fromNode.seqID, seqIdx)
		if idPos < 0 {
			continue
		}
		children := fromNode.children[idPos]

		for childPos := len(children) - 1; childPos >= 0; childPos-- {
			child := children[childPos]
			if !indic[child.item-1] {
				continue
			}
			chilIDPos := findSeqPos(child.seqID, seqIdx)
			if chilIDPos < 0 {
				continue
			}

			item := child.item
			childAttr := child.attr[chilIDPos]

			verdict := 1
			if pb.hasExpensiveConstraints() {
				verdict = checkCons(pb, p, iter, parPos, childAttr)
				if verdict == -1 {
					break
				}
				if verdict == 0 {
					continue
				}
			}

			// Once this item has fallen too far behind across the
			// cohorts seen so far to ever reach theta by the end of
			// p's cohort list, stop matching it for the rest of this
			// extension.
			if iter-itemCount[item-1] > p.freq-pb.theta {
				indic[item-1] = false
				continue
			}

			rec := potPatt[item-1]
			if rec == nil {
				rec = newPatternRecord(item)
				rec.items = append(append([]int(nil), p.items...), item)
				potPatt[item-1] = rec
			}
			if len(rec.seqID) == 0 || rec.seqID[len(rec.seqID)-1] != seqIdx {
				rec.update(seqIdx, pb)
				itemCount[item-1]++
			}
			last := rec.lastCohort()
			rec.cohort[last] = append(rec.cohort[last], child)

			if verdict == 1 && rec.cond {
				rec.actFreq++
				rec.cond = false
			}

			for j, a := range pb.totSpn {
				v := childAttr[a].v()
				agg := p.spn[iter][pb.spnPos[a]][parPos]
				rec.spn[last][j] = append(rec.spn[last][j], spanAgg{minInt(agg.min, v), maxInt(agg.max, v)})
			}
			for j, a := range pb.totAvr {
				rec.avr[last][j] = append(rec.avr[last][j], p.avr[iter][pb.avrPos[a]][parPos]+childAttr[a].v())
			}
			for j, a := range pb.lmedi {
				limit := pb.lmed[j]
				prev := p.lmed[iter][j][parPos]
				cv := childAttr[a].v()
				var m medAgg
				if cv < limit {
					m = medAgg{prev.counter - 1, maxInt(prev.tieMin, cv), prev.tieMax}
				} else {
					m = medAgg{prev.counter + 1, prev.tieMin, minInt(prev.tieMax, cv)}
				}
				rec.lmed[last][j] = append(rec.lmed[last][j], m)
			}
			for j, a := range pb.umedi {
				limit := pb.umed[j]
				prev := p.umed[iter][j][parPos]
				cv := childAttr[a].v()
				var m medAgg
				if cv <= limit {
					m = medAgg{prev.counter + 1, maxInt(prev.tieMin, cv), prev.tieMax}
				} else {
					m = medAgg{prev.counter - 1, prev.tieMin, minInt(prev.tieMax, cv)}
				}
				rec.umed[last][j] = append(rec.umed[last][j], m)
			}
		}
	}
}
