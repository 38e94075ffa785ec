package seqpat

// mddNode is one node of the multi-valued decision diagram: identified by
// (sequence-position, item), addressed by nodeID. Mirrors node_mdd.hpp's
// Node, using an arena+index table (mddNode slice in miningContext) instead
// of owning pointers.
type mddNode struct {
	id   int
	item int

	// parent is the last sequence index for which this node was seeded as
	// a length-1 pattern end; -1 means never.
	parent int

	// seqID holds the 0-based sequence indices visiting this node, in
	// ascending insertion order (construction processes sequences in
	// ascending order, so this is already sorted for find_ID).
	seqID []int

	// children[i] is this node's child list for seqID[i], appended in
	// decreasing end-position order (construction proceeds end-first).
	children [][]*mddNode

	// attr[i][a] is the attribute summary block for attribute a at
	// cohort i, parallel to seqID[i]. Populated only when at least one
	// span/average/median constraint is active anywhere.
	attr [][]attrSummary
}

// currentAttr returns the attribute summary row for this node's most
// recently opened cohort.
func (n *mddNode) currentAttr() []attrSummary { return n.attr[len(n.attr)-1] }

// currentChildren returns this node's child list for its most recently
// opened cohort.
func (n *mddNode) currentChildren() []*mddNode { return n.children[len(n.children)-1] }

// checkGap evaluates every active lower- and upper-gap constraint between
// positions strp and endp (1-based) of sequence seqIdx. Mirrors
// build_mdd.cpp's Check_gap.
func checkGap(pb *paramBlock, seqIdx, strp, endp int) bool {
	for k, limit := range pb.lgap {
		if limit == 0 {
			continue
		}
		a := pb.lgapi[k]
		d := pb.attrs[a][seqIdx][endp-1] - pb.attrs[a][seqIdx][strp-1]
		if absInt(d) < limit {
			return false
		}
	}
	for k, limit := range pb.ugap {
		if limit == 0 {
			continue
		}
		a := pb.ugapi[k]
		d := pb.attrs[a][seqIdx][endp-1] - pb.attrs[a][seqIdx][strp-1]
		if absInt(d) > limit {
			return false
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// buildMDD populates ctx's node arena and seeds its DFS queue, mirroring
// build_mdd.cpp's Popl_nodes. antmon is reset to false after each strp--
// only when an upper-gap constraint exists, so the anti-monotone retreat
// runs again for the next start position; with no upper-gap constraint it
// stays true and the retreat is skipped.
func buildMDD(ctx *miningContext) {
	pb := ctx.pb
	upperGapOnAttr0 := len(pb.ugap) > 0 && pb.ugapi[0] == 0
	lowerGapOnAttr0 := len(pb.lgap) > 0 && pb.lgapi[0] == 0
	tot0Only := len(pb.totGap) == 1 && pb.totGap[0] == 0

	antmon := false
	for i := 0; i < pb.n; i++ {
		items := pb.items[i]
		endp := len(items)
		strp := endp - 1
		for strp > 0 {
			for !antmon {
				if upperGapOnAttr0 && pb.attrs[0][i][endp-1]-pb.attrs[0][i][strp-1] > pb.ugap[0] {
					endp--
					if strp == endp {
						strp--
						if strp == 0 {
							break
						}
					}
				} else {
					antmon = true
				}
			}
			if antmon {
				lastP := endp
				for endp != strp {
					if lowerGapOnAttr0 && pb.attrs[0][i][endp-1]-pb.attrs[0][i][strp-1] < pb.lgap[0] {
						break
					}
					if !pb.hasTotalGapConstraints() || tot0Only || checkGap(pb, i, strp, endp) {
						addArc(ctx, i, strp, endp)
					}
					endp--
				}
				strp--
				if len(pb.ugap) > 0 {
					antmon = false
				}
				endp = lastP
			}
		}
	}
}

// addArc installs an arc from position strp to position endp (1-based) of
// sequence seqIdx, allocating either endpoint's node on first touch.
// Mirrors build_mdd.cpp's Add_arc.
func addArc(ctx *miningContext, seqIdx, strp, endp int) {
	pb := ctx.pb
	items := pb.items[seqIdx]

	fromNode := ctx.getOrCreateNode(items[strp-1], strp)
	toNode := ctx.getOrCreateNode(items[endp-1], endp)

	assignID(ctx, toNode, seqIdx, endp, nil)
	assignID(ctx, fromNode, seqIdx, strp, toNode)

	seedDFS(ctx, seqIdx, fromNode, toNode)
}

// assignID implements Node::assign_ID's two phases on n: an open-sequence
// phase (first touch of seqIdx allocates a fresh cohort) and, when child is
// non-nil, an arc-recording phase that appends child and folds its
// attribute summaries into n's current cohort.
func assignID(ctx *miningContext, n *mddNode, seqIdx, lvl int, child *mddNode) {
	pb := ctx.pb

	if len(n.seqID) == 0 || n.seqID[len(n.seqID)-1] != seqIdx {
		n.seqID = append(n.seqID, seqIdx)
		n.children = append(n.children, nil)
		n.item = pb.items[seqIdx][lvl-1]

		var blocks []attrSummary
		if pb.hasExpensiveConstraints() {
			blocks = make([]attrSummary, pb.numAtt)
			for a := 0; a < pb.numAtt; a++ {
				blocks[a] = newAttrSummary(pb.layouts[a], pb.attrs[a][seqIdx][lvl-1])
			}
			for j, a := range pb.lmedi {
				v := pb.attrs[a][seqIdx][lvl-1]
				blocks[a].initLowerMedianSeed(pb.layouts[a], v, pb.lmed[j], pb.minAttrs[a], pb.maxAttrs[a])
			}
			for j, a := range pb.umedi {
				v := pb.attrs[a][seqIdx][lvl-1]
				blocks[a].initUpperMedianSeed(pb.layouts[a], v, pb.umed[j], pb.minAttrs[a], pb.maxAttrs[a])
			}
		}
		n.attr = append(n.attr, blocks)
	}

	if child == nil {
		return
	}

	n.children[len(n.children)-1] = append(n.children[len(n.children)-1], child)

	parentAttr := n.currentAttr()
	childAttr := child.currentAttr()

	for _, a := range pb.lspni {
		updateMinMax(parentAttr[a], childAttr[a])
	}
	for j, a := range pb.uavri {
		updateSumUpper(parentAttr[a], childAttr[a], pb.layouts[a], pb.uavr[j])
	}
	for j, a := range pb.lavri {
		updateSumLower(parentAttr[a], childAttr[a], pb.layouts[a], pb.lavr[j])
	}
	for j, a := range pb.umedi {
		updateMedianUpper(parentAttr[a], childAttr[a], pb.layouts[a], pb.umed[j], pb.minAttrs[a], pb.maxAttrs[a])
	}
	for j, a := range pb.lmedi {
		updateMedianLower(parentAttr[a], childAttr[a], pb.layouts[a], pb.lmed[j], pb.minAttrs[a], pb.maxAttrs[a])
	}
}

// seedDFS attempts to record a length-1 pattern ending at fromNode for
// seqIdx, once per sequence. It runs the can-this-ever-be-frequent checks
// from fromNode's summaries before committing anything. Mirrors
// build_mdd.cpp's Intlz_DFS.
func seedDFS(ctx *miningContext, seqIdx int, fromNode, toNode *mddNode) {
	pb := ctx.pb
	if fromNode.parent == seqIdx {
		return
	}

	fb := fromNode.currentAttr()
	tb := toNode.currentAttr()

	for j, a := range pb.lspni {
		limit := pb.lspn[j]
		if fb[a][2]-fb[a][1] < limit {
			return
		}
	}

	for j, a := range pb.lavri {
		limit := pb.lavr[j]
		layout := pb.layouts[a]
		numerator := fb[a].v() + tb[a][layout.sumLowerIdx()]
		denom := 1 + tb[a][layout.cntLowerIdx()]
		if float64(numerator)/float64(denom) < float64(limit) {
			return
		}
	}

	for j, a := range pb.uavri {
		limit := pb.uavr[j]
		layout := pb.layouts[a]
		numerator := fb[a].v() + tb[a][layout.sumUpperIdx()]
		denom := 1 + tb[a][layout.cntUpperIdx()]
		if float64(numerator)/float64(denom) > float64(limit) {
			return
		}
	}

	for j, a := range pb.umedi {
		limit := pb.umed[j]
		layout := pb.layouts[a]
		if fb[a].v() <= limit {
			continue
		}
		g := layout.upperMedGroup()
		cIdx, mnIdx, mxIdx := layout.medCounterIdx(g), layout.medTieMinIdx(g), layout.medTieMaxIdx(g)
		c := fb[a][cIdx] - 1
		if c < 0 {
			return
		}
		if c == 0 {
			fnod3 := fb[a][mxIdx]
			if fb[a].v() < fnod3 {
				fnod3 = fb[a].v()
			}
			if 0.5*float64(fnod3+fb[a][mnIdx]) > float64(limit) {
				return
			}
		}
	}

	for j, a := range pb.lmedi {
		limit := pb.lmed[j]
		layout := pb.layouts[a]
		if fb[a].v() >= limit {
			continue
		}
		g := layout.lowerMedGroup()
		cIdx, mnIdx, mxIdx := layout.medCounterIdx(g), layout.medTieMinIdx(g), layout.medTieMaxIdx(g)
		c := fb[a][cIdx] - 1
		if c < 0 {
			return
		}
		if c == 0 {
			fnod2 := fb[a][mnIdx]
			if fb[a].v() > fnod2 {
				fnod2 = fb[a].v()
			}
			if 0.5*float64(fnod2+fb[a][mxIdx]) < float64(limit) {
				return
			}
		}
	}

	item := fromNode.item
	rec := ctx.dfs[item-1]
	if rec == nil {
		rec = newPatternRecord(item)
		ctx.dfs[item-1] = rec
	}
	if len(rec.seqID) == 0 || rec.seqID[len(rec.seqID)-1] != seqIdx {
		rec.update(seqIdx, pb)
	}
	last := rec.lastCohort()
	rec.cohort[last] = append(rec.cohort[last], fromNode)

	for j, a := range pb.totSpn {
		v := fb[a].v()
		rec.spn[last][j] = append(rec.spn[last][j], spanAgg{v, v})
	}
	for j, a := range pb.totAvr {
		rec.avr[last][j] = append(rec.avr[last][j], fb[a].v())
	}
	for j, a := range pb.lmedi {
		limit := pb.lmed[j]
		v := fb[a].v()
		var m medAgg
		if v < limit {
			m = medAgg{-1, v, pb.maxAttrs[a] + 1}
		} else {
			m = medAgg{1, pb.minAttrs[a] - 1, v}
		}
		rec.lmed[last][j] = append(rec.lmed[last][j], m)
	}
	for j, a := range pb.umedi {
		limit := pb.umed[j]
		v := fb[a].v()
		var m medAgg
		if v <= limit {
			m = medAgg{1, v, pb.maxAttrs[a] + 1}
		} else {
			m = medAgg{-1, pb.minAttrs[a] - 1, v}
		}
		rec.umed[last][j] = append(rec.umed[last][j], m)
	}

	fromNode.parent = seqIdx
}
