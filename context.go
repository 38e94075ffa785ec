package seqpat

import "fmt"

// paramBlock is the derived, read-only parameter block mining operates
// against (§6 of the external interface contract). It is built once from a
// Database and ConstraintSet and never mutated afterward.
type paramBlock struct {
	n      int // number of sequences
	m      int // max sequence length
	l      int // alphabet size
	numAtt int
	theta  int

	items [][]int    // items[seqIdx][pos], 0-based pos, item values in [1, l]
	attrs [][][]int  // attrs[att][seqIdx][pos]

	minAttrs, maxAttrs []int // per-attribute global extrema, len numAtt

	lgap, ugap, lspn, uspn, lavr, uavr, lmed, umed   []int // limit values
	lgapi, ugapi, lspni, uspni, lavri, uavri, lmedi, umedi []int // parallel attribute indices

	numMinMax, numAvr, numMed []int // per attribute, len numAtt
	layouts                   []attrLayout

	totGap, totSpn, totAvr []int // attribute indices with any gap/span/avg constraint

	// spnPos/avrPos map an attribute index to its position within totSpn/
	// totAvr, so the arbiter can address the single running aggregate a
	// span- or average-constrained attribute owns regardless of whether
	// it is being checked via its lower or upper limit.
	spnPos map[int]int
	avrPos map[int]int
}

func (pb *paramBlock) hasTotalGapConstraints() bool { return len(pb.totGap) > 0 }
func (pb *paramBlock) hasExpensiveConstraints() bool {
	return len(pb.totSpn) > 0 || len(pb.totAvr) > 0 || len(pb.lmedi) > 0 || len(pb.umedi) > 0
}

// buildParamBlock derives a paramBlock from db and cfg. It assumes cfg has
// already been defaulted, and validates cfg against the attribute count it
// derives from db.
func buildParamBlock(db Database, cfg Config) (*paramBlock, error) {
	n := len(db)
	numAtt := 0
	l := 0
	m := 0
	for _, seq := range db {
		if len(seq) > m {
			m = len(seq)
		}
		for _, ev := range seq {
			if ev.Item > l {
				l = ev.Item
			}
			if len(ev.Attrs) > numAtt {
				numAtt = len(ev.Attrs)
			}
		}
	}
	if err := validateConfig(&cfg, numAtt); err != nil {
		return nil, err
	}

	pb := &paramBlock{
		n: n, m: m, l: l, numAtt: numAtt, theta: cfg.Theta,
		numMinMax: make([]int, numAtt),
		numAvr:    make([]int, numAtt),
		numMed:    make([]int, numAtt),
	}

	pb.items = make([][]int, n)
	pb.attrs = make([][][]int, numAtt)
	for a := range pb.attrs {
		pb.attrs[a] = make([][]int, n)
	}
	for i, seq := range db {
		row := make([]int, len(seq))
		for p, ev := range seq {
			row[p] = ev.Item
		}
		pb.items[i] = row
		for a := 0; a < numAtt; a++ {
			arow := make([]int, len(seq))
			for p, ev := range seq {
				if a < len(ev.Attrs) {
					arow[p] = ev.Attrs[a]
				}
			}
			pb.attrs[a][i] = arow
		}
	}

	if cfg.AttrMin != nil {
		pb.minAttrs = append([]int(nil), cfg.AttrMin...)
	} else {
		pb.minAttrs = make([]int, numAtt)
		for a := range pb.minAttrs {
			pb.minAttrs[a] = int(^uint(0) >> 1) // max int, lowered below
		}
	}
	if cfg.AttrMax != nil {
		pb.maxAttrs = append([]int(nil), cfg.AttrMax...)
	} else {
		pb.maxAttrs = make([]int, numAtt)
		for a := range pb.maxAttrs {
			pb.maxAttrs[a] = -int(^uint(0)>>1) - 1 // min int, raised below
		}
	}
	if cfg.AttrMin == nil || cfg.AttrMax == nil {
		for a := 0; a < numAtt; a++ {
			for i := range db {
				for _, v := range pb.attrs[a][i] {
					if cfg.AttrMin == nil && v < pb.minAttrs[a] {
						pb.minAttrs[a] = v
					}
					if cfg.AttrMax == nil && v > pb.maxAttrs[a] {
						pb.maxAttrs[a] = v
					}
				}
			}
		}
	}

	anySpanAttrs := map[int]bool{}
	lowerSpanAttrs := map[int]bool{}
	avrCount := map[int]int{}
	medCount := map[int]int{}
	gapAttrs := map[int]bool{}

	for _, c := range cfg.Constraints {
		switch c.Kind {
		case LowerGap:
			pb.lgap = append(pb.lgap, c.Limit)
			pb.lgapi = append(pb.lgapi, c.Attr)
			gapAttrs[c.Attr] = true
		case UpperGap:
			pb.ugap = append(pb.ugap, c.Limit)
			pb.ugapi = append(pb.ugapi, c.Attr)
			gapAttrs[c.Attr] = true
		case LowerSpan:
			pb.lspn = append(pb.lspn, c.Limit)
			pb.lspni = append(pb.lspni, c.Attr)
			anySpanAttrs[c.Attr] = true
			lowerSpanAttrs[c.Attr] = true
		case UpperSpan:
			pb.uspn = append(pb.uspn, c.Limit)
			pb.uspni = append(pb.uspni, c.Attr)
			anySpanAttrs[c.Attr] = true
		case LowerAverage:
			pb.lavr = append(pb.lavr, c.Limit)
			pb.lavri = append(pb.lavri, c.Attr)
			avrCount[c.Attr]++
		case UpperAverage:
			pb.uavr = append(pb.uavr, c.Limit)
			pb.uavri = append(pb.uavri, c.Attr)
			avrCount[c.Attr]++
		case LowerMedian:
			pb.lmed = append(pb.lmed, c.Limit)
			pb.lmedi = append(pb.lmedi, c.Attr)
			medCount[c.Attr]++
		case UpperMedian:
			pb.umed = append(pb.umed, c.Limit)
			pb.umedi = append(pb.umedi, c.Attr)
			medCount[c.Attr]++
		default:
			return nil, fmt.Errorf("seqpat: unknown constraint kind %v", c.Kind)
		}
	}

	for a := 0; a < numAtt; a++ {
		if lowerSpanAttrs[a] {
			pb.numMinMax[a] = 2
		}
		if anySpanAttrs[a] {
			pb.totSpn = append(pb.totSpn, a)
		}
		pb.numAvr[a] = avrCount[a]
		if avrCount[a] > 0 {
			pb.totAvr = append(pb.totAvr, a)
		}
		pb.numMed[a] = medCount[a]
		if gapAttrs[a] {
			pb.totGap = append(pb.totGap, a)
		}
	}

	pb.layouts = make([]attrLayout, numAtt)
	for a := 0; a < numAtt; a++ {
		pb.layouts[a] = attrLayout{numMinMax: pb.numMinMax[a], numAvr: pb.numAvr[a], numMed: pb.numMed[a]}
	}

	pb.spnPos = make(map[int]int, len(pb.totSpn))
	for i, a := range pb.totSpn {
		pb.spnPos[a] = i
	}
	pb.avrPos = make(map[int]int, len(pb.totAvr))
	for i, a := range pb.totAvr {
		pb.avrPos[a] = i
	}

	return pb, nil
}

// miningContext is the explicit, per-run mining state that replaces the
// source's file-scope globals (iter, chil_ID_pos, indic_vec, num_max_patt,
// result). It owns the node arena, the DFS queue, and the accumulated
// output rows.
type miningContext struct {
	pb *paramBlock

	// nodes is the arena: node id -> *mddNode, addressed by
	// item + (pos-1)*L. Index 0 is unused (ids start at 1).
	nodes []*mddNode

	// dfs is the DFS queue. It starts pre-sized to L slots, one per item,
	// so seedDFS can address a length-1 pattern record directly by
	// item-1 while the MDD is being built; once building is done, the
	// mining loop treats it purely as a LIFO stack, popping from the back
	// and appending, both for the original L slots and for records pushed
	// later by pattern extension.
	dfs []*patternRecord

	results []Pattern

	metrics *Metrics
}

func newMiningContext(pb *paramBlock, metrics *Metrics) *miningContext {
	return &miningContext{
		pb:      pb,
		nodes:   make([]*mddNode, pb.l*pb.m+1),
		dfs:     make([]*patternRecord, pb.l),
		metrics: metrics,
	}
}

func (mc *miningContext) nodeAt(id int) *mddNode { return mc.nodes[id] }

func (mc *miningContext) nodeFor(item, pos int) (*mddNode, bool) {
	id := nodeID(item, pos, mc.pb.l)
	return mc.nodes[id], mc.nodes[id] != nil
}

func (mc *miningContext) getOrCreateNode(item, pos int) *mddNode {
	id := nodeID(item, pos, mc.pb.l)
	n := mc.nodes[id]
	if n == nil {
		n = &mddNode{id: id, parent: -1}
		mc.nodes[id] = n
	}
	return n
}

// nodeID addresses an MDD node by (1-based position, item), per §3 of the
// data model: item + (position-1)*L.
func nodeID(item, pos, l int) int {
	return item + (pos-1)*l
}

func (mc *miningContext) pushDFS(p *patternRecord) { mc.dfs = append(mc.dfs, p) }

func (mc *miningContext) popDFS() *patternRecord {
	n := len(mc.dfs)
	if n == 0 {
		return nil
	}
	p := mc.dfs[n-1]
	mc.dfs = mc.dfs[:n-1]
	return p
}

func (mc *miningContext) peekDFS() *patternRecord {
	n := len(mc.dfs)
	if n == 0 {
		return nil
	}
	return mc.dfs[n-1]
}

func (mc *miningContext) emit(p *patternRecord) {
	items := append([]int(nil), p.items...)
	mc.results = append(mc.results, Pattern{Items: items, Support: p.freq, ActFreq: p.actFreq})
}
