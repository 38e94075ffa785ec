package seqpat

import "testing"

func TestBuildParamBlock_Dimensions(t *testing.T) {
	db := Database{
		seqWithAttr([]int{1, 2, 3}, []int{10, 20, 30}),
		seqWithAttr([]int{2, 3}, []int{5, 6}),
	}
	cfg := DefaultConfig()
	pb, err := buildParamBlock(db, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if pb.n != 2 {
		t.Errorf("n = %d, want 2", pb.n)
	}
	if pb.m != 3 {
		t.Errorf("m = %d, want 3", pb.m)
	}
	if pb.l != 3 {
		t.Errorf("l = %d, want 3", pb.l)
	}
	if pb.numAtt != 1 {
		t.Errorf("numAtt = %d, want 1", pb.numAtt)
	}
	if pb.minAttrs[0] != 5 || pb.maxAttrs[0] != 30 {
		t.Errorf("minAttrs/maxAttrs = %d/%d, want 5/30", pb.minAttrs[0], pb.maxAttrs[0])
	}
}

func TestBuildParamBlock_NumMinMaxIsLowerSpanSpecific(t *testing.T) {
	db := Database{seqWithAttr([]int{1, 2}, []int{1, 2}), seqWithAttr([]int{1, 2}, []int{1, 2})}
	cfg := DefaultConfig()
	cfg.Constraints = ConstraintSet{{Kind: UpperSpan, Attr: 0, Limit: 10}}
	pb, err := buildParamBlock(db, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if pb.numMinMax[0] != 0 {
		t.Errorf("upper-span-only attribute should have numMinMax=0, got %d", pb.numMinMax[0])
	}
	if len(pb.totSpn) != 1 || pb.totSpn[0] != 0 {
		t.Errorf("totSpn = %v, want [0]", pb.totSpn)
	}

	cfg.Constraints = ConstraintSet{{Kind: LowerSpan, Attr: 0, Limit: 1}}
	pb, err = buildParamBlock(db, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if pb.numMinMax[0] != 2 {
		t.Errorf("lower-span attribute should have numMinMax=2, got %d", pb.numMinMax[0])
	}
}

func TestBuildParamBlock_SpnAvrPosMaps(t *testing.T) {
	db := Database{seqWithAttr([]int{1, 2}, []int{1, 2})}
	for i := range db[0] {
		db[0][i].Attrs = append(db[0][i].Attrs, db[0][i].Attrs[0])
	}
	cfg := DefaultConfig()
	cfg.Constraints = ConstraintSet{
		{Kind: UpperSpan, Attr: 1, Limit: 5},
		{Kind: LowerSpan, Attr: 0, Limit: 0},
		{Kind: UpperAverage, Attr: 1, Limit: 5},
		{Kind: LowerAverage, Attr: 0, Limit: 0},
	}
	pb, err := buildParamBlock(db, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if pb.spnPos[0] == pb.spnPos[1] {
		t.Errorf("attributes 0 and 1 should map to distinct totSpn positions, both got %d", pb.spnPos[0])
	}
	if pb.avrPos[0] == pb.avrPos[1] {
		t.Errorf("attributes 0 and 1 should map to distinct totAvr positions, both got %d", pb.avrPos[0])
	}
}

func TestBuildParamBlock_RejectsOutOfRangeAttr(t *testing.T) {
	db := Database{seqWithAttr([]int{1, 2}, []int{1, 2})}
	cfg := DefaultConfig()
	cfg.Constraints = ConstraintSet{{Kind: UpperGap, Attr: 5, Limit: 1}}
	if _, err := buildParamBlock(db, cfg); err == nil {
		t.Error("expected an error for an out-of-range constraint attribute")
	}
}

func TestNewMiningContext_DFSPreSized(t *testing.T) {
	pb := &paramBlock{l: 4, m: 2}
	ctx := newMiningContext(pb, nil)
	if len(ctx.dfs) != 4 {
		t.Errorf("dfs pre-size = %d, want 4", len(ctx.dfs))
	}
	for i, rec := range ctx.dfs {
		if rec != nil {
			t.Errorf("dfs[%d] should start nil", i)
		}
	}
}

func TestNodeID_Addressing(t *testing.T) {
	l := 5
	if got := nodeID(1, 1, l); got != 1 {
		t.Errorf("nodeID(1,1,5) = %d, want 1", got)
	}
	if got := nodeID(3, 2, l); got != 8 {
		t.Errorf("nodeID(3,2,5) = %d, want 8", got)
	}
}
