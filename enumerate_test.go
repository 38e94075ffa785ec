package seqpat

import "testing"

func TestFindSeqPos(t *testing.T) {
	ids := []int{1, 3, 7, 9, 20}
	cases := map[int]int{1: 0, 3: 1, 7: 2, 9: 3, 20: 4, 0: -1, 8: -1, 21: -1}
	for seq, want := range cases {
		if got := findSeqPos(ids, seq); got != want {
			t.Errorf("findSeqPos(%v, %d) = %d, want %d", ids, seq, got, want)
		}
	}
}

func TestFindSeqPos_Empty(t *testing.T) {
	if got := findSeqPos(nil, 5); got != -1 {
		t.Errorf("findSeqPos(nil, 5) = %d, want -1", got)
	}
}

func TestRunDFS_DropsBelowThetaWithoutExtending(t *testing.T) {
	db := Database{seq(1, 2, 3)}
	cfg := DefaultConfig()
	cfg.Theta = 5 // unreachable with a single sequence
	pb, err := buildParamBlock(db, cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx := newMiningContext(pb, nil)
	buildMDD(ctx)
	runDFS(ctx)
	if len(ctx.results) != 0 {
		t.Errorf("expected no patterns when theta is unreachable, got %v", ctx.results)
	}
}

func TestExtendPattern_EmitsOnlyMultiItemPatterns(t *testing.T) {
	db := Database{seq(1, 2, 3)}
	cfg := DefaultConfig()
	cfg.Theta = 1
	pb, err := buildParamBlock(db, cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx := newMiningContext(pb, nil)
	buildMDD(ctx)
	runDFS(ctx)
	for _, p := range ctx.results {
		if len(p.Items) <= 1 {
			t.Errorf("emitted pattern %v should have more than one item", p.Items)
		}
	}
	if len(ctx.results) == 0 {
		t.Error("expected at least one multi-item pattern from a 3-item sequence")
	}
}
