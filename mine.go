package seqpat

// Mine runs sequential pattern mining over db under cfg: it builds the
// multi-valued decision diagram, seeds length-1 patterns, then
// depth-first extends every pattern whose frequency clears cfg.Theta
// until no extension survives. Mirrors seq2pat.cpp's Seq2pat::mine, with
// the parameter block and mining state built explicitly instead of
// relying on file-scope globals.
func Mine(db Database, cfg Config) (*Result, error) {
	applyDefaults(&cfg)

	if len(db) == 0 {
		return emptyResult(), nil
	}

	pb, err := buildParamBlock(db, cfg)
	if err != nil {
		return nil, err
	}

	metrics := cfg.metrics
	ctx := newMiningContext(pb, metrics)

	buildMDD(ctx)
	if metrics != nil {
		metrics.observeMDDNodes(countLiveNodes(ctx))
	}

	runDFS(ctx)

	if metrics != nil {
		metrics.observePatterns(len(ctx.results))
	}

	return &Result{Patterns: ctx.results}, nil
}

func countLiveNodes(ctx *miningContext) int {
	n := 0
	for _, node := range ctx.nodes {
		if node != nil {
			n++
		}
	}
	return n
}
