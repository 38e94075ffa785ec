// Package seqpat mines frequent sequential patterns from a multi-attribute
// sequence database under gap, span, average, and median constraints.
//
// A Database is an ordered collection of Sequences; each Sequence is an
// ordered list of Events, and each Event carries an item id plus one
// integer value per attribute. Mine builds a multi-valued decision diagram
// over the database, seeds it with every length-1 pattern that could ever
// satisfy the active constraints, then depth-first extends each candidate
// one item at a time, pruning as soon as a constraint makes further
// extension infeasible.
//
// Basic usage:
//
//	cfg := seqpat.DefaultConfig()
//	cfg.Theta = 2
//	cfg.Constraints = seqpat.ConstraintSet{
//		{Kind: seqpat.UpperGap, Attr: 0, Limit: 3},
//		{Kind: seqpat.LowerAverage, Attr: 1, Limit: 5},
//	}
//	result, err := seqpat.Mine(db, cfg)
//	// result.Patterns[i].Items is the pattern's item sequence
//	// result.Patterns[i].ActFreq is the number of sequences that witness it
//
// # Constraints
//
// Eight constraint kinds are supported, each binding one limit to one
// attribute index: LowerGap/UpperGap, LowerSpan/UpperSpan,
// LowerAverage/UpperAverage, LowerMedian/UpperMedian. An attribute may
// carry constraints of several kinds at once, at most one of each kind;
// the summary slot layout holds one witness per kind. Mine derives every
// internal index vector these constraints need from the Database and
// ConstraintSet; callers never supply the parameter block directly.
package seqpat
