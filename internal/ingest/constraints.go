package ingest

import (
	"github.com/pkg/errors"

	"seqpat"
)

// ConstraintSpec is a caller-facing constraint: it names its attribute
// instead of indexing it, the way a declared Attribute is bound to a
// constraint before the attribute list is finalized.
type ConstraintSpec struct {
	Kind  seqpat.ConstraintKind
	Attr  string
	Limit int
}

// ResolveConstraints maps specs onto attrOrder's indices, rejecting any
// constraint that names an attribute absent from attrOrder. This mirrors
// the original system's refusal to accept a constraint on an attribute that
// was never declared on the sequences being mined.
func ResolveConstraints(specs []ConstraintSpec, attrOrder []string) (seqpat.ConstraintSet, error) {
	index := make(map[string]int, len(attrOrder))
	for i, name := range attrOrder {
		index[name] = i
	}

	out := make(seqpat.ConstraintSet, 0, len(specs))
	for _, s := range specs {
		idx, ok := index[s.Attr]
		if !ok {
			return nil, errors.Errorf("ingest: constraint %s references undeclared attribute %q", s.Kind, s.Attr)
		}
		out = append(out, seqpat.Constraint{Kind: s.Kind, Attr: idx, Limit: s.Limit})
	}
	return out, nil
}
