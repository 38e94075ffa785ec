// Package ingest turns named, possibly-string-keyed sequence data into the
// positional seqpat.Database and seqpat.ConstraintSet the core operates on.
// It is the glue layer: everything here is resolution and validation, no
// mining logic.
package ingest

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"seqpat"
)

// NamedEvent is one position in a NamedSequence: an item (string or integer
// item ids both arrive pre-stringified) plus one value per named attribute.
type NamedEvent struct {
	Item  string         `json:"item"`
	Attrs map[string]int `json:"attrs"`
}

// NamedSequence is a caller-facing sequence: items identified by name rather
// than by positional integer id, attributes identified by name rather than
// by index.
type NamedSequence []NamedEvent

// NamedDatabase is the caller-facing input to Build.
type NamedDatabase []NamedSequence

// ItemMap remembers the string<->int assignment Build derived, so results
// can be translated back to the caller's original item names.
type ItemMap struct {
	toInt    map[string]int
	toString map[int]string
}

// Lookup returns the integer id assigned to name, if any.
func (m ItemMap) Lookup(name string) (int, bool) {
	id, ok := m.toInt[name]
	return id, ok
}

// Name returns the item name originally assigned to id.
func (m ItemMap) Name(id int) string {
	if name, ok := m.toString[id]; ok {
		return name
	}
	return fmt.Sprintf("%d", id)
}

// Translate renders a pattern's item ids as their original names.
func (m ItemMap) Translate(items []int) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = m.Name(it)
	}
	return out
}

// Build resolves db against attrOrder (the attribute names to carry, in the
// order they should be assigned indices 0..len(attrOrder)-1) into a
// positional seqpat.Database, assigning each distinct item name an integer
// id in order of first appearance.
func Build(db NamedDatabase, attrOrder []string) (seqpat.Database, ItemMap, error) {
	if len(db) == 0 {
		return seqpat.Database{}, ItemMap{toInt: map[string]int{}, toString: map[int]string{}}, nil
	}

	toInt := make(map[string]int)
	toString := make(map[int]string)
	nextID := 1

	out := make(seqpat.Database, len(db))
	for si, seq := range db {
		events := make(seqpat.Sequence, len(seq))
		for pi, ev := range seq {
			if ev.Item == "" {
				return nil, ItemMap{}, errors.Errorf("ingest: sequence %d position %d has an empty item name", si, pi)
			}
			id, ok := toInt[ev.Item]
			if !ok {
				id = nextID
				toInt[ev.Item] = id
				toString[id] = ev.Item
				nextID++
			}
			attrs := make([]int, len(attrOrder))
			for ai, name := range attrOrder {
				v, ok := ev.Attrs[name]
				if !ok {
					return nil, ItemMap{}, errors.Errorf("ingest: sequence %d position %d is missing attribute %q", si, pi, name)
				}
				attrs[ai] = v
			}
			events[pi] = seqpat.Event{Item: id, Attrs: attrs}
		}
		out[si] = events
	}
	return out, ItemMap{toInt: toInt, toString: toString}, nil
}

// AttrNames returns the set of attribute names referenced anywhere in db,
// sorted for deterministic ordering. Callers typically pass this (or a
// subset) as Build's attrOrder.
func AttrNames(db NamedDatabase) []string {
	seen := map[string]bool{}
	for _, seq := range db {
		for _, ev := range seq {
			for name := range ev.Attrs {
				seen[name] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
