package ingest

import "gonum.org/v1/gonum/stat"

// AttrSummary is a per-attribute descriptive summary, reported at ingest
// time so a caller can sanity-check a column before mining it.
type AttrSummary struct {
	Name     string
	Count    int
	Mean     float64
	StdDev   float64
	Min, Max float64
}

// Summarize computes one AttrSummary per name in attrOrder, pooling every
// value of that attribute across every sequence in db.
func Summarize(db NamedDatabase, attrOrder []string) []AttrSummary {
	out := make([]AttrSummary, len(attrOrder))
	for i, name := range attrOrder {
		var values []float64
		for _, seq := range db {
			for _, ev := range seq {
				if v, ok := ev.Attrs[name]; ok {
					values = append(values, float64(v))
				}
			}
		}
		s := AttrSummary{Name: name, Count: len(values)}
		if len(values) > 0 {
			s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
			s.Min, s.Max = minMax(values)
		}
		out[i] = s
	}
	return out
}

func minMax(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
