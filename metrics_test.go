package seqpat

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.observeMDDNodes(10)
	m.observePatterns(3)
}

func TestMetrics_ObservesRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	db := Database{seq(1, 2, 3), seq(1, 2)}
	cfg := WithMetrics(DefaultConfig(), m)
	cfg.Theta = 1
	if _, err := Mine(db, cfg); err != nil {
		t.Fatal(err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	var runsTotal float64
	found := false
	for _, fam := range families {
		if fam.GetName() != "seqpat_runs_total" {
			continue
		}
		found = true
		for _, metric := range fam.GetMetric() {
			runsTotal += metric.GetCounter().GetValue()
		}
	}
	if !found {
		t.Fatal("seqpat_runs_total metric was never registered")
	}
	if runsTotal != 1 {
		t.Errorf("runsTotal = %v, want 1", runsTotal)
	}
}
