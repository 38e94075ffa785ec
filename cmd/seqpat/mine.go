package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"seqpat"
	"seqpat/internal/config"
	"seqpat/internal/diag"
	"seqpat/internal/ingest"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Run one mining pass against the configured input",
	RunE:  runMine,
}

// outputPattern is the on-disk shape of a mined pattern: items rendered by
// their original names, plus the frequency counts.
type outputPattern struct {
	Items   []string `json:"items"`
	Support int      `json:"support"`
	ActFreq int      `json:"act_freq"`
}

func runMine(cmd *cobra.Command, args []string) error {
	corrID := uuid.NewString()

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "mine: loading configuration")
	}

	logger := diag.NewLogger(corrID, diag.ParseLevel(cfg.LogLevel), os.Stderr)
	timer := logger.StartWithKV("mine", "run starting", map[string]string{"input": cfg.Input})

	reg := prometheus.NewRegistry()
	metrics := seqpat.NewMetrics(reg)
	stopMetricsServer := serveMetrics(cfg.MetricsAddr, reg, logger)
	if stopMetricsServer != nil {
		defer stopMetricsServer()
	}

	result, itemMap, err := mine(cfg, metrics, logger)
	if err != nil {
		logger.Error("mine", "run-failed", err.Error(), nil)
		return err
	}

	if err := writeResult(cfg.Output, result, itemMap); err != nil {
		logger.Error("mine", "write-failed", err.Error(), nil)
		return err
	}

	timer.Finish("run finished", int64(len(result.Patterns)))
	return nil
}

func mine(cfg config.Config, metrics *seqpat.Metrics, logger *diag.Logger) (*seqpat.Result, ingest.ItemMap, error) {
	raw, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, ingest.ItemMap{}, errors.Wrapf(err, "reading input %s", cfg.Input)
	}
	var namedDB ingest.NamedDatabase
	if err := json.Unmarshal(raw, &namedDB); err != nil {
		return nil, ingest.ItemMap{}, errors.Wrap(err, "parsing input as a named sequence database")
	}

	attrOrder := cfg.Attrs
	if len(attrOrder) == 0 {
		attrOrder = ingest.AttrNames(namedDB)
	}

	summaries := ingest.Summarize(namedDB, attrOrder)
	for _, s := range summaries {
		logger.Debug("mine", "attribute summary", map[string]string{
			"attr": s.Name,
			"mean": fmt.Sprintf("%.3f", s.Mean),
			"min":  fmt.Sprintf("%.3f", s.Min),
			"max":  fmt.Sprintf("%.3f", s.Max),
		})
	}

	db, itemMap, err := ingest.Build(namedDB, attrOrder)
	if err != nil {
		return nil, ingest.ItemMap{}, errors.Wrap(err, "resolving named database")
	}

	specs := make([]ingest.ConstraintSpec, 0, len(cfg.Constraints))
	for _, c := range cfg.Constraints {
		kind, err := config.ParseKind(c.Kind)
		if err != nil {
			return nil, ingest.ItemMap{}, errors.Wrap(err, "parsing constraint kind")
		}
		specs = append(specs, ingest.ConstraintSpec{Kind: kind, Attr: c.Attr, Limit: c.Limit})
	}
	constraints, err := ingest.ResolveConstraints(specs, attrOrder)
	if err != nil {
		return nil, ingest.ItemMap{}, errors.Wrap(err, "resolving constraints")
	}

	theta, err := ingest.ResolveTheta(cfg.Theta, len(db))
	if err != nil {
		return nil, ingest.ItemMap{}, errors.Wrap(err, "resolving theta")
	}

	runCfg := seqpat.WithMetrics(seqpat.DefaultConfig(), metrics)
	runCfg.Theta = theta
	runCfg.Constraints = constraints

	result, err := seqpat.Mine(db, runCfg)
	if err != nil {
		return nil, ingest.ItemMap{}, errors.Wrap(err, "mining")
	}
	return result, itemMap, nil
}

func writeResult(path string, result *seqpat.Result, itemMap ingest.ItemMap) error {
	out := make([]outputPattern, len(result.Patterns))
	for i, p := range result.Patterns {
		out[i] = outputPattern{
			Items:   itemMap.Translate(p.Items),
			Support: p.Support,
			ActFreq: p.ActFreq,
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}
	if path == "" {
		_, err := os.Stdout.Write(append(b, '\n'))
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *diag.Logger) func() {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics", "server-failed", err.Error(), nil)
		}
	}()
	return func() { _ = srv.Close() }
}
