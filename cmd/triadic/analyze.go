package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triadic/balance"
	"github.com/katalvlaran/triadic/community"
	"github.com/katalvlaran/triadic/config"
	"github.com/katalvlaran/triadic/homophily"
	"github.com/katalvlaran/triadic/loader"
	"github.com/katalvlaran/triadic/observability"
	"github.com/katalvlaran/triadic/report"
)

// errNoInput is returned when the edge or label table is not configured.
var errNoInput = errors.New("both --edges and --labels are required")

// flagKeys maps analyze flags onto configuration keys.
var flagKeys = map[string]string{
	"edges":            "input.edges",
	"labels":           "input.labels",
	"delimiter":        "input.delimiter",
	"header":           "input.header",
	"trials":           "analysis.trials",
	"seed":             "analysis.seed",
	"workers":          "analysis.workers",
	"format":           "output.format",
	"out":              "output.path",
	"community":        "community.strategy",
	"resolution":       "community.resolution",
	"top":              "community.top",
	"metrics-textfile": "metrics.textfile",
	"otlp-endpoint":    "tracing.endpoint",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

func newAnalyzeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a labeled edge list",
		Example: `  triadic analyze --edges edges.csv --labels labels.csv
  triadic analyze --edges edges.tsv --labels labels.tsv --delimiter '\t' --trials 1000 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New(configPath)
			for flag, key := range flagKeys {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return fmt.Errorf("bind --%s: %w", flag, err)
				}
			}
			cfg, err := config.Decode(v)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Config file path (YAML)")
	f.String("edges", "", "Edge table: source,target per row")
	f.String("labels", "", "Label table: vertex,label per row")
	f.String("delimiter", d.Input.Delimiter, "Field delimiter")
	f.Bool("header", d.Input.Header, "Tables start with a header row")
	f.Int("trials", d.Analysis.Trials, "Null-model permutation trials")
	f.Int64("seed", d.Analysis.Seed, "Null-model seed (0 uses the default seed)")
	f.Int("workers", d.Analysis.Workers, "Parallel trials (0 = GOMAXPROCS)")
	f.String("format", d.Output.Format, "Output format: text, json or yaml")
	f.String("out", d.Output.Path, "Write the report to this file instead of stdout")
	f.String("community", d.Community.Strategy, "Community strategy: louvain, components or none")
	f.Float64("resolution", d.Community.Resolution, "Louvain resolution")
	f.Int("top", d.Community.Top, "Vertices listed by betweenness (0 disables)")
	f.String("metrics-textfile", d.Metrics.Textfile, "Write Prometheus metrics to this textfile")
	f.String("otlp-endpoint", d.Tracing.Endpoint, "OTLP gRPC endpoint for traces")
	f.String("log-level", d.Log.Level, "Log level: debug, info, warn or error")
	f.String("log-format", d.Log.Format, "Log format: text or json")
	return cmd
}

// runAnalyze loads the inputs, runs every analysis and writes the report.
func runAnalyze(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) (err error) {
	log := newLogger(stderr, cfg.Log)
	if cfg.Input.Edges == "" || cfg.Input.Labels == "" {
		return errNoInput
	}

	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		Endpoint:       cfg.Tracing.Endpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := tp.Shutdown(sctx); serr != nil {
			log.Warn("tracer shutdown", "error", serr)
		}
	}()

	ctx, span := observability.StartRunSpan(ctx, cfg.Input.Edges, cfg.Input.Labels)
	defer span.End()
	defer func() { observability.RecordError(span, err) }()

	// Resolve the strategy before any work so a bad name fails fast.
	strategy, err := community.Select(cfg.Community.Strategy, cfg.Community.Resolution, cfg.Analysis.Seed)
	if err != nil {
		return err
	}

	ds, err := loader.LoadFiles(cfg.Input.Edges, cfg.Input.Labels, loader.Options{
		Delimiter: cfg.Input.Rune(),
		Header:    cfg.Input.Header,
	})
	if err != nil {
		return err
	}
	log.Info("loaded graph",
		"vertices", ds.Graph.VertexCount(),
		"edges", ds.Graph.EdgeCount(),
		"categories", ds.Encoder.K(),
		"self_loops_dropped", ds.SelfLoops,
		"repeated_edges", ds.Repeated)

	metrics := observability.NewMetrics()
	opts := []balance.Option{
		balance.WithTrials(cfg.Analysis.Trials),
		balance.WithSeed(cfg.Analysis.Seed),
		balance.WithCategories(ds.Encoder.K()),
		balance.WithObserver(metrics),
		balance.WithLogger(log),
	}
	if cfg.Analysis.Workers > 0 {
		opts = append(opts, balance.WithWorkers(cfg.Analysis.Workers))
	}

	start := time.Now()
	rep, err := balance.Analyze(ctx, ds.Graph, ds.Labels, opts...)
	if err != nil {
		return err
	}
	log.Info("analysis complete",
		"triangles", rep.Triangles,
		"closure_rate", rep.ClosureRate.String(),
		"lift", rep.Lift.String(),
		"z_score", rep.ZScore.String(),
		"elapsed", time.Since(start))
	metrics.RecordReport(rep)

	env := report.NewEnvelope(report.Input{
		Edges:      cfg.Input.Edges,
		Labels:     cfg.Input.Labels,
		SelfLoops:  ds.SelfLoops,
		Repeated:   ds.Repeated,
		Categories: ds.Encoder.Names(),
	}, rep)

	if env.Homophily, err = homophily.Analyze(ds.Graph, ds.Labels); err != nil {
		return err
	}
	if strategy != nil {
		if env.Community, err = community.Summarize(strategy, ds.Graph, ds.Labels); err != nil {
			return err
		}
	}
	if cfg.Community.Top > 0 {
		for _, r := range community.Betweenness(ds.Graph, cfg.Community.Top) {
			env.Central = append(env.Central, report.Central{Name: ds.Name(r.Vertex), Score: r.Score})
		}
	}

	if err := writeReport(cfg.Output, env, stdout, log); err != nil {
		return err
	}

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		log.Debug("metrics written", "path", cfg.Metrics.Textfile)
	}
	return nil
}

func writeReport(out config.OutputConfig, env *report.Envelope, stdout io.Writer, log *slog.Logger) error {
	if out.Path == "" {
		return report.Render(stdout, out.Format, env)
	}
	f, err := os.Create(out.Path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Render(f, out.Format, env); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	log.Info("report written", "path", out.Path, "run_id", env.RunID)
	return nil
}
