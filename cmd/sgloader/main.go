package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GriffinCanCode/sceneryloader/internal/config"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/catalog"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/session"
	"github.com/GriffinCanCode/sceneryloader/internal/domain/toggle"
	"github.com/GriffinCanCode/sceneryloader/internal/host/fixture"
	"github.com/GriffinCanCode/sceneryloader/internal/logging"
	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// toggleList collects repeated -toggle flags
type toggleList []string

func (t *toggleList) String() string { return strings.Join(*t, ",") }

func (t *toggleList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

// Report is the JSON document printed on stdout
type Report struct {
	Session  string                  `json:"session"`
	Outcomes []*toggle.Outcome       `json:"outcomes,omitempty"`
	Errors   []string                `json:"errors,omitempty"`
	Rows     []catalog.Row           `json:"rows"`
	Stats    types.ActivationStats   `json:"stats"`
	Census   map[types.Kind][]string `json:"census"`
	Metrics  map[string]float64      `json:"metrics,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "sgloader: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg := config.LoadOrDefault()

	fs := flag.NewFlagSet("sgloader", flag.ContinueOnError)
	fixturePath := fs.String("fixture", cfg.Fixture.Path, "Fixture file (.yaml, .yml, .toml, .json); empty uses the demo")
	filter := fs.String("filter", "", "Show only groups matching this substring or glob")
	dev := fs.Bool("dev", cfg.Logging.Development, "Development mode (coloured debug logs)")
	var toggles toggleList
	fs.Var(&toggles, "toggle", "Group identifier to toggle (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logCfg := cfg.Logging.LoggerConfig()
	if *dev {
		logCfg = logging.DevelopmentConfig()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	f := fixture.Demo()
	if *fixturePath != "" {
		if f, err = fixture.Load(*fixturePath); err != nil {
			return err
		}
	}
	h, grid, err := f.Build()
	if err != nil {
		return fmt.Errorf("failed to build host: %w", err)
	}

	var reg *prometheus.Registry
	opts := session.Options{
		Logger:            logger,
		Namespace:         cfg.Metrics.Namespace,
		AuthorPlaceholder: cfg.Catalog.AuthorPlaceholder,
	}
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		opts.Registerer = reg
	}

	s, err := session.New(h, grid, opts)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	s.Build()

	report := Report{Session: s.ID().String()}
	for _, groupID := range toggles {
		outcome, err := s.Toggle(groupID)
		if err != nil {
			logger.Warn("Toggle failed", logging.ID(groupID), zap.Error(err))
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.Rows = s.Rows(*filter)
	report.Stats = s.Stats()
	report.Census = s.Census()
	if reg != nil {
		if report.Metrics, err = summarize(reg); err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
	}

	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

// summarize totals every counter and gauge family
func summarize(reg *prometheus.Registry) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
		out[mf.GetName()] = total
	}
	return out, nil
}
