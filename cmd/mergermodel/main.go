package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"mergerModel/internal/config"
	"mergerModel/internal/excel"
	"mergerModel/internal/logger"
	"mergerModel/internal/model"
	"mergerModel/internal/scenario"
	"mergerModel/internal/ui"
)

const configPath = "configs/config.toml"

type verifyFunc func(path string, layout excel.Layout, want model.DealStatus) error

func main() {
	if err := run(configPath, os.Stdout, excel.VerifyDashboard); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, out io.Writer, verify verifyFunc) error {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logger.Init(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logCloser.Close()

	var effective strings.Builder
	if err := config.Encode(&effective, cfg); err == nil {
		logger.Debug("Effective configuration", "config", effective.String())
	}

	p := &pipeline{
		path:        excel.OutputFile,
		sheet:       excel.SheetName,
		assumptions: scenario.Assumptions(cfg.Rate()),
		verify:      verify,
	}

	logger.Info("Starting merger model", "output", p.path, "ui_mode", cfg.UI.Mode)
	if err := ui.RunSteps(p.steps(), cfg.UI.Mode, out); err != nil {
		// main reports to stderr; only a log file needs its own record
		if cfg.Log.File != "" {
			logger.Error("Merger model failed", "error", err)
		}
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, ui.Summary(p.analysis))
	fmt.Fprintf(out, "Excel dashboard saved as %s\n", p.path)

	logger.Info("Merger model completed", "status", p.analysis.Metrics.Status, "output", p.path)
	return nil
}

// pipeline carries results from one step to the next.
type pipeline struct {
	path        string
	sheet       string
	assumptions model.Assumptions
	verify      verifyFunc

	analysis model.Analysis
	layout   excel.Layout
}

func (p *pipeline) steps() []ui.Step {
	return []ui.Step{
		{Name: "Compute deal metrics", Run: p.compute},
		{Name: "Render dashboard", Run: p.render},
		{Name: "Verify dashboard", Run: p.check},
	}
}

func (p *pipeline) compute() error {
	a, err := model.Analyze(scenario.Acquirer(), scenario.Target(), scenario.Deal(), p.assumptions)
	p.analysis = a
	return err
}

func (p *pipeline) render() error {
	l, err := excel.RenderDashboard(p.path, p.sheet, p.analysis)
	p.layout = l
	return err
}

func (p *pipeline) check() error {
	err := p.verify(p.path, p.layout, p.analysis.Metrics.Status)
	if err == nil {
		return nil
	}
	// don't leave an unverified dashboard behind
	if rmErr := os.Remove(p.path); rmErr != nil && !os.IsNotExist(rmErr) {
		logger.Warn("Failed to remove unverified dashboard", "path", p.path, "error", rmErr)
	}
	return err
}
