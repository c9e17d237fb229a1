package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/anka/patrimony-planner/internal/calculation"
	"github.com/anka/patrimony-planner/internal/config"
	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/internal/logging"
	"github.com/anka/patrimony-planner/internal/output"
	"github.com/anka/patrimony-planner/internal/planner"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every command of one invocation
type app struct {
	configPath string
	envFile    string
	debug      bool

	settings *config.Settings
	log      *zap.SugaredLogger
	parser   *config.InputParser
}

// setup loads settings and builds the run logger before any command runs
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	settings, err := config.LoadSettings(files...)
	if err != nil {
		return &domain.Error{Kind: domain.KindConfiguration, Message: "invalid settings", Err: err}
	}
	a.settings = settings

	level := settings.LogLevel
	if a.debug {
		level = "debug"
	}
	base, err := logging.New(settings.Env, level)
	if err != nil {
		return &domain.Error{Kind: domain.KindConfiguration, Message: "invalid logging settings", Err: err}
	}
	a.log = base.With("run_id", uuid.NewString(), "command", cmd.Name())
	a.parser = config.NewInputParser()
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	logging.Sync(a.log)
}

func (a *app) loadPortfolio() (*domain.Portfolio, error) {
	p, err := a.parser.LoadFromFile(a.configPath)
	if err != nil {
		return nil, err
	}
	a.log.Debugw("portfolio loaded", "path", a.configPath, "clients", len(p.Clients), "simulations", len(p.Simulations))
	return p, nil
}

// service wires the planner over the portfolio file
func (a *app) service() (*planner.Service, error) {
	p, err := a.loadPortfolio()
	if err != nil {
		return nil, err
	}
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(a.log)
	engine.Debug = a.debug
	if a.settings.Workers > 0 {
		engine.Workers = a.settings.Workers
	}
	return planner.NewService(planner.NewPortfolioStore(p), engine), nil
}

// reportFlags are shared by the commands that render a comparison
type reportFlags struct {
	endYear    int
	lifeStatus string
	formats    []string
	save       bool
	outputDir  string
}

func (rf *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rf.endYear, "end-year", 0, "last calendar year to project (required)")
	cmd.Flags().StringVar(&rf.lifeStatus, "life-status", "", "truncate the horizon: ACTIVE, RETIRED or DECEASED")
	cmd.Flags().StringSliceVarP(&rf.formats, "format", "f", []string{"console"}, "output formats, or \"all\" with --save")
	cmd.Flags().BoolVar(&rf.save, "save", false, "write timestamped report files instead of printing")
	cmd.Flags().StringVar(&rf.outputDir, "output-dir", "", "directory for saved reports (default from PATRIMONY_OUTPUT_DIR)")
	_ = cmd.MarkFlagRequired("end-year")
}

func (rf *reportFlags) status() (domain.LifeStatus, error) {
	return domain.ParseLifeStatus(rf.lifeStatus)
}

// emit prints the first format to w, or saves every format when requested
func (a *app) emit(ctx context.Context, w io.Writer, results *domain.ComparisonResult, rf *reportFlags) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lang := a.settings.Language()
	if rf.save {
		dir := rf.outputDir
		if dir == "" {
			dir = a.settings.OutputDir
		}
		paths, err := output.GenerateReport(results, output.ReportOptions{Dir: dir, Language: lang}, rf.formats...)
		for _, p := range paths {
			fmt.Fprintln(w, p)
		}
		if err != nil {
			return err
		}
		a.log.Infow("reports written", "count", len(paths), "dir", dir)
		return nil
	}

	if len(rf.formats) != 1 {
		return domain.ConfigurationError("printing supports exactly one format, got %d; use --save for several", len(rf.formats))
	}
	f, err := output.ResolveFormatter(rf.formats[0])
	if err != nil {
		return err
	}
	data, err := output.Localize(f, lang).Format(results)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// exitCode maps error kinds to process exit codes
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	switch domain.KindOf(err) {
	case domain.KindConfiguration:
		return 2
	case domain.KindNotFound:
		return 3
	case domain.KindInconsistentState:
		return 4
	}
	if errors.Is(err, output.ErrUnsupportedFormat) {
		return 2
	}
	return 1
}
