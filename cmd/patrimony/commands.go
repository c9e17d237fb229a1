package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/anka/patrimony-planner/internal/calculation"
	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/anka/patrimony-planner/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "patrimony",
		Short:             "Project and compare patrimony simulations",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "portfolio.yaml", "portfolio YAML file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "settings file loaded before the environment (default .env when present)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log every projected year")

	root.AddCommand(
		newProjectCmd(a),
		newCompareCmd(a),
		newVersionsCmd(a),
		newValidateCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
	)
	return root
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		if a.log != nil {
			a.log.Errorw("command failed", "error", err, "kind", domain.KindOf(err))
			_ = a.log.Sync()
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ConfigurationError("invalid id %q", s)
	}
	return id, nil
}

func newProjectCmd(a *app) *cobra.Command {
	var rf reportFlags
	var clientID int64
	cmd := &cobra.Command{
		Use:   "project [simulation-id]",
		Short: "Project one simulation year by year",
		Long: "Project one simulation year by year. Without an id, --client selects\n" +
			"that client's current situation.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			status, err := rf.status()
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}

			var simulationID int64
			switch {
			case len(args) == 1:
				if simulationID, err = parseID(args[0]); err != nil {
					return err
				}
			case clientID > 0:
				current, err := svc.CurrentSituation(ctx, clientID)
				if err != nil {
					return err
				}
				simulationID = current.ID
			default:
				return domain.ConfigurationError("a simulation id or --client is required")
			}

			res, err := svc.Project(ctx, simulationID, rf.endYear, status)
			if err != nil {
				return err
			}
			opts := calculation.ProjectionOptions{EndYear: rf.endYear, LifeStatus: status}
			return a.emit(ctx, cmd.OutOrStdout(), calculation.Align([]*domain.ProjectionResult{res}, opts), &rf)
		},
	}
	rf.register(cmd)
	cmd.Flags().Int64Var(&clientID, "client", 0, "project the current situation of this client")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var rf reportFlags
	cmd := &cobra.Command{
		Use:   "compare simulation-id...",
		Short: "Compare simulations on a shared year axis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := rf.status()
			if err != nil {
				return err
			}
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			res, err := svc.Compare(cmd.Context(), ids, rf.endYear, status)
			if err != nil {
				return err
			}
			return a.emit(cmd.Context(), cmd.OutOrStdout(), res, &rf)
		},
	}
	rf.register(cmd)
	return cmd
}

func newVersionsCmd(a *app) *cobra.Command {
	var clientID int64
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List the latest version of each simulation of a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			sims, err := svc.LatestVersions(cmd.Context(), clientID)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tVERSION\tSTART\tREAL RATE\tCURRENT")
			for _, s := range sims {
				current := ""
				if s.IsCurrentSituation {
					current = "yes"
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
					s.ID, s.Name, s.Version, s.StartDate.Format("2006-01-02"), s.RealRate.String(), current)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int64Var(&clientID, "client", 0, "client id")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the portfolio file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPortfolio()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d clients, %d simulations OK\n", a.configPath, len(p.Clients), len(p.Simulations))
			return nil
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example portfolio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.parser.CreateExampleConfiguration()
			if len(args) == 1 {
				if err := a.parser.SavePortfolio(p, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "example portfolio written to %s\n", args[0])
				return nil
			}
			data, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		Args:  cobra.NoArgs,
		// no settings needed
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}
