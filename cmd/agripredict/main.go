package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agripredict/internal/config"
	"agripredict/internal/dataset"
	"agripredict/internal/logging"
	"agripredict/internal/telemetry"
	"agripredict/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	seed       uint64
	tab        string
	logFile    string
	verbose    bool
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "agripredict",
		Short: "Crop yield, pest risk and weather dashboard",
		Long: `AgriPredict is a terminal dashboard for crop planning.

It charts predicted yields, pest risk and the weather outlook, lists
prioritized recommendations and estimates yield for a crop, region and
soil pH.

Run without arguments to start the dashboard.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runDashboard(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible estimates")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&opts.tab, "tab", "", "dashboard tab to open first (yield, pest, weather, recommendations)")

	root.AddCommand(newEstimateCmd(opts))
	return root
}

// load reads the config file and applies flags the user set explicitly.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("tab") {
		cfg.InitialTab = o.tab
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDashboard(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rec, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
		rec = telemetry.Disabled()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	model := ui.NewAppModel(ui.Options{
		Config:    cfg,
		Data:      dataset.Default(),
		Logger:    logger,
		Telemetry: rec,
	})
	defer model.Close()

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "agripredict: %v\n", err)
		os.Exit(1)
	}
}
