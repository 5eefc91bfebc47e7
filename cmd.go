package main

import (
	"fmt"
	"io"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/folio/internal/catalog"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/logger"
	"github.com/olivier-w/folio/internal/showcase"
	"github.com/olivier-w/folio/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	config  string
	catalog string
	sort    string
	seed    int64
	fps     int
	debug   bool
	logFile string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Terminal portfolio with a draggable project showcase",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, false); err != nil {
				return err
			}
			defer logger.Sync()
			return runShowcase(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "path to config file")
	pf.StringVar(&f.catalog, "catalog", "", "path to a projects YAML file (default: built-in catalog)")
	pf.StringVar(&f.sort, "sort", "", "initial sort: date, ecosystem, role or random")
	pf.Int64Var(&f.seed, "seed", 0, "seed for random sort (0 uses the clock)")
	pf.BoolVar(&f.debug, "debug", false, "enable debug logging")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	root.Flags().IntVar(&f.fps, "fps", 0, "animation frame rate")

	root.AddCommand(newListCmd(&f))
	return root
}

func newListCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog in sorted order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *f)
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, true); err != nil {
				return err
			}
			defer logger.Sync()
			return listCatalog(cmd.OutOrStdout(), cfg)
		},
	}
}

// loadConfig layers flags over the file and environment configuration.
func loadConfig(cmd *cobra.Command, f rootFlags) (*config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog.Path = f.catalog
	}
	if flags.Changed("sort") {
		cfg.Catalog.Sort = f.sort
	}
	if flags.Changed("seed") {
		cfg.Catalog.Seed = f.seed
	}
	if flags.Changed("fps") && f.fps > 0 {
		cfg.UI.FPS = f.fps
	}
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	if flags.Changed("log-file") {
		cfg.Logging.LogFile = f.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runShowcase(cfg *config.Config) error {
	log := logger.Named("showcase")

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	opts, err := showcase.OptionsFromConfig(cfg, log)
	if err != nil {
		return err
	}
	sc := showcase.New(cat, opts)
	log.Info("starting", zap.Int("projects", cat.Len()), zap.String("sort", cfg.Catalog.Sort))

	model := ui.New(sc, cfg, logger.Named("ui"))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run showcase: %w", err)
	}
	return nil
}

var (
	listTitleStyle = lipgloss.NewStyle().Bold(true)
	listMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})
)

func listCatalog(w io.Writer, cfg *config.Config) error {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	c, err := catalog.ParseCriterion(cfg.Catalog.Sort)
	if err != nil {
		return err
	}
	seed := cfg.Catalog.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	items, err := catalog.Sort(cat.Items(), c, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	logger.Sugar.Debugw("listing", "criterion", c.String(), "seed", seed, "items", len(items))
	for _, it := range items {
		fmt.Fprintf(w, "%s  %-24s %s\n",
			it.Date.Format("2006-01-02"),
			listTitleStyle.Render(it.Title),
			listMetaStyle.Render(it.Role+" · "+it.Ecosystem))
	}
	return nil
}
