package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/courierapp/internal/config"
	"github.com/jask/courierapp/internal/logging"
	"github.com/jask/courierapp/internal/record"
	"github.com/jask/courierapp/internal/service"
	"github.com/jask/courierapp/internal/store"
	"github.com/jask/courierapp/internal/tui"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	backend    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "courierapp",
		Short:        "Courier dashboard for orders, drivers and doctors",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $COURIERAPP_CONFIG or ~/.config/courierapp/config.toml)")
	pf.StringVar(&opts.backend, "backend", "", "doctor store backend: memory or sqlite")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newDoctorsCmd(opts),
		newDriversCmd(opts),
		newOrdersCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// appEnv is everything a command needs once startup has succeeded.
type appEnv struct {
	cfg     config.Config
	log     *zap.Logger
	session *store.Session
}

func (o *rootOptions) start(ctx context.Context) (*appEnv, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.backend != "" {
		cfg.Store.Backend = o.backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Verbose: o.verbose})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		logger.Warn("using local timezone", zap.String("timezone", cfg.UI.Timezone), zap.Error(err))
		loc = time.Local
	}

	seed, err := record.LoadSeed()
	if err != nil {
		return nil, err
	}
	if !cfg.Store.Seed {
		seed.Doctors = nil
	}

	sess, err := store.OpenSession(ctx, cfg.Store.Backend, seed,
		store.WithClock(func() time.Time { return time.Now().In(loc) }))
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	logger.Debug("session opened",
		zap.String("backend", cfg.Store.Backend),
		zap.Bool("seeded", cfg.Store.Seed),
		zap.String("timezone", loc.String()))
	return &appEnv{cfg: cfg, log: logger, session: sess}, nil
}

func (r *appEnv) directory() *service.DirectoryService {
	return &service.DirectoryService{
		Store:      r.session.Doctors,
		Log:        r.log.Named("directory"),
		DateFormat: r.cfg.UI.DateFormat,
	}
}

func (r *appEnv) close() {
	if err := r.session.Close(); err != nil {
		r.log.Warn("close session", zap.Error(err))
	}
	_ = r.log.Sync()
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	rt, err := opts.start(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	app := tui.New(ctx, tui.Services{
		Directory: rt.directory(),
		Drivers:   rt.session.Drivers,
		Orders:    rt.session.Orders,
	}, tui.Options{StartPage: rt.cfg.UI.StartPage, DateFormat: rt.cfg.UI.DateFormat})

	rt.log.Info("starting tui", zap.String("page", rt.cfg.UI.StartPage))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
