package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mtmgroup/dashboards-ui/internal/app/auth"
	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"github.com/mtmgroup/dashboards-ui/internal/app/server"
	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/page"
	"github.com/mtmgroup/dashboards-ui/internal/tui"
	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/mtmgroup/dashboards-ui/tracing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultConfig = "config/config.example.yaml"

type App struct {
	ConfigPath string
	PrettyJSON bool

	deps         *Deps
	stopTracing  func(context.Context) error
	depsProvided bool
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

// newRootCmd builds the command tree. When app.deps is already set the
// config file is not read.
func newRootCmd(app *App) *cobra.Command {
	app.depsProvided = app.deps != nil

	cmd := &cobra.Command{
		Use:           "dashboards-ui",
		Short:         "Browse, filter, add and update dashboards",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive UI
  dashboards-ui --config config/config.yaml

  # Scriptable commands
  dashboards-ui list --category Sales --search revenue
  dashboards-ui update 42 --description "Refreshed monthly" --last-updated-date 2024-03-01
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.setup(cmd.Context())
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		app.teardown(cmd.Context())
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DASHBOARDS_CONFIG", DefaultConfig), "Path to the config file")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newWhoAmICmd(app))
	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newCreateCmd(app))
	cmd.AddCommand(newUpdateCmd(app))

	return cmd
}

func (app *App) setup(ctx context.Context) error {
	if app.depsProvided {
		return nil
	}

	if app.ConfigPath == DefaultConfig {
		logger.Warn("app uses the default config file, to provide your own config use --config flag")
	}
	cfg, err := config.FromFile(app.ConfigPath)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if cfg.Tracing != nil {
		stop, err := tracing.Initialize(cfg.Tracing)
		if err != nil {
			logger.Error("can't initialize tracing", zap.Error(err))
		} else {
			app.stopTracing = stop
		}
	}

	deps, err := newDeps(ctx, cfg)
	if err != nil {
		return err
	}
	app.deps = deps
	return nil
}

func (app *App) teardown(ctx context.Context) {
	if app.stopTracing == nil {
		return
	}
	if err := app.stopTracing(context.WithoutCancel(ctx)); err != nil {
		logger.Error("stop tracing", zap.Error(err))
	}
}

// authorize runs the gate. A redirect becomes a *RedirectError.
func (app *App) authorize(cmd *cobra.Command) (types.Identity, error) {
	d := app.deps
	if !d.isLocalPage() {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), auth.PendingMessage)
	}

	res, err := d.Gate.Authenticate(cmd.Context(), d.PageURL)
	if err != nil {
		return types.Identity{}, err
	}
	if !res.Authorized() {
		return types.Identity{}, &RedirectError{URL: res.Redirect.URL}
	}
	return *res.Identity, nil
}

func (app *App) newPage(cmd *cobra.Command, id types.Identity) *page.Page {
	return page.New(page.Params{
		Service:  app.deps.Service,
		Identity: id,
		Notifier: notify.NewWriter(cmd.ErrOrStderr()),
		Forms:    app.deps.Forms,
	})
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	d := app.deps

	if os.Getenv("LOG_FILE") == "" {
		path := filepath.Join(os.TempDir(), "dashboards-ui.log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec
		if err == nil {
			defer func() { _ = f.Close() }()
			logger.SetOutput(f)
		} else {
			logger.SetOutput(io.Discard)
		}
	}

	var onLoaded func()
	if d.DebugAddr != "" {
		dbg := server.NewDebug(ctx, d.DebugAddr)
		go func() {
			if err := dbg.Run(ctx); err != nil {
				logger.Error("debug server stopped", zap.Error(err))
			}
		}()
		onLoaded = func() { dbg.SetReady(true) }
	}

	toasts := notify.NewQueue(notify.DefaultTTL)
	err := tui.Run(ctx, tui.Deps{
		Gate:    d.Gate,
		PageURL: d.PageURL,
		NewPage: func(id types.Identity) *page.Page {
			return page.New(page.Params{
				Service:  d.Service,
				Identity: id,
				Notifier: toasts,
				Forms:    d.Forms,
			})
		},
		Toasts:   toasts,
		OnLoaded: onLoaded,
	})
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	var (
		b   []byte
		err error
	)
	if app.PrettyJSON {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
