package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/estevanpithan/folio"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the site and serves until SIGINT or SIGTERM, then drains in-flight
requests for up to 10 seconds.

Example:
  folio serve --addr :8080 --url https://example.com`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "", "listen address (default \":3000\")")
	f.String("url", "", "canonical site URL")
	f.String("static-dir", "", "directory served at /public")
	f.Bool("pretty-html", false, "indent rendered HTML")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := folio.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	app, err := folio.New(cfg, folio.WithLogger(logger))
	if err != nil {
		return err
	}
	defer app.Close()

	logger.Debug("config loaded",
		zap.String("url", cfg.URL),
		zap.String("static_dir", cfg.StaticDir),
		zap.String("default_locale", cfg.DefaultLocale),
		zap.Duration("contact_delay", cfg.ContactDelay),
	)
	return app.Run(cmd.Context())
}
