package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kdarade/portfolio/internal/contact"
	"github.com/kdarade/portfolio/internal/server"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long:  `Serves the portfolio page, the contact form endpoints, /healthz and /metrics until interrupted.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override server.port")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if allowAll, _ := cmd.Flags().GetBool("allow-all-origins"); allowAll {
		cfg.Server.AllowAll = true
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	prof, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := contact.NewMetrics(reg, "portfolio")

	relay := contact.NewHTTPRelay(cfg.Relay.Endpoint, contact.WithTimeout(cfg.Relay.Timeout))

	var forms *contact.Registry
	forms = contact.NewRegistry(relay,
		contact.WithIdleTTL(cfg.Session.IdleTTL),
		contact.WithCleanupInterval(cfg.Session.CleanupInterval),
		contact.WithFormOptions(contact.WithObserver(metrics.Observe)),
		contact.WithEvictHook(func(id string) {
			logger.Debug("contact form evicted", zap.String("session", id))
			metrics.SetForms(forms.Count())
		}),
	)
	defer forms.Close()

	srv := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowAll:       cfg.Server.AllowAll,
	}, server.Deps{
		Logger:   logger,
		Profile:  prof,
		Forms:    forms,
		Metrics:  metrics,
		Registry: reg,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting portfolio",
		zap.String("version", Version),
		zap.String("owner", prof.FullName()),
		zap.String("relay", relay.Endpoint()),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
