package commands

import (
	"context"
	"time"

	"github.com/cordialsys/address-parser/cmd/address-parser/setup"
	"github.com/cordialsys/address-parser/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func CmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve address validation over HTTP at GET /parse?token=&address=.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			xcFactory := setup.UnwrapFactory(cmd.Context())

			cfg := server.Config{}
			if err := setup.ProcessEnv(&cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Listen, _ = cmd.Flags().GetString("listen")
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
			}
			if cmd.Flags().Changed("metrics-listen") {
				cfg.MetricsListen, _ = cmd.Flags().GetString("metrics-listen")
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				select {
				case sig := <-setup.MakeSigintChan():
					logrus.Infof("received exit signal: %v", sig)
					cancel()
				case <-ctx.Done():
				}
			}()

			logrus.WithFields(logrus.Fields{
				"listen":  cfg.Listen,
				"timeout": cfg.Timeout,
				"tokens":  len(xcFactory.GetAllTokens()),
			}).Info("starting address parser")

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.NewServer(cfg, xcFactory).Start(ctx)
			})
			if cfg.MetricsListen != "" {
				server.RegisterMetrics()
				g.Go(func() error {
					return server.NewMetricsServer(cfg.MetricsListen).Start(ctx)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().String("listen", "127.0.0.1:3000", "The ip:port listening for incoming requests (may set ADDRESS_PARSER_LISTEN).")
	cmd.Flags().Duration("timeout", 10*time.Second, "Deadline for each request (may set ADDRESS_PARSER_TIMEOUT).")
	cmd.Flags().String("metrics-listen", "", "The ip:port to serve prometheus metrics on. Disabled when empty (may set ADDRESS_PARSER_METRICS_LISTEN).")
	return cmd
}
