package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/facet-ui/facet/internal/config"
	"github.com/facet-ui/facet/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the component gallery server",
		Long: `Start the gallery server for the component collection.

The gallery shows one demo instance per component. Connected browsers
hold a WebSocket to /live and receive re-rendered markup whenever the
theme changes.

Examples:
  facet preview
  facet preview --port=9000
  facet preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from facet.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from facet.json)")

	return cmd
}

func runPreview(cmd *cobra.Command, port int, host string) error {
	cfg, err := config.Find(".")
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}

	env, themes, err := buildEnv(cfg)
	if err != nil {
		return err
	}
	defer themes.Close()

	gallery := preview.NewGallery(env, cfg.Preview.Pretty)
	srv := preview.NewServer(preview.ServerConfig{
		Host:   cfg.Preview.Host,
		Port:   cfg.Preview.Port,
		Pretty: cfg.Preview.Pretty,
	}, gallery, themes)

	printBanner()
	fmt.Println("  preview")
	fmt.Println()
	info("gallery:  http://%s/", srv.Addr())
	info("live:     ws://%s/live", srv.Addr())
	info("metrics:  http://%s/metrics", srv.Addr())
	fmt.Println()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
