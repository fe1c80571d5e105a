package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeDreamers777/assettone-console/config"
	"github.com/CodeDreamers777/assettone-console/internal/api"
	"github.com/CodeDreamers777/assettone-console/internal/assettone"
	"github.com/CodeDreamers777/assettone-console/internal/export"
	"github.com/CodeDreamers777/assettone-console/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the console gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger := newLogger(cfg.Log.Level)
			logger.Infof("Using Assettone API at: %s", cfg.API.BaseURL)

			store, err := session.Open(cfg.Session.DBPath, logger)
			if err != nil {
				return fmt.Errorf("failed to open session store: %w", err)
			}

			client := assettone.NewClient(cfg.API.BaseURL, store, store.Invalidate, logger)
			handler := api.NewHandler(client, store, logger)

			router := gin.New()
			router.Use(gin.Recovery())
			api.SetupRoutes(router, handler, cfg.Server.AllowedOrigins)

			logger.Infof("Starting console on port %s", cfg.Server.Port)
			return router.Run(":" + cfg.Server.Port)
		},
	}
}

func exportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export [report.json]",
		Short: "Flatten a saved report JSON file and write it as csv, xlsx or pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read report: %w", err)
			}
			flat, err := export.FlattenJSON(raw)
			if err != nil {
				return fmt.Errorf("failed to flatten report: %w", err)
			}

			if out == "" {
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				out = base + "." + format
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			switch format {
			case "csv":
				err = export.WriteCSV(f, flat)
			case "xlsx":
				err = export.WriteXLSX(f, flat)
			case "pdf":
				err = export.WritePDF(f, filepath.Base(out), flat)
			default:
				return fmt.Errorf("unknown format %q (want csv, xlsx or pdf)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", format, err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv, xlsx or pdf")
	cmd.Flags().StringVar(&out, "out", "", "output file (defaults to the input name with the format extension)")
	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the Assettone API is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := newLogger(cfg.Log.Level)
			client := assettone.NewClient(cfg.API.BaseURL, nil, nil, logger)
			msg, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "console",
		Short: "Assettone Estates admin console gateway",
	}
	rootCmd.AddCommand(serveCmd(), exportCmd(), healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
