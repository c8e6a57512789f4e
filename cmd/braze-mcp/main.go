package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alucardeht/braze-mcp/internal/braze"
	"github.com/alucardeht/braze-mcp/internal/config"
	"github.com/alucardeht/braze-mcp/internal/logger"
	"github.com/alucardeht/braze-mcp/internal/mcp"
	"github.com/alucardeht/braze-mcp/internal/registry"
	"github.com/alucardeht/braze-mcp/internal/seed"
	"github.com/alucardeht/braze-mcp/internal/store"
	"github.com/alucardeht/braze-mcp/pkg/version"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "braze-mcp",
		Short:        "MCP server exposing Braze marketing tools over stdio",
		RunE:         runServe,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "log format (text, json)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)
	log := logger.ForComponent("main")

	brazeCfg := braze.NewConfig()
	brazeCfg.SetBaseURL(cfg.Braze.BaseURL)
	if cfg.Braze.APIToken != "" {
		if err := brazeCfg.Configure(cfg.Braze.APIToken, cfg.Braze.BaseURL); err != nil {
			return err
		}
	}

	st, err := store.Open()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if _, err := seed.Notes(st, cfg.Notes); err != nil {
		return fmt.Errorf("failed to seed notes: %w", err)
	}

	reg, err := registry.New(brazeCfg, st)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Braze.CredentialsFile != "" {
		if creds, err := config.LoadCredentials(cfg.Braze.CredentialsFile); err == nil && creds.APIToken != "" {
			if err := brazeCfg.Configure(creds.APIToken, creds.BaseURL); err != nil {
				return err
			}
		}

		watcher, err := config.NewCredentialsWatcher(cfg.Braze.CredentialsFile, func(creds config.Credentials) {
			if err := brazeCfg.Configure(creds.APIToken, creds.BaseURL); err != nil {
				log.Warn("ignoring invalid credentials update", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to watch credentials file: %w", err)
		}
		go watcher.Run(ctx)
	}

	log.Info("serving MCP over stdio", "version", version.Version, "configured", brazeCfg.IsConfigured())

	if err := mcp.NewServer(reg, st).ServeStdio(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
