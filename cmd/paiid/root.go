package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/paiid/paiid/internal/ai"
	"github.com/paiid/paiid/internal/backtest"
	"github.com/paiid/paiid/internal/bus"
	"github.com/paiid/paiid/internal/config"
	"github.com/paiid/paiid/internal/logging"
	"github.com/paiid/paiid/internal/marketdata"
	"github.com/paiid/paiid/internal/store"
	"github.com/paiid/paiid/internal/trade"
	"github.com/paiid/paiid/internal/tui"
	"github.com/paiid/paiid/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:   "paiid",
	Short: "Terminal trading dashboard",
	Long: `PaiiD is a terminal dashboard for retail trading built around a
radial workflow menu: ten trading workflows arranged as wedges around a
live market hub showing Dow and Nasdaq index values.

With no arguments, launches the dashboard. Use the subcommands for
one-shot operations and setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func runDashboard() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal; logs go to a file.
	if err := logging.Init(logging.Options{Level: cfg.Log.Level, FilePath: cfg.Log.File}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	log := logging.NewLogger("main")

	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}

	registry := workflow.NewRegistry()
	if cfg.Workflows.OverridesPath != "" {
		registry, err = workflow.LoadOverrides(cfg.Workflows.OverridesPath)
		if err != nil {
			return fmt.Errorf("load workflow overrides: %w", err)
		}
	}

	b := bus.New()
	market := marketdata.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	poller := marketdata.NewPoller(market, db, b, cfg.Poll.MarketInterval, logging.NewLogger("poller"))

	chat, err := buildChat(cfg)
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.Deps{
		Config:     cfg,
		Registry:   registry,
		Bus:        b,
		Market:     market,
		Poller:     poller,
		Trade:      trade.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logging.NewLogger("trade")),
		Backtest:   backtest.NewClient(cfg.API.BaseURL, cfg.API.Timeout),
		Chat:       chat,
		Profiles:   db,
		Watchlists: db,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("market poller stopped")
		}
	}()

	// Reload poll cadence and display settings on config file changes.
	watcher, err := config.Watch(func(updated *config.Config) {
		logging.SetLevel(updated.Log.Level)
		poller.SetInterval(updated.Poll.MarketInterval)
		b.Publish(bus.ConfigReloadedEvent{
			RefreshRate:     updated.TUI.RefreshRate,
			MonitorInterval: updated.Poll.MonitorInterval,
		})
		log.Info("config reloaded")
	})
	if err == nil {
		defer watcher.Stop()
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// buildChat selects the AI backend from config.
func buildChat(cfg *config.Config) (*ai.Session, error) {
	if cfg.AI.Backend == "anthropic" {
		key, _ := config.GetAPIKey(cfg)
		client, err := ai.NewClient(ai.ClientConfig{
			APIKey:        key,
			UseAWSBedrock: cfg.AI.UseAWSBedrock,
			AWSRegion:     cfg.AI.AWSRegion,
			AWSProfile:    cfg.AI.AWSProfile,
		})
		if err != nil {
			return nil, fmt.Errorf("anthropic backend: %w", err)
		}
		return ai.NewSession(ai.NewDirectChat(client)), nil
	}
	return ai.NewSession(ai.NewProxyChat(cfg.API.BaseURL, cfg.API.Timeout)), nil
}
