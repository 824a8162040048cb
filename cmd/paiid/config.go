package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/paiid/paiid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		label := color.New(color.FgCyan)

		label.Print("config file:      ")
		fmt.Println(config.GetUserConfigPath())
		label.Print("api base url:     ")
		fmt.Println(cfg.API.BaseURL)
		label.Print("api timeout:      ")
		fmt.Println(cfg.API.Timeout)
		label.Print("market interval:  ")
		fmt.Println(cfg.Poll.MarketInterval)
		label.Print("ai backend:       ")
		fmt.Println(cfg.AI.Backend)
		label.Print("api key:          ")
		key, _ := config.GetAPIKey(cfg)
		fmt.Printf("%s (%s)\n", config.MaskAPIKey(key), config.GetAPIKeySource(cfg))
		label.Print("log level:        ")
		fmt.Println(cfg.Log.Level)
		return nil
	},
}
