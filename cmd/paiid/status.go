package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/paiid/paiid/internal/config"
	"github.com/paiid/paiid/internal/marketdata"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch market status and index values once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client := marketdata.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		status, err := client.Status(ctx)
		if err != nil {
			return fmt.Errorf("market status: %w", err)
		}

		badge := color.New(color.FgRed, color.Bold)
		if status.IsOpen {
			badge = color.New(color.FgGreen, color.Bold)
		}
		badge.Printf("%s", status.State)
		fmt.Printf("  %s\n", status.Description)

		if !status.IsOpen {
			return nil
		}

		dow, nasdaq, err := client.Indices(ctx)
		if err != nil {
			return fmt.Errorf("market indices: %w", err)
		}
		printIndex("DOW", dow.Last, dow.ChangePercent)
		printIndex("NASDAQ", nasdaq.Last, nasdaq.ChangePercent)
		return nil
	},
}

func printIndex(name string, last, changePct float64) {
	change := color.New(color.FgGreen)
	if changePct < 0 {
		change = color.New(color.FgRed)
	}
	fmt.Printf("%-8s %10.2f  ", name, last)
	change.Printf("%+.2f%%\n", changePct)
}
