package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/paiid/paiid/internal/config"
	"github.com/paiid/paiid/internal/store"
	"github.com/paiid/paiid/pkg/models"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the dashboard profile and config",
	Long: `Set up PaiiD for first use.

Creates the user config file, initializes the local database, and walks
through the trading profile: display name, risk tolerance, and whether
orders route to live execution or the paper simulator.

Examples:
  paiid init           # First-time setup
  paiid init --force   # Redo setup over an existing profile`,
	RunE: runSetup,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Redo setup over an existing profile")
}

func runSetup(cmd *cobra.Command, args []string) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Println("PaiiD setup")
	fmt.Println()

	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}

	profile, err := db.GetProfile()
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if profile.SetupComplete && !initForce {
		yellow.Println("Already set up. Use --force to redo.")
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cyan.Print("Display name")
	fmt.Printf(" [%s]: ", profile.DisplayName)
	if name := readLine(reader); name != "" {
		profile.DisplayName = name
	}

	cyan.Print("Risk tolerance")
	fmt.Printf(" (conservative/moderate/aggressive) [%s]: ", profile.RiskTolerance)
	if risk := models.RiskTolerance(readLine(reader)); risk != "" {
		if !risk.Valid() {
			return fmt.Errorf("unknown risk tolerance %q", risk)
		}
		profile.RiskTolerance = risk
	}

	cyan.Print("Trading mode")
	fmt.Printf(" (live/paper) [%s]: ", profile.TradingMode)
	if mode := models.TradingMode(readLine(reader)); mode != "" {
		if !mode.Valid() {
			return fmt.Errorf("unknown trading mode %q", mode)
		}
		profile.TradingMode = mode
	}

	profile.SetupComplete = true
	profile.UpdatedAt = time.Now()
	if err := db.SetProfile(profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	// Write the default config file if none exists yet.
	if _, err := os.Stat(config.GetUserConfigPath()); os.IsNotExist(err) {
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		green.Printf("✓ Config written to %s\n", config.GetUserConfigPath())
	}

	green.Println("✓ Profile saved")
	fmt.Println()
	fmt.Println("Run `paiid` to launch the dashboard.")
	return nil
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
