// carrot is a terminal game: pull every carrot out of the field before the
// timer runs out, and don't touch the bugs.
//
// Usage:
//
//	carrot                   - Play (same as carrot play)
//	carrot play              - Play a session
//	carrot rules             - Print the effective rules
//	carrot version           - Print the version
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--seed <value>    - RNG seed for reproducible item placement
//	--fps <rate>      - Render frame rate (default: 30)
//	--mute            - Disable sound
//	--log-file <path> - Log destination, "" to discard (default: ~/.carrot/carrot.log)
//	--debug           - Log state transitions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagMute    bool
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carrot",
	Short: "Carrot Field - pull the carrots, dodge the bugs",
	Long: `Carrot Field is a terminal mouse game.

Carrots and bugs are scattered across the field. Click every carrot before
the timer runs out to win. Clicking a bug ends the round at once.

Available commands:
  play     - Play a session (default)
  rules    - Print the effective rules
  version  - Print the version

Examples:
  carrot
  carrot play --seed 42
  carrot rules --config ./configs/carrot.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "carrot", version)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.carrot/carrot.log", "Log file path (empty to discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}
