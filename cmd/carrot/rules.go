package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-field/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rules",
	Long: `Shows the rules a session would use after loading configuration.

Config search order:
  --config <path>
  ~/.carrot/configs/carrot.yaml
  ./configs/carrot.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	printRules(cmd.OutOrStdout(), cfg)
	return nil
}

func printRules(w io.Writer, cfg config.CarrotConfig) {
	fmt.Fprintln(w, "Carrot Field rules:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Carrots   %d  (pull them all to win)\n", cfg.Round.Carrots)
	fmt.Fprintf(w, "  Bugs      %d  (touch one and you lose)\n", cfg.Round.Bugs)
	fmt.Fprintf(w, "  Time      %ds\n", cfg.Round.DurationSec)
	fmt.Fprintf(w, "  Items     %dx%d cells\n", cfg.Items.Width, cfg.Items.Height)

	sound := "off"
	if cfg.Audio.Enabled {
		sound = fmt.Sprintf("on, volume %.0f%%", cfg.Audio.Volume*100)
	}
	fmt.Fprintf(w, "  Sound     %s\n", sound)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'carrot play' to start.")
}
