package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/carrot-field/internal/audio"
	"github.com/vovakirdan/carrot-field/internal/config"
	"github.com/vovakirdan/carrot-field/internal/core"
	"github.com/vovakirdan/carrot-field/internal/platform/tui"
	"github.com/vovakirdan/carrot-field/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a play session.

Controls:
  Mouse        - Click the ▶ button to start, ■ to stop
                 Click a carrot to pull it, never a bug
  Space/Enter  - Play/Stop
  R            - Replay (when the prompt is shown)
  ?            - More help
  Q/Ctrl+C     - Quit

Examples:
  carrot play
  carrot play --seed 42 --mute
  carrot play --config ./my-field.yaml --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Get terminal size, the field follows later resizes
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagMute {
		cfg.Audio.Enabled = false
	}
	player := audio.New(cfg.Audio, logger)
	defer player.Close()

	// Round history lives for this session only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round history", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("session start", "carrots", cfg.Round.Carrots, "bugs", cfg.Round.Bugs, "duration", cfg.Round.DurationSec, "seed", flagSeed)

	err = tui.Run(tui.Options{
		Rules:   cfg.GameRules(),
		ItemW:   cfg.Items.Width,
		ItemH:   cfg.Items.Height,
		Runtime: runtime,
		Audio:   player,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session end")
	return nil
}
